package controller

import (
	"strconv"

	"sportsmatch-api/core/controller"
	"sportsmatch-api/core/errors"
	"sportsmatch-api/core/middleware"
	"sportsmatch-api/core/utils"
	"sportsmatch-api/modules/club/dto"
	"sportsmatch-api/modules/club/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ClubController struct {
	controller.BaseController
	ClubService *service.ClubService
}

func NewClubController(clubService *service.ClubService) *ClubController {
	return &ClubController{
		BaseController: controller.NewBaseController(),
		ClubService:    clubService,
	}
}

func (ctrl *ClubController) CreateClub(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.CreateClubRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "invalid request data")
	}
	if err := c.Validate(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid request data", err.Error())
	}

	club, appErr := ctrl.ClubService.CreateClub(ctx, requestData)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.CreatedResponse(c, club, "create club success")
}

func (ctrl *ClubController) GetClubs(c echo.Context) error {
	ctx := c.Request().Context()

	clubs, err := ctrl.ClubService.GetClubs(ctx)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}
	return ctrl.SuccessResponse(c, clubs, "get clubs success")
}

func (ctrl *ClubController) GetClub(c echo.Context) error {
	ctx := c.Request().Context()

	clubID := utils.ToUUID(c.Param("clubId"))
	if clubID == uuid.Nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid club id")
	}

	club, err := ctrl.ClubService.GetClubByID(ctx, clubID)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}
	return ctrl.SuccessResponse(c, club, "get club success")
}

func (ctrl *ClubController) GetNearClubs(c echo.Context) error {
	ctx := c.Request().Context()

	location := c.Param("location")
	radius, _ := strconv.ParseFloat(c.QueryParam("radius"), 64)

	clubs, err := ctrl.ClubService.GetNearClubs(ctx, location, radius)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}
	return ctrl.SuccessResponse(c, clubs, "get near clubs success")
}

func (ctrl *ClubController) UpdateClub(c echo.Context) error {
	ctx := c.Request().Context()

	clubID := utils.ToUUID(c.Param("clubId"))
	if clubID == uuid.Nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid club id")
	}
	if c.Get(middleware.ContextKeyAuthID) != clubID {
		return ctrl.Forbidden(errors.ErrForbidden, "cannot update another club")
	}

	requestData := new(dto.UpdateClubRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "invalid request data")
	}

	if appErr := ctrl.ClubService.UpdateClub(ctx, clubID, requestData); appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, nil, "update club success")
}

func (ctrl *ClubController) UpdateLocation(c echo.Context) error {
	ctx := c.Request().Context()

	clubID := utils.ToUUID(c.Param("clubId"))
	if clubID == uuid.Nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid club id")
	}
	if c.Get(middleware.ContextKeyAuthID) != clubID {
		return ctrl.Forbidden(errors.ErrForbidden, "cannot update another club")
	}

	requestData := new(dto.UpdateLocationRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "invalid request data")
	}
	if err := c.Validate(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid request data", err.Error())
	}

	if appErr := ctrl.ClubService.UpdateLocation(ctx, clubID, requestData); appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, nil, "update location success")
}

package controller

import (
	"sportsmatch-api/core/controller"
	"sportsmatch-api/core/errors"
	"sportsmatch-api/core/middleware"
	"sportsmatch-api/core/params"
	"sportsmatch-api/core/utils"
	"sportsmatch-api/modules/user/dto"
	"sportsmatch-api/modules/user/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type UserController struct {
	controller.BaseController
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{
		BaseController: controller.NewBaseController(),
		UserService:    userService,
	}
}

func (ctrl *UserController) GetUsers(c echo.Context) error {
	ctx := c.Request().Context()

	queryParams := params.NewQueryParams(c)

	users, err := ctrl.UserService.GetUsers(ctx, *queryParams)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}
	return ctrl.SuccessResponse(c, users, "get users success")
}

func (ctrl *UserController) GetUser(c echo.Context) error {
	ctx := c.Request().Context()

	userID := utils.ToUUID(c.Param("userId"))
	if userID == uuid.Nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid user id")
	}

	user, err := ctrl.UserService.GetUserByID(ctx, userID)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}
	return ctrl.SuccessResponse(c, user, "get user success")
}

func (ctrl *UserController) UpdateUser(c echo.Context) error {
	ctx := c.Request().Context()

	userID := utils.ToUUID(c.Param("userId"))
	if userID == uuid.Nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid user id")
	}
	if c.Get(middleware.ContextKeyAuthID) != userID {
		return ctrl.Forbidden(errors.ErrForbidden, "cannot update another user")
	}

	requestData := new(dto.UpdateUserRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "invalid request data")
	}
	if err := c.Validate(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid request data", err.Error())
	}

	user, appErr := ctrl.UserService.UpdateUser(ctx, userID, requestData)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, user, "update user success")
}

func (ctrl *UserController) GetPicture(c echo.Context) error {
	ctx := c.Request().Context()

	userID := utils.ToUUID(c.Param("userId"))
	if userID == uuid.Nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid user id")
	}

	url, err := ctrl.UserService.GetPictureURL(ctx, userID)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}
	return ctrl.SuccessResponse(c, url, "get picture url success")
}

func (ctrl *UserController) PutPicture(c echo.Context) error {
	ctx := c.Request().Context()

	userID := utils.ToUUID(c.Param("userId"))
	if userID == uuid.Nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid user id")
	}
	if c.Get(middleware.ContextKeyAuthID) != userID {
		return ctrl.Forbidden(errors.ErrForbidden, "cannot update another user's picture")
	}

	contentType := c.QueryParam("contentType")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	url, err := ctrl.UserService.GetPictureUploadURL(ctx, userID, contentType)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}
	return ctrl.SuccessResponse(c, url, "get upload url success")
}

package controller

import (
	"sportsmatch-api/core/controller"
	"sportsmatch-api/core/errors"
	"sportsmatch-api/core/middleware"
	"sportsmatch-api/core/utils"
	"sportsmatch-api/modules/reservation/dto"
	"sportsmatch-api/modules/reservation/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ReservationController struct {
	controller.BaseController
	ReservationService *service.ReservationService
}

func NewReservationController(reservationService *service.ReservationService) *ReservationController {
	return &ReservationController{
		BaseController:     controller.NewBaseController(),
		ReservationService: reservationService,
	}
}

func (ctrl *ReservationController) CreateReservation(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.CreateReservationRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "invalid request data")
	}
	if err := c.Validate(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid request data", err.Error())
	}

	reservation, appErr := ctrl.ReservationService.CreateReservation(ctx, requestData)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.CreatedResponse(c, reservation, "create reservation success")
}

func (ctrl *ReservationController) GetReservation(c echo.Context) error {
	ctx := c.Request().Context()

	reservationID := utils.ToUUID(c.Param("reservationId"))
	if reservationID == uuid.Nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid reservation id")
	}

	reservation, appErr := ctrl.ReservationService.GetReservationByID(ctx, reservationID)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, reservation, "get reservation success")
}

func (ctrl *ReservationController) GetReservationsByEvent(c echo.Context) error {
	ctx := c.Request().Context()

	eventID := utils.ToUUID(c.QueryParam("eventId"))
	if eventID == uuid.Nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "eventId query parameter required")
	}

	reservations, appErr := ctrl.ReservationService.GetReservationsByEvent(ctx, eventID)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, reservations, "get reservations success")
}

func (ctrl *ReservationController) GetReservationsByClub(c echo.Context) error {
	ctx := c.Request().Context()

	clubID := utils.ToUUID(c.Param("clubId"))
	if clubID == uuid.Nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid club id")
	}
	if c.Get(middleware.ContextKeyAuthID) != clubID {
		return ctrl.Forbidden(errors.ErrForbidden, "cannot view another club's reservations")
	}

	reservations, appErr := ctrl.ReservationService.GetReservationsByClub(ctx, clubID, c.QueryParam("status"))
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, reservations, "get reservations success")
}

func (ctrl *ReservationController) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()

	reservationID := utils.ToUUID(c.Param("reservationId"))
	if reservationID == uuid.Nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid reservation id")
	}
	clubID, ok := c.Get(middleware.ContextKeyAuthID).(uuid.UUID)
	if !ok || clubID == uuid.Nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "missing club identity")
	}

	requestData := new(dto.UpdateReservationStatusRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "invalid request data")
	}
	if err := c.Validate(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid request data", err.Error())
	}

	reservation, appErr := ctrl.ReservationService.UpdateStatus(ctx, reservationID, clubID, requestData)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, reservation, "update reservation status success")
}

func (ctrl *ReservationController) DeleteReservation(c echo.Context) error {
	ctx := c.Request().Context()

	reservationID := utils.ToUUID(c.Param("reservationId"))
	if reservationID == uuid.Nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid reservation id")
	}

	if appErr := ctrl.ReservationService.DeleteReservation(ctx, reservationID); appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, nil, "delete reservation success")
}

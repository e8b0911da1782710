package controller

import (
	"sportsmatch-api/core/controller"
	"sportsmatch-api/core/errors"
	"sportsmatch-api/core/middleware"
	"sportsmatch-api/core/utils"
	"sportsmatch-api/modules/participant/dto"
	"sportsmatch-api/modules/participant/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ParticipantController struct {
	controller.BaseController
	ParticipantService *service.ParticipantService
}

func NewParticipantController(participantService *service.ParticipantService) *ParticipantController {
	return &ParticipantController{
		BaseController:     controller.NewBaseController(),
		ParticipantService: participantService,
	}
}

func (ctrl *ParticipantController) AddParticipant(c echo.Context) error {
	ctx := c.Request().Context()

	eventID := utils.ToUUID(c.Param("eventId"))
	if eventID == uuid.Nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid event id")
	}
	userID, ok := c.Get(middleware.ContextKeyAuthID).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "missing user identity")
	}

	participant, appErr := ctrl.ParticipantService.Join(ctx, eventID, userID)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.CreatedResponse(c, participant, "join event success")
}

func (ctrl *ParticipantController) GetParticipants(c echo.Context) error {
	ctx := c.Request().Context()

	eventID := utils.ToUUID(c.Param("eventId"))
	if eventID == uuid.Nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid event id")
	}

	participants, appErr := ctrl.ParticipantService.GetParticipants(ctx, eventID)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, participants, "get participants success")
}

func (ctrl *ParticipantController) UpdateParticipant(c echo.Context) error {
	ctx := c.Request().Context()

	eventID := utils.ToUUID(c.Param("eventId"))
	participantID := utils.ToUUID(c.Param("participantId"))
	if eventID == uuid.Nil || participantID == uuid.Nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid id")
	}
	authID, _ := c.Get(middleware.ContextKeyAuthID).(uuid.UUID)
	authType, _ := c.Get(middleware.ContextKeyAuthType).(string)

	requestData := new(dto.UpdateParticipantRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "invalid request data")
	}
	if err := c.Validate(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid request data", err.Error())
	}

	if appErr := ctrl.ParticipantService.Decide(ctx, eventID, participantID, authID, authType, requestData); appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, nil, "update participant success")
}

func (ctrl *ParticipantController) RemoveParticipant(c echo.Context) error {
	ctx := c.Request().Context()

	eventID := utils.ToUUID(c.Param("eventId"))
	participantID := utils.ToUUID(c.Param("participantId"))
	if eventID == uuid.Nil || participantID == uuid.Nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid id")
	}
	authID, _ := c.Get(middleware.ContextKeyAuthID).(uuid.UUID)
	authType, _ := c.Get(middleware.ContextKeyAuthType).(string)

	if appErr := ctrl.ParticipantService.Leave(ctx, eventID, participantID, authID, authType); appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, nil, "remove participant success")
}

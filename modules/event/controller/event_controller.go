package controller

import (
	"strconv"
	"time"

	"sportsmatch-api/core/controller"
	"sportsmatch-api/core/errors"
	"sportsmatch-api/core/middleware"
	"sportsmatch-api/core/params"
	"sportsmatch-api/core/utils"
	"sportsmatch-api/modules/event/dto"
	"sportsmatch-api/modules/event/entity"
	"sportsmatch-api/modules/event/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type EventController struct {
	controller.BaseController
	EventService *service.EventService
}

func NewEventController(eventService *service.EventService) *EventController {
	return &EventController{
		BaseController: controller.NewBaseController(),
		EventService:   eventService,
	}
}

func (ctrl *EventController) CreateEvent(c echo.Context) error {
	ctx := c.Request().Context()

	authID, ok := c.Get(middleware.ContextKeyAuthID).(uuid.UUID)
	if !ok || authID == uuid.Nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "missing identity")
	}

	requestData := new(dto.CreateEventRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "invalid request data")
	}
	if err := c.Validate(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid request data", err.Error())
	}

	authType, _ := c.Get(middleware.ContextKeyAuthType).(string)
	if requestData.OrganizerType != authType {
		return ctrl.Forbidden(errors.ErrForbidden, "organizer type does not match credentials")
	}

	event, appErr := ctrl.EventService.CreateEvent(ctx, authID, requestData)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.CreatedResponse(c, event, "create event success")
}

func (ctrl *EventController) GetEvents(c echo.Context) error {
	ctx := c.Request().Context()

	p := params.NewQueryParams(c)
	filter := entity.EventFilter{
		Expertise:     c.QueryParam("expertise"),
		Location:      c.QueryParam("location"),
		OrganizerType: entity.OrganizerType(c.QueryParam("organizerType")),
		Search:        p.Search,
	}
	if sportID, err := strconv.Atoi(c.QueryParam("sportId")); err == nil {
		filter.SportID = sportID
	}
	if raw := c.QueryParam("schedule"); raw != "" {
		schedule, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return ctrl.BadRequest(errors.ErrInvalidInput, "invalid schedule date")
		}
		filter.Schedule = &schedule
	}

	page, appErr := ctrl.EventService.GetEvents(ctx, filter, p.PageNumber, p.Limit())
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, page, "get events success")
}

func (ctrl *EventController) GetEvent(c echo.Context) error {
	ctx := c.Request().Context()

	eventID := utils.ToUUID(c.Param("eventId"))
	if eventID == uuid.Nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid event id")
	}

	event, appErr := ctrl.EventService.GetEventByID(ctx, eventID)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, event, "get event success")
}

func (ctrl *EventController) UpdateEvent(c echo.Context) error {
	ctx := c.Request().Context()

	eventID := utils.ToUUID(c.Param("eventId"))
	if eventID == uuid.Nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid event id")
	}
	authID, _ := c.Get(middleware.ContextKeyAuthID).(uuid.UUID)
	authType, _ := c.Get(middleware.ContextKeyAuthType).(string)

	requestData := new(dto.UpdateEventRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "invalid request data")
	}
	if err := c.Validate(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid request data", err.Error())
	}

	event, appErr := ctrl.EventService.UpdateEvent(ctx, eventID, authID, authType, requestData)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, event, "update event success")
}

func (ctrl *EventController) DeleteEvent(c echo.Context) error {
	ctx := c.Request().Context()

	eventID := utils.ToUUID(c.Param("eventId"))
	if eventID == uuid.Nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid event id")
	}
	authID, _ := c.Get(middleware.ContextKeyAuthID).(uuid.UUID)
	authType, _ := c.Get(middleware.ContextKeyAuthType).(string)

	if appErr := ctrl.EventService.DeleteEvent(ctx, eventID, authID, authType); appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, nil, "delete event success")
}

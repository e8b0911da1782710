package controller

import (
	"sportsmatch-api/core/controller"
	"sportsmatch-api/core/errors"
	"sportsmatch-api/core/middleware"
	"sportsmatch-api/core/utils"
	"sportsmatch-api/modules/field/dto"
	"sportsmatch-api/modules/field/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type FieldController struct {
	controller.BaseController
	FieldService *service.FieldService
}

func NewFieldController(fieldService *service.FieldService) *FieldController {
	return &FieldController{
		BaseController: controller.NewBaseController(),
		FieldService:   fieldService,
	}
}

func (ctrl *FieldController) authClubID(c echo.Context) (uuid.UUID, bool) {
	clubID, ok := c.Get(middleware.ContextKeyAuthID).(uuid.UUID)
	return clubID, ok && clubID != uuid.Nil
}

func (ctrl *FieldController) CreateField(c echo.Context) error {
	ctx := c.Request().Context()

	clubID, ok := ctrl.authClubID(c)
	if !ok {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "missing club identity")
	}

	requestData := new(dto.CreateFieldRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "invalid request data")
	}
	if err := c.Validate(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid request data", err.Error())
	}

	field, appErr := ctrl.FieldService.CreateField(ctx, clubID, requestData)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.CreatedResponse(c, field, "create field success")
}

func (ctrl *FieldController) GetFieldsByClub(c echo.Context) error {
	ctx := c.Request().Context()

	clubID := utils.ToUUID(c.Param("clubId"))
	if clubID == uuid.Nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid club id")
	}

	fields, appErr := ctrl.FieldService.GetFieldsByClub(ctx, clubID)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, fields, "get fields success")
}

func (ctrl *FieldController) UpdateField(c echo.Context) error {
	ctx := c.Request().Context()

	clubID, ok := ctrl.authClubID(c)
	if !ok {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "missing club identity")
	}
	fieldID := utils.ToUUID(c.Param("fieldId"))
	if fieldID == uuid.Nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid field id")
	}

	requestData := new(dto.UpdateFieldRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "invalid request data")
	}
	if err := c.Validate(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid request data", err.Error())
	}

	field, appErr := ctrl.FieldService.UpdateField(ctx, clubID, fieldID, requestData)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, field, "update field success")
}

func (ctrl *FieldController) DeleteField(c echo.Context) error {
	ctx := c.Request().Context()

	clubID, ok := ctrl.authClubID(c)
	if !ok {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "missing club identity")
	}
	fieldID := utils.ToUUID(c.Param("fieldId"))
	if fieldID == uuid.Nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid field id")
	}

	if appErr := ctrl.FieldService.DeleteField(ctx, clubID, fieldID); appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, nil, "delete field success")
}

func (ctrl *FieldController) GenerateSlots(c echo.Context) error {
	ctx := c.Request().Context()

	clubID, ok := ctrl.authClubID(c)
	if !ok {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "missing club identity")
	}
	fieldID := utils.ToUUID(c.Param("fieldId"))
	if fieldID == uuid.Nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid field id")
	}

	requestData := new(dto.GenerateSlotsRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "invalid request data")
	}
	if err := c.Validate(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid request data", err.Error())
	}

	slots, appErr := ctrl.FieldService.GenerateSlots(ctx, clubID, fieldID, requestData)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.CreatedResponse(c, slots, "generate slots success")
}

func (ctrl *FieldController) GetSlots(c echo.Context) error {
	ctx := c.Request().Context()

	fieldID := utils.ToUUID(c.Param("fieldId"))
	if fieldID == uuid.Nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid field id")
	}

	slots, appErr := ctrl.FieldService.GetSlots(ctx, fieldID, c.QueryParam("date"), c.QueryParam("status"))
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, slots, "get slots success")
}

func (ctrl *FieldController) BlockSlot(c echo.Context) error {
	ctx := c.Request().Context()

	clubID, ok := ctrl.authClubID(c)
	if !ok {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "missing club identity")
	}
	fieldID := utils.ToUUID(c.Param("fieldId"))
	slotID := utils.ToUUID(c.Param("slotId"))
	if fieldID == uuid.Nil || slotID == uuid.Nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid id")
	}

	if appErr := ctrl.FieldService.BlockSlot(ctx, clubID, fieldID, slotID); appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, nil, "block slot success")
}

func (ctrl *FieldController) UnblockSlot(c echo.Context) error {
	ctx := c.Request().Context()

	clubID, ok := ctrl.authClubID(c)
	if !ok {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "missing club identity")
	}
	fieldID := utils.ToUUID(c.Param("fieldId"))
	slotID := utils.ToUUID(c.Param("slotId"))
	if fieldID == uuid.Nil || slotID == uuid.Nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid id")
	}

	if appErr := ctrl.FieldService.UnblockSlot(ctx, clubID, fieldID, slotID); appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, nil, "unblock slot success")
}

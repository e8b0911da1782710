package controller

import (
	"sportsmatch-api/core/controller"
	"sportsmatch-api/core/errors"
	"sportsmatch-api/core/utils"
	"sportsmatch-api/modules/payment/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type PaymentController struct {
	controller.BaseController
	PaymentService *service.PaymentService
}

func NewPaymentController(paymentService *service.PaymentService) *PaymentController {
	return &PaymentController{
		BaseController: controller.NewBaseController(),
		PaymentService: paymentService,
	}
}

func (ctrl *PaymentController) ProcessPayment(c echo.Context) error {
	ctx := c.Request().Context()

	reservationID := utils.ToUUID(c.Param("reservationId"))
	if reservationID == uuid.Nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid reservation id")
	}

	payment, appErr := ctrl.PaymentService.ProcessPayment(ctx, reservationID)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.CreatedResponse(c, payment, "process payment success")
}

func (ctrl *PaymentController) GetPayment(c echo.Context) error {
	ctx := c.Request().Context()

	reservationID := utils.ToUUID(c.Param("reservationId"))
	if reservationID == uuid.Nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid reservation id")
	}

	payment, appErr := ctrl.PaymentService.GetPaymentByReservation(ctx, reservationID)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, payment, "get payment success")
}

func (ctrl *PaymentController) GetPaymentStatus(c echo.Context) error {
	ctx := c.Request().Context()

	reservationID := utils.ToUUID(c.Param("reservationId"))
	if reservationID == uuid.Nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid reservation id")
	}

	status, appErr := ctrl.PaymentService.GetPaymentStatus(ctx, reservationID)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, status, "get payment status success")
}

func (ctrl *PaymentController) Refund(c echo.Context) error {
	ctx := c.Request().Context()

	paymentID := utils.ToUUID(c.Param("paymentId"))
	if paymentID == uuid.Nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid payment id")
	}

	payment, appErr := ctrl.PaymentService.Refund(ctx, paymentID)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, payment, "refund payment success")
}

package router

import (
	"sportsmatch-api/core/middleware"
	"sportsmatch-api/modules/payment/controller"

	"github.com/labstack/echo/v4"
)

type PaymentRouter struct {
	Controller *controller.PaymentController
}

func NewPaymentRouter(ctrl *controller.PaymentController) *PaymentRouter {
	return &PaymentRouter{Controller: ctrl}
}

func (r *PaymentRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	payments := e.Group("/api/v1/payments")

	payments.POST("/:reservationId/process_payment", r.Controller.ProcessPayment, mw.UserAuthMiddleware())
	payments.GET("/club/:reservationId/status", r.Controller.GetPaymentStatus, mw.ClubAuthMiddleware())
	payments.GET("/:reservationId", r.Controller.GetPayment, mw.UserAuthMiddleware())
	payments.POST("/:paymentId/refund", r.Controller.Refund, mw.UserAuthMiddleware())
}

package router

import (
	"sportsmatch-api/core/middleware"
	"sportsmatch-api/modules/reservation/controller"

	"github.com/labstack/echo/v4"
)

type ReservationRouter struct {
	Controller *controller.ReservationController
}

func NewReservationRouter(ctrl *controller.ReservationController) *ReservationRouter {
	return &ReservationRouter{Controller: ctrl}
}

func (r *ReservationRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	reservations := e.Group("/api/v1/reservations")

	reservations.POST("", r.Controller.CreateReservation, mw.UserAuthMiddleware())
	reservations.GET("", r.Controller.GetReservationsByEvent)
	reservations.GET("/club/:clubId", r.Controller.GetReservationsByClub, mw.ClubAuthMiddleware())
	reservations.GET("/:reservationId", r.Controller.GetReservation)
	reservations.PATCH("/:reservationId/status", r.Controller.UpdateStatus, mw.ClubAuthMiddleware())
	reservations.DELETE("/:reservationId", r.Controller.DeleteReservation, mw.UserAuthMiddleware())
}

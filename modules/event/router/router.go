package router

import (
	"sportsmatch-api/core/middleware"
	"sportsmatch-api/modules/event/controller"

	"github.com/labstack/echo/v4"
)

type EventRouter struct {
	Controller *controller.EventController
}

func NewEventRouter(ctrl *controller.EventController) *EventRouter {
	return &EventRouter{Controller: ctrl}
}

func (r *EventRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	events := e.Group("/api/v1/events")

	events.GET("", r.Controller.GetEvents)
	events.POST("", r.Controller.CreateEvent, mw.AuthMiddleware())
	events.GET("/:eventId", r.Controller.GetEvent)
	events.PATCH("/:eventId", r.Controller.UpdateEvent, mw.AuthMiddleware())
	events.DELETE("/:eventId", r.Controller.DeleteEvent, mw.AuthMiddleware())
}

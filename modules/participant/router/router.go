package router

import (
	"sportsmatch-api/core/middleware"
	"sportsmatch-api/modules/participant/controller"

	"github.com/labstack/echo/v4"
)

type ParticipantRouter struct {
	Controller *controller.ParticipantController
}

func NewParticipantRouter(ctrl *controller.ParticipantController) *ParticipantRouter {
	return &ParticipantRouter{Controller: ctrl}
}

func (r *ParticipantRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	participants := e.Group("/api/v1/events/:eventId/participants")

	participants.POST("", r.Controller.AddParticipant, mw.UserAuthMiddleware())
	participants.GET("", r.Controller.GetParticipants)
	participants.PUT("/:participantId", r.Controller.UpdateParticipant, mw.AuthMiddleware())
	participants.DELETE("/:participantId", r.Controller.RemoveParticipant, mw.AuthMiddleware())
}

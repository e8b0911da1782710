package router

import (
	"sportsmatch-api/core/middleware"
	"sportsmatch-api/modules/field/controller"

	"github.com/labstack/echo/v4"
)

type FieldRouter struct {
	Controller *controller.FieldController
}

func NewFieldRouter(ctrl *controller.FieldController) *FieldRouter {
	return &FieldRouter{Controller: ctrl}
}

func (r *FieldRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	fields := e.Group("/api/v1/fields")

	fields.POST("", r.Controller.CreateField, mw.ClubAuthMiddleware())
	fields.GET("/:clubId", r.Controller.GetFieldsByClub)
	fields.PUT("/:fieldId", r.Controller.UpdateField, mw.ClubAuthMiddleware())
	fields.DELETE("/:fieldId", r.Controller.DeleteField, mw.ClubAuthMiddleware())

	fields.POST("/:fieldId/slots", r.Controller.GenerateSlots, mw.ClubAuthMiddleware())
	fields.GET("/:fieldId/slots", r.Controller.GetSlots)
	fields.PATCH("/:fieldId/slots/:slotId/block", r.Controller.BlockSlot, mw.ClubAuthMiddleware())
	fields.PATCH("/:fieldId/slots/:slotId/unblock", r.Controller.UnblockSlot, mw.ClubAuthMiddleware())
}

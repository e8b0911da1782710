package router

import (
	"sportsmatch-api/core/middleware"
	"sportsmatch-api/modules/club/controller"

	"github.com/labstack/echo/v4"
)

type ClubRouter struct {
	Controller *controller.ClubController
}

func NewClubRouter(ctrl *controller.ClubController) *ClubRouter {
	return &ClubRouter{Controller: ctrl}
}

func (r *ClubRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	clubs := e.Group("/api/v1/clubs")

	clubs.POST("", r.Controller.CreateClub)
	clubs.GET("", r.Controller.GetClubs)
	clubs.GET("/near/:location", r.Controller.GetNearClubs)
	clubs.GET("/:clubId", r.Controller.GetClub)
	clubs.PUT("/:clubId", r.Controller.UpdateClub, mw.ClubAuthMiddleware())
	clubs.PUT("/:clubId/location", r.Controller.UpdateLocation, mw.ClubAuthMiddleware())
}

package router

import (
	"sportsmatch-api/core/middleware"
	"sportsmatch-api/modules/user/controller"

	"github.com/labstack/echo/v4"
)

type UserRouter struct {
	Controller *controller.UserController
}

func NewUserRouter(ctrl *controller.UserController) *UserRouter {
	return &UserRouter{Controller: ctrl}
}

func (r *UserRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	users := e.Group("/api/v1/users")

	users.GET("", r.Controller.GetUsers)
	users.GET("/:userId", r.Controller.GetUser)
	users.PATCH("/:userId", r.Controller.UpdateUser, mw.UserAuthMiddleware())
	users.GET("/:userId/picture", r.Controller.GetPicture)
	users.PUT("/:userId/picture", r.Controller.PutPicture, mw.UserAuthMiddleware())
}

package router

import (
	"sportsmatch-api/core/middleware"
	"sportsmatch-api/modules/auth/controller"

	"github.com/labstack/echo/v4"
)

type AuthRouter struct {
	Controller *controller.AuthController
}

func NewAuthRouter(ctrl *controller.AuthController) *AuthRouter {
	return &AuthRouter{Controller: ctrl}
}

func (r *AuthRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	auth := e.Group("/api/v1/auth")

	auth.POST("/signup", r.Controller.Signup)
	auth.POST("/login", r.Controller.Login)
	auth.POST("/club/login", r.Controller.ClubLogin)
	auth.POST("/logout", r.Controller.Logout, mw.AuthMiddleware())
	auth.GET("/google", r.Controller.GoogleLogin)
	auth.GET("/google/callback", r.Controller.GoogleCallback)
}

package controller

import (
	"net/http"

	"sportsmatch-api/core/controller"
	"sportsmatch-api/core/errors"
	"sportsmatch-api/core/middleware"
	"sportsmatch-api/modules/auth/dto"
	"sportsmatch-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

type AuthController struct {
	controller.BaseController
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{
		BaseController: controller.NewBaseController(),
		AuthService:    authService,
	}
}

func (ctrl *AuthController) Signup(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.SignupRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "invalid request data")
	}
	if err := c.Validate(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid request data", err.Error())
	}

	resp, appErr := ctrl.AuthService.Signup(ctx, requestData)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.CreatedResponse(c, resp, "signup success")
}

func (ctrl *AuthController) Login(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.LoginRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "invalid request data")
	}
	if err := c.Validate(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid request data", err.Error())
	}

	resp, appErr := ctrl.AuthService.Login(ctx, requestData)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, resp, "login success")
}

func (ctrl *AuthController) ClubLogin(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.LoginRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "invalid request data")
	}
	if err := c.Validate(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid request data", err.Error())
	}

	resp, appErr := ctrl.AuthService.ClubLogin(ctx, requestData)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, resp, "login success")
}

func (ctrl *AuthController) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	token, _ := c.Get(middleware.ContextKeyToken).(string)
	if token == "" {
		return ctrl.Unauthorized(errors.ErrMissingAuthorizationHeader, "missing token")
	}

	if appErr := ctrl.AuthService.Logout(ctx, token); appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, nil, "logout success")
}

func (ctrl *AuthController) GoogleLogin(c echo.Context) error {
	ctx := c.Request().Context()

	resp, appErr := ctrl.AuthService.GoogleLoginURL(ctx)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return c.Redirect(http.StatusTemporaryRedirect, resp.URL)
}

func (ctrl *AuthController) GoogleCallback(c echo.Context) error {
	ctx := c.Request().Context()

	state := c.QueryParam("state")
	code := c.QueryParam("code")
	if state == "" || code == "" {
		return ctrl.BadRequest(errors.ErrInvalidInput, "missing state or code")
	}

	resp, appErr := ctrl.AuthService.GoogleCallback(ctx, state, code)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, resp, "login success")
}

package auth

import (
	"sportsmatch-api/core/cache"
	"sportsmatch-api/core/config"
	"sportsmatch-api/core/database"
	"sportsmatch-api/core/middleware"
	"sportsmatch-api/modules/auth/controller"
	"sportsmatch-api/modules/auth/repository"
	"sportsmatch-api/modules/auth/router"
	"sportsmatch-api/modules/auth/service"
	clubrepo "sportsmatch-api/modules/club/repository"
	userrepo "sportsmatch-api/modules/user/repository"

	"github.com/labstack/echo/v4"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// NewService wires the auth service; the server needs it before any
// router registration because the middlewares depend on it.
func NewService(db database.IDatabase, c cache.Cache, googleCfg config.GoogleOAuthConfig) (*service.AuthService, repository.AuthRepositoryInterface) {
	repo := repository.NewAuthRepository(db)
	userRepo := userrepo.NewUserRepository(db)
	clubRepo := clubrepo.NewClubRepository(db)

	oauth := &oauth2.Config{
		ClientID:     googleCfg.ClientID,
		ClientSecret: googleCfg.ClientSecret,
		RedirectURL:  googleCfg.RedirectURI,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}

	return service.NewAuthService(db, repo, userRepo, clubRepo, c, oauth), repo
}

func Init(e *echo.Echo, svc *service.AuthService, mw *middleware.Middleware) {
	ctrl := controller.NewAuthController(svc)
	router.NewAuthRouter(ctrl).Setup(e, mw)
}

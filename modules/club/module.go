package club

import (
	"sportsmatch-api/core/database"
	"sportsmatch-api/core/middleware"
	authrepo "sportsmatch-api/modules/auth/repository"
	"sportsmatch-api/modules/club/controller"
	"sportsmatch-api/modules/club/repository"
	"sportsmatch-api/modules/club/router"
	"sportsmatch-api/modules/club/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, authRepo authrepo.AuthRepositoryInterface, mw *middleware.Middleware) (*service.ClubService, repository.ClubRepositoryInterface) {
	repo := repository.NewClubRepository(db)
	svc := service.NewClubService(db, repo, authRepo)

	ctrl := controller.NewClubController(svc)
	router.NewClubRouter(ctrl).Setup(e, mw)
	return svc, repo
}

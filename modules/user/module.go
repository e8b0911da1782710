package user

import (
	"sportsmatch-api/core/database"
	"sportsmatch-api/core/middleware"
	"sportsmatch-api/core/storage"
	"sportsmatch-api/modules/user/controller"
	"sportsmatch-api/modules/user/repository"
	"sportsmatch-api/modules/user/router"
	"sportsmatch-api/modules/user/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, store storage.Storage, mw *middleware.Middleware) (*service.UserService, repository.UserRepositoryInterface) {
	repo := repository.NewUserRepository(db)
	svc := service.NewUserService(repo, store)

	ctrl := controller.NewUserController(svc)
	router.NewUserRouter(ctrl).Setup(e, mw)
	return svc, repo
}

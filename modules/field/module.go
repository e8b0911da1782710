package field

import (
	"sportsmatch-api/core/database"
	"sportsmatch-api/core/middleware"
	"sportsmatch-api/modules/field/controller"
	"sportsmatch-api/modules/field/repository"
	"sportsmatch-api/modules/field/router"
	"sportsmatch-api/modules/field/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) (*service.FieldService, repository.FieldRepositoryInterface) {
	repo := repository.NewFieldRepository(db)
	svc := service.NewFieldService(repo)

	ctrl := controller.NewFieldController(svc)
	router.NewFieldRouter(ctrl).Setup(e, mw)
	return svc, repo
}

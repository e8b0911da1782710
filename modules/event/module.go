package event

import (
	"sportsmatch-api/core/cache"
	"sportsmatch-api/core/database"
	"sportsmatch-api/core/middleware"
	clubrepo "sportsmatch-api/modules/club/repository"
	"sportsmatch-api/modules/event/controller"
	"sportsmatch-api/modules/event/repository"
	"sportsmatch-api/modules/event/router"
	"sportsmatch-api/modules/event/service"
	userrepo "sportsmatch-api/modules/user/repository"

	"github.com/labstack/echo/v4"
)

func Init(
	e *echo.Echo,
	db database.IDatabase,
	c cache.Cache,
	userRepo userrepo.UserRepositoryInterface,
	clubRepo clubrepo.ClubRepositoryInterface,
	mw *middleware.Middleware,
) (*service.EventService, repository.EventRepositoryInterface) {
	repo := repository.NewEventRepository(db)
	svc := service.NewEventService(repo, userRepo, clubRepo, c)

	ctrl := controller.NewEventController(svc)
	router.NewEventRouter(ctrl).Setup(e, mw)
	return svc, repo
}

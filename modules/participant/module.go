package participant

import (
	"sportsmatch-api/core/cache"
	"sportsmatch-api/core/database"
	"sportsmatch-api/core/middleware"
	eventrepo "sportsmatch-api/modules/event/repository"
	"sportsmatch-api/modules/participant/controller"
	"sportsmatch-api/modules/participant/repository"
	"sportsmatch-api/modules/participant/router"
	"sportsmatch-api/modules/participant/service"

	"github.com/labstack/echo/v4"
)

func Init(
	e *echo.Echo,
	db database.IDatabase,
	c cache.Cache,
	eventRepo eventrepo.EventRepositoryInterface,
	mw *middleware.Middleware,
) *service.ParticipantService {
	repo := repository.NewParticipantRepository(db)
	svc := service.NewParticipantService(db, repo, eventRepo, c)

	ctrl := controller.NewParticipantController(svc)
	router.NewParticipantRouter(ctrl).Setup(e, mw)
	return svc
}

package reservation

import (
	"sportsmatch-api/core/database"
	"sportsmatch-api/core/middleware"
	"sportsmatch-api/core/worker"
	eventrepo "sportsmatch-api/modules/event/repository"
	fieldrepo "sportsmatch-api/modules/field/repository"
	"sportsmatch-api/modules/reservation/controller"
	"sportsmatch-api/modules/reservation/repository"
	"sportsmatch-api/modules/reservation/router"
	"sportsmatch-api/modules/reservation/service"

	"github.com/labstack/echo/v4"
)

func Init(
	e *echo.Echo,
	db database.IDatabase,
	fieldRepo fieldrepo.FieldRepositoryInterface,
	eventRepo eventrepo.EventRepositoryInterface,
	tasks worker.Enqueuer,
	mw *middleware.Middleware,
) *service.ReservationService {
	repo := repository.NewReservationRepository(db)
	svc := service.NewReservationService(db, repo, fieldRepo, eventRepo, tasks)

	ctrl := controller.NewReservationController(svc)
	router.NewReservationRouter(ctrl).Setup(e, mw)
	return svc
}

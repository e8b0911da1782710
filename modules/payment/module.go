package payment

import (
	"sportsmatch-api/core/database"
	"sportsmatch-api/core/middleware"
	"sportsmatch-api/core/worker"
	"sportsmatch-api/modules/payment/controller"
	"sportsmatch-api/modules/payment/repository"
	"sportsmatch-api/modules/payment/router"
	"sportsmatch-api/modules/payment/service"

	"github.com/labstack/echo/v4"
)

func Init(
	e *echo.Echo,
	db database.IDatabase,
	reservations service.ReservationFlow,
	tasks worker.Enqueuer,
	mw *middleware.Middleware,
) *service.PaymentService {
	repo := repository.NewPaymentRepository(db)
	svc := service.NewPaymentService(repo, reservations, tasks)

	ctrl := controller.NewPaymentController(svc)
	router.NewPaymentRouter(ctrl).Setup(e, mw)
	return svc
}

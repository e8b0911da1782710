package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sportsmatch-api/core/cache"
	"sportsmatch-api/core/config"
	"sportsmatch-api/core/database"
	"sportsmatch-api/core/logger"
	"sportsmatch-api/core/middleware"
	"sportsmatch-api/core/storage"
	"sportsmatch-api/core/worker"
	"sportsmatch-api/modules/auth"
	"sportsmatch-api/modules/club"
	"sportsmatch-api/modules/event"
	"sportsmatch-api/modules/field"
	"sportsmatch-api/modules/participant"
	"sportsmatch-api/modules/payment"
	"sportsmatch-api/modules/reservation"
	"sportsmatch-api/modules/user"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Run builds every dependency once, wires the modules in order and
// serves until SIGINT/SIGTERM.
func Run() error {
	cfg := config.Load()
	logger.Init(cfg.Server.LogLevel)

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return err
	}

	redisCache, err := cache.NewCache(cfg.Redis)
	if err != nil {
		return err
	}
	defer redisCache.Close()

	store := storage.NewS3Storage(cfg.AWS)

	tasks := worker.NewClient(cfg.Redis)
	defer tasks.Close()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			logger.Info("Server:Request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
			)
			return nil
		},
	}))
	e.Validator = middleware.NewRequestValidator()

	// Auth comes first: the middlewares verify tokens through it.
	authSvc, authRepo := auth.NewService(&db, redisCache, cfg.Google)
	mw := middleware.NewMiddleware(authSvc)
	auth.Init(e, authSvc, mw)

	_, userRepo := user.Init(e, &db, store, mw)
	_, clubRepo := club.Init(e, &db, authRepo, mw)
	_, fieldRepo := field.Init(e, &db, mw)
	_, eventRepo := event.Init(e, &db, redisCache, userRepo, clubRepo, mw)
	participant.Init(e, &db, redisCache, eventRepo, mw)
	reservationSvc := reservation.Init(e, &db, fieldRepo, eventRepo, tasks, mw)
	paymentSvc := payment.Init(e, &db, reservationSvc, tasks, mw)

	w := worker.NewWorker(cfg.Redis, paymentSvc, reservationSvc, authSvc)
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Shutdown()

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server:Start", err)
		}
	}()
	logger.Info("Server:Run", "port", cfg.Server.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server:Shutdown")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(ctx)
}

package worker

import (
	"context"
	"encoding/json"

	"sportsmatch-api/core/config"
	"sportsmatch-api/core/constants"
	"sportsmatch-api/core/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Enqueuer is the client-side surface services depend on, satisfied by
// *asynq.Client.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// PaymentCapturer is implemented by the payment service.
type PaymentCapturer interface {
	CapturePayment(ctx context.Context, paymentID uuid.UUID) error
}

// ReservationExpirer is implemented by the reservation service.
type ReservationExpirer interface {
	ExpireReservation(ctx context.Context, reservationID uuid.UUID) error
}

// OAuthStateCleaner is implemented by the auth service.
type OAuthStateCleaner interface {
	CleanupExpiredOAuthStates(ctx context.Context) error
}

type Worker struct {
	server    *asynq.Server
	mux       *asynq.ServeMux
	scheduler *asynq.Scheduler
}

func RedisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}
}

func NewClient(cfg config.RedisConfig) *asynq.Client {
	return asynq.NewClient(RedisOpt(cfg))
}

func NewWorker(cfg config.RedisConfig, payments PaymentCapturer, reservations ReservationExpirer, auths OAuthStateCleaner) *Worker {
	server := asynq.NewServer(RedisOpt(cfg), asynq.Config{
		Concurrency: 10,
		Queues: map[string]int{
			constants.QueueCritical: 6,
			constants.QueueDefault:  4,
		},
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypePaymentCapture, func(ctx context.Context, t *asynq.Task) error {
		var p PaymentCapturePayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return err
		}
		return payments.CapturePayment(ctx, p.PaymentID)
	})
	mux.HandleFunc(TypeReservationExpire, func(ctx context.Context, t *asynq.Task) error {
		var p ReservationExpirePayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return err
		}
		return reservations.ExpireReservation(ctx, p.ReservationID)
	})
	mux.HandleFunc(TypeOAuthStateCleanup, func(ctx context.Context, t *asynq.Task) error {
		return auths.CleanupExpiredOAuthStates(ctx)
	})

	scheduler := asynq.NewScheduler(RedisOpt(cfg), nil)
	if _, err := scheduler.Register("@every 1h", NewOAuthStateCleanupTask()); err != nil {
		logger.Error("Worker:RegisterOAuthStateCleanup", err)
	}

	return &Worker{server: server, mux: mux, scheduler: scheduler}
}

// Start runs the task server and the periodic scheduler on their own
// goroutines.
func (w *Worker) Start() error {
	logger.Info("Worker:Start")
	if err := w.scheduler.Start(); err != nil {
		return err
	}
	return w.server.Start(w.mux)
}

func (w *Worker) Shutdown() {
	w.scheduler.Shutdown()
	w.server.Shutdown()
}

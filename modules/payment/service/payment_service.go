package service

import (
	"context"

	"sportsmatch-api/core/constants"
	"sportsmatch-api/core/errors"
	"sportsmatch-api/core/logger"
	"sportsmatch-api/core/utils"
	"sportsmatch-api/core/worker"
	"sportsmatch-api/modules/payment/dto"
	"sportsmatch-api/modules/payment/entity"
	"sportsmatch-api/modules/payment/mapper"
	"sportsmatch-api/modules/payment/repository"
	reservationdto "sportsmatch-api/modules/reservation/dto"
	reservationentity "sportsmatch-api/modules/reservation/entity"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// ReservationFlow is the slice of the reservation service payments
// drive: confirm on capture, cancel on refund.
type ReservationFlow interface {
	GetReservationByID(ctx context.Context, id uuid.UUID) (*reservationdto.ReservationDetailResponse, *errors.AppError)
	ConfirmReservation(ctx context.Context, id uuid.UUID) *errors.AppError
	CancelReservation(ctx context.Context, id uuid.UUID) *errors.AppError
}

type PaymentService struct {
	repo         repository.PaymentRepositoryInterface
	reservations ReservationFlow
	tasks        worker.Enqueuer
}

func NewPaymentService(repo repository.PaymentRepositoryInterface, reservations ReservationFlow, tasks worker.Enqueuer) *PaymentService {
	return &PaymentService{repo: repo, reservations: reservations, tasks: tasks}
}

// ProcessPayment opens a pending payment for a pending reservation and
// hands capture to the task queue. The amount is taken from the
// reservation, never from the request.
func (s *PaymentService) ProcessPayment(ctx context.Context, reservationID uuid.UUID) (*dto.PaymentResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	reservation, appErr := s.reservations.GetReservationByID(ctx, reservationID)
	if appErr != nil {
		return nil, appErr
	}
	if reservation.Status != string(reservationentity.ReservationStatusPending) {
		return nil, errors.NewAppError(errors.ErrConflict, "reservation is not awaiting payment", nil)
	}

	existing, err := s.repo.GetPaymentByReservation(ctx, reservationID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get payment failed", err)
	}
	if existing != nil && existing.Status != entity.PaymentStatusFailed {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "payment already in progress", nil)
	}

	payment := &entity.Payment{
		ID:            uuid.New(),
		ReservationID: reservationID,
		Amount:        reservation.Cost,
		Status:        entity.PaymentStatusPending,
		ExternalRef:   utils.GenerateID(),
	}

	created, err := s.repo.CreatePayment(ctx, payment)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create payment failed", err)
	}

	s.scheduleCapture(ctx, created.ID)
	return mapper.ToPaymentResponse(created), nil
}

// CapturePayment runs from the task queue. The simulated gateway
// always clears; the payment completes and the reservation is
// confirmed. A reservation that expired in the meantime fails the
// payment instead.
func (s *PaymentService) CapturePayment(ctx context.Context, paymentID uuid.UUID) error {
	payment, err := s.repo.GetPaymentByID(ctx, paymentID)
	if err != nil {
		return err
	}
	if payment == nil || payment.Status != entity.PaymentStatusPending {
		return nil
	}

	if appErr := s.reservations.ConfirmReservation(ctx, payment.ReservationID); appErr != nil {
		logger.Warn("PaymentService:CapturePayment:confirm", "payment_id", paymentID.String(), "error", appErr.Error())
		_, err := s.repo.UpdateStatus(ctx, paymentID, entity.PaymentStatusPending, entity.PaymentStatusFailed)
		return err
	}

	moved, err := s.repo.UpdateStatus(ctx, paymentID, entity.PaymentStatusPending, entity.PaymentStatusCompleted)
	if err != nil {
		return err
	}
	if moved {
		logger.Info("PaymentService:CapturePayment", "payment_id", paymentID.String())
	}
	return nil
}

// Refund reverses a completed payment and cancels the reservation.
func (s *PaymentService) Refund(ctx context.Context, paymentID uuid.UUID) (*dto.PaymentResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	payment, err := s.repo.GetPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get payment failed", err)
	}
	if payment == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "payment not found", nil)
	}
	if payment.Status != entity.PaymentStatusCompleted {
		return nil, errors.NewAppError(errors.ErrConflict, "only completed payments can be refunded", nil)
	}

	if appErr := s.reservations.CancelReservation(ctx, payment.ReservationID); appErr != nil {
		return nil, appErr
	}

	moved, err := s.repo.UpdateStatus(ctx, paymentID, entity.PaymentStatusCompleted, entity.PaymentStatusRefunded)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "refund payment failed", err)
	}
	if !moved {
		return nil, errors.NewAppError(errors.ErrConflict, "payment state changed concurrently", nil)
	}

	payment.Status = entity.PaymentStatusRefunded
	return mapper.ToPaymentResponse(payment), nil
}

func (s *PaymentService) GetPaymentByReservation(ctx context.Context, reservationID uuid.UUID) (*dto.PaymentResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	payment, err := s.repo.GetPaymentByReservation(ctx, reservationID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get payment failed", err)
	}
	if payment == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "payment not found", nil)
	}
	return mapper.ToPaymentResponse(payment), nil
}

// GetPaymentStatus is the club-facing view: just the state, no
// amounts or references.
func (s *PaymentService) GetPaymentStatus(ctx context.Context, reservationID uuid.UUID) (*dto.PaymentStatusResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	payment, err := s.repo.GetPaymentByReservation(ctx, reservationID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get payment failed", err)
	}
	if payment == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "payment not found", nil)
	}
	return &dto.PaymentStatusResponse{
		ReservationID: reservationID,
		Status:        string(payment.Status),
	}, nil
}

func (s *PaymentService) scheduleCapture(ctx context.Context, paymentID uuid.UUID) {
	task, err := worker.NewPaymentCaptureTask(paymentID)
	if err != nil {
		logger.Error("PaymentService:scheduleCapture", err)
		return
	}
	_, err = s.tasks.EnqueueContext(ctx, task, asynq.Queue(constants.QueueCritical))
	if err != nil {
		logger.Error("PaymentService:scheduleCapture", err)
	}
}

package service

import (
	"context"
	"testing"

	"sportsmatch-api/core/errors"
	"sportsmatch-api/modules/payment/entity"
	reservationdto "sportsmatch-api/modules/reservation/dto"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockPaymentRepo struct {
	payments map[uuid.UUID]*entity.Payment
}

func (m *mockPaymentRepo) CreatePayment(ctx context.Context, p *entity.Payment) (*entity.Payment, error) {
	m.payments[p.ID] = p
	return p, nil
}

func (m *mockPaymentRepo) GetPaymentByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	return m.payments[id], nil
}

func (m *mockPaymentRepo) GetPaymentByReservation(ctx context.Context, reservationID uuid.UUID) (*entity.Payment, error) {
	for _, p := range m.payments {
		if p.ReservationID == reservationID {
			return p, nil
		}
	}
	return nil, nil
}

func (m *mockPaymentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.PaymentStatus) (bool, error) {
	p, ok := m.payments[id]
	if !ok || p.Status != from {
		return false, nil
	}
	p.Status = to
	return true, nil
}

type mockReservations struct {
	reservations map[uuid.UUID]*reservationdto.ReservationDetailResponse
	confirmErr   *errors.AppError
	confirmed    []uuid.UUID
	cancelled    []uuid.UUID
}

func (m *mockReservations) GetReservationByID(ctx context.Context, id uuid.UUID) (*reservationdto.ReservationDetailResponse, *errors.AppError) {
	r, ok := m.reservations[id]
	if !ok {
		return nil, errors.NewAppError(errors.ErrNotFound, "reservation not found", nil)
	}
	return r, nil
}

func (m *mockReservations) ConfirmReservation(ctx context.Context, id uuid.UUID) *errors.AppError {
	if m.confirmErr != nil {
		return m.confirmErr
	}
	m.confirmed = append(m.confirmed, id)
	return nil
}

func (m *mockReservations) CancelReservation(ctx context.Context, id uuid.UUID) *errors.AppError {
	m.cancelled = append(m.cancelled, id)
	return nil
}

type mockEnqueuer struct {
	tasks []*asynq.Task
}

func (m *mockEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	m.tasks = append(m.tasks, task)
	return &asynq.TaskInfo{}, nil
}

func pendingReservation(cost float64) (uuid.UUID, *mockReservations) {
	id := uuid.New()
	return id, &mockReservations{reservations: map[uuid.UUID]*reservationdto.ReservationDetailResponse{
		id: {ReservationResponse: reservationdto.ReservationResponse{ID: id, Cost: cost, Status: "pending"}},
	}}
}

func TestProcessPaymentCreatesPendingAndEnqueues(t *testing.T) {
	reservationID, reservations := pendingReservation(150)
	repo := &mockPaymentRepo{payments: map[uuid.UUID]*entity.Payment{}}
	queue := &mockEnqueuer{}
	svc := NewPaymentService(repo, reservations, queue)

	resp, appErr := svc.ProcessPayment(context.Background(), reservationID)

	require.Nil(t, appErr)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, 150.0, resp.Amount, "amount comes from the reservation")
	assert.NotEmpty(t, resp.ExternalRef)
	require.Len(t, queue.tasks, 1)
}

func TestProcessPaymentRejectsConfirmedReservation(t *testing.T) {
	reservationID, reservations := pendingReservation(150)
	reservations.reservations[reservationID].Status = "confirmed"
	svc := NewPaymentService(&mockPaymentRepo{payments: map[uuid.UUID]*entity.Payment{}}, reservations, &mockEnqueuer{})

	_, appErr := svc.ProcessPayment(context.Background(), reservationID)

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrConflict, appErr.Code)
}

func TestProcessPaymentRejectsDuplicate(t *testing.T) {
	reservationID, reservations := pendingReservation(150)
	repo := &mockPaymentRepo{payments: map[uuid.UUID]*entity.Payment{}}
	svc := NewPaymentService(repo, reservations, &mockEnqueuer{})

	_, appErr := svc.ProcessPayment(context.Background(), reservationID)
	require.Nil(t, appErr)

	_, appErr = svc.ProcessPayment(context.Background(), reservationID)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrAlreadyExists, appErr.Code)
}

func TestProcessPaymentRetriesAfterFailure(t *testing.T) {
	reservationID, reservations := pendingReservation(150)
	repo := &mockPaymentRepo{payments: map[uuid.UUID]*entity.Payment{}}
	failed := &entity.Payment{ID: uuid.New(), ReservationID: reservationID, Status: entity.PaymentStatusFailed}
	repo.payments[failed.ID] = failed
	svc := NewPaymentService(repo, reservations, &mockEnqueuer{})

	resp, appErr := svc.ProcessPayment(context.Background(), reservationID)

	require.Nil(t, appErr)
	assert.Equal(t, "pending", resp.Status)
}

func TestCapturePaymentConfirmsReservation(t *testing.T) {
	reservationID, reservations := pendingReservation(150)
	payment := &entity.Payment{ID: uuid.New(), ReservationID: reservationID, Status: entity.PaymentStatusPending}
	repo := &mockPaymentRepo{payments: map[uuid.UUID]*entity.Payment{payment.ID: payment}}
	svc := NewPaymentService(repo, reservations, &mockEnqueuer{})

	require.NoError(t, svc.CapturePayment(context.Background(), payment.ID))
	assert.Equal(t, entity.PaymentStatusCompleted, payment.Status)
	assert.Equal(t, []uuid.UUID{reservationID}, reservations.confirmed)
}

func TestCapturePaymentFailsWhenReservationGone(t *testing.T) {
	reservationID, reservations := pendingReservation(150)
	reservations.confirmErr = errors.NewAppError(errors.ErrConflict, "illegal status transition", nil)
	payment := &entity.Payment{ID: uuid.New(), ReservationID: reservationID, Status: entity.PaymentStatusPending}
	repo := &mockPaymentRepo{payments: map[uuid.UUID]*entity.Payment{payment.ID: payment}}
	svc := NewPaymentService(repo, reservations, &mockEnqueuer{})

	require.NoError(t, svc.CapturePayment(context.Background(), payment.ID))
	assert.Equal(t, entity.PaymentStatusFailed, payment.Status)
	assert.Empty(t, reservations.confirmed)
}

func TestCapturePaymentIdempotent(t *testing.T) {
	reservationID, reservations := pendingReservation(150)
	payment := &entity.Payment{ID: uuid.New(), ReservationID: reservationID, Status: entity.PaymentStatusCompleted}
	repo := &mockPaymentRepo{payments: map[uuid.UUID]*entity.Payment{payment.ID: payment}}
	svc := NewPaymentService(repo, reservations, &mockEnqueuer{})

	require.NoError(t, svc.CapturePayment(context.Background(), payment.ID))
	assert.Empty(t, reservations.confirmed, "a completed payment must not confirm again")
}

func TestRefundOnlyCompletedPayments(t *testing.T) {
	reservationID, reservations := pendingReservation(150)
	payment := &entity.Payment{ID: uuid.New(), ReservationID: reservationID, Status: entity.PaymentStatusPending}
	repo := &mockPaymentRepo{payments: map[uuid.UUID]*entity.Payment{payment.ID: payment}}
	svc := NewPaymentService(repo, reservations, &mockEnqueuer{})

	_, appErr := svc.Refund(context.Background(), payment.ID)

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrConflict, appErr.Code)
	assert.Empty(t, reservations.cancelled)
}

func TestRefundCancelsReservation(t *testing.T) {
	reservationID, reservations := pendingReservation(150)
	payment := &entity.Payment{ID: uuid.New(), ReservationID: reservationID, Status: entity.PaymentStatusCompleted}
	repo := &mockPaymentRepo{payments: map[uuid.UUID]*entity.Payment{payment.ID: payment}}
	svc := NewPaymentService(repo, reservations, &mockEnqueuer{})

	resp, appErr := svc.Refund(context.Background(), payment.ID)

	require.Nil(t, appErr)
	assert.Equal(t, "refunded", resp.Status)
	assert.Equal(t, []uuid.UUID{reservationID}, reservations.cancelled)
}

func TestGetPaymentStatusNotFound(t *testing.T) {
	svc := NewPaymentService(&mockPaymentRepo{payments: map[uuid.UUID]*entity.Payment{}}, &mockReservations{}, &mockEnqueuer{})

	_, appErr := svc.GetPaymentStatus(context.Background(), uuid.New())

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

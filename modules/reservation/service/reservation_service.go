package service

import (
	"context"

	"sportsmatch-api/core/constants"
	"sportsmatch-api/core/database"
	"sportsmatch-api/core/errors"
	"sportsmatch-api/core/logger"
	"sportsmatch-api/core/worker"
	eventrepo "sportsmatch-api/modules/event/repository"
	fieldentity "sportsmatch-api/modules/field/entity"
	fieldrepo "sportsmatch-api/modules/field/repository"
	"sportsmatch-api/modules/reservation/dto"
	"sportsmatch-api/modules/reservation/entity"
	"sportsmatch-api/modules/reservation/mapper"
	"sportsmatch-api/modules/reservation/repository"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
)

type ReservationService struct {
	db        database.IDatabase
	repo      repository.ReservationRepositoryInterface
	fieldRepo fieldrepo.FieldRepositoryInterface
	eventRepo eventrepo.EventRepositoryInterface
	tasks     worker.Enqueuer
}

func NewReservationService(
	db database.IDatabase,
	repo repository.ReservationRepositoryInterface,
	fieldRepo fieldrepo.FieldRepositoryInterface,
	eventRepo eventrepo.EventRepositoryInterface,
	tasks worker.Enqueuer,
) *ReservationService {
	return &ReservationService{db: db, repo: repo, fieldRepo: fieldRepo, eventRepo: eventRepo, tasks: tasks}
}

// CreateReservation books a set of slots for an event. The conflict
// query runs first for a descriptive error, but correctness does not
// depend on it: the claim inside the transaction only takes slots that
// are still free, and a short claim count rolls everything back.
func (s *ReservationService) CreateReservation(ctx context.Context, req *dto.CreateReservationRequest) (*dto.ReservationDetailResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	event, err := s.eventRepo.GetEventByID(ctx, req.EventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get event failed", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "event not found", nil)
	}

	slots, err := s.fieldRepo.GetSlotsByIDs(ctx, req.FieldID, req.SlotIDs)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get slots failed", err)
	}
	if len(slots) != len(req.SlotIDs) {
		return nil, errors.NewAppError(errors.ErrNotFound, "some slots do not exist on this field", nil)
	}
	for _, slot := range slots {
		if slot.Status != fieldentity.SlotStatusFree {
			return nil, errors.NewAppError(errors.ErrConflict, "slot is not available", nil)
		}
	}

	conflicts, err := s.repo.FindConflictingReservations(ctx, req.FieldID, req.SlotIDs)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "conflict check failed", err)
	}
	if len(conflicts) > 0 {
		return nil, errors.NewAppError(errors.ErrConflict, "slots already reserved", nil)
	}

	reservation := &entity.Reservation{
		ID:      uuid.New(),
		EventID: req.EventID,
		FieldID: req.FieldID,
		Cost:    req.Cost,
		Status:  entity.ReservationStatusPending,
	}

	txErr := s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		created, claimed, err := s.repo.CreateReservationTx(ctx, tx, reservation, req.SlotIDs)
		if err != nil {
			return err
		}
		if claimed != len(req.SlotIDs) {
			return errors.NewAppError(errors.ErrConflict, "slots were taken concurrently", nil)
		}
		reservation = created
		return nil
	})
	if txErr != nil {
		if appErr, ok := txErr.(*errors.AppError); ok {
			return nil, appErr
		}
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create reservation failed", txErr)
	}

	s.scheduleExpiry(ctx, reservation.ID)

	detail, err := s.repo.FindByID(ctx, reservation.ID)
	if err != nil || detail == nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "load reservation failed", err)
	}
	return mapper.ToReservationDetailResponse(detail), nil
}

func (s *ReservationService) GetReservationByID(ctx context.Context, id uuid.UUID) (*dto.ReservationDetailResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	detail, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get reservation failed", err)
	}
	if detail == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "reservation not found", nil)
	}
	return mapper.ToReservationDetailResponse(detail), nil
}

func (s *ReservationService) GetReservationsByEvent(ctx context.Context, eventID uuid.UUID) ([]dto.ReservationDetailResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	details, err := s.repo.FindAllByEventID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get reservations failed", err)
	}
	return mapper.ToReservationDetailResponses(details), nil
}

func (s *ReservationService) GetReservationsByClub(ctx context.Context, clubID uuid.UUID, status string) ([]dto.ReservationDetailResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if status != "" && !validStatus(entity.ReservationStatus(status)) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid reservation status", nil)
	}

	details, err := s.repo.FindByClub(ctx, clubID, entity.ReservationStatus(status))
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get reservations failed", err)
	}
	return mapper.ToReservationDetailResponses(details), nil
}

// UpdateStatus applies a club's decision. Illegal transitions are
// rejected; cancelling frees the slots in the same transaction.
func (s *ReservationService) UpdateStatus(ctx context.Context, id, clubID uuid.UUID, req *dto.UpdateReservationStatusRequest) (*dto.ReservationDetailResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	detail, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get reservation failed", err)
	}
	if detail == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "reservation not found", nil)
	}
	if detail.ClubID != clubID {
		return nil, errors.NewAppError(errors.ErrForbidden, "reservation belongs to another club", nil)
	}

	target := entity.ReservationStatus(req.Status)
	if !detail.Status.CanTransitionTo(target) {
		return nil, errors.NewAppError(errors.ErrConflict, "illegal status transition", nil)
	}

	if target == entity.ReservationStatusCancelled {
		txErr := s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
			if err := s.repo.UpdateStatus(ctx, tx, id, target); err != nil {
				return err
			}
			return s.repo.ReleaseSlotsTx(ctx, tx, id)
		})
		if txErr != nil {
			return nil, errors.NewAppError(errors.ErrUpdateFailed, "cancel reservation failed", txErr)
		}
	} else {
		if err := s.repo.UpdateStatus(ctx, nil, id, target); err != nil {
			return nil, errors.NewAppError(errors.ErrUpdateFailed, "update reservation failed", err)
		}
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil || updated == nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "load reservation failed", err)
	}
	return mapper.ToReservationDetailResponse(updated), nil
}

// ConfirmReservation is the payment-capture hook: pending becomes
// confirmed once the payment clears.
func (s *ReservationService) ConfirmReservation(ctx context.Context, id uuid.UUID) *errors.AppError {
	return s.transition(ctx, id, entity.ReservationStatusConfirmed)
}

// CancelReservation backs refunds; slots go back to the pool.
func (s *ReservationService) CancelReservation(ctx context.Context, id uuid.UUID) *errors.AppError {
	detail, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrGetFailed, "get reservation failed", err)
	}
	if detail == nil {
		return errors.NewAppError(errors.ErrNotFound, "reservation not found", nil)
	}
	if !detail.Status.CanTransitionTo(entity.ReservationStatusCancelled) {
		return errors.NewAppError(errors.ErrConflict, "illegal status transition", nil)
	}

	txErr := s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.UpdateStatus(ctx, tx, id, entity.ReservationStatusCancelled); err != nil {
			return err
		}
		return s.repo.ReleaseSlotsTx(ctx, tx, id)
	})
	if txErr != nil {
		return errors.NewAppError(errors.ErrUpdateFailed, "cancel reservation failed", txErr)
	}
	return nil
}

// DeleteReservation removes the row and frees its slots atomically.
func (s *ReservationService) DeleteReservation(ctx context.Context, id uuid.UUID) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	detail, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrGetFailed, "get reservation failed", err)
	}
	if detail == nil {
		return errors.NewAppError(errors.ErrNotFound, "reservation not found", nil)
	}

	txErr := s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.ReleaseSlotsTx(ctx, tx, id); err != nil {
			return err
		}
		return s.repo.DeleteReservationTx(ctx, tx, id)
	})
	if txErr != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "delete reservation failed", txErr)
	}
	return nil
}

// ExpireReservation runs from the task queue once the hold TTL lapses.
// Anything no longer pending has been paid or handled and is left
// alone.
func (s *ReservationService) ExpireReservation(ctx context.Context, reservationID uuid.UUID) error {
	detail, err := s.repo.FindByID(ctx, reservationID)
	if err != nil {
		return err
	}
	if detail == nil || detail.Status != entity.ReservationStatusPending {
		return nil
	}

	logger.Info("ReservationService:ExpireReservation", "reservation_id", reservationID.String())
	return s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.UpdateStatus(ctx, tx, reservationID, entity.ReservationStatusCancelled); err != nil {
			return err
		}
		return s.repo.ReleaseSlotsTx(ctx, tx, reservationID)
	})
}

func (s *ReservationService) transition(ctx context.Context, id uuid.UUID, target entity.ReservationStatus) *errors.AppError {
	detail, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrGetFailed, "get reservation failed", err)
	}
	if detail == nil {
		return errors.NewAppError(errors.ErrNotFound, "reservation not found", nil)
	}
	if !detail.Status.CanTransitionTo(target) {
		return errors.NewAppError(errors.ErrConflict, "illegal status transition", nil)
	}

	if err := s.repo.UpdateStatus(ctx, nil, id, target); err != nil {
		return errors.NewAppError(errors.ErrUpdateFailed, "update reservation failed", err)
	}
	return nil
}

// scheduleExpiry enqueues the auto-cancel task. Failure to enqueue is
// logged, not surfaced; the reservation itself already committed.
func (s *ReservationService) scheduleExpiry(ctx context.Context, reservationID uuid.UUID) {
	task, err := worker.NewReservationExpireTask(reservationID)
	if err != nil {
		logger.Error("ReservationService:scheduleExpiry", err)
		return
	}
	_, err = s.tasks.EnqueueContext(ctx, task,
		asynq.ProcessIn(constants.ReservationHoldTTL),
		asynq.Queue(constants.QueueDefault),
	)
	if err != nil {
		logger.Error("ReservationService:scheduleExpiry", err)
	}
}

func validStatus(status entity.ReservationStatus) bool {
	switch status {
	case entity.ReservationStatusPending, entity.ReservationStatusConfirmed,
		entity.ReservationStatusCompleted, entity.ReservationStatusCancelled:
		return true
	}
	return false
}

package service

import (
	"context"

	"sportsmatch-api/core/cache"
	"sportsmatch-api/core/constants"
	"sportsmatch-api/core/database"
	"sportsmatch-api/core/errors"
	"sportsmatch-api/core/logger"
	evententity "sportsmatch-api/modules/event/entity"
	eventrepo "sportsmatch-api/modules/event/repository"
	"sportsmatch-api/modules/participant/dto"
	"sportsmatch-api/modules/participant/entity"
	"sportsmatch-api/modules/participant/mapper"
	"sportsmatch-api/modules/participant/repository"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type ParticipantService struct {
	db        database.IDatabase
	repo      repository.ParticipantRepositoryInterface
	eventRepo eventrepo.EventRepositoryInterface
	cache     cache.Cache
}

func NewParticipantService(
	db database.IDatabase,
	repo repository.ParticipantRepositoryInterface,
	eventRepo eventrepo.EventRepositoryInterface,
	c cache.Cache,
) *ParticipantService {
	return &ParticipantService{db: db, repo: repo, eventRepo: eventRepo, cache: c}
}

// Join creates a pending request. The seat is taken only when the owner
// accepts, so joining checks capacity but does not consume it.
func (s *ParticipantService) Join(ctx context.Context, eventID, userID uuid.UUID) (*dto.ParticipantResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	event, appErr := s.getJoinableEvent(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}
	if event.Remaining <= 0 {
		return nil, errors.NewAppError(errors.ErrConflict, "event is full", nil)
	}

	participant := &entity.Participant{
		ID:      uuid.New(),
		EventID: eventID,
		UserID:  userID,
		Status:  entity.ParticipantStatusPending,
	}

	created, err := s.repo.CreateParticipant(ctx, participant)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, errors.NewAppError(errors.ErrAlreadyExists, "already joined this event", err)
		}
		return nil, errors.NewAppError(errors.ErrCreateFailed, "join event failed", err)
	}
	return mapper.ToParticipantResponse(created), nil
}

func (s *ParticipantService) GetParticipants(ctx context.Context, eventID uuid.UUID) ([]dto.ParticipantDetailResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	event, err := s.eventRepo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get event failed", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "event not found", nil)
	}

	participants, err := s.repo.GetParticipants(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get participants failed", err)
	}
	return mapper.ToParticipantDetailResponses(participants), nil
}

// Decide accepts or rejects a pending participant. Only the event
// owner decides; accepting consumes one seat atomically with the
// status change.
func (s *ParticipantService) Decide(ctx context.Context, eventID, participantID, authID uuid.UUID, authType string, req *dto.UpdateParticipantRequest) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	event, participant, appErr := s.getEventParticipant(ctx, eventID, participantID)
	if appErr != nil {
		return appErr
	}
	if string(event.OrganizerType) != authType || event.OwnerID != authID {
		return errors.NewAppError(errors.ErrForbidden, "not the event owner", nil)
	}

	target := entity.ParticipantStatus(req.Status)
	err := s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		moved, err := s.repo.UpdateStatusTx(ctx, tx, participant.ID, entity.ParticipantStatusPending, target)
		if err != nil {
			return err
		}
		if !moved {
			return errors.NewAppError(errors.ErrConflict, "participant already decided", nil)
		}

		if target == entity.ParticipantStatusAccepted {
			taken, err := s.eventRepo.DecrementRemainingTx(ctx, tx, event.ID)
			if err != nil {
				return err
			}
			if !taken {
				return errors.NewAppError(errors.ErrConflict, "event is full", nil)
			}
		}
		return nil
	})
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok {
			return appErr
		}
		return errors.NewAppError(errors.ErrUpdateFailed, "update participant failed", err)
	}

	s.invalidateDetail(ctx, event.ID)
	return nil
}

// Leave removes a participant. The participant themselves or the event
// owner may do it; an accepted seat is handed back in the same tx.
func (s *ParticipantService) Leave(ctx context.Context, eventID, participantID, authID uuid.UUID, authType string) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	event, participant, appErr := s.getEventParticipant(ctx, eventID, participantID)
	if appErr != nil {
		return appErr
	}

	isSelf := authType == constants.TokenTypeUser && participant.UserID == authID
	isOwner := string(event.OrganizerType) == authType && event.OwnerID == authID
	if !isSelf && !isOwner {
		return errors.NewAppError(errors.ErrForbidden, "cannot remove this participant", nil)
	}

	err := s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.DeleteParticipantTx(ctx, tx, participant.ID); err != nil {
			return err
		}
		if participant.Status == entity.ParticipantStatusAccepted {
			return s.eventRepo.IncrementRemainingTx(ctx, tx, event.ID)
		}
		return nil
	})
	if err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "remove participant failed", err)
	}

	s.invalidateDetail(ctx, event.ID)
	return nil
}

func (s *ParticipantService) getJoinableEvent(ctx context.Context, eventID uuid.UUID) (*evententity.Event, *errors.AppError) {
	event, err := s.eventRepo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get event failed", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "event not found", nil)
	}
	if event.Status != evententity.EventStatusPending {
		return nil, errors.NewAppError(errors.ErrConflict, "event is not open for joining", nil)
	}
	return event, nil
}

func (s *ParticipantService) getEventParticipant(ctx context.Context, eventID, participantID uuid.UUID) (*evententity.Event, *entity.Participant, *errors.AppError) {
	event, err := s.eventRepo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, nil, errors.NewAppError(errors.ErrGetFailed, "get event failed", err)
	}
	if event == nil {
		return nil, nil, errors.NewAppError(errors.ErrNotFound, "event not found", nil)
	}

	participant, err := s.repo.GetParticipantByID(ctx, participantID)
	if err != nil {
		return nil, nil, errors.NewAppError(errors.ErrGetFailed, "get participant failed", err)
	}
	if participant == nil || participant.EventID != eventID {
		return nil, nil, errors.NewAppError(errors.ErrNotFound, "participant not found", nil)
	}
	return event, participant, nil
}

func (s *ParticipantService) invalidateDetail(ctx context.Context, eventID uuid.UUID) {
	if err := s.cache.InvalidateEventDetail(ctx, eventID.String()); err != nil {
		logger.Warn("ParticipantService:invalidateDetail", "error", err.Error())
	}
}

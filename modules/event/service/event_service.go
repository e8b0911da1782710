package service

import (
	"context"
	"encoding/json"

	"sportsmatch-api/core/cache"
	"sportsmatch-api/core/constants"
	"sportsmatch-api/core/errors"
	"sportsmatch-api/core/logger"
	clubrepo "sportsmatch-api/modules/club/repository"
	"sportsmatch-api/modules/event/dto"
	"sportsmatch-api/modules/event/entity"
	"sportsmatch-api/modules/event/mapper"
	"sportsmatch-api/modules/event/repository"
	userrepo "sportsmatch-api/modules/user/repository"

	"github.com/google/uuid"
)

type EventService struct {
	repo     repository.EventRepositoryInterface
	userRepo userrepo.UserRepositoryInterface
	clubRepo clubrepo.ClubRepositoryInterface
	cache    cache.Cache
}

func NewEventService(
	repo repository.EventRepositoryInterface,
	userRepo userrepo.UserRepositoryInterface,
	clubRepo clubrepo.ClubRepositoryInterface,
	c cache.Cache,
) *EventService {
	return &EventService{repo: repo, userRepo: userRepo, clubRepo: clubRepo, cache: c}
}

// CreateEvent requires the declared owner to exist before the event is
// persisted.
func (s *EventService) CreateEvent(ctx context.Context, ownerID uuid.UUID, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	switch entity.OrganizerType(req.OrganizerType) {
	case entity.OrganizerTypeUser:
		user, err := s.userRepo.GetUserByID(ctx, ownerID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrGetFailed, "get owner failed", err)
		}
		if user == nil {
			return nil, errors.NewAppError(errors.ErrNotFound, "user owner not found", nil)
		}
	case entity.OrganizerTypeClub:
		club, err := s.clubRepo.GetClubByID(ctx, ownerID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrGetFailed, "get owner failed", err)
		}
		if club == nil {
			return nil, errors.NewAppError(errors.ErrNotFound, "club owner not found", nil)
		}
	default:
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid organizer type", nil)
	}

	event := &entity.Event{
		ID:            uuid.New(),
		Description:   req.Description,
		Schedule:      req.Schedule,
		Location:      req.Location,
		Expertise:     req.Expertise,
		SportID:       req.SportID,
		OrganizerType: entity.OrganizerType(req.OrganizerType),
		OwnerID:       ownerID,
		Duration:      req.Duration,
		Remaining:     req.Capacity,
		Status:        entity.EventStatusPending,
	}

	created, err := s.repo.CreateEvent(ctx, event)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create event failed", err)
	}
	return mapper.ToEventResponse(created), nil
}

// GetEventByID serves the detail from cache when present. Cache misses
// and cache failures both fall through to the database.
func (s *EventService) GetEventByID(ctx context.Context, eventID uuid.UUID) (*dto.EventDetailResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if payload, err := s.cache.GetEventDetail(ctx, eventID.String()); err == nil && payload != nil {
		var cached dto.EventDetailResponse
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &cached, nil
		}
	}

	detail, err := s.repo.GetEventDetailByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get event failed", err)
	}
	if detail == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "event not found", nil)
	}

	resp := mapper.ToEventDetailResponse(detail)
	if payload, err := json.Marshal(resp); err == nil {
		if err := s.cache.SetEventDetail(ctx, eventID.String(), payload); err != nil {
			logger.Warn("EventService:GetEventByID:cache", "error", err.Error())
		}
	}
	return resp, nil
}

func (s *EventService) GetEvents(ctx context.Context, filter entity.EventFilter, page, limit int) (*dto.PageResponse[dto.EventResponse], *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	events, err := s.repo.GetEvents(ctx, filter, limit, page*limit)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get events failed", err)
	}

	return &dto.PageResponse[dto.EventResponse]{
		Page:     page,
		PageSize: len(events),
		Items:    mapper.ToEventResponses(events),
	}, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, eventID, authID uuid.UUID, authType string, req *dto.UpdateEventRequest) (*dto.EventResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	event, appErr := s.getOwnedEvent(ctx, eventID, authID, authType)
	if appErr != nil {
		return nil, appErr
	}

	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Schedule != nil {
		event.Schedule = *req.Schedule
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Duration != nil {
		event.Duration = *req.Duration
	}

	if err := s.repo.UpdateEvent(ctx, event); err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "update event failed", err)
	}
	s.invalidateDetail(ctx, eventID)
	return mapper.ToEventResponse(event), nil
}

// DeleteEvent cancels instead of removing; history stays queryable.
func (s *EventService) DeleteEvent(ctx context.Context, eventID, authID uuid.UUID, authType string) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	event, appErr := s.getOwnedEvent(ctx, eventID, authID, authType)
	if appErr != nil {
		return appErr
	}
	if event.Status == entity.EventStatusCancelled {
		return errors.NewAppError(errors.ErrConflict, "event already cancelled", nil)
	}

	if err := s.repo.UpdateStatus(ctx, eventID, entity.EventStatusCancelled); err != nil {
		return errors.NewAppError(errors.ErrUpdateFailed, "cancel event failed", err)
	}
	s.invalidateDetail(ctx, eventID)
	return nil
}

// InvalidateDetail is used by the participant flow after it changes the
// remaining capacity.
func (s *EventService) InvalidateDetail(ctx context.Context, eventID uuid.UUID) {
	s.invalidateDetail(ctx, eventID)
}

func (s *EventService) invalidateDetail(ctx context.Context, eventID uuid.UUID) {
	if err := s.cache.InvalidateEventDetail(ctx, eventID.String()); err != nil {
		logger.Warn("EventService:invalidateDetail", "error", err.Error())
	}
}

func (s *EventService) getOwnedEvent(ctx context.Context, eventID, authID uuid.UUID, authType string) (*entity.Event, *errors.AppError) {
	event, err := s.repo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get event failed", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "event not found", nil)
	}
	if string(event.OrganizerType) != authType || event.OwnerID != authID {
		return nil, errors.NewAppError(errors.ErrForbidden, "not the event owner", nil)
	}
	return event, nil
}

package service

import (
	"context"
	"time"

	"sportsmatch-api/core/constants"
	"sportsmatch-api/core/errors"
	"sportsmatch-api/modules/field/dto"
	"sportsmatch-api/modules/field/entity"
	"sportsmatch-api/modules/field/mapper"
	"sportsmatch-api/modules/field/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type FieldService struct {
	repo repository.FieldRepositoryInterface
}

func NewFieldService(repo repository.FieldRepositoryInterface) *FieldService {
	return &FieldService{repo: repo}
}

func (s *FieldService) CreateField(ctx context.Context, clubID uuid.UUID, req *dto.CreateFieldRequest) (*dto.FieldResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	field := &entity.Field{
		ID:      uuid.New(),
		ClubID:  clubID,
		Name:    req.Name,
		Surface: req.Surface,
	}

	created, err := s.repo.CreateField(ctx, field)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create field failed", err)
	}
	return mapper.ToFieldResponse(created), nil
}

func (s *FieldService) GetFieldsByClub(ctx context.Context, clubID uuid.UUID) ([]dto.FieldResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	fields, err := s.repo.GetFieldsByClub(ctx, clubID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get fields failed", err)
	}
	return mapper.ToFieldResponses(fields), nil
}

// UpdateField allows only the owning club to change its field.
func (s *FieldService) UpdateField(ctx context.Context, clubID, fieldID uuid.UUID, req *dto.UpdateFieldRequest) (*dto.FieldResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	field, appErr := s.getOwnedField(ctx, clubID, fieldID)
	if appErr != nil {
		return nil, appErr
	}

	if req.Name != nil {
		field.Name = *req.Name
	}
	if req.Surface != nil {
		field.Surface = req.Surface
	}

	if err := s.repo.UpdateField(ctx, field); err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "update field failed", err)
	}
	return mapper.ToFieldResponse(field), nil
}

// DeleteField refuses while any slot on the field is booked.
func (s *FieldService) DeleteField(ctx context.Context, clubID, fieldID uuid.UUID) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if _, appErr := s.getOwnedField(ctx, clubID, fieldID); appErr != nil {
		return appErr
	}

	booked, err := s.repo.CountBookedSlots(ctx, fieldID)
	if err != nil {
		return errors.NewAppError(errors.ErrGetFailed, "check field bookings failed", err)
	}
	if booked > 0 {
		return errors.NewAppError(errors.ErrConflict, "field has booked slots", nil)
	}

	if err := s.repo.DeleteField(ctx, fieldID); err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "delete field failed", err)
	}
	return nil
}

// GenerateSlots carves [opening, closing) into duration-sized free
// slots for one date. Overlapping generation for the same date trips
// the unique constraint and surfaces as a conflict.
func (s *FieldService) GenerateSlots(ctx context.Context, clubID, fieldID uuid.UUID, req *dto.GenerateSlotsRequest) ([]dto.TimeSlotResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if _, appErr := s.getOwnedField(ctx, clubID, fieldID); appErr != nil {
		return nil, appErr
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid date", err)
	}
	opening, err := time.Parse("15:04", req.OpeningTime)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid opening time", err)
	}
	closing, err := time.Parse("15:04", req.ClosingTime)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid closing time", err)
	}
	if !opening.Before(closing) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "opening time must precede closing time", nil)
	}

	slots := buildDaySlots(fieldID, date, opening, closing, time.Duration(req.DurationMinutes)*time.Minute)
	if len(slots) == 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "no slot fits the given window", nil)
	}

	if err := s.repo.CreateSlots(ctx, slots); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, errors.NewAppError(errors.ErrAlreadyExists, "slots already generated for that date", err)
		}
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create slots failed", err)
	}
	return mapper.ToTimeSlotResponses(slots), nil
}

func (s *FieldService) GetSlots(ctx context.Context, fieldID uuid.UUID, dateStr string, status string) ([]dto.TimeSlotResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	field, err := s.repo.GetFieldByID(ctx, fieldID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get field failed", err)
	}
	if field == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "field not found", nil)
	}

	var date *time.Time
	if dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid date", err)
		}
		date = &parsed
	}

	slots, err := s.repo.GetSlots(ctx, fieldID, date, entity.SlotStatus(status))
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get slots failed", err)
	}
	return mapper.ToTimeSlotResponses(slots), nil
}

// BlockSlot and UnblockSlot let a club close maintenance windows.
// Booked slots stay untouchable from this path.
func (s *FieldService) BlockSlot(ctx context.Context, clubID, fieldID, slotID uuid.UUID) *errors.AppError {
	return s.flipSlot(ctx, clubID, fieldID, slotID, entity.SlotStatusFree, entity.SlotStatusBlocked)
}

func (s *FieldService) UnblockSlot(ctx context.Context, clubID, fieldID, slotID uuid.UUID) *errors.AppError {
	return s.flipSlot(ctx, clubID, fieldID, slotID, entity.SlotStatusBlocked, entity.SlotStatusFree)
}

func (s *FieldService) flipSlot(ctx context.Context, clubID, fieldID, slotID uuid.UUID, from, to entity.SlotStatus) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if _, appErr := s.getOwnedField(ctx, clubID, fieldID); appErr != nil {
		return appErr
	}

	changed, err := s.repo.UpdateSlotStatus(ctx, slotID, from, to)
	if err != nil {
		return errors.NewAppError(errors.ErrUpdateFailed, "update slot failed", err)
	}
	if !changed {
		return errors.NewAppError(errors.ErrConflict, "slot is not in the expected state", nil)
	}
	return nil
}

func (s *FieldService) getOwnedField(ctx context.Context, clubID, fieldID uuid.UUID) (*entity.Field, *errors.AppError) {
	field, err := s.repo.GetFieldByID(ctx, fieldID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get field failed", err)
	}
	if field == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "field not found", nil)
	}
	if field.ClubID != clubID {
		return nil, errors.NewAppError(errors.ErrForbidden, "field belongs to another club", nil)
	}
	return field, nil
}

// buildDaySlots is pure so it can be tested without a repository.
func buildDaySlots(fieldID uuid.UUID, date, opening, closing time.Time, duration time.Duration) []entity.TimeSlot {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(),
		opening.Hour(), opening.Minute(), 0, 0, time.UTC)
	dayEnd := time.Date(date.Year(), date.Month(), date.Day(),
		closing.Hour(), closing.Minute(), 0, 0, time.UTC)

	var slots []entity.TimeSlot
	for start := dayStart; !start.Add(duration).After(dayEnd); start = start.Add(duration) {
		slots = append(slots, entity.TimeSlot{
			ID:               uuid.New(),
			FieldID:          fieldID,
			StartTime:        start,
			EndTime:          start.Add(duration),
			AvailabilityDate: time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
			Status:           entity.SlotStatusFree,
		})
	}
	return slots
}

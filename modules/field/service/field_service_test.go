package service

import (
	"context"
	"testing"
	"time"

	"sportsmatch-api/core/errors"
	"sportsmatch-api/modules/field/dto"
	"sportsmatch-api/modules/field/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockFieldRepo struct {
	fields       map[uuid.UUID]*entity.Field
	bookedCount  int
	createdSlots []entity.TimeSlot
	deleted      []uuid.UUID
	slotFlips    []uuid.UUID
	flipResult   bool
}

func (m *mockFieldRepo) CreateField(ctx context.Context, f *entity.Field) (*entity.Field, error) {
	m.fields[f.ID] = f
	return f, nil
}

func (m *mockFieldRepo) GetFieldByID(ctx context.Context, id uuid.UUID) (*entity.Field, error) {
	return m.fields[id], nil
}

func (m *mockFieldRepo) GetFieldsByClub(ctx context.Context, clubID uuid.UUID) ([]entity.Field, error) {
	var out []entity.Field
	for _, f := range m.fields {
		if f.ClubID == clubID {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (m *mockFieldRepo) UpdateField(ctx context.Context, f *entity.Field) error { return nil }

func (m *mockFieldRepo) DeleteField(ctx context.Context, id uuid.UUID) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockFieldRepo) CountBookedSlots(ctx context.Context, fieldID uuid.UUID) (int, error) {
	return m.bookedCount, nil
}

func (m *mockFieldRepo) CreateSlots(ctx context.Context, slots []entity.TimeSlot) error {
	m.createdSlots = slots
	return nil
}

func (m *mockFieldRepo) GetSlots(ctx context.Context, fieldID uuid.UUID, date *time.Time, status entity.SlotStatus) ([]entity.TimeSlot, error) {
	return m.createdSlots, nil
}

func (m *mockFieldRepo) GetSlotsByIDs(ctx context.Context, fieldID uuid.UUID, slotIDs []uuid.UUID) ([]entity.TimeSlot, error) {
	return nil, nil
}

func (m *mockFieldRepo) UpdateSlotStatus(ctx context.Context, slotID uuid.UUID, from, to entity.SlotStatus) (bool, error) {
	m.slotFlips = append(m.slotFlips, slotID)
	return m.flipResult, nil
}

func newRepoWithField(clubID uuid.UUID) (*mockFieldRepo, *entity.Field) {
	field := &entity.Field{ID: uuid.New(), ClubID: clubID, Name: "Court 1"}
	repo := &mockFieldRepo{fields: map[uuid.UUID]*entity.Field{field.ID: field}, flipResult: true}
	return repo, field
}

func TestGenerateSlotsCarvesTheDay(t *testing.T) {
	clubID := uuid.New()
	repo, field := newRepoWithField(clubID)
	svc := NewFieldService(repo)

	slots, appErr := svc.GenerateSlots(context.Background(), clubID, field.ID, &dto.GenerateSlotsRequest{
		Date:            "2026-09-01",
		OpeningTime:     "09:00",
		ClosingTime:     "12:00",
		DurationMinutes: 60,
	})

	require.Nil(t, appErr)
	require.Len(t, slots, 3)
	assert.Equal(t, 9, slots[0].StartTime.Hour())
	assert.Equal(t, 10, slots[0].EndTime.Hour())
	assert.Equal(t, 12, slots[2].EndTime.Hour())
	for _, s := range slots {
		assert.Equal(t, string(entity.SlotStatusFree), s.Status)
		assert.Equal(t, field.ID, s.FieldID)
	}
}

func TestGenerateSlotsDropsPartialTrailingSlot(t *testing.T) {
	clubID := uuid.New()
	repo, field := newRepoWithField(clubID)
	svc := NewFieldService(repo)

	slots, appErr := svc.GenerateSlots(context.Background(), clubID, field.ID, &dto.GenerateSlotsRequest{
		Date:            "2026-09-01",
		OpeningTime:     "09:00",
		ClosingTime:     "10:30",
		DurationMinutes: 60,
	})

	require.Nil(t, appErr)
	require.Len(t, slots, 1, "the half hour after 10:00 does not fit a full slot")
}

func TestGenerateSlotsRejectsInvertedWindow(t *testing.T) {
	clubID := uuid.New()
	repo, field := newRepoWithField(clubID)
	svc := NewFieldService(repo)

	_, appErr := svc.GenerateSlots(context.Background(), clubID, field.ID, &dto.GenerateSlotsRequest{
		Date:            "2026-09-01",
		OpeningTime:     "18:00",
		ClosingTime:     "09:00",
		DurationMinutes: 60,
	})

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
	assert.Empty(t, repo.createdSlots)
}

func TestGenerateSlotsForbiddenForOtherClub(t *testing.T) {
	repo, field := newRepoWithField(uuid.New())
	svc := NewFieldService(repo)

	_, appErr := svc.GenerateSlots(context.Background(), uuid.New(), field.ID, &dto.GenerateSlotsRequest{
		Date:            "2026-09-01",
		OpeningTime:     "09:00",
		ClosingTime:     "12:00",
		DurationMinutes: 60,
	})

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrForbidden, appErr.Code)
}

func TestDeleteFieldGuardsBookedSlots(t *testing.T) {
	clubID := uuid.New()
	repo, field := newRepoWithField(clubID)
	repo.bookedCount = 2
	svc := NewFieldService(repo)

	appErr := svc.DeleteField(context.Background(), clubID, field.ID)

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrConflict, appErr.Code)
	assert.Empty(t, repo.deleted)
}

func TestDeleteFieldWithoutBookings(t *testing.T) {
	clubID := uuid.New()
	repo, field := newRepoWithField(clubID)
	svc := NewFieldService(repo)

	require.Nil(t, svc.DeleteField(context.Background(), clubID, field.ID))
	assert.Equal(t, []uuid.UUID{field.ID}, repo.deleted)
}

func TestBlockSlotConflictWhenNotFree(t *testing.T) {
	clubID := uuid.New()
	repo, field := newRepoWithField(clubID)
	repo.flipResult = false
	svc := NewFieldService(repo)

	appErr := svc.BlockSlot(context.Background(), clubID, field.ID, uuid.New())

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrConflict, appErr.Code)
}

func TestBuildDaySlotsBoundaries(t *testing.T) {
	fieldID := uuid.New()
	date, _ := time.Parse("2006-01-02", "2026-09-01")
	opening, _ := time.Parse("15:04", "08:00")
	closing, _ := time.Parse("15:04", "09:30")

	slots := buildDaySlots(fieldID, date, opening, closing, 30*time.Minute)

	require.Len(t, slots, 3)
	assert.True(t, slots[0].StartTime.Equal(time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)))
	assert.True(t, slots[2].EndTime.Equal(time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC)))
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i].StartTime.Equal(slots[i-1].EndTime), "slots must be contiguous")
	}
}

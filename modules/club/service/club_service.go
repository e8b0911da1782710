package service

import (
	"context"

	"sportsmatch-api/core/constants"
	"sportsmatch-api/core/database"
	"sportsmatch-api/core/errors"
	"sportsmatch-api/core/logger"
	"sportsmatch-api/core/utils"
	authentity "sportsmatch-api/modules/auth/entity"
	authrepo "sportsmatch-api/modules/auth/repository"
	"sportsmatch-api/modules/club/dto"
	"sportsmatch-api/modules/club/entity"
	"sportsmatch-api/modules/club/mapper"
	"sportsmatch-api/modules/club/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// neighbourhoodCoordinates backs the near-clubs search; the API accepts
// a named neighbourhood rather than raw coordinates.
var neighbourhoodCoordinates = map[string][2]float64{
	"palermo":   {-34.5889, -58.4306},
	"belgrano":  {-34.5627, -58.4565},
	"caballito": {-34.6197, -58.4437},
	"recoleta":  {-34.5875, -58.3974},
	"nunez":     {-34.5450, -58.4636},
	"almagro":   {-34.6064, -58.4191},
}

const defaultNearRadiusKm = 5.0

type ClubService struct {
	db       database.IDatabase
	repo     repository.ClubRepositoryInterface
	authRepo authrepo.AuthRepositoryInterface
}

func NewClubService(db database.IDatabase, repo repository.ClubRepositoryInterface, authRepo authrepo.AuthRepositoryInterface) *ClubService {
	return &ClubService{db: db, repo: repo, authRepo: authRepo}
}

// CreateClub registers the club and its credential record in one
// transaction; a unique violation on email or phone surfaces as a
// conflict naming the offending column.
func (s *ClubService) CreateClub(ctx context.Context, req *dto.CreateClubRequest) (*dto.ClubDetailResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("ClubService:CreateClub:HashPassword", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to hash password", err)
	}

	club := &entity.Club{
		ID:          uuid.New(),
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Slug:        slug.Make(req.Name),
		Description: req.Description,
	}

	var created *entity.Club
	txErr := s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		var err error
		created, err = s.repo.CreateClubTx(ctx, tx, club)
		if err != nil {
			return err
		}
		auth := &authentity.Auth{
			ID:           club.ID,
			Email:        req.Email,
			PasswordHash: passwordHash,
			Kind:         constants.TokenTypeClub,
		}
		return s.authRepo.CreateAuthTx(ctx, tx, auth)
	})
	if txErr != nil {
		if pqErr, ok := txErr.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, errors.NewAppError(errors.ErrAlreadyExists, pqErr.Constraint, txErr)
		}
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create club failed", txErr)
	}

	return mapper.ToClubDetailResponse(&entity.ClubDetail{Club: *created}), nil
}

func (s *ClubService) GetClubs(ctx context.Context) ([]dto.ClubDetailResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	clubs, err := s.repo.GetClubs(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get clubs failed", err)
	}
	return mapper.ToClubDetailResponses(clubs), nil
}

func (s *ClubService) GetClubByID(ctx context.Context, id uuid.UUID) (*dto.ClubDetailResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	club, err := s.repo.GetClubByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get club failed", err)
	}
	if club == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "club not found", nil)
	}
	return mapper.ToClubDetailResponse(club), nil
}

func (s *ClubService) GetNearClubs(ctx context.Context, location string, radiusKm float64) ([]dto.ClubDetailResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	coords, ok := neighbourhoodCoordinates[slug.Make(location)]
	if !ok {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "unknown location", nil)
	}
	if radiusKm <= 0 {
		radiusKm = defaultNearRadiusKm
	}

	clubs, err := s.repo.GetNearClubs(ctx, coords[0], coords[1], radiusKm)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get near clubs failed", err)
	}
	return mapper.ToClubDetailResponses(clubs), nil
}

// UpdateClub applies partial updates; only the club itself may call it.
func (s *ClubService) UpdateClub(ctx context.Context, id uuid.UUID, req *dto.UpdateClubRequest) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	detail, err := s.repo.GetClubByID(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrGetFailed, "get club failed", err)
	}
	if detail == nil {
		return errors.NewAppError(errors.ErrNotFound, "club not found", nil)
	}

	club := detail.Club
	if req.PhoneNumber != nil {
		club.PhoneNumber = *req.PhoneNumber
	}
	if req.Description != nil {
		club.Description = req.Description
	}

	if err := s.repo.UpdateClub(ctx, &club); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return errors.NewAppError(errors.ErrAlreadyExists, pqErr.Constraint, err)
		}
		return errors.NewAppError(errors.ErrUpdateFailed, "update club failed", err)
	}
	return nil
}

func (s *ClubService) UpdateLocation(ctx context.Context, id uuid.UUID, req *dto.UpdateLocationRequest) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	detail, err := s.repo.GetClubByID(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrGetFailed, "get club failed", err)
	}
	if detail == nil {
		return errors.NewAppError(errors.ErrNotFound, "club not found", nil)
	}

	loc := &entity.ClubLocation{
		ClubID:    id,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Address:   req.Address,
	}
	if err := s.repo.UpsertLocation(ctx, loc); err != nil {
		return errors.NewAppError(errors.ErrUpdateFailed, "update location failed", err)
	}
	return nil
}

package repository

import (
	"context"
	"database/sql"

	"sportsmatch-api/core/database"
	"sportsmatch-api/core/logger"
	"sportsmatch-api/modules/club/entity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type ClubRepository struct {
	DB database.IDatabase
}

func NewClubRepository(db database.IDatabase) *ClubRepository {
	return &ClubRepository{DB: db}
}

type ClubRepositoryInterface interface {
	CreateClubTx(ctx context.Context, tx *sqlx.Tx, club *entity.Club) (*entity.Club, error)
	GetClubByID(ctx context.Context, id uuid.UUID) (*entity.ClubDetail, error)
	GetClubByEmail(ctx context.Context, email string) (*entity.Club, error)
	GetClubs(ctx context.Context) ([]entity.ClubDetail, error)
	GetNearClubs(ctx context.Context, lat, lon, radiusKm float64) ([]entity.ClubDetail, error)
	UpdateClub(ctx context.Context, club *entity.Club) error
	UpsertLocation(ctx context.Context, loc *entity.ClubLocation) error
}

const clubDetailColumns = `
	c.id, c.name, c.email, c.phone_number, c.slug, c.description, c.created_at, c.updated_at,
	l.latitude, l.longitude, l.address
`

func (r *ClubRepository) CreateClubTx(ctx context.Context, tx *sqlx.Tx, club *entity.Club) (*entity.Club, error) {
	query := `
		INSERT INTO clubs (id, name, email, phone_number, slug, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, email, phone_number, slug, description, created_at, updated_at
	`

	var created entity.Club
	err := tx.GetContext(ctx, &created, query,
		club.ID, club.Name, club.Email, club.PhoneNumber, club.Slug, club.Description)
	if err != nil {
		logger.Error("ClubRepository:CreateClubTx", err)
		return nil, err
	}
	return &created, nil
}

func (r *ClubRepository) GetClubByID(ctx context.Context, id uuid.UUID) (*entity.ClubDetail, error) {
	query := `
		SELECT ` + clubDetailColumns + `
		FROM clubs c
		LEFT JOIN club_locations l ON l.club_id = c.id
		WHERE c.id = $1
	`

	var club entity.ClubDetail
	err := r.DB.GetContext(ctx, &club, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ClubRepository:GetClubByID", err)
		return nil, err
	}
	return &club, nil
}

func (r *ClubRepository) GetClubByEmail(ctx context.Context, email string) (*entity.Club, error) {
	query := `
		SELECT id, name, email, phone_number, slug, description, created_at, updated_at
		FROM clubs WHERE email = $1
	`

	var club entity.Club
	err := r.DB.GetContext(ctx, &club, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ClubRepository:GetClubByEmail", err)
		return nil, err
	}
	return &club, nil
}

func (r *ClubRepository) GetClubs(ctx context.Context) ([]entity.ClubDetail, error) {
	query := `
		SELECT ` + clubDetailColumns + `
		FROM clubs c
		LEFT JOIN club_locations l ON l.club_id = c.id
		ORDER BY c.created_at DESC
	`

	var clubs []entity.ClubDetail
	if err := r.DB.SelectContext(ctx, &clubs, query); err != nil {
		logger.Error("ClubRepository:GetClubs", err)
		return nil, err
	}
	return clubs, nil
}

// GetNearClubs filters by a bounding haversine distance computed in SQL.
// Good enough at city scale; no PostGIS dependency.
func (r *ClubRepository) GetNearClubs(ctx context.Context, lat, lon, radiusKm float64) ([]entity.ClubDetail, error) {
	query := `
		SELECT ` + clubDetailColumns + `
		FROM clubs c
		JOIN club_locations l ON l.club_id = c.id
		WHERE 6371 * acos(
			least(1.0,
				cos(radians($1)) * cos(radians(l.latitude)) * cos(radians(l.longitude) - radians($2))
				+ sin(radians($1)) * sin(radians(l.latitude))
			)
		) <= $3
		ORDER BY c.created_at DESC
	`

	var clubs []entity.ClubDetail
	if err := r.DB.SelectContext(ctx, &clubs, query, lat, lon, radiusKm); err != nil {
		logger.Error("ClubRepository:GetNearClubs", err)
		return nil, err
	}
	return clubs, nil
}

func (r *ClubRepository) UpdateClub(ctx context.Context, club *entity.Club) error {
	query := `
		UPDATE clubs
		SET phone_number = $2, description = $3, updated_at = NOW()
		WHERE id = $1
	`
	if err := r.DB.ExecContext(ctx, query, club.ID, club.PhoneNumber, club.Description); err != nil {
		logger.Error("ClubRepository:UpdateClub", err)
		return err
	}
	return nil
}

func (r *ClubRepository) UpsertLocation(ctx context.Context, loc *entity.ClubLocation) error {
	query := `
		INSERT INTO club_locations (club_id, latitude, longitude, address)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (club_id) DO UPDATE SET latitude = $2, longitude = $3, address = $4
	`
	if err := r.DB.ExecContext(ctx, query, loc.ClubID, loc.Latitude, loc.Longitude, loc.Address); err != nil {
		logger.Error("ClubRepository:UpsertLocation", err)
		return err
	}
	return nil
}

package repository

import (
	"context"
	"database/sql"

	"sportsmatch-api/core/database"
	"sportsmatch-api/core/logger"
	"sportsmatch-api/core/params"
	"sportsmatch-api/modules/user/entity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type UserRepository struct {
	DB database.IDatabase
}

func NewUserRepository(db database.IDatabase) *UserRepository {
	return &UserRepository{DB: db}
}

type UserRepositoryInterface interface {
	CreateUserTx(ctx context.Context, tx *sqlx.Tx, user *entity.User) (*entity.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUsers(ctx context.Context, params params.QueryParams) (*entity.PaginatedUsers, error)
	UpdateUser(ctx context.Context, user *entity.User) error
	UpdatePictureKey(ctx context.Context, id uuid.UUID, key string) error
}

func (r *UserRepository) CreateUserTx(ctx context.Context, tx *sqlx.Tx, user *entity.User) (*entity.User, error) {
	query := `
		INSERT INTO users (id, email, first_name, last_name, phone_number, birthdate)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, email, first_name, last_name, phone_number, birthdate, picture_key, created_at, updated_at
	`

	var created entity.User
	err := tx.GetContext(ctx, &created, query,
		user.ID, user.Email, user.FirstName, user.LastName, user.PhoneNumber, user.Birthdate)
	if err != nil {
		logger.Error("UserRepository:CreateUserTx", err)
		return nil, err
	}
	return &created, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `
		SELECT id, email, first_name, last_name, phone_number, birthdate, picture_key, created_at, updated_at
		FROM users WHERE id = $1
	`

	var user entity.User
	err := r.DB.GetContext(ctx, &user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("UserRepository:GetUserByID", err)
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, email, first_name, last_name, phone_number, birthdate, picture_key, created_at, updated_at
		FROM users WHERE email = $1
	`

	var user entity.User
	err := r.DB.GetContext(ctx, &user, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("UserRepository:GetUserByEmail", err)
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetUsers(ctx context.Context, p params.QueryParams) (*entity.PaginatedUsers, error) {
	countQuery := `
		SELECT COUNT(*) FROM users
		WHERE ($1 = '' OR first_name ILIKE '%' || $1 || '%' OR last_name ILIKE '%' || $1 || '%')
	`
	var total int
	if err := r.DB.GetContext(ctx, &total, countQuery, p.Search); err != nil {
		logger.Error("UserRepository:GetUsers:Count", err)
		return nil, err
	}

	query := `
		SELECT id, email, first_name, last_name, phone_number, birthdate, picture_key, created_at, updated_at
		FROM users
		WHERE ($1 = '' OR first_name ILIKE '%' || $1 || '%' OR last_name ILIKE '%' || $1 || '%')
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	var users []entity.User
	if err := r.DB.SelectContext(ctx, &users, query, p.Search, p.Limit(), p.Offset()); err != nil {
		logger.Error("UserRepository:GetUsers", err)
		return nil, err
	}

	return &entity.PaginatedUsers{
		Items:      users,
		TotalItems: total,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
	}, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET first_name = $2, last_name = $3, phone_number = $4, updated_at = NOW()
		WHERE id = $1
	`
	if err := r.DB.ExecContext(ctx, query, user.ID, user.FirstName, user.LastName, user.PhoneNumber); err != nil {
		logger.Error("UserRepository:UpdateUser", err)
		return err
	}
	return nil
}

func (r *UserRepository) UpdatePictureKey(ctx context.Context, id uuid.UUID, key string) error {
	query := `UPDATE users SET picture_key = $2, updated_at = NOW() WHERE id = $1`
	if err := r.DB.ExecContext(ctx, query, id, key); err != nil {
		logger.Error("UserRepository:UpdatePictureKey", err)
		return err
	}
	return nil
}

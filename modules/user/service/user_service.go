package service

import (
	"context"
	"fmt"

	"sportsmatch-api/core/constants"
	"sportsmatch-api/core/errors"
	"sportsmatch-api/core/logger"
	"sportsmatch-api/core/params"
	"sportsmatch-api/core/storage"
	"sportsmatch-api/modules/user/dto"
	"sportsmatch-api/modules/user/mapper"
	"sportsmatch-api/modules/user/repository"

	"github.com/google/uuid"
)

type UserService struct {
	repo    repository.UserRepositoryInterface
	storage storage.Storage
}

func NewUserService(repo repository.UserRepositoryInterface, storage storage.Storage) *UserService {
	return &UserService{repo: repo, storage: storage}
}

func (s *UserService) GetUserByID(ctx context.Context, id uuid.UUID) (*dto.UserDetailResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get user failed", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "user not found", nil)
	}
	return mapper.ToUserDetailResponse(user), nil
}

func (s *UserService) GetUsers(ctx context.Context, p params.QueryParams) (*dto.PaginatedUsersResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	page, err := s.repo.GetUsers(ctx, p)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get users failed", err)
	}
	return mapper.ToPaginatedUsersResponse(page), nil
}

// UpdateUser applies partial profile updates. Callers enforce that a
// user can only update their own profile.
func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserDetailResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get user failed", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "user not found", nil)
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = req.PhoneNumber
	}

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "update user failed", err)
	}
	return mapper.ToUserDetailResponse(user), nil
}

// GetPictureURL returns a presigned GET URL for the stored profile
// picture.
func (s *UserService) GetPictureURL(ctx context.Context, id uuid.UUID) (*dto.PictureURLResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get user failed", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "user not found", nil)
	}
	if user.PictureKey == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "user has no picture", nil)
	}

	url, err := s.storage.PresignedGetURL(ctx, *user.PictureKey)
	if err != nil {
		logger.Error("UserService:GetPictureURL:Presign", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to sign picture url", err)
	}
	return &dto.PictureURLResponse{URL: url}, nil
}

// GetPictureUploadURL presigns a PUT URL and records the object key the
// client is expected to upload to.
func (s *UserService) GetPictureUploadURL(ctx context.Context, id uuid.UUID, contentType string) (*dto.PictureURLResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get user failed", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "user not found", nil)
	}

	key := fmt.Sprintf("profile/%s", id)
	url, err := s.storage.PresignedPutURL(ctx, key, contentType)
	if err != nil {
		logger.Error("UserService:GetPictureUploadURL:Presign", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to sign upload url", err)
	}

	if err := s.repo.UpdatePictureKey(ctx, id, key); err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "update picture key failed", err)
	}
	return &dto.PictureURLResponse{URL: url}, nil
}

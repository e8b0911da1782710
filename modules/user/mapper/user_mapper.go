package mapper

import (
	"sportsmatch-api/modules/user/dto"
	"sportsmatch-api/modules/user/entity"
)

func ToUserDetailResponse(user *entity.User) *dto.UserDetailResponse {
	return &dto.UserDetailResponse{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		PhoneNumber: user.PhoneNumber,
		Birthdate:   user.Birthdate,
		CreatedAt:   user.CreatedAt,
	}
}

func ToPaginatedUsersResponse(page *entity.PaginatedUsers) *dto.PaginatedUsersResponse {
	if page == nil {
		return &dto.PaginatedUsersResponse{Items: []dto.UserDetailResponse{}}
	}

	items := make([]dto.UserDetailResponse, len(page.Items))
	for i := range page.Items {
		items[i] = *ToUserDetailResponse(&page.Items[i])
	}

	totalPages := 0
	if page.PageSize > 0 {
		totalPages = (page.TotalItems + page.PageSize - 1) / page.PageSize
	}

	return &dto.PaginatedUsersResponse{
		Items:      items,
		TotalItems: page.TotalItems,
		TotalPages: totalPages,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}
}

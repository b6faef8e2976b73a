package usecases

import (
	"context"

	"hoteltec/internal/domain/user"
	apperrors "hoteltec/internal/shared/errors"
)

type ListUsersCommand struct {
	Role     string
	Status   string
	Search   string
	Page     int
	PageSize int
}

type ListUsersResult struct {
	Users []*user.User
	Total int64
}

type ListUsersUseCase struct {
	userRepo user.UserRepository
}

func NewListUsersUseCase(userRepo user.UserRepository) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, cmd ListUsersCommand) (*ListUsersResult, error) {
	filter := user.UserFilter{
		Search:   cmd.Search,
		Page:     cmd.Page,
		PageSize: cmd.PageSize,
	}

	if cmd.Role != "" {
		role := user.Role(cmd.Role)
		if role != user.RoleHotelOwner && role != user.RoleStaff {
			return nil, apperrors.NewValidationError("invalid role")
		}
		filter.Role = &role
	}
	if cmd.Status != "" {
		status := user.Status(cmd.Status)
		if status != user.StatusActive && status != user.StatusSuspended {
			return nil, apperrors.NewValidationError("invalid status")
		}
		filter.Status = &status
	}

	users, total, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ListUsersResult{Users: users, Total: total}, nil
}

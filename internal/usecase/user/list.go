package user

import (
	"context"

	domain "github.com/campusconnect/campus-scheduler/internal/domain/user"
	"github.com/campusconnect/campus-scheduler/internal/dto"
	"github.com/campusconnect/campus-scheduler/internal/models"
)

type ListUsers struct {
	repo domain.Repository
}

func NewListUsers(repo domain.Repository) *ListUsers {
	return &ListUsers{repo: repo}
}

func (uc *ListUsers) Execute(
	ctx context.Context,
	f domain.ListFilter,
) ([]dto.UserListDTO, int64, error) {

	users, total, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.UserListDTO, 0, len(users))
	for i := range users {
		out = append(out, formatUser(&users[i]))
	}

	return out, total, nil
}

func formatUser(u *models.User) dto.UserListDTO {
	d := dto.UserListDTO{
		ID:    u.ID,
		Name:  u.DisplayName(),
		Email: u.Email,
		Role:  u.Role,
	}

	if u.Profile != nil {
		d.FirstName = u.Profile.FirstName
		d.LastName = u.Profile.LastName
		d.Phone = u.Profile.Phone
		d.Department = u.Profile.Department
	}

	return d
}

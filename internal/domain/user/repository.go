package user

import (
	"context"

	"github.com/campusconnect/campus-scheduler/internal/models"
)

type ListFilter struct {
	Role    string
	Search  string
	Page    int
	PerPage int
}

type Repository interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)

	// List returns users with their profiles, newest first, optionally
	// narrowed by role and a free-text match on name/email.
	List(ctx context.Context, f ListFilter) ([]models.User, int64, error)

	EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error)

	// CreateWithProfile and UpdateWithProfile write the user and its
	// profile in one transaction.
	CreateWithProfile(ctx context.Context, u *models.User) error
	UpdateWithProfile(ctx context.Context, u *models.User) error

	Delete(ctx context.Context, id uint) error
}

package user

import (
	"context"
	"strings"

	"github.com/campusconnect/campus-scheduler/internal/audit"
	domain "github.com/campusconnect/campus-scheduler/internal/domain/user"
	"github.com/campusconnect/campus-scheduler/internal/httperr"
	"github.com/campusconnect/campus-scheduler/internal/models"
)

type UpdateUserInput struct {
	Name       string
	Email      string
	FirstName  string
	LastName   string
	Phone      string
	Department string
	Bio        string
}

type UpdateUser struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateUser(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *UpdateUser {
	return &UpdateUser{
		repo:  repo,
		audit: auditDispatcher,
	}
}

// Execute edits a managed account. Role changes are not supported; an
// account keeps the role it was created with.
func (uc *UpdateUser) Execute(
	ctx context.Context,
	adminID uint,
	userID uint,
	in UpdateUserInput,
) (*models.User, error) {

	u, err := uc.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, httperr.ErrBusiness("not_found")
	}
	if u.Role == models.RoleAdmin {
		// Admins manage themselves through the profile endpoints.
		return nil, httperr.ErrBusiness("not_found")
	}

	if in.Name != "" {
		u.Name = in.Name
	}

	if in.Email != "" {
		email := strings.ToLower(strings.TrimSpace(in.Email))
		taken, err := uc.repo.EmailTaken(ctx, email, u.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, httperr.ErrBusiness("email_taken")
		}
		u.Email = email
	}

	if u.Profile == nil {
		u.Profile = &models.Profile{UserID: u.ID}
	}
	if in.FirstName != "" {
		u.Profile.FirstName = in.FirstName
	}
	if in.LastName != "" {
		u.Profile.LastName = in.LastName
	}
	if in.Phone != "" {
		u.Profile.Phone = in.Phone
	}
	if in.Department != "" {
		u.Profile.Department = in.Department
	}
	if in.Bio != "" {
		u.Profile.Bio = in.Bio
	}

	if err := uc.repo.UpdateWithProfile(ctx, u); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "user_updated",
		Entity:   "user",
		EntityID: &u.ID,
	})

	return u, nil
}

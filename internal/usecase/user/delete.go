package user

import (
	"context"

	"github.com/campusconnect/campus-scheduler/internal/audit"
	domain "github.com/campusconnect/campus-scheduler/internal/domain/user"
	"github.com/campusconnect/campus-scheduler/internal/httperr"
	"github.com/campusconnect/campus-scheduler/internal/models"
)

type DeleteUser struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteUser(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *DeleteUser {
	return &DeleteUser{
		repo:  repo,
		audit: auditDispatcher,
	}
}

// Execute removes a managed account. Profile, schedules, events and
// notifications go with it through the foreign-key cascade.
func (uc *DeleteUser) Execute(
	ctx context.Context,
	adminID uint,
	userID uint,
) error {

	u, err := uc.repo.FindByID(ctx, userID)
	if err != nil {
		return httperr.ErrBusiness("not_found")
	}
	if u.Role == models.RoleAdmin {
		return httperr.ErrBusiness("not_found")
	}

	if err := uc.repo.Delete(ctx, userID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: &userID,
		Metadata: map[string]any{"role": u.Role},
	})

	return nil
}

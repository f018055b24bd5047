package schedule

import (
	"context"

	"github.com/campusconnect/campus-scheduler/internal/audit"
	domain "github.com/campusconnect/campus-scheduler/internal/domain/schedule"
	"github.com/campusconnect/campus-scheduler/internal/httperr"
)

type DeleteSchedule struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteSchedule(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteSchedule {
	return &DeleteSchedule{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteSchedule) Execute(
	ctx context.Context,
	scheduleID uint,
	teacherID uint,
) error {

	s, err := uc.repo.FindByID(ctx, scheduleID)
	if err != nil {
		return httperr.ErrBusiness("not_found")
	}
	if s.TeacherID != teacherID {
		return httperr.ErrBusiness("not_found")
	}

	// A booked schedule has a live appointment; it must be cancelled
	// before the window can go away.
	if err := domain.CanEdit(domain.Status(s.Status)); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, scheduleID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &teacherID,
		Action:   "schedule_deleted",
		Entity:   "schedule",
		EntityID: &scheduleID,
	})

	return nil
}

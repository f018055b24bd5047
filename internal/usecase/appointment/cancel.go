package appointment

import (
	"context"

	"github.com/campusconnect/campus-scheduler/internal/audit"
	domain "github.com/campusconnect/campus-scheduler/internal/domain/appointment"
	notifDomain "github.com/campusconnect/campus-scheduler/internal/domain/notification"
	"github.com/campusconnect/campus-scheduler/internal/httperr"
	"github.com/campusconnect/campus-scheduler/internal/models"
	"github.com/campusconnect/campus-scheduler/internal/notify"
)

type CancelAppointment struct {
	repo     domain.Repository
	notifier notifier
	audit    *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	notifRepo notifDomain.Repository,
	dispatcher *notify.Dispatcher,
	auditDispatcher *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:     repo,
		notifier: notifier{repo: notifRepo, dispatcher: dispatcher},
		audit:    auditDispatcher,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	eventID uint,
	teacherID uint,
) (*models.Event, error) {

	ev, err := uc.repo.GetForTeacher(ctx, eventID, teacherID)
	if err != nil {
		return nil, httperr.ErrBusiness("not_found")
	}

	if err := domain.Cancel(ev); err != nil {
		return nil, err
	}

	// The status write and the slot release land in one transaction:
	// the schedule is never left booked without a live event, nor
	// available while one still claims it.
	if ev.ScheduleID != nil {
		if err := uc.repo.UpdateWithSlotRelease(ctx, ev, *ev.ScheduleID); err != nil {
			return nil, err
		}
	} else if err := uc.repo.Update(ctx, ev); err != nil {
		return nil, err
	}

	teacher, err := uc.repo.GetUser(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	if err := uc.notifier.send(
		ctx,
		&ev.ID,
		teacherID,
		teacher.DisplayName(),
		ev.StudentID,
		"Your appointment request has been declined",
	); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &teacherID,
		Action:   "appointment_cancelled",
		Entity:   "event",
		EntityID: &ev.ID,
	})

	return ev, nil
}

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

type CompleteAppointment struct {
	repo            domain.Repository
	notifier        notifier
	audit           *audit.Dispatcher
	requireApproved bool
}

func NewCompleteAppointment(
	repo domain.Repository,
	notifRepo notifDomain.Repository,
	dispatcher *notify.Dispatcher,
	auditDispatcher *audit.Dispatcher,
	requireApproved bool,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:            repo,
		notifier:        notifier{repo: notifRepo, dispatcher: dispatcher},
		audit:           auditDispatcher,
		requireApproved: requireApproved,
	}
}

// Execute marks the appointment completed. The schedule stays booked;
// a held session never returns to the bookable pool.
func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	eventID uint,
	teacherID uint,
) (*models.Event, error) {

	ev, err := uc.repo.GetForTeacher(ctx, eventID, teacherID)
	if err != nil {
		return nil, httperr.ErrBusiness("not_found")
	}

	if err := domain.Complete(ev, uc.requireApproved); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, ev); err != nil {
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
		"Your appointment has been completed. Check if there are any notes or follow-ups needed.",
	); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &teacherID,
		Action:   "appointment_completed",
		Entity:   "event",
		EntityID: &ev.ID,
	})

	return ev, nil
}

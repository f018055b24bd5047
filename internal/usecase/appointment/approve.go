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

type ApproveAppointment struct {
	repo     domain.Repository
	notifier notifier
	audit    *audit.Dispatcher
}

func NewApproveAppointment(
	repo domain.Repository,
	notifRepo notifDomain.Repository,
	dispatcher *notify.Dispatcher,
	auditDispatcher *audit.Dispatcher,
) *ApproveAppointment {
	return &ApproveAppointment{
		repo:     repo,
		notifier: notifier{repo: notifRepo, dispatcher: dispatcher},
		audit:    auditDispatcher,
	}
}

func (uc *ApproveAppointment) Execute(
	ctx context.Context,
	eventID uint,
	teacherID uint,
) (*models.Event, error) {

	// The scoped lookup does not distinguish a missing event from one
	// owned by another teacher.
	ev, err := uc.repo.GetForTeacher(ctx, eventID, teacherID)
	if err != nil {
		return nil, httperr.ErrBusiness("not_found")
	}

	if err := domain.Approve(ev); err != nil {
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
		"Your appointment request has been approved",
	); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &teacherID,
		Action:   "appointment_approved",
		Entity:   "event",
		EntityID: &ev.ID,
	})

	return ev, nil
}

package appointment

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/campusconnect/campus-scheduler/internal/audit"
	domain "github.com/campusconnect/campus-scheduler/internal/domain/appointment"
	notifDomain "github.com/campusconnect/campus-scheduler/internal/domain/notification"
	schedDomain "github.com/campusconnect/campus-scheduler/internal/domain/schedule"
	"github.com/campusconnect/campus-scheduler/internal/httperr"
	"github.com/campusconnect/campus-scheduler/internal/meeting"
	"github.com/campusconnect/campus-scheduler/internal/models"
	"github.com/campusconnect/campus-scheduler/internal/notify"
)

// How long Book waits on the meeting provider before giving up and
// booking without a link.
const provisionTimeout = 15 * time.Second

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	ScheduleID uint
	Title      string
	Notes      string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo         domain.Repository
	scheduleRepo schedDomain.Repository
	provisioner  meeting.Provisioner
	notifier     notifier
	audit        *audit.Dispatcher
	logger       *zap.Logger
}

func NewBookAppointment(
	repo domain.Repository,
	scheduleRepo schedDomain.Repository,
	notifRepo notifDomain.Repository,
	provisioner meeting.Provisioner,
	dispatcher *notify.Dispatcher,
	auditDispatcher *audit.Dispatcher,
	logger *zap.Logger,
) *BookAppointment {
	return &BookAppointment{
		repo:         repo,
		scheduleRepo: scheduleRepo,
		provisioner:  provisioner,
		notifier:     notifier{repo: notifRepo, dispatcher: dispatcher},
		audit:        auditDispatcher,
		logger:       logger,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	studentID uint,
	in BookAppointmentInput,
) (*models.Event, error) {

	// --------------------------------------------------
	// 1. Target schedule must still be offered
	// --------------------------------------------------
	schedule, err := uc.scheduleRepo.FindByID(ctx, in.ScheduleID)
	if err != nil {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}
	if err := schedDomain.CanBook(schedDomain.Status(schedule.Status)); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Resolve both parties
	// --------------------------------------------------
	teacher, err := uc.repo.GetUser(ctx, schedule.TeacherID)
	if err != nil {
		return nil, err
	}

	student, err := uc.repo.GetUser(ctx, studentID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Display title
	// --------------------------------------------------
	studentName := student.DisplayName()
	startLabel := formatLongDate(schedule.StartDateTime)

	title := in.Title
	if title == "" {
		title = studentName + " booked an appointment on " + startLabel +
			" to " + formatClock(schedule.EndDateTime)
	}

	// --------------------------------------------------
	// 4. Meeting provisioning (best-effort)
	// --------------------------------------------------
	var meetingID, meetingLink *string

	provCtx, cancel := context.WithTimeout(ctx, provisionTimeout)
	m, provErr := uc.provisioner.CreateMeeting(
		provCtx,
		title,
		schedule.StartDateTime.Format("2006-01-02T15:04:05"),
	)
	cancel()

	if provErr != nil {
		// Booking proceeds without a link; a provider outage must not
		// block students.
		uc.logger.Error("meeting provisioning failed",
			zap.Uint("schedule_id", schedule.ID),
			zap.Uint("student_id", studentID),
			zap.Error(provErr),
		)
	} else {
		meetingID = &m.ID
		meetingLink = &m.JoinURL
	}

	// --------------------------------------------------
	// 5. Event + slot claim (one atomic unit)
	// --------------------------------------------------
	ev := &models.Event{
		TeacherID:   teacher.ID,
		StudentID:   student.ID,
		ScheduleID:  &schedule.ID,
		Title:       title,
		MeetingID:   meetingID,
		MeetingLink: meetingLink,
		Status:      string(domain.InitialStatus()),
		Notes:       in.Notes,
	}

	if err := uc.repo.CreateWithSlotClaim(ctx, ev); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6. Notify the teacher
	// --------------------------------------------------
	if err := uc.notifier.send(
		ctx,
		&ev.ID,
		student.ID,
		studentName,
		teacher.ID,
		studentName+" has requested an appointment on "+startLabel,
	); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &studentID,
		Action:   "appointment_booked",
		Entity:   "event",
		EntityID: &ev.ID,
	})

	return ev, nil
}

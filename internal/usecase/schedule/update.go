package schedule

import (
	"context"
	"time"

	"github.com/campusconnect/campus-scheduler/internal/audit"
	domain "github.com/campusconnect/campus-scheduler/internal/domain/schedule"
	"github.com/campusconnect/campus-scheduler/internal/httperr"
	"github.com/campusconnect/campus-scheduler/internal/models"
)

type UpdateScheduleInput struct {
	Date      string
	StartTime string
	EndTime   string
	Status    string
}

type UpdateSchedule struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateSchedule(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateSchedule {
	return &UpdateSchedule{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateSchedule) Execute(
	ctx context.Context,
	scheduleID uint,
	teacherID uint,
	in UpdateScheduleInput,
) (*models.Schedule, error) {

	s, err := uc.repo.FindByID(ctx, scheduleID)
	if err != nil {
		return nil, httperr.ErrBusiness("not_found")
	}
	if s.TeacherID != teacherID {
		return nil, httperr.ErrBusiness("not_found")
	}

	// A booked schedule is claimed by a live appointment. No edit may
	// touch it, status included: releasing booked back to available is
	// exclusively the Cancel transition's job.
	if err := domain.CanEdit(domain.Status(s.Status)); err != nil {
		return nil, err
	}

	if in.Date != "" {
		day, err := time.ParseInLocation(domain.DateLayout, in.Date, s.StartDateTime.Location())
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_range")
		}
		s.Date = in.Date
		// Day is denormalized from Date; always rewrite them together.
		s.Day = day.Weekday().String()
		s.StartDateTime = onDay(day, s.StartDateTime)
		s.EndDateTime = onDay(day, s.EndDateTime)
	}

	if in.StartTime != "" {
		t, err := parseHM(in.StartTime)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_range")
		}
		s.StartDateTime = atTime(s.StartDateTime, t)
	}

	if in.EndTime != "" {
		t, err := parseHM(in.EndTime)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_range")
		}
		s.EndDateTime = atTime(s.EndDateTime, t)
	}

	duration := minutesOfDay(s.EndDateTime) - minutesOfDay(s.StartDateTime)
	if duration <= 0 {
		return nil, httperr.ErrBusiness("invalid_range")
	}
	s.Duration = duration

	if in.Status != "" {
		if !domain.IsValidStatus(domain.Status(in.Status)) {
			return nil, httperr.ErrBusiness("invalid_status")
		}
		s.Status = in.Status
	}

	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &teacherID,
		Action:   "schedule_updated",
		Entity:   "schedule",
		EntityID: &s.ID,
	})

	return s, nil
}

func parseHM(hm string) (time.Time, error) {
	return time.Parse("15:04", hm)
}

func onDay(day time.Time, t time.Time) time.Time {
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), 0, 0,
		t.Location(),
	)
}

func atTime(d time.Time, t time.Time) time.Time {
	return time.Date(
		d.Year(), d.Month(), d.Day(),
		t.Hour(), t.Minute(), 0, 0,
		d.Location(),
	)
}

func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

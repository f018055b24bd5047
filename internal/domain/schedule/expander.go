package schedule

import (
	"time"

	"github.com/campusconnect/campus-scheduler/internal/httperr"
	"github.com/campusconnect/campus-scheduler/internal/models"
)

// MaxExpansionDays caps how many schedules a single request may create,
// which also catches fat-finger ranges (wrong year).
const MaxExpansionDays = 365

const DateLayout = "2006-01-02"

// Expand turns one {start, end} range into one schedule per calendar day
// in the inclusive range, all sharing the same time-of-day window.
//
// Duration comes from the time-of-day difference only; the calendar-day
// span never contributes, even when the range covers multiple days.
func Expand(teacherID uint, start, end time.Time, status Status) ([]models.Schedule, error) {
	if status == "" {
		status = StatusAvailable
	}
	if !IsValidStatus(status) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	duration := minutesOfDay(end) - minutesOfDay(start)
	if duration <= 0 {
		return nil, httperr.ErrBusiness("invalid_range")
	}

	loc := start.Location()
	startDate := dayOf(start)
	lastDate := dayOf(end)

	if lastDate.Before(startDate) {
		return []models.Schedule{}, nil
	}

	days := int(lastDate.Sub(startDate).Hours()/24) + 1
	if days > MaxExpansionDays {
		return nil, httperr.ErrBusiness("range_too_large")
	}

	out := make([]models.Schedule, 0, days)
	for d := startDate; !d.After(lastDate); d = d.AddDate(0, 0, 1) {
		dayStart := time.Date(d.Year(), d.Month(), d.Day(), start.Hour(), start.Minute(), 0, 0, loc)
		dayEnd := time.Date(d.Year(), d.Month(), d.Day(), end.Hour(), end.Minute(), 0, 0, loc)

		out = append(out, models.Schedule{
			TeacherID:     teacherID,
			Date:          d.Format(DateLayout),
			Day:           d.Weekday().String(),
			StartDateTime: dayStart,
			EndDateTime:   dayEnd,
			Duration:      duration,
			Status:        string(status),
		})
	}

	return out, nil
}

func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

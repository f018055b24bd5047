package schedule

import (
	"context"

	"github.com/campusconnect/campus-scheduler/internal/clock"
	domain "github.com/campusconnect/campus-scheduler/internal/domain/schedule"
	"github.com/campusconnect/campus-scheduler/internal/dto"
	"github.com/campusconnect/campus-scheduler/internal/models"
)

type ListSchedules struct {
	repo domain.Repository
}

func NewListSchedules(repo domain.Repository) *ListSchedules {
	return &ListSchedules{repo: repo}
}

func (uc *ListSchedules) Execute(
	ctx context.Context,
	teacherID uint,
	f domain.ListFilter,
) ([]dto.ScheduleListDTO, int64, error) {

	schedules, total, err := uc.repo.ListForTeacher(ctx, teacherID, f)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.ScheduleListDTO, 0, len(schedules))
	for i := range schedules {
		out = append(out, FormatSchedule(&schedules[i]))
	}

	return out, total, nil
}

// ======================================================
// AVAILABLE SCHEDULES (student-facing)
// ======================================================

type ListAvailableSchedules struct {
	repo  domain.Repository
	clock clock.Clock
}

func NewListAvailableSchedules(
	repo domain.Repository,
	clk clock.Clock,
) *ListAvailableSchedules {
	return &ListAvailableSchedules{
		repo:  repo,
		clock: clk,
	}
}

// Execute offers only future-or-today available schedules; stale
// past-dated ones are excluded even if never explicitly expired.
func (uc *ListAvailableSchedules) Execute(
	ctx context.Context,
	teacherID uint,
) ([]dto.ScheduleListDTO, error) {

	schedules, err := uc.repo.GetAvailable(ctx, teacherID, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	out := make([]dto.ScheduleListDTO, 0, len(schedules))
	for i := range schedules {
		out = append(out, FormatSchedule(&schedules[i]))
	}

	return out, nil
}

// FormatSchedule derives the display fields from the canonical
// timestamps at read time.
func FormatSchedule(s *models.Schedule) dto.ScheduleListDTO {
	return dto.ScheduleListDTO{
		ID:            s.ID,
		TeacherID:     s.TeacherID,
		Date:          s.Date,
		Day:           s.Day,
		StartTime:     s.StartDateTime.Format("15:04"),
		EndTime:       s.EndDateTime.Format("15:04"),
		Duration:      s.Duration,
		Status:        s.Status,
		FormattedDate: s.StartDateTime.Format("Monday, January 2, 2006"),
		FormattedTime: s.StartDateTime.Format("03:04 PM") + " - " + s.EndDateTime.Format("03:04 PM"),
	}
}

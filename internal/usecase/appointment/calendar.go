package appointment

import (
	"context"

	domain "github.com/campusconnect/campus-scheduler/internal/domain/appointment"
	"github.com/campusconnect/campus-scheduler/internal/dto"
)

type GetApprovedEvents struct {
	repo domain.Repository
}

func NewGetApprovedEvents(repo domain.Repository) *GetApprovedEvents {
	return &GetApprovedEvents{repo: repo}
}

// Execute shapes the user's approved appointments for calendar display.
func (uc *GetApprovedEvents) Execute(
	ctx context.Context,
	userID uint,
	role string,
) ([]dto.CalendarEventDTO, error) {

	events, err := uc.repo.GetApproved(ctx, userID, role)
	if err != nil {
		return nil, err
	}

	out := make([]dto.CalendarEventDTO, 0, len(events))
	for i := range events {
		ev := &events[i]
		d := dto.CalendarEventDTO{
			ID:          ev.ID,
			Title:       ev.Title,
			StudentName: ev.Student.DisplayName(),
			TeacherName: ev.Teacher.DisplayName(),
			MeetingLink: ev.MeetingLink,
		}

		if ev.Schedule != nil {
			d.Start = ev.Schedule.Date + "T" + ev.Schedule.StartDateTime.Format("15:04:05")
			d.End = ev.Schedule.Date + "T" + ev.Schedule.EndDateTime.Format("15:04:05")
			d.StartTime = ev.Schedule.StartDateTime.Format("Jan 2, 2006 3pm")
			d.EndTime = ev.Schedule.EndDateTime.Format("Jan 2, 2006 3pm")
		}

		out = append(out, d)
	}

	return out, nil
}

package appointment

import (
	"context"

	domain "github.com/campusconnect/campus-scheduler/internal/domain/appointment"
	"github.com/campusconnect/campus-scheduler/internal/dto"
	"github.com/campusconnect/campus-scheduler/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	userID uint,
	role string,
	f domain.ListFilter,
) ([]dto.AppointmentListDTO, int64, error) {

	events, total, err := uc.repo.ListForUser(ctx, userID, role, f)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(events))
	for i := range events {
		out = append(out, formatAppointment(&events[i]))
	}

	return out, total, nil
}

func formatAppointment(ev *models.Event) dto.AppointmentListDTO {
	d := dto.AppointmentListDTO{
		ID:          ev.ID,
		Title:       ev.Title,
		Status:      ev.Status,
		StudentName: ev.Student.DisplayName(),
		TeacherName: ev.Teacher.DisplayName(),
		MeetingLink: ev.MeetingLink,
		Notes:       ev.Notes,
	}

	if ev.Schedule != nil {
		d.Date = ev.Schedule.Date
		d.Time = ev.Schedule.StartDateTime.Format("15:04")
		d.Duration = ev.Schedule.Duration
	}

	return d
}

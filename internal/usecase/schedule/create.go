package schedule

import (
	"context"
	"time"

	"github.com/campusconnect/campus-scheduler/internal/audit"
	domain "github.com/campusconnect/campus-scheduler/internal/domain/schedule"
	"github.com/campusconnect/campus-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateSchedulesInput struct {
	StartDateTime time.Time
	EndDateTime   time.Time
	Status        string
}

// ======================================================
// USE CASE
// ======================================================

type CreateSchedules struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateSchedules(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateSchedules {
	return &CreateSchedules{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateSchedules) Execute(
	ctx context.Context,
	teacherID uint,
	in CreateSchedulesInput,
) ([]models.Schedule, error) {

	schedules, err := domain.Expand(
		teacherID,
		in.StartDateTime,
		in.EndDateTime,
		domain.Status(in.Status),
	)
	if err != nil {
		return nil, err
	}

	if len(schedules) == 0 {
		return schedules, nil
	}

	if err := uc.repo.CreateBatch(ctx, schedules); err != nil {
		return nil, err
	}

	count := uint(len(schedules))
	uc.audit.Dispatch(audit.Event{
		UserID: &teacherID,
		Action: "schedules_created",
		Entity: "schedule",
		Metadata: map[string]any{
			"count":      count,
			"first_date": schedules[0].Date,
			"last_date":  schedules[len(schedules)-1].Date,
		},
	})

	return schedules, nil
}

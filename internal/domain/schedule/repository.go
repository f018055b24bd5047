package schedule

import (
	"context"
	"time"

	"github.com/campusconnect/campus-scheduler/internal/models"
)

type ListFilter struct {
	Status  string
	Search  string
	Page    int
	PerPage int
}

type Repository interface {
	// CreateBatch persists the whole batch in one transaction; a failure
	// on any schedule rolls back every one of them.
	CreateBatch(ctx context.Context, schedules []models.Schedule) error

	FindByID(ctx context.Context, id uint) (*models.Schedule, error)

	// GetAvailable returns available schedules dated today or later,
	// soonest first.
	GetAvailable(ctx context.Context, teacherID uint, today time.Time) ([]models.Schedule, error)

	ListForTeacher(ctx context.Context, teacherID uint, f ListFilter) ([]models.Schedule, int64, error)

	// UpdateStatus is a conditional write: the row is only updated when
	// its current status still equals from. A stale status yields a
	// status_conflict business error.
	UpdateStatus(ctx context.Context, id uint, from, to Status) error

	Update(ctx context.Context, s *models.Schedule) error
	Delete(ctx context.Context, id uint) error

	HasAny(ctx context.Context, teacherID uint) (bool, error)
}

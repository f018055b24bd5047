package appointment

import (
	"context"

	"github.com/campusconnect/campus-scheduler/internal/models"
)

type ListFilter struct {
	Status  string
	Search  string
	Page    int
	PerPage int
}

type Repository interface {
	// -------- Users --------
	GetUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Event (create / claim) --------

	// CreateWithSlotClaim creates the event and flips its schedule from
	// available to booked as one atomic unit. When another booking
	// already claimed the schedule, nothing is written and the caller
	// observes slot_unavailable.
	CreateWithSlotClaim(
		ctx context.Context,
		ev *models.Event,
	) error

	// -------- Event (state change) --------
	GetForTeacher(
		ctx context.Context,
		eventID uint,
		teacherID uint,
	) (*models.Event, error)

	Update(
		ctx context.Context,
		ev *models.Event,
	) error

	// UpdateWithSlotRelease persists the event and returns its schedule
	// from booked to available in the same transaction.
	UpdateWithSlotRelease(
		ctx context.Context,
		ev *models.Event,
		scheduleID uint,
	) error

	// -------- Queries --------
	ListForUser(
		ctx context.Context,
		userID uint,
		role string,
		f ListFilter,
	) ([]models.Event, int64, error)

	GetApproved(
		ctx context.Context,
		userID uint,
		role string,
	) ([]models.Event, error)

	CountByStatus(
		ctx context.Context,
		status string,
	) (int64, error)
}

package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/campusconnect/campus-scheduler/internal/domain/appointment"
	schedDomain "github.com/campusconnect/campus-scheduler/internal/domain/schedule"
	"github.com/campusconnect/campus-scheduler/internal/httperr"
	"github.com/campusconnect/campus-scheduler/internal/models"
)

type EventGormRepository struct {
	db *gorm.DB
}

func NewEventGormRepository(db *gorm.DB) *EventGormRepository {
	return &EventGormRepository{db: db}
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *EventGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Preload("Profile").
		First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Event (create / claim)
// --------------------------------------------------

// CreateWithSlotClaim flips the schedule available -> booked and
// creates the event in one transaction. The conditional update closes
// the race between two students reading "available" at the same time:
// the loser's update touches zero rows and the whole booking rolls
// back as slot_unavailable.
func (r *EventGormRepository) CreateWithSlotClaim(
	ctx context.Context,
	ev *models.Event,
) error {
	if ev.ScheduleID == nil {
		return httperr.ErrBusiness("slot_unavailable")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		res := tx.Model(&models.Schedule{}).
			Where(
				"id = ? AND status = ?",
				*ev.ScheduleID,
				string(schedDomain.StatusAvailable),
			).
			Update("status", string(schedDomain.StatusBooked))

		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrBusiness("slot_unavailable")
		}

		return tx.Create(ev).Error
	})
}

// --------------------------------------------------
// Event (state change)
// --------------------------------------------------

func (r *EventGormRepository) GetForTeacher(
	ctx context.Context,
	eventID uint,
	teacherID uint,
) (*models.Event, error) {

	var ev models.Event
	if err := r.db.WithContext(ctx).
		Preload("Student.Profile").
		Preload("Schedule").
		Where("id = ? AND teacher_id = ?", eventID, teacherID).
		First(&ev).Error; err != nil {
		return nil, err
	}

	return &ev, nil
}

func (r *EventGormRepository) Update(
	ctx context.Context,
	ev *models.Event,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Event{}).
		Where("id = ?", ev.ID).
		Updates(map[string]any{
			"status": ev.Status,
			"notes":  ev.Notes,
		}).Error
}

// UpdateWithSlotRelease applies the event write and the booked ->
// available release together, so a cancelled appointment never leaves
// its schedule stuck in either state.
func (r *EventGormRepository) UpdateWithSlotRelease(
	ctx context.Context,
	ev *models.Event,
	scheduleID uint,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Model(&models.Event{}).
			Where("id = ?", ev.ID).
			Update("status", ev.Status).Error; err != nil {
			return err
		}

		res := tx.Model(&models.Schedule{}).
			Where(
				"id = ? AND status = ?",
				scheduleID,
				string(schedDomain.StatusBooked),
			).
			Update("status", string(schedDomain.StatusAvailable))

		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrBusiness("status_conflict")
		}

		return nil
	})
}

// --------------------------------------------------
// Queries
// --------------------------------------------------

func (r *EventGormRepository) ListForUser(
	ctx context.Context,
	userID uint,
	role string,
	f domain.ListFilter,
) ([]models.Event, int64, error) {

	scopeColumn := "student_id"
	if role == models.RoleTeacher {
		scopeColumn = "teacher_id"
	}

	q := r.db.WithContext(ctx).
		Model(&models.Event{}).
		Where(scopeColumn+" = ?", userID)

	if f.Status != "" && f.Status != "all" {
		q = q.Where("status = ?", f.Status)
	}

	if f.Search != "" {
		q = q.Where("title LIKE ?", "%"+f.Search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	perPage := f.PerPage
	if perPage < 1 {
		perPage = 10
	}

	var events []models.Event
	if err := q.
		Preload("Student.Profile").
		Preload("Teacher.Profile").
		Preload("Schedule").
		Order("created_at DESC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&events).Error; err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

func (r *EventGormRepository) GetApproved(
	ctx context.Context,
	userID uint,
	role string,
) ([]models.Event, error) {

	scopeColumn := "student_id"
	if role == models.RoleTeacher {
		scopeColumn = "teacher_id"
	}

	var events []models.Event
	if err := r.db.WithContext(ctx).
		Preload("Student.Profile").
		Preload("Teacher.Profile").
		Preload("Schedule").
		Where(scopeColumn+" = ? AND status = ?", userID, string(domain.StatusApproved)).
		Find(&events).Error; err != nil {
		return nil, err
	}

	return events, nil
}

func (r *EventGormRepository) CountByStatus(
	ctx context.Context,
	status string,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Event{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Compile-time check
var _ domain.Repository = (*EventGormRepository)(nil)

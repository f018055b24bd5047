package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/campusconnect/campus-scheduler/internal/domain/schedule"
	"github.com/campusconnect/campus-scheduler/internal/httperr"
	"github.com/campusconnect/campus-scheduler/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Create
// --------------------------------------------------

func (r *ScheduleGormRepository) CreateBatch(
	ctx context.Context,
	schedules []models.Schedule,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range schedules {
			if err := tx.Create(&schedules[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// --------------------------------------------------
// Queries
// --------------------------------------------------

func (r *ScheduleGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.Schedule, error) {

	var s models.Schedule
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ScheduleGormRepository) GetAvailable(
	ctx context.Context,
	teacherID uint,
	today time.Time,
) ([]models.Schedule, error) {

	var schedules []models.Schedule
	if err := r.db.WithContext(ctx).
		Where(
			"teacher_id = ? AND status = ? AND date >= ?",
			teacherID,
			string(domain.StatusAvailable),
			today.Format(domain.DateLayout),
		).
		Order("date ASC").
		Order("start_date_time ASC").
		Find(&schedules).Error; err != nil {
		return nil, err
	}

	return schedules, nil
}

func (r *ScheduleGormRepository) ListForTeacher(
	ctx context.Context,
	teacherID uint,
	f domain.ListFilter,
) ([]models.Schedule, int64, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Schedule{}).
		Where("teacher_id = ?", teacherID)

	if f.Status != "" && f.Status != "all" {
		q = q.Where("status = ?", f.Status)
	}

	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("date LIKE ? OR day LIKE ?", like, like)
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

	var schedules []models.Schedule
	if err := q.
		Order("date DESC").
		Order("start_date_time DESC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&schedules).Error; err != nil {
		return nil, 0, err
	}

	return schedules, total, nil
}

func (r *ScheduleGormRepository) HasAny(
	ctx context.Context,
	teacherID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Schedule{}).
		Where("teacher_id = ?", teacherID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Mutations
// --------------------------------------------------

// UpdateStatus only writes when the current status still matches from.
// A zero-row update means someone else got there first.
func (r *ScheduleGormRepository) UpdateStatus(
	ctx context.Context,
	id uint,
	from, to domain.Status,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Schedule{}).
		Where("id = ? AND status = ?", id, string(from)).
		Update("status", string(to))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("status_conflict")
	}
	return nil
}

func (r *ScheduleGormRepository) Update(
	ctx context.Context,
	s *models.Schedule,
) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *ScheduleGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Schedule{}, id).Error
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)

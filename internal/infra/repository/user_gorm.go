package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/campusconnect/campus-scheduler/internal/domain/user"
	"github.com/campusconnect/campus-scheduler/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) FindByID(
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

func (r *UserGormRepository) List(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.User, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.User{})

	if f.Role != "" && f.Role != "all" {
		q = q.Where("role = ?", f.Role)
	}

	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("name LIKE ? OR email LIKE ?", like, like)
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

	var users []models.User
	if err := q.
		Preload("Profile").
		Order("created_at DESC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r *UserGormRepository) EmailTaken(
	ctx context.Context,
	email string,
	excludeID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserGormRepository) CreateWithProfile(
	ctx context.Context,
	u *models.User,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// GORM persists the associated profile with the user row.
		return tx.Create(u).Error
	})
}

func (r *UserGormRepository) UpdateWithProfile(
	ctx context.Context,
	u *models.User,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Model(&models.User{}).
			Where("id = ?", u.ID).
			Updates(map[string]any{
				"name":  u.Name,
				"email": u.Email,
			}).Error; err != nil {
			return err
		}

		if u.Profile == nil {
			return nil
		}

		return tx.Model(&models.Profile{}).
			Where("user_id = ?", u.ID).
			Updates(map[string]any{
				"first_name": u.Profile.FirstName,
				"last_name":  u.Profile.LastName,
				"phone":      u.Profile.Phone,
				"department": u.Profile.Department,
				"bio":        u.Profile.Bio,
			}).Error
	})
}

func (r *UserGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {
	res := r.db.WithContext(ctx).Delete(&models.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*UserGormRepository)(nil)

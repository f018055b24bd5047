package models

import "time"

// Schedule is a single bookable time window owned by a teacher.
// Date and Day are stored denormalized; Day must always be rewritten
// alongside Date.
type Schedule struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TeacherID uint `gorm:"index;not null" json:"teacher_id"`
	Teacher   User `gorm:"foreignKey:TeacherID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"teacher,omitempty"`

	Date string `gorm:"size:10;index;not null" json:"date"`
	Day  string `gorm:"size:10;not null" json:"day"`

	StartDateTime time.Time `gorm:"not null" json:"start_date_time"`
	EndDateTime   time.Time `gorm:"not null" json:"end_date_time"`
	Duration      int       `gorm:"not null" json:"duration"`

	Status string `gorm:"size:20;default:'available';index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package models

import "time"

// Event is one booking transaction between a teacher, a student and a
// schedule. Events are never deleted.
type Event struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TeacherID uint `gorm:"index;not null" json:"teacher_id"`
	Teacher   User `gorm:"foreignKey:TeacherID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"teacher,omitempty"`

	StudentID uint `gorm:"index;not null" json:"student_id"`
	Student   User `gorm:"foreignKey:StudentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"student,omitempty"`

	// Nullable: deleting a schedule clears the reference on the events
	// that already ran their course, the event row itself stays.
	ScheduleID *uint     `gorm:"index" json:"schedule_id"`
	Schedule   *Schedule `gorm:"foreignKey:ScheduleID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"schedule,omitempty"`

	Title string `gorm:"size:255" json:"title"`

	// Both stay empty when meeting provisioning failed; the booking
	// itself is unaffected.
	MeetingID   *string `gorm:"size:64" json:"meeting_id"`
	MeetingLink *string `gorm:"size:255" json:"meeting_link"`

	Status string `gorm:"size:20;default:'Pending';index" json:"status"`
	Notes  string `gorm:"size:1000" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

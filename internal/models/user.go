package models

import "time"

const (
	RoleTeacher = "teacher"
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:20;default:'student'" json:"role"`

	Profile *Profile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"profile,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayName prefers the profile full name over the account name.
func (u *User) DisplayName() string {
	if u.Profile != nil {
		first := u.Profile.FirstName
		last := u.Profile.LastName
		switch {
		case first != "" && last != "":
			return first + " " + last
		case first != "":
			return first
		case last != "":
			return last
		}
	}
	return u.Name
}

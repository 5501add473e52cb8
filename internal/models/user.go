package models

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

const (
	UserTypeStudent = "student"
	UserTypeTeacher = "teacher"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username     string `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Email        string `gorm:"size:254;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	FirstName    string `gorm:"size:30;not null" json:"first_name"`
	LastName     string `gorm:"size:30;not null" json:"last_name"`
	UserType     string `gorm:"size:10;not null;default:'student'" json:"user_type"`

	PhoneNumber    *string         `gorm:"size:17" json:"phone_number"`
	ProfilePicture *string         `gorm:"size:255" json:"profile_picture"`
	Bio            string          `gorm:"size:500" json:"bio"`
	DateOfBirth    *datatypes.Date `json:"date_of_birth"`
	Address        string          `gorm:"size:200" json:"address"`
	IsActive       bool            `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) IsStudent() bool {
	return u.UserType == UserTypeStudent
}

func (u *User) IsTeacher() bool {
	return u.UserType == UserTypeTeacher
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

func (u *User) FullNameOrUsername() string {
	if name := u.FullName(); name != "" {
		return name
	}
	return u.Username
}

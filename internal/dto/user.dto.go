package dto

import (
	"time"

	"github.com/Lukas18007/dyschool/internal/models"
)

type UserDTO struct {
	ID             uint    `json:"id"`
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	FullName       string  `json:"full_name"`
	UserType       string  `json:"user_type"`
	IsStudent      bool    `json:"is_student"`
	IsTeacher      bool    `json:"is_teacher"`
	PhoneNumber    *string `json:"phone_number"`
	Bio            string  `json:"bio"`
	DateOfBirth    *string `json:"date_of_birth"`
	Address        string  `json:"address"`
	ProfilePicture *string `json:"profile_picture"`
}

func ToUserDTO(u *models.User) UserDTO {
	out := UserDTO{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		FullName:       u.FullNameOrUsername(),
		UserType:       u.UserType,
		IsStudent:      u.IsStudent(),
		IsTeacher:      u.IsTeacher(),
		PhoneNumber:    u.PhoneNumber,
		Bio:            u.Bio,
		Address:        u.Address,
		ProfilePicture: u.ProfilePicture,
	}
	if u.DateOfBirth != nil {
		d := time.Time(*u.DateOfBirth).Format("2006-01-02")
		out.DateOfBirth = &d
	}
	return out
}

// PersonDTO is the short form used inside lists.
type PersonDTO struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

func ToPersonDTO(u *models.User) PersonDTO {
	return PersonDTO{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullNameOrUsername(),
	}
}

// TeacherSummaryDTO is one search result.
type TeacherSummaryDTO struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Bio      string `json:"bio"`
}

func ToTeacherSummaries(users []models.User) []TeacherSummaryDTO {
	out := make([]TeacherSummaryDTO, 0, len(users))
	for i := range users {
		out = append(out, TeacherSummaryDTO{
			ID:       users[i].ID,
			Username: users[i].Username,
			FullName: users[i].FullNameOrUsername(),
			Bio:      users[i].Bio,
		})
	}
	return out
}

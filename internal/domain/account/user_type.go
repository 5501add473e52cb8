package account

import "github.com/Lukas18007/dyschool/internal/models"

type UserType string

const (
	Student UserType = models.UserTypeStudent
	Teacher UserType = models.UserTypeTeacher
)

func (t UserType) Valid() bool {
	return t == Student || t == Teacher
}

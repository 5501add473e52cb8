package testutil

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Lukas18007/dyschool/internal/models"
)

// Password is the clear-text password of every fixture user.
const Password = "fixture-pass"

func CreateUser(t *testing.T, db *gorm.DB, username, userType string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(Password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	u := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
		FirstName:    username,
		LastName:     "Silva",
		UserType:     userType,
		IsActive:     true,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return u
}

// CreateTopic creates the topic, and its specialization when missing.
func CreateTopic(t *testing.T, db *gorm.DB, specialization, topic string) *models.LessonTopic {
	t.Helper()

	spec := models.Specialization{Name: specialization}
	if err := db.Where("name = ?", specialization).FirstOrCreate(&spec).Error; err != nil {
		t.Fatalf("create specialization %s: %v", specialization, err)
	}

	lt := &models.LessonTopic{SpecializationID: spec.ID, Name: topic}
	if err := db.Create(lt).Error; err != nil {
		t.Fatalf("create topic %s: %v", topic, err)
	}
	lt.Specialization = spec
	return lt
}

// CreateProfile gives the teacher an available profile covering topics and
// their specializations.
func CreateProfile(t *testing.T, db *gorm.DB, userID uint, rate float64, topics ...*models.LessonTopic) *models.TeacherProfile {
	t.Helper()

	p := &models.TeacherProfile{
		UserID:          userID,
		HourlyRate:      rate,
		ExperienceYears: 5,
		About:           "Professor de música",
		IsAvailable:     true,
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("create profile: %v", err)
	}

	for _, topic := range topics {
		var spec models.Specialization
		if err := db.First(&spec, topic.SpecializationID).Error; err != nil {
			t.Fatalf("load specialization: %v", err)
		}
		if err := db.Model(p).Association("Specializations").Append(&spec); err != nil {
			t.Fatalf("link specialization: %v", err)
		}

		var lt models.LessonTopic
		if err := db.First(&lt, topic.ID).Error; err != nil {
			t.Fatalf("load topic: %v", err)
		}
		if err := db.Model(p).Association("LessonTopics").Append(&lt); err != nil {
			t.Fatalf("link topic: %v", err)
		}
	}
	return p
}

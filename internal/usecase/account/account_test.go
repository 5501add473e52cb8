package account

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/Lukas18007/dyschool/internal/httperr"
	"github.com/Lukas18007/dyschool/internal/infra/repository"
	"github.com/Lukas18007/dyschool/internal/models"
	"github.com/Lukas18007/dyschool/internal/testutil"
)

func validInput(username, email, userType string) RegisterInput {
	return RegisterInput{
		Username:        username,
		Email:           email,
		Password:        "s3cure-pass",
		PasswordConfirm: "s3cure-pass",
		FirstName:       "Ana",
		LastName:        "Souza",
		UserType:        userType,
	}
}

func TestRegisterSetsUserType(t *testing.T) {
	db := testutil.NewDB(t)
	uc := NewRegister(repository.NewAccountGormRepository(db), nil).WithHashCost(bcrypt.MinCost)
	ctx := context.Background()

	cases := []struct {
		username string
		userType string
		student  bool
	}{
		{"ana", models.UserTypeStudent, true},
		{"bruno", models.UserTypeTeacher, false},
	}

	for _, tc := range cases {
		u, err := uc.Execute(ctx, validInput(tc.username, tc.username+"@example.com", tc.userType))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.username, err)
		}
		if u.UserType != tc.userType {
			t.Fatalf("%s: expected %s, got %s", tc.username, tc.userType, u.UserType)
		}
		if u.IsStudent() != tc.student || u.IsTeacher() == tc.student {
			t.Fatalf("%s: role flags inconsistent", tc.username)
		}
		if u.PasswordHash == "s3cure-pass" {
			t.Fatalf("%s: password stored in clear", tc.username)
		}
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := testutil.NewDB(t)
	uc := NewRegister(repository.NewAccountGormRepository(db), nil).WithHashCost(bcrypt.MinCost)
	ctx := context.Background()

	first, err := uc.Execute(ctx, validInput("ana", "ana@example.com", models.UserTypeStudent))
	if err != nil {
		t.Fatalf("first registration: %v", err)
	}

	_, err = uc.Execute(ctx, validInput("ana2", "ANA@example.com", models.UserTypeStudent))
	if !httperr.IsKind(err, httperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	be := err.(httperr.BusinessError)
	if be.Fields["email"] != "This email address is already in use." {
		t.Fatalf("expected email field error, got %v", be.Fields)
	}

	var users []models.User
	db.Find(&users)
	if len(users) != 1 || users[0].ID != first.ID || users[0].Username != "ana" {
		t.Fatalf("first user should be untouched, got %+v", users)
	}
}

func TestRegisterValidation(t *testing.T) {
	db := testutil.NewDB(t)
	uc := NewRegister(repository.NewAccountGormRepository(db), nil).WithHashCost(bcrypt.MinCost)
	ctx := context.Background()

	if _, err := uc.Execute(ctx, validInput("taken", "taken@example.com", models.UserTypeStudent)); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	cases := []struct {
		name  string
		edit  func(in *RegisterInput)
		field string
	}{
		{"short password", func(in *RegisterInput) { in.Password, in.PasswordConfirm = "abc", "abc" }, "password"},
		{"numeric password", func(in *RegisterInput) { in.Password, in.PasswordConfirm = "12345678901", "12345678901" }, "password"},
		{"password equals username", func(in *RegisterInput) { in.Password, in.PasswordConfirm = "carla-music", "carla-music" }, "password"},
		{"confirmation mismatch", func(in *RegisterInput) { in.PasswordConfirm = "other-pass" }, "password_confirm"},
		{"bad user type", func(in *RegisterInput) { in.UserType = "admin" }, "user_type"},
		{"bad phone", func(in *RegisterInput) { in.PhoneNumber = "12ab" }, "phone_number"},
		{"bad dob", func(in *RegisterInput) { in.DateOfBirth = "31/12/2000" }, "date_of_birth"},
		{"duplicate username", func(in *RegisterInput) { in.Username = "taken" }, "username"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput("carla-music", "carla@example.com", models.UserTypeStudent)
			tc.edit(&in)

			_, err := uc.Execute(ctx, in)
			be, ok := err.(httperr.BusinessError)
			if !ok || be.Kind != httperr.KindValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
			if _, ok := be.Fields[tc.field]; !ok {
				t.Fatalf("expected error on %s, got %v", tc.field, be.Fields)
			}
		})
	}

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Fatalf("failed registrations must not create users, got %d", count)
	}
}

func TestRegisterStoresOptionalFields(t *testing.T) {
	db := testutil.NewDB(t)
	uc := NewRegister(repository.NewAccountGormRepository(db), nil).WithHashCost(bcrypt.MinCost)

	in := validInput("dora", "dora@example.com", models.UserTypeTeacher)
	in.PhoneNumber = "+5511999998888"
	in.DateOfBirth = "1990-05-17"
	in.Bio = "Pianista"

	u, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var stored models.User
	if err := db.First(&stored, u.ID).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if stored.PhoneNumber == nil || *stored.PhoneNumber != "+5511999998888" {
		t.Fatalf("phone not stored: %v", stored.PhoneNumber)
	}
	if stored.DateOfBirth == nil {
		t.Fatalf("date of birth not stored")
	}
	if stored.Bio != "Pianista" {
		t.Fatalf("bio not stored: %q", stored.Bio)
	}
}

func TestSignIn(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewAccountGormRepository(db)
	ctx := context.Background()

	if _, err := NewRegister(repo, nil).WithHashCost(bcrypt.MinCost).
		Execute(ctx, validInput("ana", "ana@example.com", models.UserTypeStudent)); err != nil {
		t.Fatalf("register: %v", err)
	}

	uc := NewSignIn(repo)

	u, err := uc.Execute(ctx, "ana", "s3cure-pass")
	if err != nil {
		t.Fatalf("expected sign in to succeed: %v", err)
	}
	if u.Username != "ana" {
		t.Fatalf("unexpected user: %s", u.Username)
	}

	_, wrongPass := uc.Execute(ctx, "ana", "nope-nope")
	_, unknown := uc.Execute(ctx, "ghost", "s3cure-pass")

	for _, err := range []error{wrongPass, unknown} {
		if !httperr.IsBusiness(err, "invalid_credentials") {
			t.Fatalf("expected invalid_credentials, got %v", err)
		}
	}
	if wrongPass.Error() != unknown.Error() {
		t.Fatalf("unknown user and wrong password must look the same")
	}
}

func TestGetUserNotFound(t *testing.T) {
	db := testutil.NewDB(t)
	_, err := NewGetUser(repository.NewAccountGormRepository(db)).Execute(context.Background(), 99)
	if !httperr.IsKind(err, httperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

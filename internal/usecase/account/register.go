package account

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	"github.com/Lukas18007/dyschool/internal/audit"
	domain "github.com/Lukas18007/dyschool/internal/domain/account"
	"github.com/Lukas18007/dyschool/internal/httperr"
	"github.com/Lukas18007/dyschool/internal/models"
	"github.com/Lukas18007/dyschool/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	PasswordConfirm string
	FirstName       string
	LastName        string
	UserType        string

	PhoneNumber    string
	Bio            string
	DateOfBirth    string
	Address        string
	ProfilePicture string
}

// ======================================================
// USE CASE
// ======================================================

type Register struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cost  int
}

func NewRegister(repo domain.Repository, audit *audit.Dispatcher) *Register {
	return &Register{
		repo:  repo,
		audit: audit,
		cost:  bcrypt.DefaultCost,
	}
}

// WithHashCost overrides the bcrypt cost.
func (uc *Register) WithHashCost(cost int) *Register {
	uc.cost = cost
	return uc
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Register) Execute(
	ctx context.Context,
	in RegisterInput,
) (*models.User, error) {

	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	// --------------------------------------------------
	// 1. Campos
	// --------------------------------------------------
	fields := map[string]string{}

	if !domain.UserType(in.UserType).Valid() {
		fields["user_type"] = "Select a valid choice."
	}
	if in.PhoneNumber != "" && !validators.IsPhone(in.PhoneNumber) {
		fields["phone_number"] = "Phone number must be entered in the format: '+999999999'. Up to 15 digits allowed."
	}

	var dob *datatypes.Date
	if in.DateOfBirth != "" {
		t, err := time.Parse("2006-01-02", in.DateOfBirth)
		if err != nil {
			fields["date_of_birth"] = "Enter a valid date."
		} else {
			d := datatypes.Date(t)
			dob = &d
		}
	}

	if in.Password != in.PasswordConfirm {
		fields["password_confirm"] = "The two password fields didn't match."
	} else if problem := validators.PasswordProblem(in.Password, username, email); problem != "" {
		fields["password"] = problem
	}

	// --------------------------------------------------
	// 2. Unicidade
	// --------------------------------------------------
	taken, err := uc.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		fields["email"] = "This email address is already in use."
	}

	taken, err = uc.repo.UsernameExists(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		fields["username"] = "A user with that username already exists."
	}

	if len(fields) > 0 {
		return nil, httperr.InvalidFields(fields)
	}

	// --------------------------------------------------
	// 3. Criação
	// --------------------------------------------------
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		UserType:     in.UserType,
		PhoneNumber:  optional(in.PhoneNumber),
		Bio:          in.Bio,
		DateOfBirth:  dob,
		Address:      in.Address,
		IsActive:     true,

		ProfilePicture: optional(in.ProfilePicture),
	}

	if err := uc.repo.CreateUser(ctx, user); err != nil {
		// lost a race against a concurrent sign-up
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.Invalid("email", "This email address is already in use.")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   audit.ActionUserRegistered,
		Entity:   "user",
		EntityID: &user.ID,
		Metadata: map[string]any{"user_type": user.UserType},
	})

	return user, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

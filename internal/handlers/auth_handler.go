package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lukas18007/dyschool/internal/dto"
	"github.com/Lukas18007/dyschool/internal/httperr"
	"github.com/Lukas18007/dyschool/internal/httpresp"
	"github.com/Lukas18007/dyschool/internal/middleware"
	"github.com/Lukas18007/dyschool/internal/models"
	"github.com/Lukas18007/dyschool/internal/session"
	"github.com/Lukas18007/dyschool/internal/usecase/account"
)

var errAlreadyAuthenticated = httperr.BusinessError{
	Kind:     httperr.KindConflict,
	Code:     "already_authenticated",
	Message:  "You are already signed in.",
	Redirect: "/",
}

type AuthHandler struct {
	register *account.Register
	signIn   *account.SignIn
	sessions *session.Manager
}

func NewAuthHandler(
	register *account.Register,
	signIn *account.SignIn,
	sessions *session.Manager,
) *AuthHandler {
	return &AuthHandler{
		register: register,
		signIn:   signIn,
		sessions: sessions,
	}
}

// --------- Requests ---------

type SignUpRequest struct {
	Username        string `json:"username" binding:"required,max=150,username"`
	Email           string `json:"email" binding:"required,email,max=254"`
	Password        string `json:"password" binding:"required"`
	PasswordConfirm string `json:"password_confirm" binding:"required"`
	FirstName       string `json:"first_name" binding:"required,max=30"`
	LastName        string `json:"last_name" binding:"required,max=30"`
	UserType        string `json:"user_type" binding:"required,oneof=student teacher"`

	PhoneNumber    string `json:"phone_number" binding:"omitempty,max=17,phone"`
	Bio            string `json:"bio" binding:"max=500"`
	DateOfBirth    string `json:"date_of_birth"`
	Address        string `json:"address" binding:"max=200"`
	ProfilePicture string `json:"profile_picture" binding:"max=255"`
}

type SignInRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) SignUp(c *gin.Context) {
	if _, ok := middleware.UserID(c); ok {
		httperr.Respond(c, errAlreadyAuthenticated)
		return
	}

	var req SignUpRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.register.Execute(c.Request.Context(), account.RegisterInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		UserType:        req.UserType,
		PhoneNumber:     req.PhoneNumber,
		Bio:             req.Bio,
		DateOfBirth:     req.DateOfBirth,
		Address:         req.Address,
		ProfilePicture:  req.ProfilePicture,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.startSession(c, http.StatusCreated, user, "Welcome to Dyschool, "+user.FullNameOrUsername()+"!")
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	if _, ok := middleware.UserID(c); ok {
		httperr.Respond(c, errAlreadyAuthenticated)
		return
	}

	var req SignInRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.signIn.Execute(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.startSession(c, http.StatusOK, user, "Welcome back, "+user.FullNameOrUsername()+"!")
}

// SignOut revokes the current session. It never fails for a signed-in caller.
func (h *AuthHandler) SignOut(c *gin.Context) {
	if id := c.GetString(middleware.ContextSessionID); id != "" {
		if err := h.sessions.Revoke(c.Request.Context(), id); err != nil {
			_ = c.Error(err)
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, "", -1, "/", "", c.Request.TLS != nil, true)

	httpresp.Message(c, http.StatusOK, "You have been successfully signed out.", "/sign-in/")
}

func (h *AuthHandler) startSession(c *gin.Context, status int, user *models.User, message string) {
	token, err := h.sessions.Issue(c.Request.Context(), user.ID, user.UserType)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		session.CookieName,
		token,
		int(h.sessions.TTL().Seconds()),
		"/",
		"",
		c.Request.TLS != nil,
		true,
	)

	c.JSON(status, gin.H{
		"user":     dto.ToUserDTO(user),
		"token":    token,
		"message":  message,
		"redirect": "/",
	})
}

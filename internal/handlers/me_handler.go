package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Lukas18007/dyschool/internal/dto"
	"github.com/Lukas18007/dyschool/internal/httperr"
	"github.com/Lukas18007/dyschool/internal/httpresp"
	"github.com/Lukas18007/dyschool/internal/middleware"
	"github.com/Lukas18007/dyschool/internal/usecase/account"
)

type MeHandler struct {
	getUser *account.GetUser
}

func NewMeHandler(getUser *account.GetUser) *MeHandler {
	return &MeHandler{getUser: getUser}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	user, err := h.getUser.Execute(c.Request.Context(), currentUserID(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"user": dto.ToUserDTO(user)})
}

// Home greets everyone and includes the caller when a session is present.
func (h *MeHandler) Home(c *gin.Context) {
	body := gin.H{
		"name":    "Dyschool",
		"message": "Find a music teacher and book your next lesson.",
		"user":    nil,
	}

	if userID, ok := middleware.UserID(c); ok {
		if user, err := h.getUser.Execute(c.Request.Context(), userID); err == nil {
			body["user"] = dto.ToUserDTO(user)
		}
	}

	httpresp.OK(c, body)
}

func Health(c *gin.Context) {
	httpresp.OK(c, gin.H{"status": "ok"})
}

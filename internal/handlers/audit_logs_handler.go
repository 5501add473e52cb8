package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Lukas18007/dyschool/internal/audit"
	"github.com/Lukas18007/dyschool/internal/httperr"
	"github.com/Lukas18007/dyschool/internal/httpresp"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	store *audit.Store
}

func NewAuditLogsHandler(store *audit.Store) *AuditLogsHandler {
	return &AuditLogsHandler{store: store}
}

// List shows the caller's own activity.
func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	// --------------------------------------------------
	// Filtros opcionais
	// --------------------------------------------------

	f := audit.Filter{
		UserID: currentUserID(c),
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Limit:  limit,
		Offset: (page - 1) * limit,
	}

	if from, err := time.Parse("2006-01-02", c.Query("from")); err == nil {
		f.From = &from
	}
	if to, err := time.Parse("2006-01-02", c.Query("to")); err == nil {
		end := to.Add(24 * time.Hour)
		f.To = &end
	}

	logs, total, err := h.store.List(c.Request.Context(), f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}

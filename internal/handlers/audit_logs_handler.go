package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/fortune-club/internal/httperr"
	"github.com/BruksfildServices01/fortune-club/internal/httpresp"
	"github.com/BruksfildServices01/fortune-club/internal/middleware"
	"github.com/BruksfildServices01/fortune-club/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	if !middleware.ActorFrom(c).Privileged {
		httperr.Forbid(c, "admin_only")
		return
	}

	action := c.Query("action")
	entity := c.Query("entity")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	page := httpresp.ParsePage(c, 50, 200)

	q := h.db.WithContext(c.Request.Context()).Model(&models.AuditLog{})

	// --------------------------------------------------
	// Optional filters
	// --------------------------------------------------

	if action != "" {
		q = q.Where("action = ?", action)
	}

	if entity != "" {
		q = q.Where("entity = ?", entity)
	}

	if fromStr != "" {
		from, err := time.Parse(time.DateOnly, fromStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_from", "Use the YYYY-MM-DD format.")
			return
		}
		q = q.Where("created_at >= ?", from)
	}

	if toStr != "" {
		to, err := time.Parse(time.DateOnly, toStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_to", "Use the YYYY-MM-DD format.")
			return
		}
		q = q.Where("created_at < ?", to.Add(24*time.Hour))
	}

	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Order("id DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&logs).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Paged(c, logs, page, total)
}

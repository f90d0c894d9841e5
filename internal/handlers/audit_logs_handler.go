package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booking-scheduler/internal/audit"
	"github.com/BruksfildServices01/booking-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/booking-scheduler/internal/httperr"
	"github.com/BruksfildServices01/booking-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/booking-scheduler/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logger  *audit.Logger
	catalog catalog.Repository
}

func NewAuditLogsHandler(logger *audit.Logger, catalog catalog.Repository) *AuditLogsHandler {
	return &AuditLogsHandler{logger: logger, catalog: catalog}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	pro, err := catalog.CurrentProfessional(c.Request.Context(), h.catalog, s)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	// --------------------------------------------------
	// Filtros opcionais (datas no fuso do profissional)
	// --------------------------------------------------

	f := audit.Filter{
		ProfessionalID: pro.ID,
		Action:         c.Query("action"),
		Entity:         c.Query("entity"),
		Page:           page,
		Limit:          limit,
	}

	loc := timezone.Location(pro.Timezone)

	if fromStr := c.Query("from"); fromStr != "" {
		if from, err := time.ParseInLocation("2006-01-02", fromStr, loc); err == nil {
			f.From = &from
		}
	}

	if toStr := c.Query("to"); toStr != "" {
		if to, err := time.ParseInLocation("2006-01-02", toStr, loc); err == nil {
			end := to.AddDate(0, 0, 1)
			f.To = &end
		}
	}

	logs, total, err := h.logger.List(c.Request.Context(), f)
	if err != nil {
		httperr.Internal(c, "audit_list_failed", "Erro ao listar logs.")
		return
	}

	httpresp.Page(c, logs, total, page, limit)
}

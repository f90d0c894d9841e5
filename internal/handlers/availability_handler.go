package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booking-scheduler/internal/dto"
	"github.com/BruksfildServices01/booking-scheduler/internal/httperr"
	"github.com/BruksfildServices01/booking-scheduler/internal/httpresp"
	ucAvailability "github.com/BruksfildServices01/booking-scheduler/internal/usecase/availability"
)

type AvailabilityHandler struct {
	getWeekly     *ucAvailability.GetWeeklySchedule
	replaceWeekly *ucAvailability.ReplaceWeeklySchedule
	exceptions    *ucAvailability.Exceptions
	resolveTimes  *ucAvailability.ResolveTimes
}

func NewAvailabilityHandler(
	getWeekly *ucAvailability.GetWeeklySchedule,
	replaceWeekly *ucAvailability.ReplaceWeeklySchedule,
	exceptions *ucAvailability.Exceptions,
	resolveTimes *ucAvailability.ResolveTimes,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		getWeekly:     getWeekly,
		replaceWeekly: replaceWeekly,
		exceptions:    exceptions,
		resolveTimes:  resolveTimes,
	}
}

// ======================================================
// WEEKLY
// ======================================================

func (h *AvailabilityHandler) GetWeekly(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	blocks, err := h.getWeekly.Mine(c.Request.Context(), s)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, blocks)
}

func (h *AvailabilityHandler) ReplaceWeekly(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	var req []dto.WeeklyDaySchedule
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.replaceWeekly.Execute(c.Request.Context(), s, req); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Agenda semanal atualizada.")
}

func (h *AvailabilityHandler) WeeklyOf(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	blocks, err := h.getWeekly.Of(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, blocks)
}

// ======================================================
// EXCEPTIONS
// ======================================================

func (h *AvailabilityHandler) ListExceptions(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	list, err := h.exceptions.Mine(c.Request.Context(), s)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, list)
}

func (h *AvailabilityHandler) ExceptionsOf(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	list, err := h.exceptions.Of(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, list)
}

func (h *AvailabilityHandler) AddException(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	var req dto.CreateExceptionRequest
	if !bindJSON(c, &req) {
		return
	}

	ex, err := h.exceptions.Add(c.Request.Context(), s, ucAvailability.AddExceptionInput{
		Date:        req.Date,
		IsAvailable: req.IsAvailable,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, ex)
}

func (h *AvailabilityHandler) DeleteException(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.exceptions.Delete(c.Request.Context(), s, id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Exceção removida.")
}

// ======================================================
// TIMES
// ======================================================

// Times: GET /availability/professional/:id/times?date=YYYY-MM-DD[&serviceId=N]
func (h *AvailabilityHandler) Times(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	var serviceID uint
	if raw := c.Query("serviceId"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || v == 0 {
			httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
			return
		}
		serviceID = uint(v)
	}

	slots, err := h.resolveTimes.Execute(c.Request.Context(), ucAvailability.ResolveTimesInput{
		ProfessionalID: id,
		Date:           date,
		ServiceID:      serviceID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, slots)
}

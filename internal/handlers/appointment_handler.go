package handlers

import (

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booking-scheduler/internal/dto"
	"github.com/BruksfildServices01/booking-scheduler/internal/httperr"
	"github.com/BruksfildServices01/booking-scheduler/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/booking-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create           *ucAppointment.CreateAppointment
	cancel           *ucAppointment.CancelAppointment
	complete         *ucAppointment.CompleteAppointment
	reschedule       *ucAppointment.RescheduleAppointment
	get              *ucAppointment.GetAppointment
	listClient       *ucAppointment.ListClientAppointments
	listProfessional *ucAppointment.ListProfessionalAppointments
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	cancel *ucAppointment.CancelAppointment,
	complete *ucAppointment.CompleteAppointment,
	reschedule *ucAppointment.RescheduleAppointment,
	get *ucAppointment.GetAppointment,
	listClient *ucAppointment.ListClientAppointments,
	listProfessional *ucAppointment.ListProfessionalAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:           create,
		cancel:           cancel,
		complete:         complete,
		reschedule:       reschedule,
		get:              get,
		listClient:       listClient,
		listProfessional: listProfessional,
	}
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	serviceID, ok := paramID(c, "serviceId")
	if !ok {
		return
	}

	var req dto.CreateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), s, ucAppointment.CreateAppointmentInput{
		ServiceID: serviceID,
		Date:      req.Date,
		StartTime: req.StartTime,
		Notes:     req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// CANCEL / COMPLETE
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if _, err := h.cancel.Execute(c.Request.Context(), s, id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.NoContent(c)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if _, err := h.complete.Execute(c.Request.Context(), s, id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.NoContent(c)
}

// ======================================================
// RESCHEDULE
// ======================================================

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req dto.RescheduleAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.reschedule.Execute(c.Request.Context(), s, ucAppointment.RescheduleAppointmentInput{
		AppointmentID: id,
		Date:          req.Date,
		StartTime:     req.StartTime,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// READ
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ap, err := h.get.Execute(c.Request.Context(), s, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) ListClient(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	list, err := h.listClient.Execute(c.Request.Context(), s)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, list)
}

// ListProfessional aceita ?date=YYYY-MM-DD ou ?year=&month=
func (h *AppointmentHandler) ListProfessional(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	year, ok := queryInt(c, "year")
	if !ok {
		return
	}
	month, ok := queryInt(c, "month")
	if !ok {
		return
	}

	list, err := h.listProfessional.Execute(c.Request.Context(), s, id, ucAppointment.ProfessionalAppointmentsFilter{
		Date:  c.Query("date"),
		Year:  year,
		Month: month,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, list)
}

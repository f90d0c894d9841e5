package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booking-scheduler/internal/dto"
	"github.com/BruksfildServices01/booking-scheduler/internal/httperr"
	"github.com/BruksfildServices01/booking-scheduler/internal/httpresp"
	ucCatalog "github.com/BruksfildServices01/booking-scheduler/internal/usecase/catalog"
)

type ProfessionalHandler struct {
	professionals *ucCatalog.Professionals
}

func NewProfessionalHandler(professionals *ucCatalog.Professionals) *ProfessionalHandler {
	return &ProfessionalHandler{professionals: professionals}
}

func (h *ProfessionalHandler) List(c *gin.Context) {
	list, err := h.professionals.List(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, list)
}

func (h *ProfessionalHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	pro, err := h.professionals.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, pro)
}

func (h *ProfessionalHandler) GetMe(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	pro, err := h.professionals.Me(c.Request.Context(), s)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, pro)
}

func (h *ProfessionalHandler) UpdateMe(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	var req dto.UpsertProfessionalRequest
	if !bindJSON(c, &req) {
		return
	}

	pro, err := h.professionals.UpsertMe(c.Request.Context(), s, ucCatalog.ProfileInput{
		Name:      req.Name,
		Specialty: req.Specialty,
		Bio:       req.Bio,
		Phone:     req.Phone,
		Timezone:  req.Timezone,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, pro)
}

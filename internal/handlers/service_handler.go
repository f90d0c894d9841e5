package handlers

import (

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booking-scheduler/internal/dto"
	"github.com/BruksfildServices01/booking-scheduler/internal/httperr"
	"github.com/BruksfildServices01/booking-scheduler/internal/httpresp"
	ucCatalog "github.com/BruksfildServices01/booking-scheduler/internal/usecase/catalog"
)

type ServiceHandler struct {
	services *ucCatalog.Services
}

func NewServiceHandler(services *ucCatalog.Services) *ServiceHandler {
	return &ServiceHandler{services: services}
}

// --------- Leitura ---------

func (h *ServiceHandler) List(c *gin.Context) {
	list, err := h.services.ListActive(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, list)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	svc, err := h.services.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, svc)
}

func (h *ServiceHandler) ListFrom(c *gin.Context) {
	id, ok := paramID(c, "professionalId")
	if !ok {
		return
	}

	list, err := h.services.ListFrom(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, list)
}

// --------- Escrita ---------

func (h *ServiceHandler) Create(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	var req dto.CreateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	svc, err := h.services.Create(c.Request.Context(), s, ucCatalog.CreateServiceInput{
		Name:        req.Name,
		Description: req.Description,
		DurationMin: req.DurationMin,
		Price:       req.Price,
		IsActive:    req.IsActive,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	svc, err := h.services.Update(c.Request.Context(), s, id, ucCatalog.UpdateServiceInput{
		Name:        req.Name,
		Description: req.Description,
		DurationMin: req.DurationMin,
		Price:       req.Price,
		IsActive:    req.IsActive,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Deactivate(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.services.Deactivate(c.Request.Context(), s, id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.NoContent(c)
}

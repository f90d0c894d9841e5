package catalog

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/booking-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/booking-scheduler/internal/httperr"
	"github.com/BruksfildServices01/booking-scheduler/internal/models"
	"github.com/BruksfildServices01/booking-scheduler/internal/session"
	"github.com/BruksfildServices01/booking-scheduler/internal/usecase"
)

type CreateServiceInput struct {
	Name        string
	Description string
	DurationMin int
	Price       float64
	IsActive    *bool
	CategoryID  *uint
}

type UpdateServiceInput struct {
	Name        *string
	Description *string
	DurationMin *int
	Price       *float64
	IsActive    *bool
	CategoryID  *uint
}

type Services struct {
	deps usecase.Deps
}

func NewServices(deps usecase.Deps) *Services {
	return &Services{deps: deps.WithDefaults()}
}

// --------------------------------------------------
// Leitura
// --------------------------------------------------

func (uc *Services) Get(ctx context.Context, id uint) (*models.Service, error) {
	return uc.deps.Catalog.GetService(ctx, id)
}

func (uc *Services) ListActive(ctx context.Context) ([]models.Service, error) {
	return uc.deps.Catalog.ListServices(ctx, 0)
}

func (uc *Services) ListFrom(ctx context.Context, professionalID uint) ([]models.Service, error) {
	if _, err := uc.deps.Catalog.GetProfessional(ctx, professionalID); err != nil {
		return nil, err
	}
	return uc.deps.Catalog.ListServices(ctx, professionalID)
}

// --------------------------------------------------
// Escrita (somente o dono)
// --------------------------------------------------

func (uc *Services) Create(
	ctx context.Context,
	s session.Session,
	in CreateServiceInput,
) (*models.Service, error) {

	pro, err := domain.CurrentProfessional(ctx, uc.deps.Catalog, s)
	if err != nil {
		return nil, err
	}

	svc := &models.Service{
		ProfessionalID: pro.ID,
		Name:           strings.TrimSpace(in.Name),
		Description:    in.Description,
		DurationMin:    in.DurationMin,
		Price:          in.Price,
		IsActive:       true,
		CategoryID:     in.CategoryID,
	}
	if in.IsActive != nil {
		svc.IsActive = *in.IsActive
	}

	if err := validateService(svc); err != nil {
		return nil, err
	}

	if err := uc.deps.Catalog.SaveService(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (uc *Services) Update(
	ctx context.Context,
	s session.Session,
	id uint,
	in UpdateServiceInput,
) (*models.Service, error) {

	svc, err := uc.owned(ctx, s, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		svc.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		svc.Description = *in.Description
	}
	if in.DurationMin != nil {
		svc.DurationMin = *in.DurationMin
	}
	if in.Price != nil {
		svc.Price = *in.Price
	}
	if in.IsActive != nil {
		svc.IsActive = *in.IsActive
	}
	if in.CategoryID != nil {
		svc.CategoryID = in.CategoryID
	}

	if err := validateService(svc); err != nil {
		return nil, err
	}

	if err := uc.deps.Catalog.SaveService(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// Deactivate não apaga: agendamentos existentes continuam apontando para o serviço
func (uc *Services) Deactivate(
	ctx context.Context,
	s session.Session,
	id uint,
) error {

	svc, err := uc.owned(ctx, s, id)
	if err != nil {
		return err
	}
	if !svc.IsActive {
		return nil
	}

	svc.IsActive = false
	return uc.deps.Catalog.SaveService(ctx, svc)
}

func (uc *Services) owned(
	ctx context.Context,
	s session.Session,
	id uint,
) (*models.Service, error) {

	pro, err := domain.CurrentProfessional(ctx, uc.deps.Catalog, s)
	if err != nil {
		return nil, err
	}

	svc, err := uc.deps.Catalog.GetService(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc.ProfessionalID != pro.ID {
		return nil, httperr.Forbidden("not_owner", "Serviço pertence a outro profissional.")
	}
	return svc, nil
}

func validateService(svc *models.Service) error {
	if svc.Name == "" {
		return httperr.InvalidInput("invalid_name", "Nome é obrigatório.")
	}
	if svc.DurationMin <= 0 {
		return httperr.InvalidInput("invalid_duration", "Duração deve ser maior que zero.")
	}
	if svc.Price < 0 {
		return httperr.InvalidInput("invalid_price", "Preço não pode ser negativo.")
	}
	return nil
}

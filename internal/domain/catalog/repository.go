package catalog

import (
	"context"

	"github.com/BruksfildServices01/booking-scheduler/internal/httperr"
	"github.com/BruksfildServices01/booking-scheduler/internal/models"
	"github.com/BruksfildServices01/booking-scheduler/internal/session"
)

type Repository interface {
	// -------- Professional --------
	// Os Get* falham com NotFound quando não existe registro
	GetProfessional(
		ctx context.Context,
		id uint,
	) (*models.Professional, error)

	GetProfessionalByUser(
		ctx context.Context,
		userID uint,
	) (*models.Professional, error)

	ListProfessionals(
		ctx context.Context,
	) ([]models.Professional, error)

	SaveProfessional(
		ctx context.Context,
		p *models.Professional,
	) error

	// -------- Service --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// ListServices com professionalID zero lista todos os ativos
	ListServices(
		ctx context.Context,
		professionalID uint,
	) ([]models.Service, error)

	SaveService(
		ctx context.Context,
		s *models.Service,
	) error
}

// CurrentProfessional resolve o perfil profissional da sessão
func CurrentProfessional(
	ctx context.Context,
	repo Repository,
	s session.Session,
) (*models.Professional, error) {

	if !s.IsProfessional() {
		return nil, httperr.Forbidden("professional_only", "Disponível apenas para profissionais.")
	}

	return repo.GetProfessionalByUser(ctx, s.UserID)
}

package memory

import (
	"context"
	"sort"

	"github.com/BruksfildServices01/booking-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/booking-scheduler/internal/httperr"
	"github.com/BruksfildServices01/booking-scheduler/internal/models"
)

// --------------------------------------------------
// Professional
// --------------------------------------------------

func (s *Store) GetProfessional(
	ctx context.Context,
	id uint,
) (*models.Professional, error) {

	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.professionals[id]
	if !ok {
		return nil, httperr.NotFoundErr("professional_not_found", "Profissional não encontrado.")
	}
	return &p, nil
}

func (s *Store) GetProfessionalByUser(
	ctx context.Context,
	userID uint,
) (*models.Professional, error) {

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.professionals {
		if p.UserID == userID {
			found := p
			return &found, nil
		}
	}
	return nil, httperr.NotFoundErr("professional_not_found", "Profissional não encontrado.")
}

func (s *Store) ListProfessionals(ctx context.Context) ([]models.Professional, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Professional{}
	for _, p := range s.professionals {
		if p.IsActive {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) SaveProfessional(
	ctx context.Context,
	p *models.Professional,
) error {

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.professionals {
		if existing.UserID == p.UserID && existing.ID != p.ID {
			return httperr.Conflict("professional_exists", "Usuário já possui perfil profissional.")
		}
	}

	now := s.now()
	if p.ID == 0 {
		p.ID = s.nextID()
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	s.professionals[p.ID] = *p
	return nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (s *Store) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	s.mu.RLock()
	defer s.mu.RUnlock()

	svc, ok := s.services[id]
	if !ok {
		return nil, httperr.NotFoundErr("service_not_found", "Serviço não encontrado.")
	}
	return &svc, nil
}

func (s *Store) ListServices(
	ctx context.Context,
	professionalID uint,
) ([]models.Service, error) {

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Service{}
	for _, svc := range s.services {
		if professionalID == 0 && !svc.IsActive {
			continue
		}
		if professionalID != 0 && svc.ProfessionalID != professionalID {
			continue
		}
		out = append(out, svc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) SaveService(
	ctx context.Context,
	svc *models.Service,
) error {

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if svc.ID == 0 {
		svc.ID = s.nextID()
		svc.CreatedAt = now
	}
	svc.UpdatedAt = now
	s.services[svc.ID] = *svc
	return nil
}

var _ catalog.Repository = (*Store)(nil)

package memory

import (
	"context"
	"sort"
	"time"

	domain "github.com/BruksfildServices01/booking-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/booking-scheduler/internal/httperr"
	"github.com/BruksfildServices01/booking-scheduler/internal/models"
)

// WithProfessionalLock segura o mutex do profissional durante fn
func (s *Store) WithProfessionalLock(
	ctx context.Context,
	professionalID uint,
	fn func(l domain.Ledger) error,
) error {

	if err := ctx.Err(); err != nil {
		return err
	}

	m := s.professionalLock(professionalID)
	m.Lock()
	defer m.Unlock()

	return fn(s)
}

func (s *Store) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	s.mu.RLock()
	defer s.mu.RUnlock()

	ap, ok := s.appointments[id]
	if !ok {
		return nil, httperr.NotFoundErr("appointment_not_found", "Agendamento não encontrado.")
	}
	return &ap, nil
}

func (s *Store) ListReserved(
	ctx context.Context,
	professionalID uint,
	from time.Time,
	to time.Time,
) ([]models.Appointment, error) {

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Appointment{}
	for _, ap := range s.appointments {
		if ap.ProfessionalID != professionalID || ap.Status != string(domain.StatusReserved) {
			continue
		}
		if ap.AppointmentDate.Before(to) && ap.EndAt.After(from) {
			out = append(out, ap)
		}
	}
	sortByStart(out)
	return out, nil
}

func (s *Store) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	ap.ID = s.nextID()
	ap.CreatedAt = now
	ap.UpdatedAt = now
	s.appointments[ap.ID] = *ap
	return nil
}

func (s *Store) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.appointments[ap.ID]; !ok {
		return httperr.NotFoundErr("appointment_not_found", "Agendamento não encontrado.")
	}

	ap.UpdatedAt = s.now()
	s.appointments[ap.ID] = *ap
	return nil
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (s *Store) ListForClient(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Appointment{}
	for _, ap := range s.appointments {
		if ap.ClientID == clientID {
			out = append(out, ap)
		}
	}
	sortByStart(out)
	return out, nil
}

func (s *Store) ListForProfessional(
	ctx context.Context,
	professionalID uint,
	from time.Time,
	to time.Time,
) ([]models.Appointment, error) {

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Appointment{}
	for _, ap := range s.appointments {
		if ap.ProfessionalID != professionalID {
			continue
		}
		if !from.IsZero() && ap.AppointmentDate.Before(from) {
			continue
		}
		if !to.IsZero() && !ap.AppointmentDate.Before(to) {
			continue
		}
		out = append(out, ap)
	}
	sortByStart(out)
	return out, nil
}

func sortByStart(apps []models.Appointment) {
	sort.Slice(apps, func(i, j int) bool {
		if apps[i].AppointmentDate.Equal(apps[j].AppointmentDate) {
			return apps[i].ID < apps[j].ID
		}
		return apps[i].AppointmentDate.Before(apps[j].AppointmentDate)
	})
}

var _ domain.Repository = (*Store)(nil)

package memory

import (
	"context"
	"sort"

	"github.com/BruksfildServices01/booking-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/booking-scheduler/internal/httperr"
	"github.com/BruksfildServices01/booking-scheduler/internal/models"
)

// --------------------------------------------------
// Weekly
// --------------------------------------------------

func (s *Store) ListWeekly(
	ctx context.Context,
	professionalID uint,
) ([]models.WeeklyScheduleBlock, error) {

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := append([]models.WeeklyScheduleBlock{}, s.weekly[professionalID]...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].DayOfWeek != out[j].DayOfWeek {
			return out[i].DayOfWeek < out[j].DayOfWeek
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out, nil
}

func (s *Store) ReplaceWeekly(
	ctx context.Context,
	professionalID uint,
	blocks []models.WeeklyScheduleBlock,
) error {

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	next := make([]models.WeeklyScheduleBlock, 0, len(blocks))
	for _, b := range blocks {
		b.ID = s.nextID()
		b.ProfessionalID = professionalID
		b.CreatedAt = now
		next = append(next, b)
	}

	s.weekly[professionalID] = next
	return nil
}

// --------------------------------------------------
// Exceptions
// --------------------------------------------------

func (s *Store) ListExceptions(
	ctx context.Context,
	professionalID uint,
) ([]models.ExceptionDate, error) {

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.ExceptionDate{}
	for _, ex := range s.exceptions {
		if ex.ProfessionalID == professionalID {
			out = append(out, ex)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (s *Store) GetException(
	ctx context.Context,
	professionalID uint,
	date string,
) (*models.ExceptionDate, error) {

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, ex := range s.exceptions {
		if ex.ProfessionalID == professionalID && ex.Date == date {
			found := ex
			return &found, nil
		}
	}
	return nil, nil
}

func (s *Store) CreateException(
	ctx context.Context,
	ex *models.ExceptionDate,
) error {

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.exceptions {
		if existing.ProfessionalID == ex.ProfessionalID && existing.Date == ex.Date {
			return httperr.Conflict("exception_exists", "Já existe uma exceção para esta data.")
		}
	}

	ex.ID = s.nextID()
	ex.CreatedAt = s.now()
	s.exceptions[ex.ID] = *ex
	return nil
}

func (s *Store) DeleteException(
	ctx context.Context,
	professionalID uint,
	exceptionID uint,
) (bool, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	ex, ok := s.exceptions[exceptionID]
	if !ok || ex.ProfessionalID != professionalID {
		return false, nil
	}

	delete(s.exceptions, exceptionID)
	return true, nil
}

var _ availability.Repository = (*Store)(nil)

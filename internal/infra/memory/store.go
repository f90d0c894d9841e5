// Package memory guarda agenda, agendamentos e catálogo no processo.
// Serve STORAGE_DRIVER=memory e os testes; o ponto de serialização por
// profissional é um mutex, no lugar do advisory lock do Postgres.
package memory

import (
	"sync"
	"time"

	"github.com/BruksfildServices01/booking-scheduler/internal/models"
)

type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	seq uint

	weekly        map[uint][]models.WeeklyScheduleBlock
	exceptions    map[uint]models.ExceptionDate
	appointments  map[uint]models.Appointment
	professionals map[uint]models.Professional
	services      map[uint]models.Service
	auditLogs     []models.AuditLog

	locksMu sync.Mutex
	locks   map[uint]*sync.Mutex
}

func New() *Store {
	return &Store{
		now:           time.Now,
		weekly:        make(map[uint][]models.WeeklyScheduleBlock),
		exceptions:    make(map[uint]models.ExceptionDate),
		appointments:  make(map[uint]models.Appointment),
		professionals: make(map[uint]models.Professional),
		services:      make(map[uint]models.Service),
		locks:         make(map[uint]*sync.Mutex),
	}
}

// nextID assume s.mu travado para escrita
func (s *Store) nextID() uint {
	s.seq++
	return s.seq
}

func (s *Store) professionalLock(professionalID uint) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	m, ok := s.locks[professionalID]
	if !ok {
		m = &sync.Mutex{}
		s.locks[professionalID] = m
	}
	return m
}

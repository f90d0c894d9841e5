package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/booking-scheduler/internal/models"
)

// Ledger é a parte do repositório usada dentro da seção crítica de um profissional
type Ledger interface {
	// GetAppointment falha com NotFound quando o id não existe
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// ListReserved devolve os RESERVED do profissional que cruzam [from, to)
	ListReserved(
		ctx context.Context,
		professionalID uint,
		from time.Time,
		to time.Time,
	) ([]models.Appointment, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error
}

type Repository interface {
	Ledger

	// WithProfessionalLock serializa checagem + escrita por profissional.
	// fn recebe um Ledger ligado à mesma transação.
	WithProfessionalLock(
		ctx context.Context,
		professionalID uint,
		fn func(l Ledger) error,
	) error

	// -------- Listings --------
	ListForClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Appointment, error)

	// ListForProfessional trata from/to zerados como sem limite
	ListForProfessional(
		ctx context.Context,
		professionalID uint,
		from time.Time,
		to time.Time,
	) ([]models.Appointment, error)
}

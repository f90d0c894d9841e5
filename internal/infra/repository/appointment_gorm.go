package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/booking-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/booking-scheduler/internal/httperr"
	"github.com/BruksfildServices01/booking-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	appointmentLedger
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{appointmentLedger{db: db}}
}

// --------------------------------------------------
// Serialização por profissional
// --------------------------------------------------

// WithProfessionalLock abre uma transação e pega pg_advisory_xact_lock pelo
// id do profissional; o lock é liberado no commit/rollback.
func (r *AppointmentGormRepository) WithProfessionalLock(
	ctx context.Context,
	professionalID uint,
	fn func(l domain.Ledger) error,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"SELECT pg_advisory_xact_lock(?)",
			int64(professionalID),
		).Error; err != nil {
			return err
		}

		return fn(appointmentLedger{db: tx, forUpdate: true})
	})
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *AppointmentGormRepository) ListForClient(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("appointment_date ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListForProfessional(
	ctx context.Context,
	professionalID uint,
	from time.Time,
	to time.Time,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).Where("professional_id = ?", professionalID)
	if !from.IsZero() {
		q = q.Where("appointment_date >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where("appointment_date < ?", to)
	}

	var apps []models.Appointment
	if err := q.
		Order("appointment_date ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// --------------------------------------------------
// Ledger (com ou sem transação)
// --------------------------------------------------

type appointmentLedger struct {
	db        *gorm.DB
	forUpdate bool
}

func (l appointmentLedger) scoped(ctx context.Context) *gorm.DB {
	q := l.db.WithContext(ctx)
	if l.forUpdate {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return q
}

func (l appointmentLedger) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := l.scoped(ctx).First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFoundErr("appointment_not_found", "Agendamento não encontrado.")
		}
		return nil, err
	}
	return &ap, nil
}

func (l appointmentLedger) ListReserved(
	ctx context.Context,
	professionalID uint,
	from time.Time,
	to time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := l.scoped(ctx).
		Where(
			"professional_id = ? AND status = ? AND appointment_date < ? AND end_at > ?",
			professionalID,
			string(domain.StatusReserved),
			to,
			from,
		).
		Order("appointment_date ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (l appointmentLedger) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return mapWriteError(l.db.WithContext(ctx).Create(ap).Error)
}

func (l appointmentLedger) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return mapWriteError(l.db.WithContext(ctx).Save(ap).Error)
}

// mapWriteError traduz a exclusion constraint de sobreposição em SlotConflict
func mapWriteError(err error) error {
	switch {
	case err == nil:
		return nil
	case httperr.IsExclusionConflict(err):
		return httperr.SlotConflict("slot_taken", "Horário não está mais disponível.")
	case httperr.IsUniqueViolation(err):
		return httperr.Conflict("duplicate", "Registro já existe.")
	default:
		return err
	}
}

// Compile-time check
var (
	_ domain.Repository = (*AppointmentGormRepository)(nil)
	_ domain.Ledger     = appointmentLedger{}
)

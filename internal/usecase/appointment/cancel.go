package appointment

import (
	"context"

	"github.com/BruksfildServices01/booking-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/booking-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/booking-scheduler/internal/models"
	"github.com/BruksfildServices01/booking-scheduler/internal/session"
	"github.com/BruksfildServices01/booking-scheduler/internal/usecase"
)

type CancelAppointment struct {
	deps usecase.Deps
}

func NewCancelAppointment(deps usecase.Deps) *CancelAppointment {
	return &CancelAppointment{deps: deps.WithDefaults()}
}

// Execute permite cancelar ao cliente ou ao profissional do agendamento
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	s session.Session,
	appointmentID uint,
) (ap *models.Appointment, err error) {

	defer func() {
		uc.deps.Metrics.ObserveOperation("cancel", usecase.Outcome(err))
	}()

	current, err := uc.deps.Appointments.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	party, err := partyOf(ctx, uc.deps, current, s)
	if err != nil {
		return nil, err
	}
	if err := domain.RequireParty(party); err != nil {
		return nil, err
	}

	err = uc.deps.Retry(ctx, "cancel", func() error {
		return uc.deps.Appointments.WithProfessionalLock(ctx, current.ProfessionalID, func(l domain.Ledger) error {
			locked, err := l.GetAppointment(ctx, appointmentID)
			if err != nil {
				return err
			}
			if err := domain.Cancel(locked, uc.deps.Now()); err != nil {
				return err
			}
			if err := l.UpdateAppointment(ctx, locked); err != nil {
				return err
			}
			ap = locked
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	uc.deps.Touch(ctx, ap.ProfessionalID)

	uc.deps.Audit.Dispatch(audit.Event{
		ProfessionalID: ap.ProfessionalID,
		UserID:         usecase.UintPtr(s.UserID),
		Action:         audit.ActionAppointmentCancelled,
		Entity:         "appointment",
		EntityID:       usecase.UintPtr(ap.ID),
	})

	return ap, nil
}

// partyOf carrega o dono do perfil profissional para decidir o papel da sessão
func partyOf(
	ctx context.Context,
	deps usecase.Deps,
	ap *models.Appointment,
	s session.Session,
) (domain.Party, error) {

	pro, err := deps.Catalog.GetProfessional(ctx, ap.ProfessionalID)
	if err != nil {
		return domain.PartyNone, err
	}
	return domain.PartyOf(ap, s, pro.UserID), nil
}

package appointment

import (
	"context"

	"github.com/BruksfildServices01/booking-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/booking-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/booking-scheduler/internal/models"
	"github.com/BruksfildServices01/booking-scheduler/internal/session"
	"github.com/BruksfildServices01/booking-scheduler/internal/usecase"
)

type CompleteAppointment struct {
	deps usecase.Deps
}

func NewCompleteAppointment(deps usecase.Deps) *CompleteAppointment {
	return &CompleteAppointment{deps: deps.WithDefaults()}
}

// Execute: só o profissional dono do agendamento conclui
func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	s session.Session,
	appointmentID uint,
) (ap *models.Appointment, err error) {

	defer func() {
		uc.deps.Metrics.ObserveOperation("complete", usecase.Outcome(err))
	}()

	current, err := uc.deps.Appointments.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	party, err := partyOf(ctx, uc.deps, current, s)
	if err != nil {
		return nil, err
	}
	if err := domain.RequireProfessional(party); err != nil {
		return nil, err
	}

	err = uc.deps.Retry(ctx, "complete", func() error {
		return uc.deps.Appointments.WithProfessionalLock(ctx, current.ProfessionalID, func(l domain.Ledger) error {
			locked, err := l.GetAppointment(ctx, appointmentID)
			if err != nil {
				return err
			}
			if err := domain.Complete(locked, uc.deps.Now()); err != nil {
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
		Action:         audit.ActionAppointmentCompleted,
		Entity:         "appointment",
		EntityID:       usecase.UintPtr(ap.ID),
	})

	return ap, nil
}

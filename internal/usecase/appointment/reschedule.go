package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/booking-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/booking-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/booking-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/booking-scheduler/internal/httperr"
	"github.com/BruksfildServices01/booking-scheduler/internal/models"
	"github.com/BruksfildServices01/booking-scheduler/internal/session"
	"github.com/BruksfildServices01/booking-scheduler/internal/timezone"
	"github.com/BruksfildServices01/booking-scheduler/internal/usecase"
)

type RescheduleAppointmentInput struct {
	AppointmentID uint
	Date          string
	StartTime     string
}

type RescheduleAppointment struct {
	deps usecase.Deps
}

func NewRescheduleAppointment(deps usecase.Deps) *RescheduleAppointment {
	return &RescheduleAppointment{deps: deps.WithDefaults()}
}

// Execute move um RESERVED para novo horário. O próprio intervalo antigo não
// conta como conflito; o status não muda.
func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	s session.Session,
	in RescheduleAppointmentInput,
) (ap *models.Appointment, err error) {

	defer func() {
		uc.deps.Metrics.ObserveOperation("reschedule", usecase.Outcome(err))
	}()

	current, err := uc.deps.Appointments.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	pro, err := uc.deps.Catalog.GetProfessional(ctx, current.ProfessionalID)
	if err != nil {
		return nil, err
	}
	if err := domain.RequireParty(domain.PartyOf(current, s, pro.UserID)); err != nil {
		return nil, err
	}
	if err := domain.CanReschedule(domain.Status(current.Status)); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Novo intervalo no fuso do profissional
	// --------------------------------------------------
	loc := timezone.Location(pro.Timezone)

	day, err := availability.ParseDate(in.Date, loc)
	if err != nil {
		return nil, err
	}
	start, err := availability.ParseDateTime(in.Date, in.StartTime, loc)
	if err != nil {
		return nil, err
	}
	if err := uc.deps.CheckAdvance(start); err != nil {
		return nil, err
	}

	end := start.Add(time.Duration(current.Duration) * time.Minute)

	windows, err := uc.deps.DayWindows(ctx, pro.ID, day)
	if err != nil {
		return nil, err
	}
	if !availability.Fits(windows, availability.Interval{Start: start, End: end}) {
		return nil, httperr.SlotConflict("outside_availability", "Horário fora da disponibilidade do profissional.")
	}

	previous := current.AppointmentDate

	err = uc.deps.Retry(ctx, "reschedule", func() error {
		return uc.deps.Appointments.WithProfessionalLock(ctx, pro.ID, func(l domain.Ledger) error {
			locked, err := l.GetAppointment(ctx, in.AppointmentID)
			if err != nil {
				return err
			}
			previous = locked.AppointmentDate

			if err := domain.Reschedule(locked, start); err != nil {
				return err
			}

			busy, err := l.ListReserved(ctx, pro.ID, locked.AppointmentDate, locked.EndAt)
			if err != nil {
				return err
			}
			if len(availability.BusyFrom(busy, locked.ID)) > 0 {
				return httperr.SlotConflict("slot_taken", "Horário não está mais disponível.")
			}

			if err := l.UpdateAppointment(ctx, locked); err != nil {
				return err
			}
			ap = locked
			return nil
		})
	})

	if httperr.IsKind(err, httperr.KindSlotConflict) {
		uc.deps.Audit.Dispatch(audit.Event{
			ProfessionalID: pro.ID,
			UserID:         usecase.UintPtr(s.UserID),
			Action:         audit.ActionAppointmentConflict,
			Entity:         "appointment",
			EntityID:       usecase.UintPtr(in.AppointmentID),
			Metadata: map[string]string{
				"date":      in.Date,
				"startTime": in.StartTime,
			},
		})
	}
	if err != nil {
		return nil, err
	}

	uc.deps.Touch(ctx, pro.ID)

	uc.deps.Audit.Dispatch(audit.Event{
		ProfessionalID: pro.ID,
		UserID:         usecase.UintPtr(s.UserID),
		Action:         audit.ActionAppointmentRescheduled,
		Entity:         "appointment",
		EntityID:       usecase.UintPtr(ap.ID),
		Metadata: map[string]time.Time{
			"from": previous,
			"to":   ap.AppointmentDate,
		},
	})

	return ap, nil
}

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

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ServiceID uint
	Date      string
	StartTime string
	Notes     string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	deps usecase.Deps
}

func NewCreateAppointment(deps usecase.Deps) *CreateAppointment {
	return &CreateAppointment{deps: deps.WithDefaults()}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	s session.Session,
	in CreateAppointmentInput,
) (ap *models.Appointment, err error) {

	defer func() {
		uc.deps.Metrics.ObserveOperation("create", usecase.Outcome(err))
	}()

	// --------------------------------------------------
	// 1️⃣ Serviço e profissional
	// --------------------------------------------------
	svc, err := uc.deps.Catalog.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if !svc.IsActive {
		return nil, httperr.InvalidInput("service_inactive", "Serviço indisponível para agendamento.")
	}

	pro, err := uc.deps.Catalog.GetProfessional(ctx, svc.ProfessionalID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Data / hora no fuso do profissional
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

	// --------------------------------------------------
	// 3️⃣ Passado / antecedência mínima
	// --------------------------------------------------
	if err := uc.deps.CheckAdvance(start); err != nil {
		return nil, err
	}

	end := start.Add(time.Duration(svc.DurationMin) * time.Minute)

	// --------------------------------------------------
	// 4️⃣ Janela de atendimento
	// --------------------------------------------------
	windows, err := uc.deps.DayWindows(ctx, pro.ID, day)
	if err != nil {
		return nil, err
	}
	if !availability.Fits(windows, availability.Interval{Start: start, End: end}) {
		return nil, httperr.SlotConflict("outside_availability", "Horário fora da disponibilidade do profissional.")
	}

	// --------------------------------------------------
	// 5️⃣ Checagem + inserção serializadas por profissional
	// --------------------------------------------------
	ap = &models.Appointment{
		ClientID:       s.UserID,
		ProfessionalID: pro.ID,
		ServiceID:      svc.ID,
		Duration:       svc.DurationMin,
		Status:         string(domain.InitialStatus()),
		Notes:          in.Notes,
	}
	ap.MoveTo(start)

	err = uc.deps.Retry(ctx, "create", func() error {
		return uc.deps.Appointments.WithProfessionalLock(ctx, pro.ID, func(l domain.Ledger) error {
			busy, err := l.ListReserved(ctx, pro.ID, start, end)
			if err != nil {
				return err
			}
			if len(busy) > 0 {
				return httperr.SlotConflict("slot_taken", "Horário não está mais disponível.")
			}

			ap.ID = 0
			return l.CreateAppointment(ctx, ap)
		})
	})

	if httperr.IsKind(err, httperr.KindSlotConflict) {
		uc.deps.Audit.Dispatch(audit.Event{
			ProfessionalID: pro.ID,
			UserID:         usecase.UintPtr(s.UserID),
			Action:         audit.ActionAppointmentConflict,
			Entity:         "appointment",
			Metadata: map[string]string{
				"date":      in.Date,
				"startTime": in.StartTime,
			},
		})
	}
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6️⃣ Cache + auditoria
	// --------------------------------------------------
	uc.deps.Touch(ctx, pro.ID)

	uc.deps.Audit.Dispatch(audit.Event{
		ProfessionalID: pro.ID,
		UserID:         usecase.UintPtr(s.UserID),
		Action:         audit.ActionAppointmentCreated,
		Entity:         "appointment",
		EntityID:       usecase.UintPtr(ap.ID),
	})

	return ap, nil
}

package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/booking-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/booking-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/booking-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/booking-scheduler/internal/httperr"
	"github.com/BruksfildServices01/booking-scheduler/internal/models"
	"github.com/BruksfildServices01/booking-scheduler/internal/session"
	"github.com/BruksfildServices01/booking-scheduler/internal/timezone"
	"github.com/BruksfildServices01/booking-scheduler/internal/usecase"
)

// ======================================================
// GET
// ======================================================

type GetAppointment struct {
	deps usecase.Deps
}

func NewGetAppointment(deps usecase.Deps) *GetAppointment {
	return &GetAppointment{deps: deps.WithDefaults()}
}

func (uc *GetAppointment) Execute(
	ctx context.Context,
	s session.Session,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.deps.Appointments.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	party, err := partyOf(ctx, uc.deps, ap, s)
	if err != nil {
		return nil, err
	}
	if err := domain.RequireParty(party); err != nil {
		return nil, err
	}

	return ap, nil
}

// ======================================================
// CLIENT
// ======================================================

type ListClientAppointments struct {
	deps usecase.Deps
}

func NewListClientAppointments(deps usecase.Deps) *ListClientAppointments {
	return &ListClientAppointments{deps: deps.WithDefaults()}
}

func (uc *ListClientAppointments) Execute(
	ctx context.Context,
	s session.Session,
) ([]models.Appointment, error) {
	return uc.deps.Appointments.ListForClient(ctx, s.UserID)
}

// ======================================================
// PROFESSIONAL (por data, por mês ou tudo)
// ======================================================

type ProfessionalAppointmentsFilter struct {
	Date  string
	Year  int
	Month int
}

type ListProfessionalAppointments struct {
	deps usecase.Deps
}

func NewListProfessionalAppointments(deps usecase.Deps) *ListProfessionalAppointments {
	return &ListProfessionalAppointments{deps: deps.WithDefaults()}
}

func (uc *ListProfessionalAppointments) Execute(
	ctx context.Context,
	s session.Session,
	professionalID uint,
	f ProfessionalAppointmentsFilter,
) ([]models.Appointment, error) {

	pro, err := catalog.CurrentProfessional(ctx, uc.deps.Catalog, s)
	if err != nil {
		return nil, err
	}
	if pro.ID != professionalID {
		return nil, httperr.Forbidden("forbidden", "Você só pode ver a sua própria agenda.")
	}

	loc := timezone.Location(pro.Timezone)

	var from, to time.Time

	switch {
	case f.Date != "":
		day, err := availability.ParseDate(f.Date, loc)
		if err != nil {
			return nil, err
		}
		from = day
		to = day.AddDate(0, 0, 1)

	case f.Year != 0 || f.Month != 0:
		if f.Year < 1 || f.Month < 1 || f.Month > 12 {
			return nil, httperr.InvalidInput("invalid_period", "Ano/mês inválidos.")
		}
		from = time.Date(f.Year, time.Month(f.Month), 1, 0, 0, 0, 0, loc)
		to = from.AddDate(0, 1, 0)
	}

	return uc.deps.Appointments.ListForProfessional(ctx, pro.ID, from, to)
}

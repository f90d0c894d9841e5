package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/booking-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/booking-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/booking-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/booking-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/booking-scheduler/internal/httperr"
	"github.com/BruksfildServices01/booking-scheduler/internal/infra/cache"
	"github.com/BruksfildServices01/booking-scheduler/internal/observability/metrics"
)

// ======================================================
// DEPENDÊNCIAS COMPARTILHADAS
// ======================================================

type Deps struct {
	Appointments domain.Repository
	Schedule     availability.Repository
	Catalog      catalog.Repository

	Cache   cache.SlotCache
	Audit   *audit.Dispatcher
	Metrics *metrics.BookingMetrics
	Log     *zap.Logger

	Now        func() time.Time
	Step       time.Duration
	MinAdvance time.Duration
}

// WithDefaults preenche o que é opcional
func (d Deps) WithDefaults() Deps {
	if d.Cache == nil {
		d.Cache = cache.Noop{}
	}
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Step <= 0 {
		d.Step = 30 * time.Minute
	}
	return d
}

// ======================================================
// HELPERS
// ======================================================

// Retry repete fn uma vez quando a falha de persistência é transitória
func (d Deps) Retry(ctx context.Context, op string, fn func() error) error {
	err := fn()
	if !httperr.IsTransient(err) {
		return err
	}
	if ctx.Err() != nil {
		return err
	}

	d.Log.Warn("transient persistence error, retrying",
		zap.String("operation", op),
		zap.Error(err),
	)
	return fn()
}

// Touch invalida o cache de horários do profissional; falhas só são logadas
func (d Deps) Touch(ctx context.Context, professionalID uint) {
	if err := d.Cache.Bump(ctx, professionalID); err != nil {
		d.Log.Warn("slot cache bump failed",
			zap.Uint("professional_id", professionalID),
			zap.Error(err),
		)
	}
}

// CheckAdvance rejeita inícios antes de agora + antecedência mínima
func (d Deps) CheckAdvance(start time.Time) error {
	if start.Before(d.Now().Add(d.MinAdvance)) {
		return httperr.InvalidInput("start_in_past", "Horário já passou ou não respeita a antecedência mínima.")
	}
	return nil
}

// Outcome classifica o resultado para as métricas
func Outcome(err error) string {
	if err == nil {
		return metrics.OutcomeSuccess
	}
	if httperr.IsKind(err, httperr.KindSlotConflict) {
		return metrics.OutcomeConflict
	}
	if _, ok := httperr.KindOf(err); ok {
		return metrics.OutcomeRejected
	}
	return metrics.OutcomeError
}

// DayWindows lê agenda semanal e exceção da data e monta as janelas do dia
func (d Deps) DayWindows(
	ctx context.Context,
	professionalID uint,
	day time.Time,
) ([]availability.Interval, error) {

	weekly, err := d.Schedule.ListWeekly(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	ex, err := d.Schedule.GetException(ctx, professionalID, day.Format(availability.DateLayout))
	if err != nil {
		return nil, err
	}

	return availability.DayWindows(day, weekly, ex), nil
}

func UintPtr(v uint) *uint {
	return &v
}

package availability

import (
	"context"
	"time"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/booking-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/booking-scheduler/internal/httperr"
	"github.com/BruksfildServices01/booking-scheduler/internal/infra/cache"
	"github.com/BruksfildServices01/booking-scheduler/internal/timezone"
	"github.com/BruksfildServices01/booking-scheduler/internal/usecase"
)

type ResolveTimesInput struct {
	ProfessionalID uint
	Date           string
	// ServiceID opcional; sem ele a duração do slot é o step
	ServiceID uint
}

type ResolveTimes struct {
	deps usecase.Deps
}

func NewResolveTimes(deps usecase.Deps) *ResolveTimes {
	return &ResolveTimes{deps: deps.WithDefaults()}
}

func (uc *ResolveTimes) Execute(
	ctx context.Context,
	in ResolveTimesInput,
) ([]string, error) {

	started := time.Now()
	defer func() {
		uc.deps.Metrics.ObserveResolve(time.Since(started).Seconds())
	}()

	pro, err := uc.deps.Catalog.GetProfessional(ctx, in.ProfessionalID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(pro.Timezone)

	day, err := domain.ParseDate(in.Date, loc)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Duração
	// --------------------------------------------------
	duration := uc.deps.Step
	if in.ServiceID != 0 {
		svc, err := uc.deps.Catalog.GetService(ctx, in.ServiceID)
		if err != nil {
			return nil, err
		}
		if svc.ProfessionalID != pro.ID {
			return nil, httperr.InvalidInput("service_mismatch", "Serviço não pertence a este profissional.")
		}
		if !svc.IsActive {
			return nil, httperr.InvalidInput("service_inactive", "Serviço indisponível para agendamento.")
		}
		duration = time.Duration(svc.DurationMin) * time.Minute
	}

	// --------------------------------------------------
	// Datas passadas nunca têm horário
	// --------------------------------------------------
	now := uc.deps.Now().In(loc)
	if day.Before(timezone.StartOfDay(now)) {
		return []string{}, nil
	}

	slots, err := uc.cached(ctx, pro.ID, day, duration)
	if err != nil {
		return nil, err
	}

	return dropBefore(slots, day, now.Add(uc.deps.MinAdvance)), nil
}

// cached lê a versão antes de consultar o banco: uma escrita concorrente sobe
// a versão e o valor gravado aqui fica inalcançável.
func (uc *ResolveTimes) cached(
	ctx context.Context,
	professionalID uint,
	day time.Time,
	duration time.Duration,
) ([]string, error) {

	version, err := uc.deps.Cache.Version(ctx, professionalID)
	if err != nil {
		uc.deps.Metrics.ObserveCache("error")
		uc.deps.Log.Warn("slot cache unavailable", zap.Error(err))
		return uc.compute(ctx, professionalID, day, duration)
	}

	key := cache.SlotKey{
		ProfessionalID: professionalID,
		Version:        version,
		Date:           day.Format(domain.DateLayout),
		DurationMin:    int(duration / time.Minute),
	}

	if slots, hit, err := uc.deps.Cache.Get(ctx, key); err != nil {
		uc.deps.Metrics.ObserveCache("error")
		uc.deps.Log.Warn("slot cache read failed", zap.Error(err))
	} else if hit {
		uc.deps.Metrics.ObserveCache("hit")
		return slots, nil
	} else {
		uc.deps.Metrics.ObserveCache("miss")
	}

	slots, err := uc.compute(ctx, professionalID, day, duration)
	if err != nil {
		return nil, err
	}

	if err := uc.deps.Cache.Set(ctx, key, slots); err != nil {
		uc.deps.Log.Warn("slot cache write failed", zap.Error(err))
	}
	return slots, nil
}

func (uc *ResolveTimes) compute(
	ctx context.Context,
	professionalID uint,
	day time.Time,
	duration time.Duration,
) ([]string, error) {

	windows, err := uc.deps.DayWindows(ctx, professionalID, day)
	if err != nil {
		return nil, err
	}
	if len(windows) == 0 {
		return []string{}, nil
	}

	reserved, err := uc.deps.Appointments.ListReserved(ctx, professionalID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	slots := domain.ResolveSlots(windows, domain.BusyFrom(reserved, 0), duration, uc.deps.Step)
	return domain.FormatSlots(slots, day.Location()), nil
}

func dropBefore(slots []string, day time.Time, cutoff time.Time) []string {
	out := make([]string, 0, len(slots))
	for _, hm := range slots {
		minutes, err := domain.ParseHM(hm)
		if err != nil {
			continue
		}
		if domain.At(day, minutes).Before(cutoff) {
			continue
		}
		out = append(out, hm)
	}
	return out
}

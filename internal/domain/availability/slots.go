package availability

import (
	"slices"
	"time"

	"github.com/BruksfildServices01/booking-scheduler/internal/models"
)

// ResolveSlots discretiza as janelas em inícios candidatos a cada step de
// relógio local, exigindo que candidato+duração caiba na janela, e remove os
// que colidem com algum intervalo ocupado. Horários locais inexistentes
// (adiantamento do horário de verão) não viram candidatos.
func ResolveSlots(
	windows []Interval,
	busy []Interval,
	duration time.Duration,
	step time.Duration,
) []time.Time {

	out := []time.Time{}
	stepMin := int(step / time.Minute)
	if duration <= 0 || stepMin <= 0 {
		return out
	}

	seen := make(map[int64]struct{})

	for _, w := range windows {
		startMin := w.Start.Hour()*60 + w.Start.Minute()

		for m := startMin; ; m += stepMin {
			cur, ok := LocalTime(w.Start, m)
			if cur.Add(duration).After(w.End) {
				break
			}
			if !ok {
				continue
			}

			candidate := Interval{Start: cur, End: cur.Add(duration)}
			if collides(candidate, busy) {
				continue
			}

			key := cur.UnixNano()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, cur)
		}
	}

	slices.SortFunc(out, func(a, b time.Time) int {
		return a.Compare(b)
	})
	return out
}

func collides(candidate Interval, busy []Interval) bool {
	for _, b := range busy {
		if candidate.Overlaps(b) {
			return true
		}
	}
	return false
}

// FormatSlots converte inícios em "HH:MM" no fuso do profissional.
// No atraso do horário de verão dois instantes podem ter o mesmo HH:MM;
// a saída é ordenada e sem repetição.
func FormatSlots(slots []time.Time, loc *time.Location) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.In(loc).Format(TimeLayout))
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// BusyFrom converte agendamentos em intervalos ocupados, ignorando excludeID
func BusyFrom(apps []models.Appointment, excludeID uint) []Interval {
	out := make([]Interval, 0, len(apps))
	for _, ap := range apps {
		if excludeID != 0 && ap.ID == excludeID {
			continue
		}
		out = append(out, Interval{Start: ap.AppointmentDate, End: ap.EndAt})
	}
	return out
}

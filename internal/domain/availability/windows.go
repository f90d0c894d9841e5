package availability

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/BruksfildServices01/booking-scheduler/internal/httperr"
	"github.com/BruksfildServices01/booking-scheduler/internal/models"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ===============================
// Interval
// ===============================

// Interval é meio-aberto: [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && o.Start.Before(i.End)
}

func (i Interval) Within(o Interval) bool {
	return !i.Start.Before(o.Start) && !i.End.After(o.End)
}

// ===============================
// Parsing
// ===============================

// ParseHM converte "HH:MM" em minutos desde a meia-noite
func ParseHM(hm string) (int, error) {
	if len(hm) != 5 || hm[2] != ':' || !digits(hm[:2]) || !digits(hm[3:]) {
		return 0, httperr.InvalidInput("invalid_time", fmt.Sprintf("Horário inválido: %q (use HH:MM).", hm))
	}

	h, _ := strconv.Atoi(hm[:2])
	m, _ := strconv.Atoi(hm[3:])
	if h > 23 || m > 59 {
		return 0, httperr.InvalidInput("invalid_time", fmt.Sprintf("Horário inválido: %q (use HH:MM).", hm))
	}

	return h*60 + m, nil
}

func FormatHM(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseDate devolve a meia-noite da data no fuso informado
func ParseDate(date string, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return time.Time{}, httperr.InvalidInput("invalid_date", "Data inválida (use AAAA-MM-DD).")
	}
	return day, nil
}

// ParseDateTime combina data e horário locais em um instante
func ParseDateTime(date, hm string, loc *time.Location) (time.Time, error) {
	day, err := ParseDate(date, loc)
	if err != nil {
		return time.Time{}, err
	}
	minutes, err := ParseHM(hm)
	if err != nil {
		return time.Time{}, err
	}
	at, ok := LocalTime(day, minutes)
	if !ok {
		return time.Time{}, httperr.InvalidInput(
			"nonexistent_local_time",
			fmt.Sprintf("Horário %s não existe nesta data (mudança de horário de verão).", hm),
		)
	}
	return at, nil
}

// At posiciona minutos do dia sobre a data, no fuso da própria data
func At(day time.Time, minutes int) time.Time {
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		minutes/60, minutes%60, 0, 0,
		day.Location(),
	)
}

// LocalTime é At mais a indicação de que o horário existe no relógio local.
// Dentro do salto do horário de verão o time.Date normaliza para outro HH:MM.
func LocalTime(day time.Time, minutes int) (time.Time, bool) {
	at := At(day, minutes)
	return at, at.Hour()*60+at.Minute() == minutes
}

func digits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ===============================
// Day windows
// ===============================

// DayWindows monta as janelas de atendimento de uma data.
// Exceção indisponível bloqueia o dia; exceção disponível substitui a agenda semanal.
// Dados ausentes ou malformados significam "sem disponibilidade".
func DayWindows(
	day time.Time,
	weekly []models.WeeklyScheduleBlock,
	exception *models.ExceptionDate,
) []Interval {

	if exception != nil {
		if !exception.IsAvailable || exception.StartTime == nil || exception.EndTime == nil {
			return nil
		}
		w, ok := window(day, *exception.StartTime, *exception.EndTime)
		if !ok {
			return nil
		}
		return []Interval{w}
	}

	weekday := int(day.Weekday())

	var out []Interval
	for _, b := range weekly {
		if b.DayOfWeek != weekday {
			continue
		}
		if w, ok := window(day, b.StartTime, b.EndTime); ok {
			out = append(out, w)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return out
}

func window(day time.Time, startHM, endHM string) (Interval, bool) {
	start, err := ParseHM(startHM)
	if err != nil {
		return Interval{}, false
	}
	end, err := ParseHM(endHM)
	if err != nil || start >= end {
		return Interval{}, false
	}
	return Interval{Start: At(day, start), End: At(day, end)}, true
}

// Fits indica se o intervalo cabe inteiro em alguma janela
func Fits(windows []Interval, iv Interval) bool {
	for _, w := range windows {
		if iv.Within(w) {
			return true
		}
	}
	return false
}

// ===============================
// Validations
// ===============================

// ValidateBlocks rejeita dias fora de 0..6, horários malformados e blocos sobrepostos no mesmo dia
func ValidateBlocks(blocks []models.WeeklyScheduleBlock) error {
	type span struct{ start, end int }
	byDay := make(map[int][]span)

	for _, b := range blocks {
		if b.DayOfWeek < 0 || b.DayOfWeek > 6 {
			return httperr.InvalidInput("invalid_day_of_week", "Dia da semana deve estar entre 0 e 6.")
		}

		start, err := ParseHM(b.StartTime)
		if err != nil {
			return err
		}
		end, err := ParseHM(b.EndTime)
		if err != nil {
			return err
		}
		if start >= end {
			return httperr.InvalidInput("invalid_time_range", "Horário inicial deve ser anterior ao final.")
		}

		byDay[b.DayOfWeek] = append(byDay[b.DayOfWeek], span{start, end})
	}

	for day, spans := range byDay {
		sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
		for i := 1; i < len(spans); i++ {
			if spans[i].start < spans[i-1].end {
				return httperr.InvalidInput(
					"overlapping_blocks",
					fmt.Sprintf("Blocos sobrepostos no dia %d.", day),
				)
			}
		}
	}

	return nil
}

// NormalizeException valida a exceção e limpa os horários quando o dia é bloqueado
func NormalizeException(ex *models.ExceptionDate) error {
	if _, err := time.Parse(DateLayout, ex.Date); err != nil {
		return httperr.InvalidInput("invalid_date", "Data inválida (use AAAA-MM-DD).")
	}

	if !ex.IsAvailable {
		ex.StartTime = nil
		ex.EndTime = nil
		return nil
	}

	if ex.StartTime == nil || ex.EndTime == nil {
		return httperr.InvalidInput("missing_time_range", "Informe início e fim para datas disponíveis.")
	}

	start, err := ParseHM(*ex.StartTime)
	if err != nil {
		return err
	}
	end, err := ParseHM(*ex.EndTime)
	if err != nil {
		return err
	}
	if start >= end {
		return httperr.InvalidInput("invalid_time_range", "Horário inicial deve ser anterior ao final.")
	}

	return nil
}

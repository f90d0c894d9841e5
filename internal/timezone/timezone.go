package timezone

import (
	"sync/atomic"
	"time"
)

var defaultTimezone atomic.Value

func init() {
	defaultTimezone.Store("UTC")
}

// SetDefault troca o fuso usado quando o profissional não tem um válido
func SetDefault(tz string) bool {
	if !IsValid(tz) {
		return false
	}
	defaultTimezone.Store(tz)
	return true
}

func Default() string {
	return defaultTimezone.Load().(string)
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	if loc, err := time.LoadLocation(Default()); err == nil {
		return loc
	}
	return time.UTC
}

// StartOfDay devolve a meia-noite local do instante
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

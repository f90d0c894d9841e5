package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/booking-scheduler/internal/httperr"
	"github.com/BruksfildServices01/booking-scheduler/internal/models"
)

func strPtr(s string) *string { return &s }

func monday(t *testing.T, loc *time.Location) time.Time {
	t.Helper()
	day, err := ParseDate("2024-01-01", loc)
	require.NoError(t, err)
	require.Equal(t, time.Monday, day.Weekday())
	return day
}

func mondayMorning() []models.WeeklyScheduleBlock {
	return []models.WeeklyScheduleBlock{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"},
		{DayOfWeek: 2, StartTime: "13:00", EndTime: "18:00"},
	}
}

func resolve(day time.Time, weekly []models.WeeklyScheduleBlock, ex *models.ExceptionDate, busy []Interval) []string {
	windows := DayWindows(day, weekly, ex)
	slots := ResolveSlots(windows, busy, 30*time.Minute, 30*time.Minute)
	return FormatSlots(slots, day.Location())
}

func TestResolveSlots_WeeklyBlock(t *testing.T) {
	day := monday(t, time.UTC)

	got := resolve(day, mondayMorning(), nil, nil)

	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}, got)
}

func TestResolveSlots_ReservedAppointmentRemovesSlot(t *testing.T) {
	day := monday(t, time.UTC)
	apps := []models.Appointment{{
		ID:              1,
		AppointmentDate: At(day, 10*60),
		EndAt:           At(day, 10*60+30),
		Duration:        30,
	}}

	got := resolve(day, mondayMorning(), nil, BusyFrom(apps, 0))

	assert.Equal(t, []string{"09:00", "09:30", "10:30", "11:00", "11:30"}, got)
}

func TestResolveSlots_ExcludedAppointmentIsIgnored(t *testing.T) {
	day := monday(t, time.UTC)
	apps := []models.Appointment{{
		ID:              7,
		AppointmentDate: At(day, 10*60),
		EndAt:           At(day, 10*60+30),
	}}

	got := resolve(day, mondayMorning(), nil, BusyFrom(apps, 7))

	assert.Len(t, got, 6)
}

func TestResolveSlots_AvailableExceptionReplacesWeekly(t *testing.T) {
	day := monday(t, time.UTC)
	ex := &models.ExceptionDate{
		Date:        "2024-01-01",
		IsAvailable: true,
		StartTime:   strPtr("14:00"),
		EndTime:     strPtr("15:00"),
	}

	got := resolve(day, mondayMorning(), ex, nil)

	assert.Equal(t, []string{"14:00", "14:30"}, got)
}

func TestResolveSlots_BlockedExceptionIsEmpty(t *testing.T) {
	day := monday(t, time.UTC)
	ex := &models.ExceptionDate{Date: "2024-01-01", IsAvailable: false}

	got := resolve(day, mondayMorning(), ex, nil)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestResolveSlots_NoBlocksIsEmpty(t *testing.T) {
	day := monday(t, time.UTC)

	got := resolve(day, nil, nil, nil)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestResolveSlots_DurationMustFitWindow(t *testing.T) {
	day := monday(t, time.UTC)
	windows := DayWindows(day, mondayMorning(), nil)

	slots := ResolveSlots(windows, nil, 90*time.Minute, 30*time.Minute)

	assert.Equal(t,
		[]string{"09:00", "09:30", "10:00", "10:30"},
		FormatSlots(slots, time.UTC),
	)
}

func TestResolveSlots_OverlappingLegacyBlocksAreDeduplicated(t *testing.T) {
	day := monday(t, time.UTC)
	weekly := []models.WeeklyScheduleBlock{
		{DayOfWeek: 1, StartTime: "10:00", EndTime: "11:00"},
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "10:30"},
	}

	got := resolve(day, weekly, nil, nil)

	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, got)
}

func TestResolveSlots_UsesProfessionalTimezone(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	day := monday(t, loc)

	// 13:00Z == 10:00 em São Paulo
	busy := []Interval{{
		Start: time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 1, 13, 30, 0, 0, time.UTC),
	}}

	got := resolve(day, mondayMorning(), nil, busy)

	assert.NotContains(t, got, "10:00")
	assert.Contains(t, got, "09:30")
}

func TestResolveSlots_InvalidDurationOrStep(t *testing.T) {
	day := monday(t, time.UTC)
	windows := DayWindows(day, mondayMorning(), nil)

	assert.Empty(t, ResolveSlots(windows, nil, 0, 30*time.Minute))
	assert.Empty(t, ResolveSlots(windows, nil, 30*time.Minute, 0))
}

func TestValidateBlocks(t *testing.T) {
	tests := []struct {
		name     string
		blocks   []models.WeeklyScheduleBlock
		wantCode string
	}{
		{"ok", mondayMorning(), ""},
		{"adjacent ok", []models.WeeklyScheduleBlock{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "10:00"},
			{DayOfWeek: 1, StartTime: "10:00", EndTime: "11:00"},
		}, ""},
		{"overlap", []models.WeeklyScheduleBlock{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "10:30"},
			{DayOfWeek: 1, StartTime: "10:00", EndTime: "11:00"},
		}, "overlapping_blocks"},
		{"same range different days", []models.WeeklyScheduleBlock{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "10:00"},
			{DayOfWeek: 3, StartTime: "09:00", EndTime: "10:00"},
		}, ""},
		{"start after end", []models.WeeklyScheduleBlock{
			{DayOfWeek: 1, StartTime: "12:00", EndTime: "09:00"},
		}, "invalid_time_range"},
		{"malformed", []models.WeeklyScheduleBlock{
			{DayOfWeek: 1, StartTime: "9:00", EndTime: "10:00"},
		}, "invalid_time"},
		{"bad hour", []models.WeeklyScheduleBlock{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "25:00"},
		}, "invalid_time"},
		{"bad day", []models.WeeklyScheduleBlock{
			{DayOfWeek: 7, StartTime: "09:00", EndTime: "10:00"},
		}, "invalid_day_of_week"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBlocks(tt.blocks)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, httperr.IsKind(err, httperr.KindInvalidInput))
			assert.True(t, httperr.IsBusiness(err, tt.wantCode), err.Error())
		})
	}
}

func TestNormalizeException(t *testing.T) {
	blocked := &models.ExceptionDate{
		Date:        "2024-01-01",
		IsAvailable: false,
		StartTime:   strPtr("10:00"),
		EndTime:     strPtr("11:00"),
	}
	require.NoError(t, NormalizeException(blocked))
	assert.Nil(t, blocked.StartTime)
	assert.Nil(t, blocked.EndTime)

	missing := &models.ExceptionDate{Date: "2024-01-01", IsAvailable: true}
	assert.True(t, httperr.IsBusiness(NormalizeException(missing), "missing_time_range"))

	badDate := &models.ExceptionDate{Date: "01/01/2024"}
	assert.True(t, httperr.IsBusiness(NormalizeException(badDate), "invalid_date"))

	inverted := &models.ExceptionDate{
		Date:        "2024-01-01",
		IsAvailable: true,
		StartTime:   strPtr("15:00"),
		EndTime:     strPtr("14:00"),
	}
	assert.True(t, httperr.IsBusiness(NormalizeException(inverted), "invalid_time_range"))
}

func TestParseHM(t *testing.T) {
	m, err := ParseHM("09:30")
	require.NoError(t, err)
	assert.Equal(t, 570, m)
	assert.Equal(t, "09:30", FormatHM(m))

	for _, bad := range []string{"", "9:30", "09-30", "+9:30", "24:00", "12:60", "ab:cd"} {
		_, err := ParseHM(bad)
		assert.Error(t, err, bad)
	}
}

func TestFits(t *testing.T) {
	day := monday(t, time.UTC)
	windows := DayWindows(day, mondayMorning(), nil)

	assert.True(t, Fits(windows, Interval{At(day, 9*60), At(day, 12*60)}))
	assert.True(t, Fits(windows, Interval{At(day, 10*60+15), At(day, 10*60+45)}))
	assert.False(t, Fits(windows, Interval{At(day, 11*60+45), At(day, 12*60+15)}))
	assert.False(t, Fits(windows, Interval{At(day, 8*60), At(day, 9*60)}))
}

// ======================================================
// HORÁRIO DE VERÃO
// ======================================================

func newYork(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return loc
}

func TestResolveSlots_FallBackDayHasNoRepeatedTimes(t *testing.T) {
	loc := newYork(t)
	// 2024-11-03: 02:00 EDT volta para 01:00 EST
	day, err := ParseDate("2024-11-03", loc)
	require.NoError(t, err)
	weekly := []models.WeeklyScheduleBlock{
		{DayOfWeek: 0, StartTime: "00:30", EndTime: "03:00"},
	}

	got := resolve(day, weekly, nil, nil)

	assert.Equal(t, []string{"00:30", "01:00", "01:30", "02:00", "02:30"}, got)
}

func TestResolveSlots_SpringForwardSkipsMissingHour(t *testing.T) {
	loc := newYork(t)
	// 2024-03-10: 02:00 EST salta para 03:00 EDT
	day, err := ParseDate("2024-03-10", loc)
	require.NoError(t, err)
	weekly := []models.WeeklyScheduleBlock{
		{DayOfWeek: 0, StartTime: "01:00", EndTime: "04:00"},
	}

	got := resolve(day, weekly, nil, nil)

	assert.Equal(t, []string{"01:00", "01:30", "03:00", "03:30"}, got)
}

func TestParseDateTime(t *testing.T) {
	loc := newYork(t)

	at, err := ParseDateTime("2024-03-10", "03:30", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 10, 7, 30, 0, 0, time.UTC), at.UTC())

	_, err = ParseDateTime("2024-03-10", "02:30", loc)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindInvalidInput))
	assert.True(t, httperr.IsBusiness(err, "nonexistent_local_time"))

	_, err = ParseDateTime("2024-11-03", "01:30", loc)
	assert.NoError(t, err)

	_, err = ParseDateTime("2024-13-01", "10:00", loc)
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}

package availability

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/booking-scheduler/internal/dto"
	"github.com/BruksfildServices01/booking-scheduler/internal/httperr"
	"github.com/BruksfildServices01/booking-scheduler/internal/infra/cache"
	"github.com/BruksfildServices01/booking-scheduler/internal/infra/memory"
	"github.com/BruksfildServices01/booking-scheduler/internal/models"
	"github.com/BruksfildServices01/booking-scheduler/internal/session"
	"github.com/BruksfildServices01/booking-scheduler/internal/usecase"
	apptuc "github.com/BruksfildServices01/booking-scheduler/internal/usecase/appointment"
)

var fixedNow = time.Date(2023, 12, 31, 12, 0, 0, 0, time.UTC)

type fixture struct {
	store   *memory.Store
	deps    usecase.Deps
	pro     *models.Professional
	svc     *models.Service
	proUser session.Session
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctx := context.Background()
	store := memory.New()

	pro := &models.Professional{UserID: 100, Name: "Ana", Timezone: "UTC", IsActive: true}
	require.NoError(t, store.SaveProfessional(ctx, pro))

	svc := &models.Service{ProfessionalID: pro.ID, Name: "Consulta", DurationMin: 30, IsActive: true}
	require.NoError(t, store.SaveService(ctx, svc))

	return &fixture{
		store: store,
		deps: usecase.Deps{
			Appointments: store,
			Schedule:     store,
			Catalog:      store,
			Now:          func() time.Time { return fixedNow },
			Step:         30 * time.Minute,
		},
		pro:     pro,
		svc:     svc,
		proUser: session.Session{UserID: 100, Role: session.RoleProfessional},
	}
}

func mondayMorning() []dto.WeeklyDaySchedule {
	return []dto.WeeklyDaySchedule{
		{DayOfWeek: 1, IsAvailable: true, Blocks: []dto.TimeBlock{{StartTime: "09:00", EndTime: "12:00"}}},
		{DayOfWeek: 2, IsAvailable: false, Blocks: []dto.TimeBlock{{StartTime: "09:00", EndTime: "12:00"}}},
	}
}

func (f *fixture) resolve(t *testing.T, date string) []string {
	t.Helper()
	slots, err := NewResolveTimes(f.deps).Execute(context.Background(), ResolveTimesInput{
		ProfessionalID: f.pro.ID,
		Date:           date,
		ServiceID:      f.svc.ID,
	})
	require.NoError(t, err)
	return slots
}

// ======================================================
// WEEKLY
// ======================================================

func TestReplaceWeeklyIsIdempotent(t *testing.T) {
	f := newFixture(t)
	uc := NewReplaceWeeklySchedule(f.deps)

	first, err := uc.Execute(context.Background(), f.proUser, mondayMorning())
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := uc.Execute(context.Background(), f.proUser, mondayMorning())
	require.NoError(t, err)
	require.Len(t, second, 1)

	assert.Equal(t, first[0].DayOfWeek, second[0].DayOfWeek)
	assert.Equal(t, first[0].StartTime, second[0].StartTime)
	assert.Equal(t, first[0].EndTime, second[0].EndTime)

	got, err := NewGetWeeklySchedule(f.deps).Of(context.Background(), f.pro.ID)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestReplaceWeeklyEmptyClears(t *testing.T) {
	f := newFixture(t)
	uc := NewReplaceWeeklySchedule(f.deps)

	_, err := uc.Execute(context.Background(), f.proUser, mondayMorning())
	require.NoError(t, err)

	blocks, err := uc.Execute(context.Background(), f.proUser, nil)
	require.NoError(t, err)
	assert.Empty(t, blocks)

	assert.Empty(t, f.resolve(t, "2024-01-01"))
}

func TestReplaceWeeklyRejections(t *testing.T) {
	f := newFixture(t)
	uc := NewReplaceWeeklySchedule(f.deps)

	_, err := uc.Execute(context.Background(), f.proUser, []dto.WeeklyDaySchedule{
		{DayOfWeek: 1, IsAvailable: true, Blocks: []dto.TimeBlock{
			{StartTime: "09:00", EndTime: "11:00"},
			{StartTime: "10:30", EndTime: "12:00"},
		}},
	})
	assert.True(t, httperr.IsBusiness(err, "overlapping_blocks"))

	_, err = uc.Execute(context.Background(), f.proUser, []dto.WeeklyDaySchedule{
		{DayOfWeek: 1, IsAvailable: true, Blocks: []dto.TimeBlock{{StartTime: "12:00", EndTime: "09:00"}}},
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_time_range"))

	_, err = uc.Execute(context.Background(), session.Session{UserID: 7, Role: session.RoleClient}, mondayMorning())
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))

	// nada foi gravado
	blocks, err := f.store.ListWeekly(context.Background(), f.pro.ID)
	require.NoError(t, err)
	assert.Empty(t, blocks)
}

// ======================================================
// EXCEPTIONS
// ======================================================

func TestExceptionsLifecycle(t *testing.T) {
	f := newFixture(t)
	_, err := NewReplaceWeeklySchedule(f.deps).Execute(context.Background(), f.proUser, mondayMorning())
	require.NoError(t, err)

	uc := NewExceptions(f.deps)
	start, end := "14:00", "15:00"

	ex, err := uc.Add(context.Background(), f.proUser, AddExceptionInput{
		Date: "2024-01-01", IsAvailable: true, StartTime: &start, EndTime: &end,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"14:00", "14:30"}, f.resolve(t, "2024-01-01"))

	_, err = uc.Add(context.Background(), f.proUser, AddExceptionInput{Date: "2024-01-01"})
	assert.True(t, httperr.IsBusiness(err, "exception_exists"))

	list, err := uc.Of(context.Background(), f.pro.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, uc.Delete(context.Background(), f.proUser, ex.ID))
	require.NoError(t, uc.Delete(context.Background(), f.proUser, ex.ID))

	assert.Len(t, f.resolve(t, "2024-01-01"), 6)
}

func TestAddExceptionRejections(t *testing.T) {
	f := newFixture(t)
	uc := NewExceptions(f.deps)
	start, end := "15:00", "14:00"

	_, err := uc.Add(context.Background(), f.proUser, AddExceptionInput{Date: "2024-13-01"})
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))

	_, err = uc.Add(context.Background(), f.proUser, AddExceptionInput{Date: "2024-01-01", IsAvailable: true})
	assert.True(t, httperr.IsBusiness(err, "missing_time_range"))

	_, err = uc.Add(context.Background(), f.proUser, AddExceptionInput{
		Date: "2024-01-01", IsAvailable: true, StartTime: &start, EndTime: &end,
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_time_range"))

	_, err = uc.Add(context.Background(), session.Session{UserID: 7, Role: session.RoleClient}, AddExceptionInput{Date: "2024-01-01"})
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))
}

// ======================================================
// RESOLVE
// ======================================================

func TestResolveTimes(t *testing.T) {
	f := newFixture(t)
	_, err := NewReplaceWeeklySchedule(f.deps).Execute(context.Background(), f.proUser, mondayMorning())
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"},
		f.resolve(t, "2024-01-01"),
	)

	// terça marcada como indisponível e quarta sem blocos
	assert.Empty(t, f.resolve(t, "2024-01-02"))
	assert.Empty(t, f.resolve(t, "2024-01-03"))

	// data passada
	assert.Empty(t, f.resolve(t, "2023-12-25"))
}

func TestResolveTimesRejections(t *testing.T) {
	f := newFixture(t)
	uc := NewResolveTimes(f.deps)

	_, err := uc.Execute(context.Background(), ResolveTimesInput{ProfessionalID: f.pro.ID, Date: "amanhã"})
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))

	_, err = uc.Execute(context.Background(), ResolveTimesInput{ProfessionalID: 999, Date: "2024-01-01"})
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))

	other := &models.Professional{UserID: 101, Name: "Bia", Timezone: "UTC", IsActive: true}
	require.NoError(t, f.store.SaveProfessional(context.Background(), other))

	_, err = uc.Execute(context.Background(), ResolveTimesInput{ProfessionalID: other.ID, Date: "2024-01-01", ServiceID: f.svc.ID})
	assert.True(t, httperr.IsBusiness(err, "service_mismatch"))
}

func TestResolveTimesDropsPastSlotsToday(t *testing.T) {
	f := newFixture(t)
	_, err := NewReplaceWeeklySchedule(f.deps).Execute(context.Background(), f.proUser, mondayMorning())
	require.NoError(t, err)

	f.deps.Now = func() time.Time { return time.Date(2024, 1, 1, 10, 5, 0, 0, time.UTC) }

	assert.Equal(t, []string{"10:30", "11:00", "11:30"}, f.resolve(t, "2024-01-01"))
}

func TestResolveTimesInProfessionalTimezone(t *testing.T) {
	f := newFixture(t)
	f.pro.Timezone = "America/Sao_Paulo"
	require.NoError(t, f.store.SaveProfessional(context.Background(), f.pro))

	_, err := NewReplaceWeeklySchedule(f.deps).Execute(context.Background(), f.proUser, mondayMorning())
	require.NoError(t, err)

	assert.Len(t, f.resolve(t, "2024-01-01"), 6)

	ap, err := apptuc.NewCreateAppointment(f.deps).Execute(context.Background(),
		session.Session{UserID: 7, Role: session.RoleClient},
		apptuc.CreateAppointmentInput{ServiceID: f.svc.ID, Date: "2024-01-01", StartTime: "09:00"},
	)
	require.NoError(t, err)

	// 09:00 em São Paulo (UTC-3)
	assert.Equal(t, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), ap.AppointmentDate.UTC())
	assert.NotContains(t, f.resolve(t, "2024-01-01"), "09:00")
}

func TestResolveTimesCacheInvalidatedByBooking(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	f := newFixture(t)
	f.deps.Cache = cache.NewRedisSlotCache(client, time.Minute)

	_, err := NewReplaceWeeklySchedule(f.deps).Execute(context.Background(), f.proUser, mondayMorning())
	require.NoError(t, err)

	before := f.resolve(t, "2024-01-01")
	require.Contains(t, before, "10:00")

	// segunda leitura vem do cache
	assert.Equal(t, before, f.resolve(t, "2024-01-01"))

	_, err = apptuc.NewCreateAppointment(f.deps).Execute(context.Background(),
		session.Session{UserID: 7, Role: session.RoleClient},
		apptuc.CreateAppointmentInput{ServiceID: f.svc.ID, Date: "2024-01-01", StartTime: "10:00"},
	)
	require.NoError(t, err)

	after := f.resolve(t, "2024-01-01")
	assert.NotContains(t, after, "10:00")
	assert.Len(t, after, 5)
}

func TestResolveTimesSurvivesCacheOutage(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	f := newFixture(t)
	_, err := NewReplaceWeeklySchedule(f.deps).Execute(context.Background(), f.proUser, mondayMorning())
	require.NoError(t, err)

	f.deps.Cache = cache.NewRedisSlotCache(client, time.Minute)
	mr.Close()

	assert.Len(t, f.resolve(t, "2024-01-01"), 6)
}

func TestResolveTimesAcrossDaylightSavingChanges(t *testing.T) {
	f := newFixture(t)
	f.pro.Timezone = "America/New_York"
	require.NoError(t, f.store.SaveProfessional(context.Background(), f.pro))

	_, err := NewReplaceWeeklySchedule(f.deps).Execute(context.Background(), f.proUser, []dto.WeeklyDaySchedule{
		{DayOfWeek: 0, IsAvailable: true, Blocks: []dto.TimeBlock{{StartTime: "00:30", EndTime: "03:00"}}},
	})
	require.NoError(t, err)

	// atraso: 01:00 e 01:30 acontecem duas vezes
	assert.Equal(t,
		[]string{"00:30", "01:00", "01:30", "02:00", "02:30"},
		f.resolve(t, "2024-11-03"),
	)

	// adiantamento: 02:00 e 02:30 não existem
	assert.Equal(t,
		[]string{"00:30", "01:00", "01:30"},
		f.resolve(t, "2024-03-10"),
	)
}

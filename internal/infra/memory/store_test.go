package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/booking-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/booking-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/booking-scheduler/internal/httperr"
	"github.com/BruksfildServices01/booking-scheduler/internal/models"
)

func TestReplaceWeeklyOverwrites(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.ReplaceWeekly(ctx, 1, []models.WeeklyScheduleBlock{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"},
		{DayOfWeek: 2, StartTime: "09:00", EndTime: "12:00"},
	}))
	require.NoError(t, s.ReplaceWeekly(ctx, 1, []models.WeeklyScheduleBlock{
		{DayOfWeek: 3, StartTime: "14:00", EndTime: "16:00"},
	}))
	require.NoError(t, s.ReplaceWeekly(ctx, 2, []models.WeeklyScheduleBlock{
		{DayOfWeek: 1, StartTime: "08:00", EndTime: "09:00"},
	}))

	blocks, err := s.ListWeekly(ctx, 1)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, 3, blocks[0].DayOfWeek)
	assert.Equal(t, uint(1), blocks[0].ProfessionalID)

	other, err := s.ListWeekly(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestExceptionsUniquePerDateAndScopedDelete(t *testing.T) {
	ctx := context.Background()
	s := New()

	ex := &models.ExceptionDate{ProfessionalID: 1, Date: "2024-01-01"}
	require.NoError(t, s.CreateException(ctx, ex))

	err := s.CreateException(ctx, &models.ExceptionDate{ProfessionalID: 1, Date: "2024-01-01"})
	assert.True(t, httperr.IsKind(err, httperr.KindConflict))

	// mesma data, outro profissional
	require.NoError(t, s.CreateException(ctx, &models.ExceptionDate{ProfessionalID: 2, Date: "2024-01-01"}))

	deleted, err := s.DeleteException(ctx, 2, ex.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = s.DeleteException(ctx, 1, ex.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = s.DeleteException(ctx, 1, ex.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	got, err := s.GetException(ctx, 1, "2024-01-01")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListReservedOverlap(t *testing.T) {
	ctx := context.Background()
	s := New()
	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	for i, status := range []domain.Status{domain.StatusReserved, domain.StatusCancelled} {
		ap := &models.Appointment{
			ProfessionalID: 1,
			ClientID:       uint(10 + i),
			Duration:       30,
			Status:         string(status),
		}
		ap.MoveTo(base)
		require.NoError(t, s.CreateAppointment(ctx, ap))
	}

	got, err := s.ListReserved(ctx, 1, base.Add(29*time.Minute), base.Add(time.Hour))
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = s.ListReserved(ctx, 1, base.Add(30*time.Minute), base.Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = s.ListReserved(ctx, 2, base, base.Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestWithProfessionalLockSerializes(t *testing.T) {
	s := New()
	var inside, maxInside int32

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.WithProfessionalLock(context.Background(), 1, func(l domain.Ledger) error {
				n := atomic.AddInt32(&inside, 1)
				for {
					m := atomic.LoadInt32(&maxInside)
					if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				atomic.AddInt32(&inside, -1)
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside)
}

func TestWithProfessionalLockHonorsCancelledContext(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := s.WithProfessionalLock(ctx, 1, func(l domain.Ledger) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestAuditListFiltersAndPages(t *testing.T) {
	ctx := context.Background()
	s := New()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Save(ctx, &models.AuditLog{
			ProfessionalID: 1,
			Action:         audit.ActionAppointmentCreated,
			Entity:         "appointment",
			CreatedAt:      base.Add(time.Duration(i) * time.Hour),
		}))
	}
	require.NoError(t, s.Save(ctx, &models.AuditLog{
		ProfessionalID: 1,
		Action:         audit.ActionExceptionAdded,
		Entity:         "exception",
		CreatedAt:      base,
	}))
	require.NoError(t, s.Save(ctx, &models.AuditLog{ProfessionalID: 2, Action: "x", CreatedAt: base}))

	logs, total, err := s.List(ctx, audit.Filter{
		ProfessionalID: 1,
		Action:         audit.ActionAppointmentCreated,
		Page:           2,
		Limit:          2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, logs, 2)
	assert.Equal(t, base.Add(2*time.Hour), logs[0].CreatedAt)

	to := base.Add(time.Hour)
	logs, total, err = s.List(ctx, audit.Filter{ProfessionalID: 1, To: &to, Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, logs, 2)
}

package availability

import (
	"context"

	"github.com/BruksfildServices01/booking-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/booking-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/booking-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/booking-scheduler/internal/dto"
	"github.com/BruksfildServices01/booking-scheduler/internal/models"
	"github.com/BruksfildServices01/booking-scheduler/internal/session"
	"github.com/BruksfildServices01/booking-scheduler/internal/usecase"
)

// ======================================================
// GET
// ======================================================

type GetWeeklySchedule struct {
	deps usecase.Deps
}

func NewGetWeeklySchedule(deps usecase.Deps) *GetWeeklySchedule {
	return &GetWeeklySchedule{deps: deps.WithDefaults()}
}

// Mine devolve a agenda do profissional da sessão
func (uc *GetWeeklySchedule) Mine(
	ctx context.Context,
	s session.Session,
) ([]models.WeeklyScheduleBlock, error) {

	pro, err := catalog.CurrentProfessional(ctx, uc.deps.Catalog, s)
	if err != nil {
		return nil, err
	}
	return uc.deps.Schedule.ListWeekly(ctx, pro.ID)
}

// Of devolve a agenda de qualquer profissional (somente leitura)
func (uc *GetWeeklySchedule) Of(
	ctx context.Context,
	professionalID uint,
) ([]models.WeeklyScheduleBlock, error) {

	if _, err := uc.deps.Catalog.GetProfessional(ctx, professionalID); err != nil {
		return nil, err
	}
	return uc.deps.Schedule.ListWeekly(ctx, professionalID)
}

// ======================================================
// REPLACE
// ======================================================

type ReplaceWeeklySchedule struct {
	deps usecase.Deps
}

func NewReplaceWeeklySchedule(deps usecase.Deps) *ReplaceWeeklySchedule {
	return &ReplaceWeeklySchedule{deps: deps.WithDefaults()}
}

// Execute substitui todos os blocos; dias marcados como indisponíveis não geram blocos
func (uc *ReplaceWeeklySchedule) Execute(
	ctx context.Context,
	s session.Session,
	days []dto.WeeklyDaySchedule,
) ([]models.WeeklyScheduleBlock, error) {

	pro, err := catalog.CurrentProfessional(ctx, uc.deps.Catalog, s)
	if err != nil {
		return nil, err
	}

	blocks := Flatten(days)
	if err := domain.ValidateBlocks(blocks); err != nil {
		return nil, err
	}

	err = uc.deps.Retry(ctx, "replace_weekly", func() error {
		return uc.deps.Schedule.ReplaceWeekly(ctx, pro.ID, blocks)
	})
	if err != nil {
		return nil, err
	}

	uc.deps.Touch(ctx, pro.ID)

	uc.deps.Audit.Dispatch(audit.Event{
		ProfessionalID: pro.ID,
		UserID:         usecase.UintPtr(s.UserID),
		Action:         audit.ActionWeeklyReplaced,
		Entity:         "weekly_schedule",
		Metadata:       map[string]int{"blocks": len(blocks)},
	})

	return uc.deps.Schedule.ListWeekly(ctx, pro.ID)
}

func Flatten(days []dto.WeeklyDaySchedule) []models.WeeklyScheduleBlock {
	blocks := make([]models.WeeklyScheduleBlock, 0)
	for _, d := range days {
		if !d.IsAvailable {
			continue
		}
		for _, b := range d.Blocks {
			blocks = append(blocks, models.WeeklyScheduleBlock{
				DayOfWeek: d.DayOfWeek,
				StartTime: b.StartTime,
				EndTime:   b.EndTime,
			})
		}
	}
	return blocks
}

package availability

import (
	"context"

	"github.com/BruksfildServices01/booking-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/booking-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/booking-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/booking-scheduler/internal/httperr"
	"github.com/BruksfildServices01/booking-scheduler/internal/models"
	"github.com/BruksfildServices01/booking-scheduler/internal/session"
	"github.com/BruksfildServices01/booking-scheduler/internal/usecase"
)

type AddExceptionInput struct {
	Date        string
	IsAvailable bool
	StartTime   *string
	EndTime     *string
}

type Exceptions struct {
	deps usecase.Deps
}

func NewExceptions(deps usecase.Deps) *Exceptions {
	return &Exceptions{deps: deps.WithDefaults()}
}

// --------------------------------------------------
// List
// --------------------------------------------------

func (uc *Exceptions) Mine(
	ctx context.Context,
	s session.Session,
) ([]models.ExceptionDate, error) {

	pro, err := catalog.CurrentProfessional(ctx, uc.deps.Catalog, s)
	if err != nil {
		return nil, err
	}
	return uc.deps.Schedule.ListExceptions(ctx, pro.ID)
}

func (uc *Exceptions) Of(
	ctx context.Context,
	professionalID uint,
) ([]models.ExceptionDate, error) {

	if _, err := uc.deps.Catalog.GetProfessional(ctx, professionalID); err != nil {
		return nil, err
	}
	return uc.deps.Schedule.ListExceptions(ctx, professionalID)
}

// --------------------------------------------------
// Add
// --------------------------------------------------

func (uc *Exceptions) Add(
	ctx context.Context,
	s session.Session,
	in AddExceptionInput,
) (*models.ExceptionDate, error) {

	pro, err := catalog.CurrentProfessional(ctx, uc.deps.Catalog, s)
	if err != nil {
		return nil, err
	}

	ex := &models.ExceptionDate{
		ProfessionalID: pro.ID,
		Date:           in.Date,
		IsAvailable:    in.IsAvailable,
		StartTime:      in.StartTime,
		EndTime:        in.EndTime,
	}
	if err := domain.NormalizeException(ex); err != nil {
		return nil, err
	}

	existing, err := uc.deps.Schedule.GetException(ctx, pro.ID, ex.Date)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.Conflict("exception_exists", "Já existe uma exceção para esta data.")
	}

	// a unique (professional_id, date) cobre a corrida entre a leitura e a inserção
	if err := uc.deps.Schedule.CreateException(ctx, ex); err != nil {
		return nil, err
	}

	uc.deps.Touch(ctx, pro.ID)

	uc.deps.Audit.Dispatch(audit.Event{
		ProfessionalID: pro.ID,
		UserID:         usecase.UintPtr(s.UserID),
		Action:         audit.ActionExceptionAdded,
		Entity:         "exception",
		EntityID:       usecase.UintPtr(ex.ID),
		Metadata:       map[string]any{"date": ex.Date, "isAvailable": ex.IsAvailable},
	})

	return ex, nil
}

// --------------------------------------------------
// Delete
// --------------------------------------------------

// Delete é idempotente: id inexistente (ou de outro profissional) não é erro
func (uc *Exceptions) Delete(
	ctx context.Context,
	s session.Session,
	exceptionID uint,
) error {

	pro, err := catalog.CurrentProfessional(ctx, uc.deps.Catalog, s)
	if err != nil {
		return err
	}

	deleted, err := uc.deps.Schedule.DeleteException(ctx, pro.ID, exceptionID)
	if err != nil {
		return err
	}
	if !deleted {
		return nil
	}

	uc.deps.Touch(ctx, pro.ID)

	uc.deps.Audit.Dispatch(audit.Event{
		ProfessionalID: pro.ID,
		UserID:         usecase.UintPtr(s.UserID),
		Action:         audit.ActionExceptionDeleted,
		Entity:         "exception",
		EntityID:       usecase.UintPtr(exceptionID),
	})

	return nil
}

package catalog

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/booking-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/booking-scheduler/internal/httperr"
	"github.com/BruksfildServices01/booking-scheduler/internal/models"
	"github.com/BruksfildServices01/booking-scheduler/internal/session"
	"github.com/BruksfildServices01/booking-scheduler/internal/timezone"
	"github.com/BruksfildServices01/booking-scheduler/internal/usecase"
)

type ProfileInput struct {
	Name      string
	Specialty string
	Bio       string
	Phone     string
	Timezone  string
}

type Professionals struct {
	deps usecase.Deps
}

func NewProfessionals(deps usecase.Deps) *Professionals {
	return &Professionals{deps: deps.WithDefaults()}
}

func (uc *Professionals) List(ctx context.Context) ([]models.Professional, error) {
	return uc.deps.Catalog.ListProfessionals(ctx)
}

func (uc *Professionals) Get(ctx context.Context, id uint) (*models.Professional, error) {
	return uc.deps.Catalog.GetProfessional(ctx, id)
}

func (uc *Professionals) Me(ctx context.Context, s session.Session) (*models.Professional, error) {
	return domain.CurrentProfessional(ctx, uc.deps.Catalog, s)
}

// UpsertMe cria o perfil na primeira chamada e atualiza nas seguintes
func (uc *Professionals) UpsertMe(
	ctx context.Context,
	s session.Session,
	in ProfileInput,
) (*models.Professional, error) {

	if !s.IsProfessional() {
		return nil, httperr.Forbidden("professional_only", "Disponível apenas para profissionais.")
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, httperr.InvalidInput("invalid_name", "Nome é obrigatório.")
	}

	tz := strings.TrimSpace(in.Timezone)
	if tz == "" {
		tz = timezone.Default()
	}
	if !timezone.IsValid(tz) {
		return nil, httperr.InvalidInput("invalid_timezone", "Fuso horário inválido.")
	}

	pro, err := uc.deps.Catalog.GetProfessionalByUser(ctx, s.UserID)
	switch {
	case httperr.IsKind(err, httperr.KindNotFound):
		pro = &models.Professional{UserID: s.UserID, IsActive: true}
	case err != nil:
		return nil, err
	}

	tzChanged := pro.ID != 0 && pro.Timezone != tz

	pro.Name = name
	pro.Specialty = in.Specialty
	pro.Bio = in.Bio
	pro.Phone = in.Phone
	pro.Timezone = tz

	if err := uc.deps.Catalog.SaveProfessional(ctx, pro); err != nil {
		return nil, err
	}

	// os horários em cache foram formatados no fuso antigo
	if tzChanged {
		uc.deps.Touch(ctx, pro.ID)
	}

	return pro, nil
}

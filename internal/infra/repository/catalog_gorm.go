package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/booking-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/booking-scheduler/internal/httperr"
	"github.com/BruksfildServices01/booking-scheduler/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

// --------------------------------------------------
// Professional
// --------------------------------------------------

func (r *CatalogGormRepository) GetProfessional(
	ctx context.Context,
	id uint,
) (*models.Professional, error) {

	var p models.Professional
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, notFound(err, "professional_not_found", "Profissional não encontrado.")
	}
	return &p, nil
}

func (r *CatalogGormRepository) GetProfessionalByUser(
	ctx context.Context,
	userID uint,
) (*models.Professional, error) {

	var p models.Professional
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&p).Error; err != nil {
		return nil, notFound(err, "professional_not_found", "Profissional não encontrado.")
	}
	return &p, nil
}

func (r *CatalogGormRepository) ListProfessionals(ctx context.Context) ([]models.Professional, error) {
	var out []models.Professional
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CatalogGormRepository) SaveProfessional(
	ctx context.Context,
	p *models.Professional,
) error {

	err := r.db.WithContext(ctx).Save(p).Error
	if httperr.IsUniqueViolation(err) {
		return httperr.Conflict("professional_exists", "Usuário já possui perfil profissional.")
	}
	return err
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *CatalogGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, notFound(err, "service_not_found", "Serviço não encontrado.")
	}
	return &svc, nil
}

func (r *CatalogGormRepository) ListServices(
	ctx context.Context,
	professionalID uint,
) ([]models.Service, error) {

	q := r.db.WithContext(ctx)
	if professionalID != 0 {
		q = q.Where("professional_id = ?", professionalID)
	} else {
		q = q.Where("is_active = ?", true)
	}

	var out []models.Service
	if err := q.Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CatalogGormRepository) SaveService(
	ctx context.Context,
	svc *models.Service,
) error {
	return r.db.WithContext(ctx).Save(svc).Error
}

func notFound(err error, code, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.NotFoundErr(code, message)
	}
	return err
}

var _ catalog.Repository = (*CatalogGormRepository)(nil)

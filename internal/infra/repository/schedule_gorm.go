package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/booking-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/booking-scheduler/internal/httperr"
	"github.com/BruksfildServices01/booking-scheduler/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Weekly
// --------------------------------------------------

func (r *ScheduleGormRepository) ListWeekly(
	ctx context.Context,
	professionalID uint,
) ([]models.WeeklyScheduleBlock, error) {

	var blocks []models.WeeklyScheduleBlock
	if err := r.db.WithContext(ctx).
		Where("professional_id = ?", professionalID).
		Order("day_of_week ASC, start_time ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

func (r *ScheduleGormRepository) ReplaceWeekly(
	ctx context.Context,
	professionalID uint,
	blocks []models.WeeklyScheduleBlock,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("professional_id = ?", professionalID).
			Delete(&models.WeeklyScheduleBlock{}).Error; err != nil {
			return err
		}

		if len(blocks) == 0 {
			return nil
		}

		toCreate := make([]models.WeeklyScheduleBlock, 0, len(blocks))
		for _, b := range blocks {
			b.ID = 0
			b.ProfessionalID = professionalID
			toCreate = append(toCreate, b)
		}

		return tx.Create(&toCreate).Error
	})
}

// --------------------------------------------------
// Exceptions
// --------------------------------------------------

func (r *ScheduleGormRepository) ListExceptions(
	ctx context.Context,
	professionalID uint,
) ([]models.ExceptionDate, error) {

	var out []models.ExceptionDate
	if err := r.db.WithContext(ctx).
		Where("professional_id = ?", professionalID).
		Order("date ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ScheduleGormRepository) GetException(
	ctx context.Context,
	professionalID uint,
	date string,
) (*models.ExceptionDate, error) {

	var ex models.ExceptionDate
	err := r.db.WithContext(ctx).
		Where("professional_id = ? AND date = ?", professionalID, date).
		First(&ex).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ex, nil
}

func (r *ScheduleGormRepository) CreateException(
	ctx context.Context,
	ex *models.ExceptionDate,
) error {

	err := r.db.WithContext(ctx).Create(ex).Error
	if httperr.IsUniqueViolation(err) {
		return httperr.Conflict("exception_exists", "Já existe uma exceção para esta data.")
	}
	return err
}

func (r *ScheduleGormRepository) DeleteException(
	ctx context.Context,
	professionalID uint,
	exceptionID uint,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Where("id = ? AND professional_id = ?", exceptionID, professionalID).
		Delete(&models.ExceptionDate{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

var _ availability.Repository = (*ScheduleGormRepository)(nil)

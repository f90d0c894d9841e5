package availability

import (
	"context"

	"github.com/BruksfildServices01/booking-scheduler/internal/models"
)

type Repository interface {
	// -------- Weekly --------
	ListWeekly(
		ctx context.Context,
		professionalID uint,
	) ([]models.WeeklyScheduleBlock, error)

	// ReplaceWeekly apaga todos os blocos do profissional e grava o novo conjunto atomicamente
	ReplaceWeekly(
		ctx context.Context,
		professionalID uint,
		blocks []models.WeeklyScheduleBlock,
	) error

	// -------- Exceptions --------
	ListExceptions(
		ctx context.Context,
		professionalID uint,
	) ([]models.ExceptionDate, error)

	// GetException devolve nil, nil quando não existe exceção na data
	GetException(
		ctx context.Context,
		professionalID uint,
		date string,
	) (*models.ExceptionDate, error)

	// CreateException falha com Conflict se já houver exceção na data
	CreateException(
		ctx context.Context,
		ex *models.ExceptionDate,
	) error

	// DeleteException informa se algo foi removido
	DeleteException(
		ctx context.Context,
		professionalID uint,
		exceptionID uint,
	) (bool, error)
}

package repository

import (
	"context"

	"github.com/RMahshie/adscorr/pkg/models"
	"github.com/google/uuid"
)

// CalculationRepository defines the interface for calculation data operations
type CalculationRepository interface {
	Create(ctx context.Context, calc *models.Calculation) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Calculation, error)
	List(ctx context.Context, limit int) ([]*models.Calculation, error)
}

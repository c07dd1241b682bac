package repository

import (
	"context"

	"attendance_srv/internal/models"
)

// GenerationLog хранит метаданные о сгенерированных табелях.
type GenerationLog interface {
	Record(ctx context.Context, g *models.Generation) error
	Recent(ctx context.Context, limit int) ([]models.Generation, error)
}

package equipment

import (
	"context"

	"github.com/dmitrijs2005/tallerkeeper/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.Equipment, error)
	GetByID(ctx context.Context, id int64) (*models.Equipment, error)
	Create(ctx context.Context, e *models.Equipment) (*models.Equipment, error)
	Update(ctx context.Context, e *models.Equipment) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	Count(ctx context.Context) (int64, error)
	LockForReset(ctx context.Context) error
	ResetIdentity(ctx context.Context) error
}

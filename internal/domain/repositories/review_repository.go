package repositories

import (
	"context"

	"github.com/triafrota/tria-backend/internal/domain/entities"
)

// ReviewRepository define a interface para persistência de reviews
type ReviewRepository interface {
	Create(ctx context.Context, review *entities.Review) error
	FindByID(ctx context.Context, id uint) (*entities.Review, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*entities.Review, error)
}

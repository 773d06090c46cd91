package repositories

import (
	"context"

	"github.com/triafrota/tria-backend/internal/domain/entities"
)

// MotoSetorRepository define a interface para persistência das
// alocações moto-setor
type MotoSetorRepository interface {
	Create(ctx context.Context, motoSetor *entities.MotoSetor) error
	FindByID(ctx context.Context, id uint) (*entities.MotoSetor, error)
	Update(ctx context.Context, motoSetor *entities.MotoSetor) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*entities.MotoSetor, error)
}

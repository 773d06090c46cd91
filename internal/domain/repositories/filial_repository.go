package repositories

import (
	"context"

	"github.com/triafrota/tria-backend/internal/domain/entities"
)

// FilialRepository define a interface para persistência de filiais
type FilialRepository interface {
	Create(ctx context.Context, filial *entities.Filial) error
	FindByID(ctx context.Context, id uint) (*entities.Filial, error)
	// ExistsByNome compara nomes sem diferenciar maiúsculas/minúsculas
	ExistsByNome(ctx context.Context, nome string) (bool, error)
	SearchByNome(ctx context.Context, nome string) ([]*entities.Filial, error)
	Update(ctx context.Context, filial *entities.Filial) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*entities.Filial, error)
}

package repositories

import (
	"context"

	"github.com/triafrota/tria-backend/internal/domain/entities"
)

// SetorRepository define a interface para persistência de setores
type SetorRepository interface {
	Create(ctx context.Context, setor *entities.Setor) error
	FindByID(ctx context.Context, id uint) (*entities.Setor, error)
	// ExistsByNome compara nomes sem diferenciar maiúsculas/minúsculas
	ExistsByNome(ctx context.Context, nome string) (bool, error)
	Update(ctx context.Context, setor *entities.Setor) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*entities.Setor, error)
}

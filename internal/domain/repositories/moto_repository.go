package repositories

import (
	"context"

	"github.com/triafrota/tria-backend/internal/domain/entities"
)

// MotoRepository define a interface para persistência de motos
type MotoRepository interface {
	Create(ctx context.Context, moto *entities.Moto) error
	FindByID(ctx context.Context, id uint) (*entities.Moto, error)
	// FindByPlaca busca pela placa normalizada (maiúscula, sem espaços)
	FindByPlaca(ctx context.Context, placa string) (*entities.Moto, error)
	ExistsByPlaca(ctx context.Context, placa string) (bool, error)
	SearchByModelo(ctx context.Context, modelo string) ([]*entities.Moto, error)
	// ListFromAno retorna motos com Ano >= ano
	ListFromAno(ctx context.Context, ano int) ([]*entities.Moto, error)
	Update(ctx context.Context, moto *entities.Moto) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*entities.Moto, error)
}

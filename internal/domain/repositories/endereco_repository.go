package repositories

import (
	"context"

	"github.com/triafrota/tria-backend/internal/domain/entities"
)

// EnderecoRepository define a interface para persistência de endereços
type EnderecoRepository interface {
	Create(ctx context.Context, endereco *entities.Endereco) error
	FindByID(ctx context.Context, id uint) (*entities.Endereco, error)
	FindByCep(ctx context.Context, cep string) (*entities.Endereco, error)
	Update(ctx context.Context, endereco *entities.Endereco) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*entities.Endereco, error)
}

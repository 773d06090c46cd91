package repositories

import (
	"context"

	"github.com/triafrota/tria-backend/internal/domain/entities"
)

// FuncionarioRepository define a interface para persistência de funcionários
type FuncionarioRepository interface {
	Create(ctx context.Context, funcionario *entities.Funcionario) error
	FindByID(ctx context.Context, id uint) (*entities.Funcionario, error)
	// ExistsByEmail compara e-mails sem diferenciar maiúsculas/minúsculas
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	SearchByNome(ctx context.Context, nome string) ([]*entities.Funcionario, error)
	SearchByCargo(ctx context.Context, cargo string) ([]*entities.Funcionario, error)
	Update(ctx context.Context, funcionario *entities.Funcionario) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*entities.Funcionario, error)
}

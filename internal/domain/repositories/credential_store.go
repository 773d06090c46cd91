package repositories

import (
	"context"

	"github.com/triafrota/tria-backend/internal/domain/entities"
)

// CredentialStore define a interface do repositório de credenciais
// usado pela autenticação. Fica atrás de interface para permitir
// isolamento em testes e uma eventual persistência real.
type CredentialStore interface {
	// FindByEmail compara e-mails sem diferenciar maiúsculas/minúsculas
	FindByEmail(ctx context.Context, email string) (*entities.Funcionario, error)
	// Add atribui o próximo id sequencial e armazena a credencial
	Add(ctx context.Context, funcionario *entities.Funcionario) error
}

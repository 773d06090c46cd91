package memory

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/triafrota/tria-backend/internal/domain/entities"
	"github.com/triafrota/tria-backend/internal/domain/repositories"
)

// CredentialStore implementa repositories.CredentialStore em memória.
// O mutex protege a lista contra registros concorrentes; a vida útil
// da instância acompanha o processo.
type CredentialStore struct {
	mu     sync.RWMutex
	users  []*entities.Funcionario
	nextID uint
}

// NewCredentialStore cria um store vazio
func NewCredentialStore() repositories.CredentialStore {
	return &CredentialStore{nextID: 1}
}

// NewSeededCredentialStore cria o store com o usuário administrador
// inicial (o hash da senha é calculado na inicialização)
func NewSeededCredentialStore() (repositories.CredentialStore, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	store := &CredentialStore{nextID: 1}
	admin := &entities.Funcionario{
		Nome:  "Admin",
		Cargo: "Administrador",
		Email: "admin@tria.com",
		Senha: string(hash),
	}
	if err := store.Add(context.Background(), admin); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *CredentialStore) FindByEmail(_ context.Context, email string) (*entities.Funcionario, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if strings.EqualFold(user.Email, email) {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (s *CredentialStore) Add(_ context.Context, funcionario *entities.Funcionario) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	funcionario.ID = s.nextID
	s.nextID++

	clone := *funcionario
	s.users = append(s.users, &clone)
	return nil
}

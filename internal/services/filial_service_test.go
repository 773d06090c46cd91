package services

import (
	"context"
	"testing"

	"github.com/triafrota/tria-backend/internal/domain/entities"
	"github.com/triafrota/tria-backend/internal/domain/errors"
)

func newFilialFixture(t *testing.T) (*FilialService, uint) {
	t.Helper()
	ctx := context.Background()

	filialRepo := newFakeFilialRepo()
	enderecoRepo := newFakeEnderecoRepo()

	endereco := &entities.Endereco{
		Logradouro: "Av. Ipiranga",
		Cidade:     "Porto Alegre",
		Estado:     "RS",
		Numero:     "6681",
		Cep:        "90619900",
	}
	if err := enderecoRepo.Create(ctx, endereco); err != nil {
		t.Fatalf("falha no seed do endereço: %v", err)
	}

	service := NewFilialService(filialRepo, NewFilialValidation(filialRepo, enderecoRepo), noopLogger{})
	return service, endereco.ID
}

func TestFilialServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("cria filial vinculada a endereço existente", func(t *testing.T) {
		service, enderecoID := newFilialFixture(t)

		filial, err := service.Create(ctx, FilialInput{Nome: "Filial Centro", IdEndereco: enderecoID})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if filial.IdEndereco != enderecoID {
			t.Errorf("esperava vínculo com endereço %d, obteve %d", enderecoID, filial.IdEndereco)
		}
	})

	t.Run("rejeita nome duplicado já na criação", func(t *testing.T) {
		service, enderecoID := newFilialFixture(t)

		if _, err := service.Create(ctx, FilialInput{Nome: "Filial Centro", IdEndereco: enderecoID}); err != nil {
			t.Fatalf("esperava sucesso no primeiro cadastro, obteve: %v", err)
		}

		_, err := service.Create(ctx, FilialInput{Nome: "filial centro", IdEndereco: enderecoID})
		if !errors.IsAlreadyExists(err) {
			t.Fatalf("esperava AlreadyExistsError, obteve: %v", err)
		}
	})

	t.Run("endereço inexistente responde NotFound", func(t *testing.T) {
		service, _ := newFilialFixture(t)

		_, err := service.Create(ctx, FilialInput{Nome: "Filial Norte", IdEndereco: 99})
		if !errors.IsNotFound(err) {
			t.Fatalf("esperava NotFoundError, obteve: %v", err)
		}
	})
}

func TestFilialServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("mantendo o próprio nome não acusa duplicidade", func(t *testing.T) {
		service, enderecoID := newFilialFixture(t)

		criada, err := service.Create(ctx, FilialInput{Nome: "Filial Centro", IdEndereco: enderecoID})
		if err != nil {
			t.Fatalf("esperava sucesso no cadastro, obteve: %v", err)
		}

		if _, err := service.Update(ctx, criada.ID, FilialInput{Nome: "FILIAL CENTRO", IdEndereco: enderecoID}); err != nil {
			t.Errorf("esperava sucesso, obteve erro: %v", err)
		}
	})

	t.Run("rejeita troca para nome de outra filial", func(t *testing.T) {
		service, enderecoID := newFilialFixture(t)

		if _, err := service.Create(ctx, FilialInput{Nome: "Filial Centro", IdEndereco: enderecoID}); err != nil {
			t.Fatalf("esperava sucesso no cadastro, obteve: %v", err)
		}
		norte, err := service.Create(ctx, FilialInput{Nome: "Filial Norte", IdEndereco: enderecoID})
		if err != nil {
			t.Fatalf("esperava sucesso no cadastro, obteve: %v", err)
		}

		_, err = service.Update(ctx, norte.ID, FilialInput{Nome: "Filial Centro", IdEndereco: enderecoID})
		if !errors.IsAlreadyExists(err) {
			t.Fatalf("esperava AlreadyExistsError, obteve: %v", err)
		}
	})
}

func TestFilialServiceSearchByNome(t *testing.T) {
	ctx := context.Background()
	service, enderecoID := newFilialFixture(t)

	nomes := []string{"Filial Centro", "Filial Norte", "Depósito Sul"}
	for _, nome := range nomes {
		if _, err := service.Create(ctx, FilialInput{Nome: nome, IdEndereco: enderecoID}); err != nil {
			t.Fatalf("falha no seed: %v", err)
		}
	}

	found, err := service.SearchByNome(ctx, "filial")
	if err != nil {
		t.Fatalf("esperava sucesso, obteve erro: %v", err)
	}
	if len(found) != 2 {
		t.Errorf("esperava 2 resultados, obteve %d", len(found))
	}
}

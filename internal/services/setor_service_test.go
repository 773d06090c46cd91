package services

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/triafrota/tria-backend/internal/domain/errors"
)

func newSetorService() *SetorService {
	repo := newFakeSetorRepo()
	return NewSetorService(repo, NewSetorValidation(repo), noopLogger{})
}

func TestSetorService(t *testing.T) {
	ctx := context.Background()

	t.Run("ciclo completo de criação, busca e remoção", func(t *testing.T) {
		service := newSetorService()

		criado, err := service.Create(ctx, SetorInput{Nome: "Setor de Manutenção"})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		buscado, err := service.GetByID(ctx, criado.ID)
		if err != nil {
			t.Fatalf("esperava sucesso na busca, obteve: %v", err)
		}
		if buscado.Nome != "Setor de Manutenção" {
			t.Errorf("esperava nome preservado, obteve '%s'", buscado.Nome)
		}

		if err := service.Delete(ctx, criado.ID); err != nil {
			t.Fatalf("esperava sucesso na remoção, obteve: %v", err)
		}

		_, err = service.GetByID(ctx, criado.ID)
		if !errors.IsNotFound(err) {
			t.Fatalf("esperava NotFoundError após remoção, obteve: %v", err)
		}
	})

	t.Run("rejeita nome duplicado sem diferenciar maiúsculas", func(t *testing.T) {
		service := newSetorService()

		if _, err := service.Create(ctx, SetorInput{Nome: "Logística"}); err != nil {
			t.Fatalf("esperava sucesso no primeiro cadastro, obteve: %v", err)
		}

		_, err := service.Create(ctx, SetorInput{Nome: "LOGÍSTICA"})
		if !errors.IsAlreadyExists(err) {
			t.Fatalf("esperava AlreadyExistsError, obteve: %v", err)
		}
	})

	t.Run("rejeita nome fora dos limites de tamanho", func(t *testing.T) {
		service := newSetorService()

		_, err := service.Create(ctx, SetorInput{Nome: "AB"})
		var length *errors.InvalidLengthError
		if !asError(err, &length) {
			t.Fatalf("esperava InvalidLengthError, obteve: %v", err)
		}
		if length.Min != 3 || length.Max != 50 {
			t.Errorf("esperava limites 3..50, obteve %d..%d", length.Min, length.Max)
		}
	})

	t.Run("nome acentuado no limite de 50 caracteres é aceito", func(t *testing.T) {
		service := newSetorService()

		nome := "Manutenção Preventiva e Revisão de Período " + strings.Repeat("á", 7)
		if utf8.RuneCountInString(nome) != 50 {
			t.Fatalf("fixture deveria ter 50 caracteres, tem %d", utf8.RuneCountInString(nome))
		}
		if _, err := service.Create(ctx, SetorInput{Nome: nome}); err != nil {
			t.Errorf("esperava sucesso com 50 caracteres acentuados, obteve erro: %v", err)
		}
	})

	t.Run("atualização mantendo o próprio nome não acusa duplicidade", func(t *testing.T) {
		service := newSetorService()

		criado, err := service.Create(ctx, SetorInput{Nome: "Expedição"})
		if err != nil {
			t.Fatalf("esperava sucesso no cadastro, obteve: %v", err)
		}

		if _, err := service.Update(ctx, criado.ID, SetorInput{Nome: "EXPEDIÇÃO"}); err != nil {
			t.Errorf("esperava sucesso, obteve erro: %v", err)
		}
	})

	t.Run("remoção de id inexistente responde NotFound", func(t *testing.T) {
		service := newSetorService()

		if err := service.Delete(ctx, 42); !errors.IsNotFound(err) {
			t.Fatalf("esperava NotFoundError, obteve: %v", err)
		}
	})
}

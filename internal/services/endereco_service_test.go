package services

import (
	"context"
	"testing"

	"github.com/triafrota/tria-backend/internal/domain/errors"
)

func strPtr(s string) *string { return &s }

func TestEnderecoServiceUpdate(t *testing.T) {
	ctx := context.Background()

	criar := func(t *testing.T) (*EnderecoService, uint) {
		t.Helper()
		service := NewEnderecoService(newFakeEnderecoRepo(), noopLogger{})
		endereco, err := service.Create(ctx, EnderecoInput{
			Logradouro: "Rua dos Andradas",
			Cidade:     "Porto Alegre",
			Estado:     "RS",
			Numero:     "1234",
			Cep:        "90020010",
		})
		if err != nil {
			t.Fatalf("falha no seed do endereço: %v", err)
		}
		return service, endereco.ID
	}

	t.Run("campos omitidos preservam o valor atual", func(t *testing.T) {
		service, id := criar(t)

		atualizado, err := service.Update(ctx, id, EnderecoUpdateInput{
			Numero: strPtr("500"),
		})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if atualizado.Numero != "500" {
			t.Errorf("esperava número '500', obteve '%s'", atualizado.Numero)
		}
		if atualizado.Logradouro != "Rua dos Andradas" {
			t.Errorf("esperava logradouro preservado, obteve '%s'", atualizado.Logradouro)
		}
		if atualizado.Cep != "90020010" {
			t.Errorf("esperava CEP preservado, obteve '%s'", atualizado.Cep)
		}
	})

	t.Run("o resultado do merge é revalidado", func(t *testing.T) {
		service, id := criar(t)

		_, err := service.Update(ctx, id, EnderecoUpdateInput{
			Cep: strPtr("90020-010"),
		})
		var invalid *errors.InvalidFieldError
		if !asError(err, &invalid) {
			t.Fatalf("esperava InvalidFieldError, obteve: %v", err)
		}
	})

	t.Run("id inexistente responde NotFound", func(t *testing.T) {
		service, _ := criar(t)

		_, err := service.Update(ctx, 99, EnderecoUpdateInput{Numero: strPtr("1")})
		if !errors.IsNotFound(err) {
			t.Fatalf("esperava NotFoundError, obteve: %v", err)
		}
	})
}

func TestEnderecoServiceGetByCep(t *testing.T) {
	ctx := context.Background()
	service := NewEnderecoService(newFakeEnderecoRepo(), noopLogger{})

	if _, err := service.Create(ctx, EnderecoInput{
		Logradouro: "Rua dos Andradas",
		Cidade:     "Porto Alegre",
		Estado:     "RS",
		Numero:     "1234",
		Cep:        "90020010",
	}); err != nil {
		t.Fatalf("falha no seed do endereço: %v", err)
	}

	t.Run("encontra pelo CEP exato", func(t *testing.T) {
		endereco, err := service.GetByCep(ctx, "90020010")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if endereco.Cidade != "Porto Alegre" {
			t.Errorf("esperava cidade 'Porto Alegre', obteve '%s'", endereco.Cidade)
		}
	})

	t.Run("valida o formato antes de consultar", func(t *testing.T) {
		_, err := service.GetByCep(ctx, "90020-010")
		var invalid *errors.InvalidFieldError
		if !asError(err, &invalid) {
			t.Fatalf("esperava InvalidFieldError, obteve: %v", err)
		}
	})

	t.Run("CEP válido mas não cadastrado responde NotFound", func(t *testing.T) {
		_, err := service.GetByCep(ctx, "01310100")
		if !errors.IsNotFound(err) {
			t.Fatalf("esperava NotFoundError, obteve: %v", err)
		}
	})
}

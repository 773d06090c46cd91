package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/triafrota/tria-backend/internal/domain/errors"
	"github.com/triafrota/tria-backend/internal/domain/repositories"
)

// SetorValidation concentra as regras de negócio de setor
type SetorValidation struct {
	repo repositories.SetorRepository
}

// NewSetorValidation cria uma nova SetorValidation
func NewSetorValidation(repo repositories.SetorRepository) *SetorValidation {
	return &SetorValidation{repo: repo}
}

// ValidateCreate valida o nome e a sua unicidade (sem case, via
// repositório)
func (v *SetorValidation) ValidateCreate(ctx context.Context, input SetorInput) error {
	if err := validarNomeSetor(input.Nome); err != nil {
		return err
	}

	exists, err := v.repo.ExistsByNome(ctx, input.Nome)
	if err != nil {
		return err
	}
	if exists {
		return &errors.AlreadyExistsError{Campo: "Nome", Valor: input.Nome}
	}
	return nil
}

// ValidateUpdate revalida sempre tamanho e preenchimento; a unicidade
// só é rechecada quando o nome difere do original (comparação sem case)
func (v *SetorValidation) ValidateUpdate(ctx context.Context, input SetorInput, originalNome string) error {
	if err := validarNomeSetor(input.Nome); err != nil {
		return err
	}

	if strings.EqualFold(input.Nome, originalNome) {
		return nil
	}

	exists, err := v.repo.ExistsByNome(ctx, input.Nome)
	if err != nil {
		return err
	}
	if exists {
		return &errors.AlreadyExistsError{Campo: "Nome", Valor: input.Nome}
	}
	return nil
}

func validarNomeSetor(nome string) error {
	if strings.TrimSpace(nome) == "" {
		return &errors.EmptyFieldError{Campo: "Nome"}
	}
	if n := utf8.RuneCountInString(nome); n < 3 || n > 50 {
		return &errors.InvalidLengthError{Campo: "Nome", Min: 3, Max: 50}
	}
	return nil
}

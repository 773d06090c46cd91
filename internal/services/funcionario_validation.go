package services

import (
	"context"
	"strings"

	"github.com/triafrota/tria-backend/internal/domain/errors"
	"github.com/triafrota/tria-backend/internal/domain/repositories"
)

// FuncionarioValidation concentra as checagens de unicidade e de
// campos obrigatórios de funcionário
type FuncionarioValidation struct {
	repo repositories.FuncionarioRepository
}

// NewFuncionarioValidation cria uma nova FuncionarioValidation
func NewFuncionarioValidation(repo repositories.FuncionarioRepository) *FuncionarioValidation {
	return &FuncionarioValidation{repo: repo}
}

// ValidateCreate valida e-mail único e cargo preenchido
func (v *FuncionarioValidation) ValidateCreate(ctx context.Context, input FuncionarioInput) error {
	exists, err := v.repo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return err
	}
	if exists {
		return &errors.AlreadyExistsError{Campo: "Email", Valor: input.Email}
	}

	if strings.TrimSpace(input.Cargo) == "" {
		return &errors.EmptyFieldError{Campo: "Cargo"}
	}

	return nil
}

// ValidateUpdate rechecagem de unicidade apenas quando o e-mail mudou
// em relação ao original (comparação sem case). O cargo não é
// revalidado na atualização.
func (v *FuncionarioValidation) ValidateUpdate(ctx context.Context, input FuncionarioInput, originalEmail string) error {
	if strings.EqualFold(input.Email, originalEmail) {
		return nil
	}

	exists, err := v.repo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return err
	}
	if exists {
		return &errors.AlreadyExistsError{Campo: "Email", Valor: input.Email}
	}
	return nil
}

package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/triafrota/tria-backend/internal/domain/entities"
	"github.com/triafrota/tria-backend/internal/domain/errors"
	"github.com/triafrota/tria-backend/internal/domain/repositories"
)

// FilialValidation concentra as regras de negócio de filial que
// dependem de consultas ao repositório
type FilialValidation struct {
	filialRepo   repositories.FilialRepository
	enderecoRepo repositories.EnderecoRepository
}

// NewFilialValidation cria uma nova FilialValidation
func NewFilialValidation(filialRepo repositories.FilialRepository, enderecoRepo repositories.EnderecoRepository) *FilialValidation {
	return &FilialValidation{filialRepo: filialRepo, enderecoRepo: enderecoRepo}
}

// ValidateCreate valida as regras para criação de uma filial.
// A unicidade do nome é checada também na criação: um nome que precisa
// ser único na atualização precisa ser único desde o cadastro.
func (v *FilialValidation) ValidateCreate(ctx context.Context, input FilialInput) error {
	if err := validarNomeFilial(input.Nome); err != nil {
		return err
	}

	exists, err := v.filialRepo.ExistsByNome(ctx, input.Nome)
	if err != nil {
		return err
	}
	if exists {
		return &errors.AlreadyExistsError{Campo: "Nome", Valor: input.Nome}
	}

	return v.validateEnderecoExists(ctx, input.IdEndereco)
}

// ValidateUpdate revalida a unicidade do nome apenas quando ele mudou
// em relação ao original (comparação sem case); a existência do
// endereço é sempre verificada
func (v *FilialValidation) ValidateUpdate(ctx context.Context, input FilialInput, original *entities.Filial) error {
	if err := validarNomeFilial(input.Nome); err != nil {
		return err
	}

	if !strings.EqualFold(input.Nome, original.Nome) {
		exists, err := v.filialRepo.ExistsByNome(ctx, input.Nome)
		if err != nil {
			return err
		}
		if exists {
			return &errors.AlreadyExistsError{Campo: "Nome", Valor: input.Nome}
		}
	}

	return v.validateEnderecoExists(ctx, input.IdEndereco)
}

func (v *FilialValidation) validateEnderecoExists(ctx context.Context, idEndereco uint) error {
	endereco, err := v.enderecoRepo.FindByID(ctx, idEndereco)
	if err != nil {
		return err
	}
	if endereco == nil {
		return &errors.NotFoundError{Entidade: "Endereco", ID: idEndereco}
	}
	return nil
}

func validarNomeFilial(nome string) error {
	if strings.TrimSpace(nome) == "" {
		return &errors.EmptyFieldError{Campo: "Nome"}
	}
	if utf8.RuneCountInString(nome) > 100 {
		return &errors.InvalidLengthError{Campo: "Nome", Min: 1, Max: 100}
	}
	return nil
}

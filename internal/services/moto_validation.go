package services

import (
	"context"
	"strings"

	"github.com/triafrota/tria-backend/internal/domain/entities"
	"github.com/triafrota/tria-backend/internal/domain/errors"
	"github.com/triafrota/tria-backend/internal/domain/repositories"
)

// MotoValidation concentra as regras de negócio de moto que dependem
// de consultas ao repositório
type MotoValidation struct {
	motoRepo   repositories.MotoRepository
	filialRepo repositories.FilialRepository
}

// NewMotoValidation cria uma nova MotoValidation
func NewMotoValidation(motoRepo repositories.MotoRepository, filialRepo repositories.FilialRepository) *MotoValidation {
	return &MotoValidation{motoRepo: motoRepo, filialRepo: filialRepo}
}

// ValidateCreate valida placa preenchida e única, combustível na
// enumeração permitida e existência da filial
func (v *MotoValidation) ValidateCreate(ctx context.Context, input MotoInput) error {
	if strings.TrimSpace(input.Placa) == "" {
		return &errors.EmptyFieldError{Campo: "Placa"}
	}

	exists, err := v.motoRepo.ExistsByPlaca(ctx, entities.NormalizarPlaca(input.Placa))
	if err != nil {
		return err
	}
	if exists {
		return &errors.AlreadyExistsError{Campo: "Placa", Valor: input.Placa}
	}

	if err := validarTipoCombustivel(input.TipoCombustivel); err != nil {
		return err
	}

	return v.validateFilialExists(ctx, input.IdFilial)
}

// ValidateUpdate rechecagem de unicidade da placa apenas quando ela
// mudou em relação à original (comparação normalizada); combustível e
// filial são sempre revalidados
func (v *MotoValidation) ValidateUpdate(ctx context.Context, input MotoInput, original *entities.Moto) error {
	novaPlaca := entities.NormalizarPlaca(input.Placa)

	if novaPlaca != entities.NormalizarPlaca(original.Placa) {
		exists, err := v.motoRepo.ExistsByPlaca(ctx, novaPlaca)
		if err != nil {
			return err
		}
		if exists {
			return &errors.AlreadyExistsError{Campo: "Placa", Valor: input.Placa}
		}
	}

	if err := validarTipoCombustivel(input.TipoCombustivel); err != nil {
		return err
	}

	return v.validateFilialExists(ctx, input.IdFilial)
}

func (v *MotoValidation) validateFilialExists(ctx context.Context, idFilial uint) error {
	filial, err := v.filialRepo.FindByID(ctx, idFilial)
	if err != nil {
		return err
	}
	if filial == nil {
		return &errors.NotFoundError{Entidade: "Filial", ID: idFilial}
	}
	return nil
}

func validarTipoCombustivel(tipo string) error {
	if !entities.TipoCombustivelValido(tipo) {
		return &errors.InvalidFieldError{Campo: "Tipo de combustível"}
	}
	return nil
}

package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/triafrota/tria-backend/internal/domain/errors"
	"github.com/triafrota/tria-backend/internal/domain/repositories"
)

// MotoSetorValidation valida as chaves estrangeiras e os campos
// obrigatórios de uma alocação moto-setor
type MotoSetorValidation struct {
	motoRepo  repositories.MotoRepository
	setorRepo repositories.SetorRepository
}

// NewMotoSetorValidation cria uma nova MotoSetorValidation
func NewMotoSetorValidation(motoRepo repositories.MotoRepository, setorRepo repositories.SetorRepository) *MotoSetorValidation {
	return &MotoSetorValidation{motoRepo: motoRepo, setorRepo: setorRepo}
}

// Validate checa data preenchida, fonte dentro dos limites e a
// existência da moto e do setor referenciados. Não há regra de
// duplicidade de alocação: uma moto pode constar em mais de um setor.
func (v *MotoSetorValidation) Validate(ctx context.Context, input MotoSetorInput) error {
	if input.Data.IsZero() {
		return &errors.EmptyFieldError{Campo: "Data"}
	}

	if strings.TrimSpace(input.Fonte) == "" {
		return &errors.EmptyFieldError{Campo: "Fonte"}
	}
	if n := utf8.RuneCountInString(input.Fonte); n < 2 || n > 100 {
		return &errors.InvalidLengthError{Campo: "Fonte", Min: 2, Max: 100}
	}

	moto, err := v.motoRepo.FindByID(ctx, input.IdMoto)
	if err != nil {
		return err
	}
	if moto == nil {
		return &errors.NotFoundError{Entidade: "Moto", ID: input.IdMoto}
	}

	setor, err := v.setorRepo.FindByID(ctx, input.IdSetor)
	if err != nil {
		return err
	}
	if setor == nil {
		return &errors.NotFoundError{Entidade: "Setor", ID: input.IdSetor}
	}

	return nil
}

package services

import (
	"context"

	"github.com/triafrota/tria-backend/internal/domain/entities"
	"github.com/triafrota/tria-backend/internal/domain/errors"
	"github.com/triafrota/tria-backend/internal/domain/ports"
	"github.com/triafrota/tria-backend/internal/domain/repositories"
)

// MotoInput representa os dados para criar ou atualizar uma moto
type MotoInput struct {
	Placa           string
	Modelo          string
	Ano             int
	TipoCombustivel string
	IdFilial        uint
}

// MotoService contém a lógica de negócio para motos
type MotoService struct {
	repo       repositories.MotoRepository
	validation *MotoValidation
	logger     ports.Logger
}

// NewMotoService cria um novo MotoService
func NewMotoService(repo repositories.MotoRepository, validation *MotoValidation, logger ports.Logger) *MotoService {
	return &MotoService{repo: repo, validation: validation, logger: logger}
}

// Create valida e persiste uma nova moto. A placa é armazenada na
// forma normalizada (maiúscula, sem espaços nas bordas).
func (s *MotoService) Create(ctx context.Context, input MotoInput) (*entities.Moto, error) {
	if err := s.validation.ValidateCreate(ctx, input); err != nil {
		return nil, err
	}

	moto := &entities.Moto{
		Placa:           entities.NormalizarPlaca(input.Placa),
		Modelo:          input.Modelo,
		Ano:             input.Ano,
		TipoCombustivel: input.TipoCombustivel,
		IdFilial:        input.IdFilial,
	}

	if err := s.repo.Create(ctx, moto); err != nil {
		return nil, err
	}

	s.logger.Info("moto criada", "id", moto.ID, "placa", moto.Placa)
	return moto, nil
}

// Update sobrescreve todos os campos da moto existente
func (s *MotoService) Update(ctx context.Context, id uint, input MotoInput) (*entities.Moto, error) {
	moto, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.validation.ValidateUpdate(ctx, input, moto); err != nil {
		return nil, err
	}

	moto.Placa = entities.NormalizarPlaca(input.Placa)
	moto.Modelo = input.Modelo
	moto.Ano = input.Ano
	moto.TipoCombustivel = input.TipoCombustivel
	moto.IdFilial = input.IdFilial

	if err := s.repo.Update(ctx, moto); err != nil {
		return nil, err
	}

	s.logger.Info("moto atualizada", "id", moto.ID)
	return moto, nil
}

// Delete remove uma moto existente
func (s *MotoService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("moto removida", "id", id)
	return nil
}

// GetByID busca uma moto por id
func (s *MotoService) GetByID(ctx context.Context, id uint) (*entities.Moto, error) {
	moto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if moto == nil {
		return nil, &errors.NotFoundError{Entidade: "Moto", ID: id}
	}
	return moto, nil
}

// GetByPlaca busca uma moto pela placa, ignorando case e espaços
func (s *MotoService) GetByPlaca(ctx context.Context, placa string) (*entities.Moto, error) {
	moto, err := s.repo.FindByPlaca(ctx, entities.NormalizarPlaca(placa))
	if err != nil {
		return nil, err
	}
	if moto == nil {
		return nil, &errors.NotFoundError{Entidade: "Moto", ID: placa}
	}
	return moto, nil
}

// GetAll lista todas as motos
func (s *MotoService) GetAll(ctx context.Context) ([]*entities.Moto, error) {
	return s.repo.List(ctx)
}

// GetFromAno lista motos com ano de fabricação >= ano
func (s *MotoService) GetFromAno(ctx context.Context, ano int) ([]*entities.Moto, error) {
	return s.repo.ListFromAno(ctx, ano)
}

// SearchByModelo busca motos por fragmento do modelo, sem case
func (s *MotoService) SearchByModelo(ctx context.Context, modelo string) ([]*entities.Moto, error) {
	return s.repo.SearchByModelo(ctx, modelo)
}

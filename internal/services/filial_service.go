package services

import (
	"context"

	"github.com/triafrota/tria-backend/internal/domain/entities"
	"github.com/triafrota/tria-backend/internal/domain/errors"
	"github.com/triafrota/tria-backend/internal/domain/ports"
	"github.com/triafrota/tria-backend/internal/domain/repositories"
)

// FilialInput representa os dados para criar ou atualizar uma filial
type FilialInput struct {
	Nome       string
	IdEndereco uint
}

// FilialService contém a lógica de negócio para filiais
type FilialService struct {
	repo       repositories.FilialRepository
	validation *FilialValidation
	logger     ports.Logger
}

// NewFilialService cria um novo FilialService
func NewFilialService(repo repositories.FilialRepository, validation *FilialValidation, logger ports.Logger) *FilialService {
	return &FilialService{repo: repo, validation: validation, logger: logger}
}

// Create valida e persiste uma nova filial
func (s *FilialService) Create(ctx context.Context, input FilialInput) (*entities.Filial, error) {
	if err := s.validation.ValidateCreate(ctx, input); err != nil {
		return nil, err
	}

	filial := &entities.Filial{
		Nome:       input.Nome,
		IdEndereco: input.IdEndereco,
	}

	if err := s.repo.Create(ctx, filial); err != nil {
		return nil, err
	}

	s.logger.Info("filial criada", "id", filial.ID, "nome", filial.Nome)
	return filial, nil
}

// Update sobrescreve todos os campos da filial existente
func (s *FilialService) Update(ctx context.Context, id uint, input FilialInput) (*entities.Filial, error) {
	filial, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.validation.ValidateUpdate(ctx, input, filial); err != nil {
		return nil, err
	}

	filial.Nome = input.Nome
	filial.IdEndereco = input.IdEndereco

	if err := s.repo.Update(ctx, filial); err != nil {
		return nil, err
	}

	s.logger.Info("filial atualizada", "id", filial.ID)
	return filial, nil
}

// Delete remove uma filial existente. Não há pré-checagem de motos
// dependentes; as constraints do banco respondem por isso.
func (s *FilialService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("filial removida", "id", id)
	return nil
}

// GetByID busca uma filial por id
func (s *FilialService) GetByID(ctx context.Context, id uint) (*entities.Filial, error) {
	filial, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if filial == nil {
		return nil, &errors.NotFoundError{Entidade: "Filial", ID: id}
	}
	return filial, nil
}

// GetAll lista todas as filiais
func (s *FilialService) GetAll(ctx context.Context) ([]*entities.Filial, error) {
	return s.repo.List(ctx)
}

// SearchByNome busca filiais por fragmento do nome, sem case
func (s *FilialService) SearchByNome(ctx context.Context, nome string) ([]*entities.Filial, error) {
	return s.repo.SearchByNome(ctx, nome)
}

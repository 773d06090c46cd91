package services

import (
	"context"

	"github.com/triafrota/tria-backend/internal/domain/entities"
	"github.com/triafrota/tria-backend/internal/domain/errors"
	"github.com/triafrota/tria-backend/internal/domain/ports"
	"github.com/triafrota/tria-backend/internal/domain/repositories"
)

// SetorInput representa os dados para criar ou atualizar um setor
type SetorInput struct {
	Nome string
}

// SetorService contém a lógica de negócio para setores
type SetorService struct {
	repo       repositories.SetorRepository
	validation *SetorValidation
	logger     ports.Logger
}

// NewSetorService cria um novo SetorService
func NewSetorService(repo repositories.SetorRepository, validation *SetorValidation, logger ports.Logger) *SetorService {
	return &SetorService{repo: repo, validation: validation, logger: logger}
}

// Create valida e persiste um novo setor
func (s *SetorService) Create(ctx context.Context, input SetorInput) (*entities.Setor, error) {
	if err := s.validation.ValidateCreate(ctx, input); err != nil {
		return nil, err
	}

	setor := &entities.Setor{Nome: input.Nome}

	if err := s.repo.Create(ctx, setor); err != nil {
		return nil, err
	}

	s.logger.Info("setor criado", "id", setor.ID, "nome", setor.Nome)
	return setor, nil
}

// Update sobrescreve o nome do setor existente
func (s *SetorService) Update(ctx context.Context, id uint, input SetorInput) (*entities.Setor, error) {
	setor, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.validation.ValidateUpdate(ctx, input, setor.Nome); err != nil {
		return nil, err
	}

	setor.Nome = input.Nome

	if err := s.repo.Update(ctx, setor); err != nil {
		return nil, err
	}

	s.logger.Info("setor atualizado", "id", setor.ID)
	return setor, nil
}

// Delete remove um setor existente
func (s *SetorService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("setor removido", "id", id)
	return nil
}

// GetByID busca um setor por id
func (s *SetorService) GetByID(ctx context.Context, id uint) (*entities.Setor, error) {
	setor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if setor == nil {
		return nil, &errors.NotFoundError{Entidade: "Setor", ID: id}
	}
	return setor, nil
}

// GetAll lista todos os setores
func (s *SetorService) GetAll(ctx context.Context) ([]*entities.Setor, error) {
	return s.repo.List(ctx)
}

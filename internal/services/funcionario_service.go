package services

import (
	"context"

	"github.com/triafrota/tria-backend/internal/domain/entities"
	"github.com/triafrota/tria-backend/internal/domain/errors"
	"github.com/triafrota/tria-backend/internal/domain/ports"
	"github.com/triafrota/tria-backend/internal/domain/repositories"
)

// FuncionarioInput representa os dados para criar ou atualizar um
// funcionário
type FuncionarioInput struct {
	Nome  string
	Cargo string
	Email string
	Senha string
}

// FuncionarioService contém a lógica de negócio para funcionários
type FuncionarioService struct {
	repo       repositories.FuncionarioRepository
	validation *FuncionarioValidation
	logger     ports.Logger
}

// NewFuncionarioService cria um novo FuncionarioService
func NewFuncionarioService(repo repositories.FuncionarioRepository, validation *FuncionarioValidation, logger ports.Logger) *FuncionarioService {
	return &FuncionarioService{repo: repo, validation: validation, logger: logger}
}

// Create valida e persiste um novo funcionário
func (s *FuncionarioService) Create(ctx context.Context, input FuncionarioInput) (*entities.Funcionario, error) {
	if err := s.validation.ValidateCreate(ctx, input); err != nil {
		return nil, err
	}

	funcionario := &entities.Funcionario{
		Nome:  input.Nome,
		Cargo: input.Cargo,
		Email: input.Email,
		Senha: input.Senha,
	}

	if err := s.repo.Create(ctx, funcionario); err != nil {
		return nil, err
	}

	s.logger.Info("funcionario criado", "id", funcionario.ID, "email", funcionario.Email)
	return funcionario, nil
}

// Update sobrescreve todos os campos do funcionário existente
func (s *FuncionarioService) Update(ctx context.Context, id uint, input FuncionarioInput) (*entities.Funcionario, error) {
	funcionario, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.validation.ValidateUpdate(ctx, input, funcionario.Email); err != nil {
		return nil, err
	}

	funcionario.Nome = input.Nome
	funcionario.Cargo = input.Cargo
	funcionario.Email = input.Email
	funcionario.Senha = input.Senha

	if err := s.repo.Update(ctx, funcionario); err != nil {
		return nil, err
	}

	s.logger.Info("funcionario atualizado", "id", funcionario.ID)
	return funcionario, nil
}

// Delete remove um funcionário existente
func (s *FuncionarioService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("funcionario removido", "id", id)
	return nil
}

// GetByID busca um funcionário por id
func (s *FuncionarioService) GetByID(ctx context.Context, id uint) (*entities.Funcionario, error) {
	funcionario, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if funcionario == nil {
		return nil, &errors.NotFoundError{Entidade: "Funcionario", ID: id}
	}
	return funcionario, nil
}

// GetAll lista todos os funcionários
func (s *FuncionarioService) GetAll(ctx context.Context) ([]*entities.Funcionario, error) {
	return s.repo.List(ctx)
}

// SearchByNome busca funcionários por fragmento do nome, sem case
func (s *FuncionarioService) SearchByNome(ctx context.Context, nome string) ([]*entities.Funcionario, error) {
	return s.repo.SearchByNome(ctx, nome)
}

// SearchByCargo busca funcionários por fragmento do cargo, sem case
func (s *FuncionarioService) SearchByCargo(ctx context.Context, cargo string) ([]*entities.Funcionario, error) {
	return s.repo.SearchByCargo(ctx, cargo)
}

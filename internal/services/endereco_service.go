package services

import (
	"context"

	"github.com/triafrota/tria-backend/internal/domain/entities"
	"github.com/triafrota/tria-backend/internal/domain/errors"
	"github.com/triafrota/tria-backend/internal/domain/ports"
	"github.com/triafrota/tria-backend/internal/domain/repositories"
)

// EnderecoInput representa os dados para criar um endereço
type EnderecoInput struct {
	Logradouro  string
	Cidade      string
	Estado      string
	Numero      string
	Complemento string
	Cep         string
}

// EnderecoUpdateInput representa uma atualização parcial: campos nil
// preservam o valor atual. Endereco é a única entidade com merge
// parcial; as demais sobrescrevem todos os campos.
type EnderecoUpdateInput struct {
	Logradouro  *string
	Cidade      *string
	Estado      *string
	Numero      *string
	Complemento *string
	Cep         *string
}

// EnderecoService contém a lógica de negócio para endereços
type EnderecoService struct {
	repo   repositories.EnderecoRepository
	logger ports.Logger
}

// NewEnderecoService cria um novo EnderecoService
func NewEnderecoService(repo repositories.EnderecoRepository, logger ports.Logger) *EnderecoService {
	return &EnderecoService{repo: repo, logger: logger}
}

// Create valida e persiste um novo endereço
func (s *EnderecoService) Create(ctx context.Context, input EnderecoInput) (*entities.Endereco, error) {
	endereco := &entities.Endereco{
		Logradouro:  input.Logradouro,
		Cidade:      input.Cidade,
		Estado:      input.Estado,
		Numero:      input.Numero,
		Complemento: input.Complemento,
		Cep:         input.Cep,
	}

	if err := ValidarEndereco(endereco); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, endereco); err != nil {
		return nil, err
	}

	s.logger.Info("endereco criado", "id", endereco.ID, "cep", endereco.Cep)
	return endereco, nil
}

// Update aplica merge parcial sobre o endereço existente e revalida o
// resultado antes de persistir
func (s *EnderecoService) Update(ctx context.Context, id uint, input EnderecoUpdateInput) (*entities.Endereco, error) {
	endereco, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Logradouro != nil {
		endereco.Logradouro = *input.Logradouro
	}
	if input.Cidade != nil {
		endereco.Cidade = *input.Cidade
	}
	if input.Estado != nil {
		endereco.Estado = *input.Estado
	}
	if input.Numero != nil {
		endereco.Numero = *input.Numero
	}
	if input.Complemento != nil {
		endereco.Complemento = *input.Complemento
	}
	if input.Cep != nil {
		endereco.Cep = *input.Cep
	}

	if err := ValidarEndereco(endereco); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, endereco); err != nil {
		return nil, err
	}

	s.logger.Info("endereco atualizado", "id", endereco.ID)
	return endereco, nil
}

// Delete remove um endereço existente
func (s *EnderecoService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("endereco removido", "id", id)
	return nil
}

// GetByID busca um endereço por id
func (s *EnderecoService) GetByID(ctx context.Context, id uint) (*entities.Endereco, error) {
	endereco, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if endereco == nil {
		return nil, &errors.NotFoundError{Entidade: "Endereco", ID: id}
	}
	return endereco, nil
}

// GetByCep valida o formato do CEP e busca o endereço correspondente
func (s *EnderecoService) GetByCep(ctx context.Context, cep string) (*entities.Endereco, error) {
	if err := ValidarCep(cep); err != nil {
		return nil, err
	}

	endereco, err := s.repo.FindByCep(ctx, cep)
	if err != nil {
		return nil, err
	}
	if endereco == nil {
		return nil, &errors.NotFoundError{Entidade: "Endereco", ID: cep}
	}
	return endereco, nil
}

// GetAll lista todos os endereços
func (s *EnderecoService) GetAll(ctx context.Context) ([]*entities.Endereco, error) {
	return s.repo.List(ctx)
}

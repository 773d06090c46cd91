package dto

import (
	"github.com/triafrota/tria-backend/internal/domain/entities"
	"github.com/triafrota/tria-backend/internal/services"
)

// FuncionarioRequest representa a requisição para criar ou atualizar
// um funcionário
type FuncionarioRequest struct {
	Nome  string `json:"nome" binding:"required,min=3,max=100"`
	Cargo string `json:"cargo" binding:"required"`
	Email string `json:"email" binding:"required,email,max=100"`
	Senha string `json:"senha" binding:"required,min=6,max=50"`
}

// FuncionarioResponse representa a resposta de um funcionário.
// A senha nunca é exposta.
type FuncionarioResponse struct {
	ID    uint   `json:"id"`
	Nome  string `json:"nome"`
	Cargo string `json:"cargo"`
	Email string `json:"email"`
}

// ToInput converte a requisição em input do serviço
func (r *FuncionarioRequest) ToInput() services.FuncionarioInput {
	return services.FuncionarioInput{
		Nome:  r.Nome,
		Cargo: r.Cargo,
		Email: r.Email,
		Senha: r.Senha,
	}
}

// ToFuncionarioResponse converte uma entidade Funcionario
func ToFuncionarioResponse(funcionario *entities.Funcionario) FuncionarioResponse {
	return FuncionarioResponse{
		ID:    funcionario.ID,
		Nome:  funcionario.Nome,
		Cargo: funcionario.Cargo,
		Email: funcionario.Email,
	}
}

// ToFuncionarioResponses converte uma lista de entidades Funcionario
func ToFuncionarioResponses(funcionarios []*entities.Funcionario) []FuncionarioResponse {
	responses := make([]FuncionarioResponse, len(funcionarios))
	for i, funcionario := range funcionarios {
		responses[i] = ToFuncionarioResponse(funcionario)
	}
	return responses
}

package dto

import (
	"github.com/triafrota/tria-backend/internal/domain/entities"
	"github.com/triafrota/tria-backend/internal/services"
)

// CreateEnderecoRequest representa a requisição para criar um endereço
type CreateEnderecoRequest struct {
	Logradouro  string `json:"logradouro" binding:"required,min=3,max=100" example:"Rua dos Andradas"`
	Cidade      string `json:"cidade" binding:"required,min=2,max=80" example:"Porto Alegre"`
	Estado      string `json:"estado" binding:"required,uf" example:"RS"`
	Numero      string `json:"numero" binding:"required,min=1,max=10" example:"1234"`
	Complemento string `json:"complemento" binding:"omitempty,max=50"`
	Cep         string `json:"cep" binding:"required,cep" example:"90020010"`
}

// UpdateEnderecoRequest representa uma atualização parcial de
// endereço: campos omitidos preservam o valor atual
type UpdateEnderecoRequest struct {
	Logradouro  *string `json:"logradouro" binding:"omitempty,min=3,max=100"`
	Cidade      *string `json:"cidade" binding:"omitempty,min=2,max=80"`
	Estado      *string `json:"estado" binding:"omitempty,uf"`
	Numero      *string `json:"numero" binding:"omitempty,min=1,max=10"`
	Complemento *string `json:"complemento" binding:"omitempty,max=50"`
	Cep         *string `json:"cep" binding:"omitempty,cep"`
}

// EnderecoResponse representa a resposta de um endereço
type EnderecoResponse struct {
	ID          uint   `json:"id"`
	Logradouro  string `json:"logradouro"`
	Cidade      string `json:"cidade"`
	Estado      string `json:"estado"`
	Numero      string `json:"numero"`
	Complemento string `json:"complemento,omitempty"`
	Cep         string `json:"cep"`
}

// ToInput converte a requisição em input do serviço
func (r *CreateEnderecoRequest) ToInput() services.EnderecoInput {
	return services.EnderecoInput{
		Logradouro:  r.Logradouro,
		Cidade:      r.Cidade,
		Estado:      r.Estado,
		Numero:      r.Numero,
		Complemento: r.Complemento,
		Cep:         r.Cep,
	}
}

// ToInput converte a requisição parcial em input do serviço
func (r *UpdateEnderecoRequest) ToInput() services.EnderecoUpdateInput {
	return services.EnderecoUpdateInput{
		Logradouro:  r.Logradouro,
		Cidade:      r.Cidade,
		Estado:      r.Estado,
		Numero:      r.Numero,
		Complemento: r.Complemento,
		Cep:         r.Cep,
	}
}

// ToEnderecoResponse converte uma entidade Endereco para EnderecoResponse
func ToEnderecoResponse(endereco *entities.Endereco) EnderecoResponse {
	return EnderecoResponse{
		ID:          endereco.ID,
		Logradouro:  endereco.Logradouro,
		Cidade:      endereco.Cidade,
		Estado:      endereco.Estado,
		Numero:      endereco.Numero,
		Complemento: endereco.Complemento,
		Cep:         endereco.Cep,
	}
}

// ToEnderecoResponses converte uma lista de entidades Endereco
func ToEnderecoResponses(enderecos []*entities.Endereco) []EnderecoResponse {
	responses := make([]EnderecoResponse, len(enderecos))
	for i, endereco := range enderecos {
		responses[i] = ToEnderecoResponse(endereco)
	}
	return responses
}

package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/triafrota/tria-backend/internal/domain/entities"
	"github.com/triafrota/tria-backend/internal/domain/repositories"
)

// EnderecoRepository implementa repositories.EnderecoRepository
type EnderecoRepository struct {
	db *gorm.DB
}

// NewEnderecoRepository cria um novo EnderecoRepository
func NewEnderecoRepository(db *gorm.DB) repositories.EnderecoRepository {
	return &EnderecoRepository{db: db}
}

func (r *EnderecoRepository) Create(ctx context.Context, endereco *entities.Endereco) error {
	model := toEnderecoModel(endereco)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	endereco.ID = model.ID
	return nil
}

func (r *EnderecoRepository) FindByID(ctx context.Context, id uint) (*entities.Endereco, error) {
	var model EnderecoModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toEnderecoEntity(&model), nil
}

func (r *EnderecoRepository) FindByCep(ctx context.Context, cep string) (*entities.Endereco, error) {
	var model EnderecoModel

	if err := r.db.WithContext(ctx).Where("cep = ?", cep).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toEnderecoEntity(&model), nil
}

func (r *EnderecoRepository) Update(ctx context.Context, endereco *entities.Endereco) error {
	return r.db.WithContext(ctx).Save(toEnderecoModel(endereco)).Error
}

func (r *EnderecoRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&EnderecoModel{}, id).Error
}

func (r *EnderecoRepository) List(ctx context.Context) ([]*entities.Endereco, error) {
	var models []*EnderecoModel

	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}

	enderecos := make([]*entities.Endereco, 0, len(models))
	for _, model := range models {
		enderecos = append(enderecos, toEnderecoEntity(model))
	}
	return enderecos, nil
}

// Conversores
func toEnderecoModel(e *entities.Endereco) *EnderecoModel {
	return &EnderecoModel{
		ID:          e.ID,
		Logradouro:  e.Logradouro,
		Cidade:      e.Cidade,
		Estado:      e.Estado,
		Numero:      e.Numero,
		Complemento: e.Complemento,
		Cep:         e.Cep,
	}
}

func toEnderecoEntity(m *EnderecoModel) *entities.Endereco {
	return &entities.Endereco{
		ID:          m.ID,
		Logradouro:  m.Logradouro,
		Cidade:      m.Cidade,
		Estado:      m.Estado,
		Numero:      m.Numero,
		Complemento: m.Complemento,
		Cep:         m.Cep,
	}
}

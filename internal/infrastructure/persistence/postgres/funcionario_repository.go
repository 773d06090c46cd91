package postgres

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/triafrota/tria-backend/internal/domain/entities"
	"github.com/triafrota/tria-backend/internal/domain/repositories"
)

// FuncionarioRepository implementa repositories.FuncionarioRepository.
// As colunas do schema legado são em caixa alta, por isso as queries
// referenciam os nomes entre aspas.
type FuncionarioRepository struct {
	db *gorm.DB
}

// NewFuncionarioRepository cria um novo FuncionarioRepository
func NewFuncionarioRepository(db *gorm.DB) repositories.FuncionarioRepository {
	return &FuncionarioRepository{db: db}
}

func (r *FuncionarioRepository) Create(ctx context.Context, funcionario *entities.Funcionario) error {
	model := toFuncionarioModel(funcionario)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	funcionario.ID = model.ID
	return nil
}

func (r *FuncionarioRepository) FindByID(ctx context.Context, id uint) (*entities.Funcionario, error) {
	var model FuncionarioModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toFuncionarioEntity(&model), nil
}

// ExistsByEmail compara o e-mail sem diferenciar maiúsculas/minúsculas
func (r *FuncionarioRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&FuncionarioModel{}).
		Where(`LOWER("EMAIL") = ?`, strings.ToLower(email)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *FuncionarioRepository) SearchByNome(ctx context.Context, nome string) ([]*entities.Funcionario, error) {
	var models []*FuncionarioModel

	err := r.db.WithContext(ctx).
		Where(`LOWER("NOME") LIKE ?`, "%"+strings.ToLower(nome)+"%").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return toFuncionarioEntities(models), nil
}

func (r *FuncionarioRepository) SearchByCargo(ctx context.Context, cargo string) ([]*entities.Funcionario, error) {
	var models []*FuncionarioModel

	err := r.db.WithContext(ctx).
		Where(`LOWER("CARGO") LIKE ?`, "%"+strings.ToLower(cargo)+"%").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return toFuncionarioEntities(models), nil
}

func (r *FuncionarioRepository) Update(ctx context.Context, funcionario *entities.Funcionario) error {
	return r.db.WithContext(ctx).Save(toFuncionarioModel(funcionario)).Error
}

func (r *FuncionarioRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&FuncionarioModel{}, id).Error
}

func (r *FuncionarioRepository) List(ctx context.Context) ([]*entities.Funcionario, error) {
	var models []*FuncionarioModel

	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}
	return toFuncionarioEntities(models), nil
}

// Conversores
func toFuncionarioModel(f *entities.Funcionario) *FuncionarioModel {
	return &FuncionarioModel{
		ID:    f.ID,
		Nome:  f.Nome,
		Cargo: f.Cargo,
		Email: f.Email,
		Senha: f.Senha,
	}
}

func toFuncionarioEntity(m *FuncionarioModel) *entities.Funcionario {
	return &entities.Funcionario{
		ID:    m.ID,
		Nome:  m.Nome,
		Cargo: m.Cargo,
		Email: m.Email,
		Senha: m.Senha,
	}
}

func toFuncionarioEntities(models []*FuncionarioModel) []*entities.Funcionario {
	funcionarios := make([]*entities.Funcionario, 0, len(models))
	for _, model := range models {
		funcionarios = append(funcionarios, toFuncionarioEntity(model))
	}
	return funcionarios
}

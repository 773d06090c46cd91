package postgres

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/triafrota/tria-backend/internal/domain/entities"
	"github.com/triafrota/tria-backend/internal/domain/repositories"
)

// SetorRepository implementa repositories.SetorRepository
type SetorRepository struct {
	db *gorm.DB
}

// NewSetorRepository cria um novo SetorRepository
func NewSetorRepository(db *gorm.DB) repositories.SetorRepository {
	return &SetorRepository{db: db}
}

func (r *SetorRepository) Create(ctx context.Context, setor *entities.Setor) error {
	model := toSetorModel(setor)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	setor.ID = model.ID
	return nil
}

func (r *SetorRepository) FindByID(ctx context.Context, id uint) (*entities.Setor, error) {
	var model SetorModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toSetorEntity(&model), nil
}

// ExistsByNome compara o nome sem diferenciar maiúsculas/minúsculas
func (r *SetorRepository) ExistsByNome(ctx context.Context, nome string) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&SetorModel{}).
		Where("LOWER(nome) = ?", strings.ToLower(nome)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *SetorRepository) Update(ctx context.Context, setor *entities.Setor) error {
	return r.db.WithContext(ctx).Save(toSetorModel(setor)).Error
}

func (r *SetorRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&SetorModel{}, id).Error
}

func (r *SetorRepository) List(ctx context.Context) ([]*entities.Setor, error) {
	var models []*SetorModel

	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}

	setores := make([]*entities.Setor, 0, len(models))
	for _, model := range models {
		setores = append(setores, toSetorEntity(model))
	}
	return setores, nil
}

// Conversores
func toSetorModel(s *entities.Setor) *SetorModel {
	return &SetorModel{ID: s.ID, Nome: s.Nome}
}

func toSetorEntity(m *SetorModel) *entities.Setor {
	return &entities.Setor{ID: m.ID, Nome: m.Nome}
}

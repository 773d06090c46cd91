package postgres

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/triafrota/tria-backend/internal/domain/entities"
	"github.com/triafrota/tria-backend/internal/domain/repositories"
)

// FilialRepository implementa repositories.FilialRepository
type FilialRepository struct {
	db *gorm.DB
}

// NewFilialRepository cria um novo FilialRepository
func NewFilialRepository(db *gorm.DB) repositories.FilialRepository {
	return &FilialRepository{db: db}
}

func (r *FilialRepository) Create(ctx context.Context, filial *entities.Filial) error {
	model := toFilialModel(filial)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	filial.ID = model.ID
	return nil
}

func (r *FilialRepository) FindByID(ctx context.Context, id uint) (*entities.Filial, error) {
	var model FilialModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toFilialEntity(&model), nil
}

// ExistsByNome compara o nome sem diferenciar maiúsculas/minúsculas
func (r *FilialRepository) ExistsByNome(ctx context.Context, nome string) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&FilialModel{}).
		Where("LOWER(nome) = ?", strings.ToLower(nome)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *FilialRepository) SearchByNome(ctx context.Context, nome string) ([]*entities.Filial, error) {
	var models []*FilialModel

	err := r.db.WithContext(ctx).
		Where("LOWER(nome) LIKE ?", "%"+strings.ToLower(nome)+"%").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return toFilialEntities(models), nil
}

func (r *FilialRepository) Update(ctx context.Context, filial *entities.Filial) error {
	return r.db.WithContext(ctx).Save(toFilialModel(filial)).Error
}

func (r *FilialRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&FilialModel{}, id).Error
}

func (r *FilialRepository) List(ctx context.Context) ([]*entities.Filial, error) {
	var models []*FilialModel

	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}
	return toFilialEntities(models), nil
}

// Conversores
func toFilialModel(f *entities.Filial) *FilialModel {
	return &FilialModel{
		ID:         f.ID,
		Nome:       f.Nome,
		IdEndereco: f.IdEndereco,
	}
}

func toFilialEntity(m *FilialModel) *entities.Filial {
	return &entities.Filial{
		ID:         m.ID,
		Nome:       m.Nome,
		IdEndereco: m.IdEndereco,
	}
}

func toFilialEntities(models []*FilialModel) []*entities.Filial {
	filiais := make([]*entities.Filial, 0, len(models))
	for _, model := range models {
		filiais = append(filiais, toFilialEntity(model))
	}
	return filiais
}

package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/triafrota/tria-backend/internal/domain/entities"
	"github.com/triafrota/tria-backend/internal/domain/repositories"
)

// MotoSetorRepository implementa repositories.MotoSetorRepository
type MotoSetorRepository struct {
	db *gorm.DB
}

// NewMotoSetorRepository cria um novo MotoSetorRepository
func NewMotoSetorRepository(db *gorm.DB) repositories.MotoSetorRepository {
	return &MotoSetorRepository{db: db}
}

func (r *MotoSetorRepository) Create(ctx context.Context, motoSetor *entities.MotoSetor) error {
	model := toMotoSetorModel(motoSetor)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	motoSetor.ID = model.ID
	return nil
}

func (r *MotoSetorRepository) FindByID(ctx context.Context, id uint) (*entities.MotoSetor, error) {
	var model MotoSetorModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toMotoSetorEntity(&model), nil
}

func (r *MotoSetorRepository) Update(ctx context.Context, motoSetor *entities.MotoSetor) error {
	return r.db.WithContext(ctx).Save(toMotoSetorModel(motoSetor)).Error
}

func (r *MotoSetorRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&MotoSetorModel{}, id).Error
}

func (r *MotoSetorRepository) List(ctx context.Context) ([]*entities.MotoSetor, error) {
	var models []*MotoSetorModel

	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}

	motoSetores := make([]*entities.MotoSetor, 0, len(models))
	for _, model := range models {
		motoSetores = append(motoSetores, toMotoSetorEntity(model))
	}
	return motoSetores, nil
}

// Conversores
func toMotoSetorModel(ms *entities.MotoSetor) *MotoSetorModel {
	return &MotoSetorModel{
		ID:      ms.ID,
		Data:    ms.Data,
		Fonte:   ms.Fonte,
		IdMoto:  ms.IdMoto,
		IdSetor: ms.IdSetor,
	}
}

func toMotoSetorEntity(m *MotoSetorModel) *entities.MotoSetor {
	return &entities.MotoSetor{
		ID:      m.ID,
		Data:    m.Data,
		Fonte:   m.Fonte,
		IdMoto:  m.IdMoto,
		IdSetor: m.IdSetor,
	}
}

package postgres

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/triafrota/tria-backend/internal/domain/entities"
	"github.com/triafrota/tria-backend/internal/domain/repositories"
)

// MotoRepository implementa repositories.MotoRepository
type MotoRepository struct {
	db *gorm.DB
}

// NewMotoRepository cria um novo MotoRepository
func NewMotoRepository(db *gorm.DB) repositories.MotoRepository {
	return &MotoRepository{db: db}
}

func (r *MotoRepository) Create(ctx context.Context, moto *entities.Moto) error {
	model := toMotoModel(moto)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	moto.ID = model.ID
	return nil
}

func (r *MotoRepository) FindByID(ctx context.Context, id uint) (*entities.Moto, error) {
	var model MotoModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toMotoEntity(&model), nil
}

// FindByPlaca busca pela placa armazenada; quem chama normaliza o
// valor, e a comparação aqui ignora case por segurança
func (r *MotoRepository) FindByPlaca(ctx context.Context, placa string) (*entities.Moto, error) {
	var model MotoModel

	err := r.db.WithContext(ctx).
		Where("LOWER(placa) = ?", strings.ToLower(placa)).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toMotoEntity(&model), nil
}

func (r *MotoRepository) ExistsByPlaca(ctx context.Context, placa string) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&MotoModel{}).
		Where("LOWER(placa) = ?", strings.ToLower(placa)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *MotoRepository) SearchByModelo(ctx context.Context, modelo string) ([]*entities.Moto, error) {
	var models []*MotoModel

	err := r.db.WithContext(ctx).
		Where("LOWER(modelo) LIKE ?", "%"+strings.ToLower(modelo)+"%").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return toMotoEntities(models), nil
}

func (r *MotoRepository) ListFromAno(ctx context.Context, ano int) ([]*entities.Moto, error) {
	var models []*MotoModel

	err := r.db.WithContext(ctx).
		Where("ano >= ?", ano).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return toMotoEntities(models), nil
}

func (r *MotoRepository) Update(ctx context.Context, moto *entities.Moto) error {
	return r.db.WithContext(ctx).Save(toMotoModel(moto)).Error
}

func (r *MotoRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&MotoModel{}, id).Error
}

func (r *MotoRepository) List(ctx context.Context) ([]*entities.Moto, error) {
	var models []*MotoModel

	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}
	return toMotoEntities(models), nil
}

// Conversores
func toMotoModel(m *entities.Moto) *MotoModel {
	return &MotoModel{
		ID:              m.ID,
		Placa:           m.Placa,
		Modelo:          m.Modelo,
		Ano:             m.Ano,
		TipoCombustivel: m.TipoCombustivel,
		IdFilial:        m.IdFilial,
	}
}

func toMotoEntity(m *MotoModel) *entities.Moto {
	return &entities.Moto{
		ID:              m.ID,
		Placa:           m.Placa,
		Modelo:          m.Modelo,
		Ano:             m.Ano,
		TipoCombustivel: m.TipoCombustivel,
		IdFilial:        m.IdFilial,
	}
}

func toMotoEntities(models []*MotoModel) []*entities.Moto {
	motos := make([]*entities.Moto, 0, len(models))
	for _, model := range models {
		motos = append(motos, toMotoEntity(model))
	}
	return motos
}

package services

import (
	"context"
	"time"

	"github.com/triafrota/tria-backend/internal/domain/entities"
	"github.com/triafrota/tria-backend/internal/domain/errors"
	"github.com/triafrota/tria-backend/internal/domain/ports"
	"github.com/triafrota/tria-backend/internal/domain/repositories"
)

// MotoSetorInput representa os dados para criar ou atualizar uma
// alocação moto-setor
type MotoSetorInput struct {
	Data    time.Time
	Fonte   string
	IdMoto  uint
	IdSetor uint
}

// MotoSetorService contém a lógica de negócio para alocações
// moto-setor e publica eventos de movimentação da frota
type MotoSetorService struct {
	repo       repositories.MotoSetorRepository
	validation *MotoSetorValidation
	events     ports.EventPublisher
	logger     ports.Logger
}

// NewMotoSetorService cria um novo MotoSetorService
func NewMotoSetorService(
	repo repositories.MotoSetorRepository,
	validation *MotoSetorValidation,
	events ports.EventPublisher,
	logger ports.Logger,
) *MotoSetorService {
	return &MotoSetorService{repo: repo, validation: validation, events: events, logger: logger}
}

// Create valida e persiste uma nova alocação, publicando o evento de
// movimentação aos clientes conectados
func (s *MotoSetorService) Create(ctx context.Context, input MotoSetorInput) (*entities.MotoSetor, error) {
	if err := s.validation.Validate(ctx, input); err != nil {
		return nil, err
	}

	motoSetor := &entities.MotoSetor{
		Data:    input.Data,
		Fonte:   input.Fonte,
		IdMoto:  input.IdMoto,
		IdSetor: input.IdSetor,
	}

	if err := s.repo.Create(ctx, motoSetor); err != nil {
		return nil, err
	}

	s.logger.Info("moto alocada em setor",
		"id", motoSetor.ID,
		"id_moto", motoSetor.IdMoto,
		"id_setor", motoSetor.IdSetor,
	)
	s.events.Publish("moto_alocada", motoSetor)

	return motoSetor, nil
}

// Update sobrescreve todos os campos da alocação existente
func (s *MotoSetorService) Update(ctx context.Context, id uint, input MotoSetorInput) (*entities.MotoSetor, error) {
	motoSetor, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.validation.Validate(ctx, input); err != nil {
		return nil, err
	}

	motoSetor.Data = input.Data
	motoSetor.Fonte = input.Fonte
	motoSetor.IdMoto = input.IdMoto
	motoSetor.IdSetor = input.IdSetor

	if err := s.repo.Update(ctx, motoSetor); err != nil {
		return nil, err
	}

	s.logger.Info("alocacao atualizada", "id", motoSetor.ID)
	return motoSetor, nil
}

// Delete remove uma alocação existente e publica o evento de
// liberação
func (s *MotoSetorService) Delete(ctx context.Context, id uint) error {
	motoSetor, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("alocacao removida", "id", id)
	s.events.Publish("moto_liberada", motoSetor)
	return nil
}

// GetByID busca uma alocação por id
func (s *MotoSetorService) GetByID(ctx context.Context, id uint) (*entities.MotoSetor, error) {
	motoSetor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if motoSetor == nil {
		return nil, &errors.NotFoundError{Entidade: "MotoSetor", ID: id}
	}
	return motoSetor, nil
}

// GetAll lista todas as alocações
func (s *MotoSetorService) GetAll(ctx context.Context) ([]*entities.MotoSetor, error) {
	return s.repo.List(ctx)
}

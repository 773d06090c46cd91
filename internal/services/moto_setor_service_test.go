package services

import (
	"context"
	"testing"
	"time"

	"github.com/triafrota/tria-backend/internal/domain/entities"
	"github.com/triafrota/tria-backend/internal/domain/errors"
)

// recordingPublisher captura os eventos publicados pelo serviço
type recordingPublisher struct {
	events []string
}

func (p *recordingPublisher) Publish(eventType string, payload interface{}) {
	p.events = append(p.events, eventType)
}

type motoSetorFixture struct {
	service   *MotoSetorService
	publisher *recordingPublisher
	motoID    uint
	setorID   uint
}

func newMotoSetorFixture(t *testing.T) motoSetorFixture {
	t.Helper()
	ctx := context.Background()

	motoRepo := newFakeMotoRepo()
	setorRepo := newFakeSetorRepo()

	moto := &entities.Moto{Placa: "ABC1D23", Modelo: "CG 160", Ano: 2023, TipoCombustivel: "Flex", IdFilial: 1}
	if err := motoRepo.Create(ctx, moto); err != nil {
		t.Fatalf("falha no seed da moto: %v", err)
	}
	setor := &entities.Setor{Nome: "Logística"}
	if err := setorRepo.Create(ctx, setor); err != nil {
		t.Fatalf("falha no seed do setor: %v", err)
	}

	publisher := &recordingPublisher{}
	service := NewMotoSetorService(
		newFakeMotoSetorRepo(),
		NewMotoSetorValidation(motoRepo, setorRepo),
		publisher,
		noopLogger{},
	)

	return motoSetorFixture{service: service, publisher: publisher, motoID: moto.ID, setorID: setor.ID}
}

func TestMotoSetorServiceCreate(t *testing.T) {
	ctx := context.Background()

	valida := func(f motoSetorFixture) MotoSetorInput {
		return MotoSetorInput{
			Data:    time.Now(),
			Fonte:   "Painel de gestão",
			IdMoto:  f.motoID,
			IdSetor: f.setorID,
		}
	}

	t.Run("aloca moto e publica evento moto_alocada", func(t *testing.T) {
		f := newMotoSetorFixture(t)

		motoSetor, err := f.service.Create(ctx, valida(f))
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if motoSetor.ID == 0 {
			t.Error("esperava id atribuído")
		}
		if len(f.publisher.events) != 1 || f.publisher.events[0] != "moto_alocada" {
			t.Errorf("esperava evento 'moto_alocada', obteve %v", f.publisher.events)
		}
	})

	t.Run("moto inexistente responde NotFound", func(t *testing.T) {
		f := newMotoSetorFixture(t)

		input := valida(f)
		input.IdMoto = 99
		_, err := f.service.Create(ctx, input)
		if !errors.IsNotFound(err) {
			t.Fatalf("esperava NotFoundError, obteve: %v", err)
		}
		if len(f.publisher.events) != 0 {
			t.Errorf("esperava nenhum evento, obteve %v", f.publisher.events)
		}
	})

	t.Run("setor inexistente responde NotFound", func(t *testing.T) {
		f := newMotoSetorFixture(t)

		input := valida(f)
		input.IdSetor = 99
		_, err := f.service.Create(ctx, input)
		if !errors.IsNotFound(err) {
			t.Fatalf("esperava NotFoundError, obteve: %v", err)
		}
	})

	t.Run("rejeita data zerada", func(t *testing.T) {
		f := newMotoSetorFixture(t)

		input := valida(f)
		input.Data = time.Time{}
		_, err := f.service.Create(ctx, input)
		var empty *errors.EmptyFieldError
		if !asError(err, &empty) {
			t.Fatalf("esperava EmptyFieldError, obteve: %v", err)
		}
	})

	t.Run("rejeita fonte fora dos limites", func(t *testing.T) {
		f := newMotoSetorFixture(t)

		input := valida(f)
		input.Fonte = "X"
		_, err := f.service.Create(ctx, input)
		var length *errors.InvalidLengthError
		if !asError(err, &length) {
			t.Fatalf("esperava InvalidLengthError, obteve: %v", err)
		}
	})

	t.Run("permite a mesma moto em mais de um setor", func(t *testing.T) {
		f := newMotoSetorFixture(t)

		if _, err := f.service.Create(ctx, valida(f)); err != nil {
			t.Fatalf("esperava sucesso na primeira alocação, obteve: %v", err)
		}
		if _, err := f.service.Create(ctx, valida(f)); err != nil {
			t.Fatalf("esperava sucesso na segunda alocação, obteve: %v", err)
		}
	})
}

func TestMotoSetorServiceDelete(t *testing.T) {
	ctx := context.Background()
	f := newMotoSetorFixture(t)

	motoSetor, err := f.service.Create(ctx, MotoSetorInput{
		Data:    time.Now(),
		Fonte:   "Painel de gestão",
		IdMoto:  f.motoID,
		IdSetor: f.setorID,
	})
	if err != nil {
		t.Fatalf("esperava sucesso na alocação, obteve: %v", err)
	}

	if err := f.service.Delete(ctx, motoSetor.ID); err != nil {
		t.Fatalf("esperava sucesso na remoção, obteve: %v", err)
	}

	if len(f.publisher.events) != 2 || f.publisher.events[1] != "moto_liberada" {
		t.Errorf("esperava evento 'moto_liberada' após remoção, obteve %v", f.publisher.events)
	}

	if _, err := f.service.GetByID(ctx, motoSetor.ID); !errors.IsNotFound(err) {
		t.Fatalf("esperava NotFoundError após remoção, obteve: %v", err)
	}
}

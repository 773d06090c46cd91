package services

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/triafrota/tria-backend/internal/domain/entities"
	"github.com/triafrota/tria-backend/internal/domain/ports"
)

// asError é um atalho para errors.As nos testes, já que o pacote de
// erros do domínio também se chama errors
func asError(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

var errTest = stderrors.New("erro de teste")

type noopLogger struct{}

func (noopLogger) Info(msg string, args ...any)  {}
func (noopLogger) Error(msg string, args ...any) {}
func (noopLogger) Debug(msg string, args ...any) {}
func (noopLogger) Warn(msg string, args ...any)  {}
func (l noopLogger) With(args ...any) ports.Logger {
	return l
}

// Repositórios em memória para os testes de serviço. Reproduzem a
// semântica das implementações Postgres: buscas sem diferenciar
// maiúsculas/minúsculas e nil quando o registro não existe.

type fakeEnderecoRepo struct {
	seq   uint
	items map[uint]*entities.Endereco
}

func newFakeEnderecoRepo() *fakeEnderecoRepo {
	return &fakeEnderecoRepo{items: make(map[uint]*entities.Endereco)}
}

func (r *fakeEnderecoRepo) Create(ctx context.Context, endereco *entities.Endereco) error {
	r.seq++
	endereco.ID = r.seq
	clone := *endereco
	r.items[endereco.ID] = &clone
	return nil
}

func (r *fakeEnderecoRepo) FindByID(ctx context.Context, id uint) (*entities.Endereco, error) {
	if e, ok := r.items[id]; ok {
		clone := *e
		return &clone, nil
	}
	return nil, nil
}

func (r *fakeEnderecoRepo) FindByCep(ctx context.Context, cep string) (*entities.Endereco, error) {
	for _, e := range r.items {
		if e.Cep == cep {
			clone := *e
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeEnderecoRepo) Update(ctx context.Context, endereco *entities.Endereco) error {
	clone := *endereco
	r.items[endereco.ID] = &clone
	return nil
}

func (r *fakeEnderecoRepo) Delete(ctx context.Context, id uint) error {
	delete(r.items, id)
	return nil
}

func (r *fakeEnderecoRepo) List(ctx context.Context) ([]*entities.Endereco, error) {
	result := make([]*entities.Endereco, 0, len(r.items))
	for _, e := range r.items {
		clone := *e
		result = append(result, &clone)
	}
	return result, nil
}

type fakeFilialRepo struct {
	seq   uint
	items map[uint]*entities.Filial
}

func newFakeFilialRepo() *fakeFilialRepo {
	return &fakeFilialRepo{items: make(map[uint]*entities.Filial)}
}

func (r *fakeFilialRepo) Create(ctx context.Context, filial *entities.Filial) error {
	r.seq++
	filial.ID = r.seq
	clone := *filial
	r.items[filial.ID] = &clone
	return nil
}

func (r *fakeFilialRepo) FindByID(ctx context.Context, id uint) (*entities.Filial, error) {
	if f, ok := r.items[id]; ok {
		clone := *f
		return &clone, nil
	}
	return nil, nil
}

func (r *fakeFilialRepo) ExistsByNome(ctx context.Context, nome string) (bool, error) {
	for _, f := range r.items {
		if strings.EqualFold(f.Nome, nome) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeFilialRepo) SearchByNome(ctx context.Context, nome string) ([]*entities.Filial, error) {
	result := make([]*entities.Filial, 0)
	for _, f := range r.items {
		if strings.Contains(strings.ToLower(f.Nome), strings.ToLower(nome)) {
			clone := *f
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *fakeFilialRepo) Update(ctx context.Context, filial *entities.Filial) error {
	clone := *filial
	r.items[filial.ID] = &clone
	return nil
}

func (r *fakeFilialRepo) Delete(ctx context.Context, id uint) error {
	delete(r.items, id)
	return nil
}

func (r *fakeFilialRepo) List(ctx context.Context) ([]*entities.Filial, error) {
	result := make([]*entities.Filial, 0, len(r.items))
	for _, f := range r.items {
		clone := *f
		result = append(result, &clone)
	}
	return result, nil
}

type fakeFuncionarioRepo struct {
	seq   uint
	items map[uint]*entities.Funcionario
}

func newFakeFuncionarioRepo() *fakeFuncionarioRepo {
	return &fakeFuncionarioRepo{items: make(map[uint]*entities.Funcionario)}
}

func (r *fakeFuncionarioRepo) Create(ctx context.Context, funcionario *entities.Funcionario) error {
	r.seq++
	funcionario.ID = r.seq
	clone := *funcionario
	r.items[funcionario.ID] = &clone
	return nil
}

func (r *fakeFuncionarioRepo) FindByID(ctx context.Context, id uint) (*entities.Funcionario, error) {
	if f, ok := r.items[id]; ok {
		clone := *f
		return &clone, nil
	}
	return nil, nil
}

func (r *fakeFuncionarioRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, f := range r.items {
		if strings.EqualFold(f.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeFuncionarioRepo) SearchByNome(ctx context.Context, nome string) ([]*entities.Funcionario, error) {
	result := make([]*entities.Funcionario, 0)
	for _, f := range r.items {
		if strings.Contains(strings.ToLower(f.Nome), strings.ToLower(nome)) {
			clone := *f
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *fakeFuncionarioRepo) SearchByCargo(ctx context.Context, cargo string) ([]*entities.Funcionario, error) {
	result := make([]*entities.Funcionario, 0)
	for _, f := range r.items {
		if strings.Contains(strings.ToLower(f.Cargo), strings.ToLower(cargo)) {
			clone := *f
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *fakeFuncionarioRepo) Update(ctx context.Context, funcionario *entities.Funcionario) error {
	clone := *funcionario
	r.items[funcionario.ID] = &clone
	return nil
}

func (r *fakeFuncionarioRepo) Delete(ctx context.Context, id uint) error {
	delete(r.items, id)
	return nil
}

func (r *fakeFuncionarioRepo) List(ctx context.Context) ([]*entities.Funcionario, error) {
	result := make([]*entities.Funcionario, 0, len(r.items))
	for _, f := range r.items {
		clone := *f
		result = append(result, &clone)
	}
	return result, nil
}

type fakeMotoRepo struct {
	seq   uint
	items map[uint]*entities.Moto
}

func newFakeMotoRepo() *fakeMotoRepo {
	return &fakeMotoRepo{items: make(map[uint]*entities.Moto)}
}

func (r *fakeMotoRepo) Create(ctx context.Context, moto *entities.Moto) error {
	r.seq++
	moto.ID = r.seq
	clone := *moto
	r.items[moto.ID] = &clone
	return nil
}

func (r *fakeMotoRepo) FindByID(ctx context.Context, id uint) (*entities.Moto, error) {
	if m, ok := r.items[id]; ok {
		clone := *m
		return &clone, nil
	}
	return nil, nil
}

func (r *fakeMotoRepo) FindByPlaca(ctx context.Context, placa string) (*entities.Moto, error) {
	for _, m := range r.items {
		if m.Placa == placa {
			clone := *m
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeMotoRepo) ExistsByPlaca(ctx context.Context, placa string) (bool, error) {
	for _, m := range r.items {
		if m.Placa == placa {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeMotoRepo) SearchByModelo(ctx context.Context, modelo string) ([]*entities.Moto, error) {
	result := make([]*entities.Moto, 0)
	for _, m := range r.items {
		if strings.Contains(strings.ToLower(m.Modelo), strings.ToLower(modelo)) {
			clone := *m
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *fakeMotoRepo) ListFromAno(ctx context.Context, ano int) ([]*entities.Moto, error) {
	result := make([]*entities.Moto, 0)
	for _, m := range r.items {
		if m.Ano >= ano {
			clone := *m
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *fakeMotoRepo) Update(ctx context.Context, moto *entities.Moto) error {
	clone := *moto
	r.items[moto.ID] = &clone
	return nil
}

func (r *fakeMotoRepo) Delete(ctx context.Context, id uint) error {
	delete(r.items, id)
	return nil
}

func (r *fakeMotoRepo) List(ctx context.Context) ([]*entities.Moto, error) {
	result := make([]*entities.Moto, 0, len(r.items))
	for _, m := range r.items {
		clone := *m
		result = append(result, &clone)
	}
	return result, nil
}

type fakeSetorRepo struct {
	seq   uint
	items map[uint]*entities.Setor
}

func newFakeSetorRepo() *fakeSetorRepo {
	return &fakeSetorRepo{items: make(map[uint]*entities.Setor)}
}

func (r *fakeSetorRepo) Create(ctx context.Context, setor *entities.Setor) error {
	r.seq++
	setor.ID = r.seq
	clone := *setor
	r.items[setor.ID] = &clone
	return nil
}

func (r *fakeSetorRepo) FindByID(ctx context.Context, id uint) (*entities.Setor, error) {
	if s, ok := r.items[id]; ok {
		clone := *s
		return &clone, nil
	}
	return nil, nil
}

func (r *fakeSetorRepo) ExistsByNome(ctx context.Context, nome string) (bool, error) {
	for _, s := range r.items {
		if strings.EqualFold(s.Nome, nome) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeSetorRepo) Update(ctx context.Context, setor *entities.Setor) error {
	clone := *setor
	r.items[setor.ID] = &clone
	return nil
}

func (r *fakeSetorRepo) Delete(ctx context.Context, id uint) error {
	delete(r.items, id)
	return nil
}

func (r *fakeSetorRepo) List(ctx context.Context) ([]*entities.Setor, error) {
	result := make([]*entities.Setor, 0, len(r.items))
	for _, s := range r.items {
		clone := *s
		result = append(result, &clone)
	}
	return result, nil
}

type fakeMotoSetorRepo struct {
	seq   uint
	items map[uint]*entities.MotoSetor
}

func newFakeMotoSetorRepo() *fakeMotoSetorRepo {
	return &fakeMotoSetorRepo{items: make(map[uint]*entities.MotoSetor)}
}

func (r *fakeMotoSetorRepo) Create(ctx context.Context, motoSetor *entities.MotoSetor) error {
	r.seq++
	motoSetor.ID = r.seq
	clone := *motoSetor
	r.items[motoSetor.ID] = &clone
	return nil
}

func (r *fakeMotoSetorRepo) FindByID(ctx context.Context, id uint) (*entities.MotoSetor, error) {
	if ms, ok := r.items[id]; ok {
		clone := *ms
		return &clone, nil
	}
	return nil, nil
}

func (r *fakeMotoSetorRepo) Update(ctx context.Context, motoSetor *entities.MotoSetor) error {
	clone := *motoSetor
	r.items[motoSetor.ID] = &clone
	return nil
}

func (r *fakeMotoSetorRepo) Delete(ctx context.Context, id uint) error {
	delete(r.items, id)
	return nil
}

func (r *fakeMotoSetorRepo) List(ctx context.Context) ([]*entities.MotoSetor, error) {
	result := make([]*entities.MotoSetor, 0, len(r.items))
	for _, ms := range r.items {
		clone := *ms
		result = append(result, &clone)
	}
	return result, nil
}

type fakeReviewRepo struct {
	seq   uint
	items map[uint]*entities.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{items: make(map[uint]*entities.Review)}
}

func (r *fakeReviewRepo) Create(ctx context.Context, review *entities.Review) error {
	r.seq++
	review.ID = r.seq
	clone := *review
	r.items[review.ID] = &clone
	return nil
}

func (r *fakeReviewRepo) FindByID(ctx context.Context, id uint) (*entities.Review, error) {
	if rev, ok := r.items[id]; ok {
		clone := *rev
		return &clone, nil
	}
	return nil, nil
}

func (r *fakeReviewRepo) Delete(ctx context.Context, id uint) error {
	delete(r.items, id)
	return nil
}

func (r *fakeReviewRepo) List(ctx context.Context) ([]*entities.Review, error) {
	result := make([]*entities.Review, 0, len(r.items))
	for _, rev := range r.items {
		clone := *rev
		result = append(result, &clone)
	}
	return result, nil
}

package usecase_test

import (
	"context"
	"errors"

	"github.com/jvcastro/salao-api/internal/domain/entity"
	"github.com/jvcastro/salao-api/internal/domain/repository"
)

// Fakes em memória dos portos de persistência, partilhados pelos testes do pacote.

type fakeFuncionarioRepo struct {
	porID        map[string]*entity.Funcionario
	falharCreate bool
}

func newFakeFuncionarioRepo() *fakeFuncionarioRepo {
	return &fakeFuncionarioRepo{porID: map[string]*entity.Funcionario{}}
}

func (r *fakeFuncionarioRepo) Create(_ context.Context, f *entity.Funcionario) error {
	if r.falharCreate {
		return errors.New("armazenamento indisponível")
	}
	copia := *f
	r.porID[f.ID] = &copia
	return nil
}

func (r *fakeFuncionarioRepo) GetByID(_ context.Context, id string) (*entity.Funcionario, error) {
	f, ok := r.porID[id]
	if !ok {
		return nil, nil
	}
	copia := *f
	return &copia, nil
}

func (r *fakeFuncionarioRepo) Update(_ context.Context, f *entity.Funcionario) error {
	copia := *f
	r.porID[f.ID] = &copia
	return nil
}

func (r *fakeFuncionarioRepo) Delete(_ context.Context, id string) error {
	delete(r.porID, id)
	return nil
}

func (r *fakeFuncionarioRepo) List(_ context.Context) ([]*entity.Funcionario, error) {
	var list []*entity.Funcionario
	for _, f := range r.porID {
		copia := *f
		list = append(list, &copia)
	}
	return list, nil
}

type fakeAtividadeRepo struct {
	registros []*entity.Atividade
}

func (r *fakeAtividadeRepo) Append(_ context.Context, a *entity.Atividade) error {
	copia := *a
	r.registros = append(r.registros, &copia)
	return nil
}

func (r *fakeAtividadeRepo) List(_ context.Context) ([]*entity.Atividade, error) {
	return append([]*entity.Atividade(nil), r.registros...), nil
}

// fakeTxRunner executa o callback diretamente sobre os fakes. A atomicidade
// real é responsabilidade do TxRunner de PostgreSQL; aqui basta observar que
// mutação e atividade passam pelo mesmo callback.
type fakeTxRunner struct {
	funcRepo *fakeFuncionarioRepo
	ativRepo *fakeAtividadeRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	funcRepo repository.FuncionarioRepository,
	ativRepo repository.AtividadeRepository,
) error) error {
	return fn(r.funcRepo, r.ativRepo)
}

type fakeClienteRepo struct {
	clientes []*entity.Cliente
}

func (r *fakeClienteRepo) Create(_ context.Context, c *entity.Cliente) error {
	copia := *c
	r.clientes = append(r.clientes, &copia)
	return nil
}

func (r *fakeClienteRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.clientes)), nil
}

type fakeProdutoRepo struct {
	produtos []*entity.Produto
}

func (r *fakeProdutoRepo) Create(_ context.Context, p *entity.Produto) error {
	copia := *p
	r.produtos = append(r.produtos, &copia)
	return nil
}

func (r *fakeProdutoRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.produtos)), nil
}

package inventory_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	appinv "github.com/adegaplus/pdv-api/internal/application/inventory"
	"github.com/adegaplus/pdv-api/internal/domain/entity"
	"github.com/adegaplus/pdv-api/internal/domain/repository"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Fakes em memória para as portas de persistência. GetForUpdate devolve uma
// cópia, como o scan de uma linha do banco: mutações em memória do caller só
// chegam ao "banco" via AtualizarEstoque/AtualizarCusto.

type fakeProdutoRepo struct {
	produtos map[string]entity.Produto
}

func newFakeProdutoRepo(ps ...entity.Produto) *fakeProdutoRepo {
	f := &fakeProdutoRepo{produtos: make(map[string]entity.Produto)}
	for _, p := range ps {
		f.produtos[p.ID] = copiaProduto(p)
	}
	return f
}

func copiaProduto(p entity.Produto) entity.Produto {
	if p.VolumeUnitario != nil {
		v := *p.VolumeUnitario
		p.VolumeUnitario = &v
	}
	if p.VolumeTotal != nil {
		v := *p.VolumeTotal
		p.VolumeTotal = &v
	}
	return p
}

func (f *fakeProdutoRepo) Create(p *entity.Produto) error {
	f.produtos[p.ID] = copiaProduto(*p)
	return nil
}

func (f *fakeProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	p, ok := f.produtos[id]
	if !ok {
		return nil, nil
	}
	c := copiaProduto(p)
	return &c, nil
}

func (f *fakeProdutoRepo) GetForUpdate(id string) (*entity.Produto, error) {
	return f.GetByID(id)
}

func (f *fakeProdutoRepo) AtualizarEstoque(p *entity.Produto) error {
	atual := f.produtos[p.ID]
	atual.Estoque = p.Estoque
	atual.StatusEstoque = p.StatusEstoque
	atual.AtualizadoEm = p.AtualizadoEm
	atual.VolumeTotal = nil
	if p.VolumeTotal != nil {
		v := *p.VolumeTotal
		atual.VolumeTotal = &v
	}
	f.produtos[p.ID] = atual
	return nil
}

func (f *fakeProdutoRepo) AtualizarCusto(id string, custo decimal.Decimal) error {
	atual := f.produtos[id]
	atual.PrecoCusto = custo
	f.produtos[id] = atual
	return nil
}

func (f *fakeProdutoRepo) List(limit, offset int) ([]*entity.Produto, error) {
	var out []*entity.Produto
	for _, p := range f.produtos {
		c := copiaProduto(p)
		out = append(out, &c)
	}
	return out, nil
}

type fakeMovRepo struct {
	movimentos []*entity.MovimentoEstoque
}

func (f *fakeMovRepo) Create(m *entity.MovimentoEstoque) error {
	c := *m
	f.movimentos = append(f.movimentos, &c)
	return nil
}

func (f *fakeMovRepo) ListByProduto(produtoID string, de, ate *time.Time, limit, offset int) ([]*entity.MovimentoEstoque, error) {
	var out []*entity.MovimentoEstoque
	for _, m := range f.movimentos {
		if m.ProdutoID != produtoID {
			continue
		}
		if de != nil && m.CriadoEm.Before(*de) {
			continue
		}
		if ate != nil && m.CriadoEm.After(*ate) {
			continue
		}
		out = append(out, m)
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeEntradaRepo struct {
	entradas []*entity.EntradaEstoque
}

func (f *fakeEntradaRepo) Create(e *entity.EntradaEstoque) error {
	c := *e
	f.entradas = append(f.entradas, &c)
	return nil
}

// fakeTxRunner emula a semântica transacional: tira um snapshot do estado e o
// restaura se fn devolver erro (rollback).
type fakeTxRunner struct {
	produtoRepo *fakeProdutoRepo
	movRepo     *fakeMovRepo
	entradaRepo *fakeEntradaRepo
}

var _ appinv.TxRunner = (*fakeTxRunner)(nil)

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	produtoRepo repository.ProdutoRepository,
	movRepo repository.MovimentoEstoqueRepository,
	entradaRepo repository.EntradaEstoqueRepository,
) error) error {
	snapProdutos := make(map[string]entity.Produto, len(f.produtoRepo.produtos))
	for id, p := range f.produtoRepo.produtos {
		snapProdutos[id] = copiaProduto(p)
	}
	snapMovs := len(f.movRepo.movimentos)
	snapEntradas := len(f.entradaRepo.entradas)

	err := fn(f.produtoRepo, f.movRepo, f.entradaRepo)
	if err != nil {
		f.produtoRepo.produtos = snapProdutos
		f.movRepo.movimentos = f.movRepo.movimentos[:snapMovs]
		f.entradaRepo.entradas = f.entradaRepo.entradas[:snapEntradas]
	}
	return err
}

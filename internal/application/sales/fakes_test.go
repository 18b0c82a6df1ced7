package sales_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/adegaplus/pdv-api/internal/application/sales"
	"github.com/adegaplus/pdv-api/internal/domain/entity"
	"github.com/adegaplus/pdv-api/internal/domain/repository"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr(v int64) *int64 { return &v }

// Fakes em memória para as portas. GetForUpdate/GetByID devolvem cópias, como
// o scan do banco; o estado só muda pelos métodos de escrita.

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
		if m.ProdutoID == produtoID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeVendaRepo struct {
	vendas map[string]entity.Venda
}

func newFakeVendaRepo() *fakeVendaRepo {
	return &fakeVendaRepo{vendas: make(map[string]entity.Venda)}
}

func copiaVenda(v entity.Venda) entity.Venda {
	itens := make([]entity.ItemVenda, len(v.Itens))
	copy(itens, v.Itens)
	v.Itens = itens
	if v.SessaoCaixaID != nil {
		s := *v.SessaoCaixaID
		v.SessaoCaixaID = &s
	}
	return v
}

func (f *fakeVendaRepo) Create(v *entity.Venda) error {
	f.vendas[v.ID] = copiaVenda(*v)
	return nil
}

func (f *fakeVendaRepo) GetByID(id string) (*entity.Venda, error) {
	v, ok := f.vendas[id]
	if !ok {
		return nil, nil
	}
	c := copiaVenda(v)
	return &c, nil
}

func (f *fakeVendaRepo) GetForUpdate(id string) (*entity.Venda, error) {
	return f.GetByID(id)
}

func (f *fakeVendaRepo) AtualizarStatus(id, status string, atualizadoEm time.Time) error {
	v := f.vendas[id]
	v.Status = status
	v.AtualizadoEm = atualizadoEm
	f.vendas[id] = v
	return nil
}

func (f *fakeVendaRepo) SubstituirItens(vendaID string, itens []entity.ItemVenda, total decimal.Decimal, atualizadoEm time.Time) error {
	v := f.vendas[vendaID]
	novos := make([]entity.ItemVenda, len(itens))
	copy(novos, itens)
	v.Itens = novos
	v.Total = total
	v.AtualizadoEm = atualizadoEm
	f.vendas[vendaID] = v
	return nil
}

func (f *fakeVendaRepo) ListPorPeriodo(de, ate time.Time) ([]*entity.Venda, error) {
	var out []*entity.Venda
	for _, v := range f.vendas {
		if !v.CriadoEm.Before(de) && !v.CriadoEm.After(ate) {
			c := copiaVenda(v)
			out = append(out, &c)
		}
	}
	return out, nil
}

func (f *fakeVendaRepo) ListPorSessao(sessaoID string) ([]*entity.Venda, error) {
	var out []*entity.Venda
	for _, v := range f.vendas {
		if v.SessaoCaixaID != nil && *v.SessaoCaixaID == sessaoID {
			c := copiaVenda(v)
			out = append(out, &c)
		}
	}
	return out, nil
}

func (f *fakeVendaRepo) SomaTotalPorSessao(sessaoID string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, v := range f.vendas {
		if v.SessaoCaixaID != nil && *v.SessaoCaixaID == sessaoID && v.Status == entity.VendaConcluida {
			total = total.Add(v.Total)
		}
	}
	return total, nil
}

type fakeSessaoRepo struct {
	sessoes map[string]entity.SessaoCaixa
}

func newFakeSessaoRepo(ss ...entity.SessaoCaixa) *fakeSessaoRepo {
	f := &fakeSessaoRepo{sessoes: make(map[string]entity.SessaoCaixa)}
	for _, s := range ss {
		f.sessoes[s.ID] = s
	}
	return f
}

func (f *fakeSessaoRepo) Create(s *entity.SessaoCaixa) error {
	f.sessoes[s.ID] = *s
	return nil
}

func (f *fakeSessaoRepo) GetByID(id string) (*entity.SessaoCaixa, error) {
	s, ok := f.sessoes[id]
	if !ok {
		return nil, nil
	}
	c := s
	return &c, nil
}

func (f *fakeSessaoRepo) ObterAtiva() (*entity.SessaoCaixa, error) {
	for _, s := range f.sessoes {
		if s.Ativa {
			c := s
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeSessaoRepo) Fechar(s *entity.SessaoCaixa) error {
	f.sessoes[s.ID] = *s
	return nil
}

type fakeCompostoRepo struct {
	compostos map[string]entity.Composto
}

func newFakeCompostoRepo(cs ...entity.Composto) *fakeCompostoRepo {
	f := &fakeCompostoRepo{compostos: make(map[string]entity.Composto)}
	for _, c := range cs {
		f.compostos[c.ID] = c
	}
	return f
}

func (f *fakeCompostoRepo) GetByID(id string) (*entity.Composto, error) {
	c, ok := f.compostos[id]
	if !ok {
		return nil, nil
	}
	cp := c
	return &cp, nil
}

type fakeMeioPagamentoRepo struct {
	meios map[string]entity.MeioPagamento
}

func newFakeMeioPagamentoRepo(ms ...entity.MeioPagamento) *fakeMeioPagamentoRepo {
	f := &fakeMeioPagamentoRepo{meios: make(map[string]entity.MeioPagamento)}
	for _, m := range ms {
		f.meios[m.ID] = m
	}
	return f
}

func (f *fakeMeioPagamentoRepo) GetByID(id string) (*entity.MeioPagamento, error) {
	m, ok := f.meios[id]
	if !ok {
		return nil, nil
	}
	c := m
	return &c, nil
}

// gravadorEventos registra os eventos publicados (só após commit).
type gravadorEventos struct {
	eventos []string
}

func (g *gravadorEventos) Publicar(_ context.Context, evento string, _ any) {
	g.eventos = append(g.eventos, evento)
}

// fakeTxVenda emula a transação de venda: snapshot de todo o estado antes de
// fn e restauração integral se fn devolver erro.
type fakeTxVenda struct {
	produtoRepo *fakeProdutoRepo
	movRepo     *fakeMovRepo
	vendaRepo   *fakeVendaRepo
	sessaoRepo  *fakeSessaoRepo
}

var _ sales.TxRunner = (*fakeTxVenda)(nil)

func (f *fakeTxVenda) RunVenda(_ context.Context, fn func(
	produtoRepo repository.ProdutoRepository,
	movRepo repository.MovimentoEstoqueRepository,
	vendaRepo repository.VendaRepository,
	sessaoRepo repository.SessaoCaixaRepository,
) error) error {
	snapProdutos := make(map[string]entity.Produto, len(f.produtoRepo.produtos))
	for id, p := range f.produtoRepo.produtos {
		snapProdutos[id] = copiaProduto(p)
	}
	snapVendas := make(map[string]entity.Venda, len(f.vendaRepo.vendas))
	for id, v := range f.vendaRepo.vendas {
		snapVendas[id] = copiaVenda(v)
	}
	snapSessoes := make(map[string]entity.SessaoCaixa, len(f.sessaoRepo.sessoes))
	for id, s := range f.sessaoRepo.sessoes {
		snapSessoes[id] = s
	}
	snapMovs := len(f.movRepo.movimentos)

	err := fn(f.produtoRepo, f.movRepo, f.vendaRepo, f.sessaoRepo)
	if err != nil {
		f.produtoRepo.produtos = snapProdutos
		f.vendaRepo.vendas = snapVendas
		f.sessaoRepo.sessoes = snapSessoes
		f.movRepo.movimentos = f.movRepo.movimentos[:snapMovs]
	}
	return err
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adegaplus/pdv-api/internal/application/caixa"
	appinv "github.com/adegaplus/pdv-api/internal/application/inventory"
	"github.com/adegaplus/pdv-api/internal/application/sales"
	"github.com/adegaplus/pdv-api/internal/domain"
	"github.com/adegaplus/pdv-api/internal/domain/repository"
)

var _ appinv.TxRunner = (*TxRunner)(nil)
var _ sales.TxRunner = (*TxRunner)(nil)
var _ caixa.TxRunner = (*TxRunner)(nil)

// Limite de tentativas em falha de serialização/deadlock antes de devolver
// ErrConcurrentModification.
const maxTentativas = 3

// TxRunner executa callbacks dentro de uma transação PostgreSQL, com retry
// limitado da transação inteira (mesmo input) em 40001/40P01.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação com os repositórios de estoque atados a ela.
func (r *TxRunner) Run(ctx context.Context, fn func(
	produtoRepo repository.ProdutoRepository,
	movRepo repository.MovimentoEstoqueRepository,
	entradaRepo repository.EntradaEstoqueRepository,
) error) error {
	return r.executar(ctx, func(tx pgx.Tx) error {
		return fn(NewProdutoRepository(tx), NewMovimentoEstoqueRepository(tx), NewEntradaEstoqueRepository(tx))
	})
}

// RunVenda inicia uma transação com os repositórios de venda atados a ela
// (criar/cancelar/editar venda).
func (r *TxRunner) RunVenda(ctx context.Context, fn func(
	produtoRepo repository.ProdutoRepository,
	movRepo repository.MovimentoEstoqueRepository,
	vendaRepo repository.VendaRepository,
	sessaoRepo repository.SessaoCaixaRepository,
) error) error {
	return r.executar(ctx, func(tx pgx.Tx) error {
		return fn(NewProdutoRepository(tx), NewMovimentoEstoqueRepository(tx), NewVendaRepository(tx), NewSessaoCaixaRepository(tx))
	})
}

// RunCaixa inicia uma transação com os repositórios de sessão de caixa.
func (r *TxRunner) RunCaixa(ctx context.Context, fn func(
	sessaoRepo repository.SessaoCaixaRepository,
	vendaRepo repository.VendaRepository,
) error) error {
	return r.executar(ctx, func(tx pgx.Tx) error {
		return fn(NewSessaoCaixaRepository(tx), NewVendaRepository(tx))
	})
}

// executar roda uma tentativa por transação: Begin, fn, Commit ou Rollback.
// Em falha de serialização ou deadlock repete a transação inteira até o
// limite; esgotado, devolve ErrConcurrentModification.
func (r *TxRunner) executar(ctx context.Context, fn func(tx pgx.Tx) error) error {
	var err error
	for tentativa := 0; tentativa < maxTentativas; tentativa++ {
		err = r.umaTransacao(ctx, fn)
		if err == nil || !isSerializationFailure(err) {
			return err
		}
	}
	return domain.ErrConcurrentModification
}

func (r *TxRunner) umaTransacao(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

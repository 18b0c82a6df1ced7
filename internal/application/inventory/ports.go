package inventory

import (
	"context"

	"github.com/adegaplus/pdv-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. Garante a atomicidade do motor de estoque:
// Commit se fn devolve nil, Rollback caso contrário.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		produtoRepo repository.ProdutoRepository,
		movRepo repository.MovimentoEstoqueRepository,
		entradaRepo repository.EntradaEstoqueRepository,
	) error) error
}

package sales

import (
	"context"

	"github.com/adegaplus/pdv-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação que abrange produtos,
// movimentos, vendas e sessões de caixa. Criar, cancelar e editar venda rodam
// cada um em exatamente uma transação dessas.
type TxRunner interface {
	RunVenda(ctx context.Context, fn func(
		produtoRepo repository.ProdutoRepository,
		movRepo repository.MovimentoEstoqueRepository,
		vendaRepo repository.VendaRepository,
		sessaoRepo repository.SessaoCaixaRepository,
	) error) error
}

package repository

import (
	"github.com/shopspring/decimal"

	"github.com/adegaplus/pdv-api/internal/domain/entity"
)

// ProdutoRepository porta de persistência de produtos.
//
// GetForUpdate bloqueia a linha (SELECT ... FOR UPDATE) e só faz sentido
// dentro de uma transação: é o que serializa as checagens de estoque.
type ProdutoRepository interface {
	Create(p *entity.Produto) error
	GetByID(id string) (*entity.Produto, error)
	GetForUpdate(id string) (*entity.Produto, error)
	// AtualizarEstoque grava estoque, volume total e status (só campos de estoque).
	AtualizarEstoque(p *entity.Produto) error
	// AtualizarCusto grava só o custo médio ponderado.
	AtualizarCusto(id string, custo decimal.Decimal) error
	List(limit, offset int) ([]*entity.Produto, error)
}

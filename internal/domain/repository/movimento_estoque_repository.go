package repository

import (
	"time"

	"github.com/adegaplus/pdv-api/internal/domain/entity"
)

// MovimentoEstoqueRepository porta do livro-razão de estoque (append-only:
// sem Update nem Delete).
type MovimentoEstoqueRepository interface {
	Create(m *entity.MovimentoEstoque) error
	ListByProduto(produtoID string, de, ate *time.Time, limit, offset int) ([]*entity.MovimentoEstoque, error)
}

package postgres

import (
	"context"
	"fmt"

	"github.com/adegaplus/pdv-api/internal/domain/entity"
	"github.com/adegaplus/pdv-api/internal/domain/repository"
)

var _ repository.EntradaEstoqueRepository = (*EntradaEstoqueRepo)(nil)

// EntradaEstoqueRepo implementação das reposições sobre PostgreSQL
// (write-once).
type EntradaEstoqueRepo struct {
	q Querier
}

// NewEntradaEstoqueRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewEntradaEstoqueRepository(q Querier) *EntradaEstoqueRepo {
	return &EntradaEstoqueRepo{q: q}
}

// Create persiste uma entrada de estoque.
func (r *EntradaEstoqueRepo) Create(e *entity.EntradaEstoque) error {
	query := `
		INSERT INTO entradas_estoque (id, produto_id, quantidade, custo_unitario, fornecedor_id, criado_em, criado_por)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.ProdutoID, e.Quantidade, e.CustoUnitario, e.FornecedorID, e.CriadoEm, e.CriadoPor,
	)
	if err != nil {
		return fmt.Errorf("create entrada: %w", err)
	}
	return nil
}

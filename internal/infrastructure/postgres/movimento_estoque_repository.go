package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/adegaplus/pdv-api/internal/domain/entity"
	"github.com/adegaplus/pdv-api/internal/domain/repository"
)

var _ repository.MovimentoEstoqueRepository = (*MovimentoEstoqueRepo)(nil)

const movimentoColunas = `id, produto_id, direcao, quantidade, baixa_por, custo_unitario,
	custo_total, origem, referencia_id, observacao, criado_em, criado_por`

// MovimentoEstoqueRepo implementação do livro-razão sobre PostgreSQL.
// Append-only: o repositório não expõe Update nem Delete.
type MovimentoEstoqueRepo struct {
	q Querier
}

// NewMovimentoEstoqueRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovimentoEstoqueRepository(q Querier) *MovimentoEstoqueRepo {
	return &MovimentoEstoqueRepo{q: q}
}

// Create persiste um movimento de estoque.
func (r *MovimentoEstoqueRepo) Create(m *entity.MovimentoEstoque) error {
	query := `
		INSERT INTO movimentos_estoque (` + movimentoColunas + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ProdutoID, m.Direcao, m.Quantidade, m.BaixaPor, m.CustoUnitario,
		m.CustoTotal, m.Origem, m.ReferenciaID, m.Observacao, m.CriadoEm, m.CriadoPor,
	)
	if err != nil {
		return fmt.Errorf("create movimento: %w", err)
	}
	return nil
}

// ListByProduto lista movimentos de um produto num intervalo de datas.
func (r *MovimentoEstoqueRepo) ListByProduto(produtoID string, de, ate *time.Time, limit, offset int) ([]*entity.MovimentoEstoque, error) {
	query := `SELECT ` + movimentoColunas + ` FROM movimentos_estoque WHERE produto_id = $1`
	args := []any{produtoID}
	pos := 2
	if de != nil {
		query += fmt.Sprintf(" AND criado_em >= $%d", pos)
		args = append(args, *de)
		pos++
	}
	if ate != nil {
		query += fmt.Sprintf(" AND criado_em <= $%d", pos)
		args = append(args, *ate)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY criado_em DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimentos: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovimentoEstoque
	for rows.Next() {
		var m entity.MovimentoEstoque
		if err := rows.Scan(
			&m.ID, &m.ProdutoID, &m.Direcao, &m.Quantidade, &m.BaixaPor, &m.CustoUnitario,
			&m.CustoTotal, &m.Origem, &m.ReferenciaID, &m.Observacao, &m.CriadoEm, &m.CriadoPor,
		); err != nil {
			return nil, fmt.Errorf("scan movimento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/adegaplus/pdv-api/internal/domain/entity"
	"github.com/adegaplus/pdv-api/internal/domain/repository"
)

var _ repository.CompostoRepository = (*CompostoRepo)(nil)

// CompostoRepo consulta dos templates de combo/dose/oferta sobre PostgreSQL.
type CompostoRepo struct {
	q Querier
}

// NewCompostoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCompostoRepository(q Querier) *CompostoRepo {
	return &CompostoRepo{q: q}
}

// GetByID devolve o template com seus itens.
func (r *CompostoRepo) GetByID(id string) (*entity.Composto, error) {
	var c entity.Composto
	err := r.q.QueryRow(context.Background(),
		`SELECT id, nome, tipo, preco FROM compostos WHERE id = $1`, id,
	).Scan(&c.ID, &c.Nome, &c.Tipo, &c.Preco)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get composto: %w", err)
	}

	rows, err := r.q.Query(context.Background(),
		`SELECT id, composto_id, produto_id, quantidade, categoria_id, max_escolhas, baixa_por
		 FROM itens_composto WHERE composto_id = $1 ORDER BY id`, id,
	)
	if err != nil {
		return nil, fmt.Errorf("list itens composto: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.ItemComposto
		if err := rows.Scan(
			&it.ID, &it.CompostoID, &it.ProdutoID, &it.Quantidade,
			&it.CategoriaID, &it.MaxEscolhas, &it.BaixaPor,
		); err != nil {
			return nil, fmt.Errorf("scan item composto: %w", err)
		}
		c.Itens = append(c.Itens, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &c, nil
}

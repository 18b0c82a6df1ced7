package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/adegaplus/pdv-api/internal/domain"
	"github.com/adegaplus/pdv-api/internal/domain/entity"
	"github.com/adegaplus/pdv-api/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

const produtoColunas = `id, nome, categoria_id, preco, preco_custo, estoque, fracionado,
	volume_unitario, volume_total, status_estoque, estoque_minimo, criado_em, atualizado_em`

// ProdutoRepo implementação de ProdutoRepository sobre PostgreSQL (usável com
// pool ou tx).
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

// Create persiste um novo produto. PrecoCusto inicia em 0.
func (r *ProdutoRepo) Create(p *entity.Produto) error {
	query := `
		INSERT INTO produtos (` + produtoColunas + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nome, p.CategoriaID, p.Preco, p.PrecoCusto, p.Estoque, p.Fracionado,
		p.VolumeUnitario, p.VolumeTotal, p.StatusEstoque, p.EstoqueMinimo, p.CriadoEm, p.AtualizadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// GetByID obtém um produto por ID.
func (r *ProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	return r.get(id, false)
}

// GetForUpdate obtém o produto bloqueando a linha (SELECT FOR UPDATE). Só faz
// sentido dentro de uma transação; é o que serializa as checagens de estoque.
func (r *ProdutoRepo) GetForUpdate(id string) (*entity.Produto, error) {
	return r.get(id, true)
}

func (r *ProdutoRepo) get(id string, forUpdate bool) (*entity.Produto, error) {
	query := `SELECT ` + produtoColunas + ` FROM produtos WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var p entity.Produto
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Nome, &p.CategoriaID, &p.Preco, &p.PrecoCusto, &p.Estoque, &p.Fracionado,
		&p.VolumeUnitario, &p.VolumeTotal, &p.StatusEstoque, &p.EstoqueMinimo, &p.CriadoEm, &p.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return &p, nil
}

// AtualizarEstoque grava estoque, volume total e status (só campos de estoque;
// os demais passam pelo cadastro).
func (r *ProdutoRepo) AtualizarEstoque(p *entity.Produto) error {
	query := `
		UPDATE produtos
		SET estoque = $2, volume_total = $3, status_estoque = $4, atualizado_em = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Estoque, p.VolumeTotal, p.StatusEstoque, p.AtualizadoEm,
	)
	if err != nil {
		return fmt.Errorf("update estoque: %w", err)
	}
	return nil
}

// AtualizarCusto grava só o custo médio ponderado (usado na reposição).
func (r *ProdutoRepo) AtualizarCusto(id string, custo decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE produtos SET preco_custo = $2, atualizado_em = now() WHERE id = $1`,
		id, custo,
	)
	if err != nil {
		return fmt.Errorf("update custo: %w", err)
	}
	return nil
}

// List lista produtos com paginação.
func (r *ProdutoRepo) List(limit, offset int) ([]*entity.Produto, error) {
	query := `SELECT ` + produtoColunas + ` FROM produtos ORDER BY nome LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Produto
	for rows.Next() {
		var p entity.Produto
		if err := rows.Scan(
			&p.ID, &p.Nome, &p.CategoriaID, &p.Preco, &p.PrecoCusto, &p.Estoque, &p.Fracionado,
			&p.VolumeUnitario, &p.VolumeTotal, &p.StatusEstoque, &p.EstoqueMinimo, &p.CriadoEm, &p.AtualizadoEm,
		); err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

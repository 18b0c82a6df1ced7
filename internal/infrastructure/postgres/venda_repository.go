package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/adegaplus/pdv-api/internal/domain/entity"
	"github.com/adegaplus/pdv-api/internal/domain/repository"
)

var _ repository.VendaRepository = (*VendaRepo)(nil)

const vendaColunas = `id, status, canal, total, meio_pagamento_id, sessao_caixa_id,
	criado_em, atualizado_em, criado_por`

const itemColunas = `id, venda_id, produto_id, quantidade, baixa_por, preco, preco_custo,
	combo_instance_id, dose_instance_id, oferta_instance_id`

// VendaRepo implementação de VendaRepository sobre PostgreSQL (agregado
// venda + itens).
type VendaRepo struct {
	q Querier
}

// NewVendaRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewVendaRepository(q Querier) *VendaRepo {
	return &VendaRepo{q: q}
}

// Create persiste a venda e seus itens.
func (r *VendaRepo) Create(v *entity.Venda) error {
	query := `
		INSERT INTO vendas (` + vendaColunas + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.Status, v.Canal, v.Total, v.MeioPagamentoID, v.SessaoCaixaID,
		v.CriadoEm, v.AtualizadoEm, v.CriadoPor,
	)
	if err != nil {
		return fmt.Errorf("insert venda: %w", err)
	}
	return r.inserirItens(v.Itens)
}

func (r *VendaRepo) inserirItens(itens []entity.ItemVenda) error {
	query := `
		INSERT INTO itens_venda (` + itemColunas + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	for _, it := range itens {
		_, err := r.q.Exec(context.Background(), query,
			it.ID, it.VendaID, it.ProdutoID, it.Quantidade, it.BaixaPor, it.Preco, it.PrecoCusto,
			it.ComboInstanceID, it.DoseInstanceID, it.OfertaInstanceID,
		)
		if err != nil {
			return fmt.Errorf("insert item venda: %w", err)
		}
	}
	return nil
}

// GetByID obtém a venda com seus itens.
func (r *VendaRepo) GetByID(id string) (*entity.Venda, error) {
	return r.get(id, false)
}

// GetForUpdate obtém a venda bloqueando a linha (cancelamento/edição).
func (r *VendaRepo) GetForUpdate(id string) (*entity.Venda, error) {
	return r.get(id, true)
}

func (r *VendaRepo) get(id string, forUpdate bool) (*entity.Venda, error) {
	query := `SELECT ` + vendaColunas + ` FROM vendas WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var v entity.Venda
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.Status, &v.Canal, &v.Total, &v.MeioPagamentoID, &v.SessaoCaixaID,
		&v.CriadoEm, &v.AtualizadoEm, &v.CriadoPor,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venda: %w", err)
	}
	itens, err := r.itensDaVenda(id)
	if err != nil {
		return nil, err
	}
	v.Itens = itens
	return &v, nil
}

func (r *VendaRepo) itensDaVenda(vendaID string) ([]entity.ItemVenda, error) {
	query := `SELECT ` + itemColunas + ` FROM itens_venda WHERE venda_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, vendaID)
	if err != nil {
		return nil, fmt.Errorf("list itens venda: %w", err)
	}
	defer rows.Close()
	var itens []entity.ItemVenda
	for rows.Next() {
		var it entity.ItemVenda
		if err := rows.Scan(
			&it.ID, &it.VendaID, &it.ProdutoID, &it.Quantidade, &it.BaixaPor, &it.Preco, &it.PrecoCusto,
			&it.ComboInstanceID, &it.DoseInstanceID, &it.OfertaInstanceID,
		); err != nil {
			return nil, fmt.Errorf("scan item venda: %w", err)
		}
		itens = append(itens, it)
	}
	return itens, rows.Err()
}

// AtualizarStatus grava o status da venda.
func (r *VendaRepo) AtualizarStatus(id, status string, atualizadoEm time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE vendas SET status = $2, atualizado_em = $3 WHERE id = $1`,
		id, status, atualizadoEm,
	)
	if err != nil {
		return fmt.Errorf("update status venda: %w", err)
	}
	return nil
}

// SubstituirItens troca a coleção de itens e o total (edição de venda).
// Os itens antigos saem, os novos entram, na mesma transação do caller.
func (r *VendaRepo) SubstituirItens(vendaID string, itens []entity.ItemVenda, total decimal.Decimal, atualizadoEm time.Time) error {
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM itens_venda WHERE venda_id = $1`, vendaID,
	); err != nil {
		return fmt.Errorf("delete itens venda: %w", err)
	}
	if err := r.inserirItens(itens); err != nil {
		return err
	}
	_, err := r.q.Exec(context.Background(),
		`UPDATE vendas SET total = $2, atualizado_em = $3 WHERE id = $1`,
		vendaID, total, atualizadoEm,
	)
	if err != nil {
		return fmt.Errorf("update total venda: %w", err)
	}
	return nil
}

// ListPorPeriodo lista vendas criadas na janela [de, ate], com itens.
func (r *VendaRepo) ListPorPeriodo(de, ate time.Time) ([]*entity.Venda, error) {
	query := `SELECT ` + vendaColunas + ` FROM vendas
		WHERE criado_em >= $1 AND criado_em <= $2 ORDER BY criado_em DESC`
	return r.listar(query, de, ate)
}

// ListPorSessao lista as vendas marcadas com a sessão de caixa.
func (r *VendaRepo) ListPorSessao(sessaoID string) ([]*entity.Venda, error) {
	query := `SELECT ` + vendaColunas + ` FROM vendas
		WHERE sessao_caixa_id = $1 ORDER BY criado_em`
	return r.listar(query, sessaoID)
}

func (r *VendaRepo) listar(query string, args ...any) ([]*entity.Venda, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list vendas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Venda
	for rows.Next() {
		var v entity.Venda
		if err := rows.Scan(
			&v.ID, &v.Status, &v.Canal, &v.Total, &v.MeioPagamentoID, &v.SessaoCaixaID,
			&v.CriadoEm, &v.AtualizadoEm, &v.CriadoPor,
		); err != nil {
			return nil, fmt.Errorf("scan venda: %w", err)
		}
		list = append(list, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, v := range list {
		itens, err := r.itensDaVenda(v.ID)
		if err != nil {
			return nil, err
		}
		v.Itens = itens
	}
	return list, nil
}

// SomaTotalPorSessao soma o total das vendas COMPLETED da sessão.
func (r *VendaRepo) SomaTotalPorSessao(sessaoID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(total), 0) FROM vendas WHERE sessao_caixa_id = $1 AND status = $2`,
		sessaoID, entity.VendaConcluida,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("soma total sessao: %w", err)
	}
	return total, nil
}

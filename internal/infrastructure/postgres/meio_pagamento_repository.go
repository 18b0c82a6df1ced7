package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/adegaplus/pdv-api/internal/domain/entity"
	"github.com/adegaplus/pdv-api/internal/domain/repository"
)

var _ repository.MeioPagamentoRepository = (*MeioPagamentoRepo)(nil)

// MeioPagamentoRepo consulta de meios de pagamento sobre PostgreSQL.
type MeioPagamentoRepo struct {
	q Querier
}

// NewMeioPagamentoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMeioPagamentoRepository(q Querier) *MeioPagamentoRepo {
	return &MeioPagamentoRepo{q: q}
}

// GetByID obtém um meio de pagamento por ID.
func (r *MeioPagamentoRepo) GetByID(id string) (*entity.MeioPagamento, error) {
	var m entity.MeioPagamento
	err := r.q.QueryRow(context.Background(),
		`SELECT id, nome, ativo FROM meios_pagamento WHERE id = $1`, id,
	).Scan(&m.ID, &m.Nome, &m.Ativo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get meio pagamento: %w", err)
	}
	return &m, nil
}

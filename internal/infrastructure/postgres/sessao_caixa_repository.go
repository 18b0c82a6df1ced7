package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/adegaplus/pdv-api/internal/domain"
	"github.com/adegaplus/pdv-api/internal/domain/entity"
	"github.com/adegaplus/pdv-api/internal/domain/repository"
)

var _ repository.SessaoCaixaRepository = (*SessaoCaixaRepo)(nil)

const sessaoColunas = `id, aberta_em, aberta_por, fechada_em, fechada_por,
	valor_inicial, valor_final, total_vendas, ativa`

// SessaoCaixaRepo implementação das sessões de caixa sobre PostgreSQL.
// A sessão única é garantida no banco, mesmo sob corrida, por um índice
// único parcial que o schema precisa declarar:
//
//	CREATE UNIQUE INDEX sessoes_caixa_uma_ativa ON sessoes_caixa (ativa) WHERE ativa;
//
// A violação vira domain.ErrSessionAlreadyOpen em Create.
type SessaoCaixaRepo struct {
	q Querier
}

// NewSessaoCaixaRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewSessaoCaixaRepository(q Querier) *SessaoCaixaRepo {
	return &SessaoCaixaRepo{q: q}
}

// Create persiste uma sessão aberta.
func (r *SessaoCaixaRepo) Create(s *entity.SessaoCaixa) error {
	query := `
		INSERT INTO sessoes_caixa (` + sessaoColunas + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.AbertaEm, s.AbertaPor, s.FechadaEm, s.FechadaPor,
		s.ValorInicial, s.ValorFinal, s.TotalVendas, s.Ativa,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSessionAlreadyOpen
		}
		return fmt.Errorf("insert sessao: %w", err)
	}
	return nil
}

// GetByID obtém uma sessão por ID.
func (r *SessaoCaixaRepo) GetByID(id string) (*entity.SessaoCaixa, error) {
	query := `SELECT ` + sessaoColunas + ` FROM sessoes_caixa WHERE id = $1`
	return r.uma(query, id)
}

// ObterAtiva devolve a sessão aberta, ou nil se não houver.
func (r *SessaoCaixaRepo) ObterAtiva() (*entity.SessaoCaixa, error) {
	query := `SELECT ` + sessaoColunas + ` FROM sessoes_caixa WHERE ativa LIMIT 1`
	return r.uma(query)
}

func (r *SessaoCaixaRepo) uma(query string, args ...any) (*entity.SessaoCaixa, error) {
	var s entity.SessaoCaixa
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&s.ID, &s.AbertaEm, &s.AbertaPor, &s.FechadaEm, &s.FechadaPor,
		&s.ValorInicial, &s.ValorFinal, &s.TotalVendas, &s.Ativa,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sessao: %w", err)
	}
	return &s, nil
}

// Fechar grava os campos de fechamento e desativa a sessão.
func (r *SessaoCaixaRepo) Fechar(s *entity.SessaoCaixa) error {
	query := `
		UPDATE sessoes_caixa
		SET fechada_em = $2, fechada_por = $3, valor_final = $4, total_vendas = $5, ativa = false
		WHERE id = $1 AND ativa`
	cmd, err := r.q.Exec(context.Background(), query,
		s.ID, s.FechadaEm, s.FechadaPor, s.ValorFinal, s.TotalVendas,
	)
	if err != nil {
		return fmt.Errorf("fechar sessao: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrSessionAlreadyClosed
	}
	return nil
}

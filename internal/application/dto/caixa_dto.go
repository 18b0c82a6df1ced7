package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AbrirCaixaRequest body para POST /api/caixa/abrir.
type AbrirCaixaRequest struct {
	AbertaPor    string          `json:"aberta_por"`
	ValorInicial decimal.Decimal `json:"valor_inicial"`
}

// FecharCaixaRequest body para POST /api/caixa/fechar.
type FecharCaixaRequest struct {
	SessaoID   string          `json:"sessao_id"`
	FechadaPor string          `json:"fechada_por"`
	ValorFinal decimal.Decimal `json:"valor_final"`
}

// SessaoCaixaResponse resposta com a sessão de caixa.
type SessaoCaixaResponse struct {
	ID           string           `json:"id"`
	AbertaEm     time.Time        `json:"aberta_em"`
	AbertaPor    string           `json:"aberta_por"`
	FechadaEm    *time.Time       `json:"fechada_em,omitempty"`
	FechadaPor   *string          `json:"fechada_por,omitempty"`
	ValorInicial decimal.Decimal  `json:"valor_inicial"`
	ValorFinal   *decimal.Decimal `json:"valor_final,omitempty"`
	TotalVendas  decimal.Decimal  `json:"total_vendas"`
	Ativa        bool             `json:"ativa"`
}

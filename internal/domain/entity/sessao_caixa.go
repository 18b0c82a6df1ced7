package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SessaoCaixa delimita uma janela de vendas para conferência do caixa.
// No máximo uma sessão ativa no sistema; fechada, nunca reabre.
type SessaoCaixa struct {
	ID           string
	AbertaEm     time.Time
	AbertaPor    string
	FechadaEm    *time.Time
	FechadaPor   *string
	ValorInicial decimal.Decimal
	ValorFinal   *decimal.Decimal
	TotalVendas  decimal.Decimal // snapshot no fechamento: soma das vendas COMPLETED da sessão
	Ativa        bool
}

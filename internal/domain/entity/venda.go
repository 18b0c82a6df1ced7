package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de venda. A transição COMPLETED -> CANCELLED é terminal e de mão única.
const (
	VendaConcluida = "COMPLETED"
	VendaCancelada = "CANCELLED"
)

// Modos de baixa de estoque de um item.
const (
	BaixaPorUnidade = "unidade"
	BaixaPorVolume  = "volume" // quantidade expressa em ml (doses, frações)
)

// Canais de venda.
const (
	CanalPDV    = "pdv"
	CanalOnline = "online"
)

// Venda é o agregado de uma transação concluída (ou cancelada).
type Venda struct {
	ID              string
	Status          string
	Canal           string
	Itens           []ItemVenda
	Total           decimal.Decimal
	MeioPagamentoID string
	SessaoCaixaID   *string // sessão de caixa ativa no momento, se houver
	CriadoEm        time.Time
	AtualizadoEm    time.Time
	CriadoPor       string
}

// ItemVenda é uma linha da venda.
//
// Preco é o valor efetivamente cobrado pela linha (após rateio de composto,
// quando houver). PrecoCusto é snapshot do custo médio no momento da venda e
// nunca é recalculado retroativamente.
type ItemVenda struct {
	ID               string
	VendaID          string
	ProdutoID        string
	Quantidade       int64  // unidades, ou ml quando BaixaPor == volume
	BaixaPor         string // unidade | volume
	Preco            decimal.Decimal
	PrecoCusto       decimal.Decimal
	ComboInstanceID  *string
	DoseInstanceID   *string
	OfertaInstanceID *string
}

// LinhaMutacao devolve a linha de mutação de estoque equivalente ao item.
func (i ItemVenda) LinhaMutacao() (produtoID string, quantidade int64, baixaPor string) {
	return i.ProdutoID, i.Quantidade, i.BaixaPor
}

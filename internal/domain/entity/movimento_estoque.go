package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direções de movimento de estoque.
const (
	MovimentoEntrada = "in"
	MovimentoSaida   = "out"
)

// Origens de movimento (gravadas no livro-razão).
const (
	OrigemVendaPDV          = "venda_pdv"
	OrigemVendaOnline       = "venda_online"
	OrigemEntradaEstoque    = "entrada_estoque"
	OrigemManual            = "manual"
	OrigemCancelamentoVenda = "cancelamento_venda"
	OrigemEdicaoVenda       = "edicao_venda"
)

// MovimentoEstoque é um lançamento imutável do livro-razão de estoque.
// Criado a cada mutação, nunca alterado nem apagado.
type MovimentoEstoque struct {
	ID            string
	ProdutoID     string
	Direcao       string          // in | out
	Quantidade    int64           // unidades, ou ml quando BaixaPor == volume
	BaixaPor      string          // unidade | volume
	CustoUnitario decimal.Decimal // snapshot do custo médio no momento
	CustoTotal    decimal.Decimal
	Origem        string
	ReferenciaID  string // venda/entrada que originou o movimento
	Observacao    string
	CriadoEm      time.Time
	CriadoPor     string
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntradaEstoqueRequest body para POST /api/estoque/entradas.
type EntradaEstoqueRequest struct {
	ProdutoID     string          `json:"produto_id"`
	Quantidade    int64           `json:"quantidade"` // unidades inteiras
	CustoUnitario decimal.Decimal `json:"custo_unitario"`
	FornecedorID  string          `json:"fornecedor_id,omitempty"`
	CriadoPor     string          `json:"criado_por"`
}

// SaidaManualRequest body para POST /api/estoque/saida-manual.
type SaidaManualRequest struct {
	ProdutoID  string `json:"produto_id"`
	Quantidade int64  `json:"quantidade"`
	BaixaPor   string `json:"baixa_por,omitempty"` // unidade (padrão) | volume
	Observacao string `json:"observacao,omitempty"`
	CriadoPor  string `json:"criado_por"`
}

// MovimentoResponse lançamento do livro-razão na resposta.
type MovimentoResponse struct {
	ID            string          `json:"id"`
	ProdutoID     string          `json:"produto_id"`
	Direcao       string          `json:"direcao"`
	Quantidade    int64           `json:"quantidade"`
	BaixaPor      string          `json:"baixa_por"`
	CustoUnitario decimal.Decimal `json:"custo_unitario"`
	CustoTotal    decimal.Decimal `json:"custo_total"`
	Origem        string          `json:"origem"`
	ReferenciaID  string          `json:"referencia_id,omitempty"`
	Observacao    string          `json:"observacao,omitempty"`
	CriadoEm      time.Time       `json:"criado_em"`
	CriadoPor     string          `json:"criado_por,omitempty"`
}

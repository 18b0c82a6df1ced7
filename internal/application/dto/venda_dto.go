package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemAvulsoRequest item vendido fora de composto. Quantidade em unidades, ou
// em ml quando baixa_por == volume.
type ItemAvulsoRequest struct {
	ProdutoID  string `json:"produto_id"`
	Quantidade int64  `json:"quantidade"`
	BaixaPor   string `json:"baixa_por,omitempty"` // unidade (padrão) | volume
}

// EscolhaRequest escolha do cliente para um item escolhível de composto.
type EscolhaRequest struct {
	ProdutoID  string `json:"produto_id"`
	Quantidade int64  `json:"quantidade"`
}

// CompostoRequest compra de um combo/dose/oferta.
type CompostoRequest struct {
	CompostoID string           `json:"composto_id"`
	Escolhas   []EscolhaRequest `json:"escolhas,omitempty"`
}

// CriarVendaRequest body para POST /api/vendas.
type CriarVendaRequest struct {
	Canal           string              `json:"canal,omitempty"` // pdv (padrão) | online
	Itens           []ItemAvulsoRequest `json:"itens,omitempty"`
	Compostos       []CompostoRequest   `json:"compostos,omitempty"`
	MeioPagamentoID string              `json:"meio_pagamento_id"`
	CriadoPor       string              `json:"criado_por"`
}

// EditarVendaRequest body para PUT /api/vendas/:id/itens. A coleção enviada
// substitui integralmente os itens atuais da venda.
type EditarVendaRequest struct {
	Itens      []ItemAvulsoRequest `json:"itens,omitempty"`
	Compostos  []CompostoRequest   `json:"compostos,omitempty"`
	EditadoPor string              `json:"editado_por"`
}

// CancelarVendaRequest body para POST /api/vendas/:id/cancelar.
type CancelarVendaRequest struct {
	CanceladoPor string `json:"cancelado_por"`
}

// ItemVendaResponse linha da venda na resposta.
type ItemVendaResponse struct {
	ID               string          `json:"id"`
	ProdutoID        string          `json:"produto_id"`
	Quantidade       int64           `json:"quantidade"`
	BaixaPor         string          `json:"baixa_por"`
	Preco            decimal.Decimal `json:"preco"`
	PrecoCusto       decimal.Decimal `json:"preco_custo"`
	ComboInstanceID  *string         `json:"combo_instance_id,omitempty"`
	DoseInstanceID   *string         `json:"dose_instance_id,omitempty"`
	OfertaInstanceID *string         `json:"oferta_instance_id,omitempty"`
}

// VendaResponse resposta com o agregado da venda.
type VendaResponse struct {
	ID              string              `json:"id"`
	Status          string              `json:"status"`
	Canal           string              `json:"canal"`
	Itens           []ItemVendaResponse `json:"itens"`
	Total           decimal.Decimal     `json:"total"`
	MeioPagamentoID string              `json:"meio_pagamento_id"`
	SessaoCaixaID   *string             `json:"sessao_caixa_id,omitempty"`
	CriadoEm        time.Time           `json:"criado_em"`
	AtualizadoEm    time.Time           `json:"atualizado_em"`
	CriadoPor       string              `json:"criado_por,omitempty"`
}

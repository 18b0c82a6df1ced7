package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de estoque (desnormalizado em Produto; recalculado a cada mutação).
const (
	StatusEmEstoque = "IN_STOCK"
	StatusBaixo     = "LOW_STOCK"
	StatusEsgotado  = "OUT_OF_STOCK"
)

// Produto representa um item do catálogo da adega.
//
// Para produtos fracionados (vendidos em doses), VolumeTotal em ml é a fonte
// de verdade e Estoque é derivado: floor(VolumeTotal / VolumeUnitario).
// Para produtos inteiros, Estoque é a única verdade e os campos de volume
// ficam nulos.
type Produto struct {
	ID             string
	Nome           string
	CategoriaID    string
	Preco          decimal.Decimal // preço de venda de catálogo
	PrecoCusto     decimal.Decimal // custo médio ponderado (inicia em 0)
	Estoque        int64           // unidades inteiras; derivado quando Fracionado
	Fracionado     bool
	VolumeUnitario *int64 // ml por unidade inteira (nulo se não fracionado)
	VolumeTotal    *int64 // ml restantes (nulo se não fracionado)
	StatusEstoque  string
	EstoqueMinimo  int64 // existe no cadastro mas o classificador usa limiar fixo
	CriadoEm       time.Time
	AtualizadoEm   time.Time
}

package entity

import "github.com/shopspring/decimal"

// Tipos de composto.
const (
	CompostoCombo  = "combo"
	CompostoDose   = "dose"
	CompostoOferta = "oferta"
)

// Composto é um template de venda com preço fechado (combo, dose ou oferta).
// O template não tem estoque próprio: a expansão sempre passa pelo rateio de
// preço e vira itens de venda contra produtos reais.
type Composto struct {
	ID    string
	Nome  string
	Tipo  string // combo | dose | oferta
	Preco decimal.Decimal
	Itens []ItemComposto
}

// ItemComposto é um constituinte do template. Fixo (ProdutoID + Quantidade)
// ou escolhível (CategoriaID + MaxEscolhas, o cliente monta a seleção).
type ItemComposto struct {
	ID          string
	CompostoID  string
	ProdutoID   *string // fixo
	Quantidade  int64   // unidades, ou ml quando BaixaPor == volume
	CategoriaID *string // escolhível: qualquer produto da categoria
	MaxEscolhas int     // limite de escolhas quando escolhível
	BaixaPor    string  // unidade | volume
}

// Fixo indica se o item referencia um produto concreto.
func (i ItemComposto) Fixo() bool { return i.ProdutoID != nil }

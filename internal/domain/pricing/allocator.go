// Package pricing rateia o preço fechado de um composto (combo, dose ou
// oferta) entre as linhas constituintes, com arredondamento exato ao centavo.
package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Erros de rateio. O caller traduz para InvalidCompositeError com o contexto
// do template.
var (
	ErrSemLinhas = errors.New("rateio sem linhas")
	ErrPesoZero  = errors.New("rateio com peso total zero")
)

// Modos de precificação de uma linha no rateio.
const (
	ModoUnidade = "unidade" // peso = preço de referência * quantidade
	ModoVolume  = "volume"  // peso = preço de referência (independe da quantidade em ml)
)

// AllocationLine é uma linha a receber parte do preço do composto.
type AllocationLine struct {
	PrecoReferencia decimal.Decimal
	Quantidade      int64
	Modo            string
}

// Allocate distribui precoComposto entre as linhas proporcionalmente ao peso
// de cada uma. A última linha absorve o resíduo de arredondamento, garantindo
// que a soma das cobranças seja exatamente o preço do composto.
func Allocate(precoComposto decimal.Decimal, linhas []AllocationLine) ([]decimal.Decimal, error) {
	if len(linhas) == 0 {
		return nil, ErrSemLinhas
	}

	pesos := make([]decimal.Decimal, len(linhas))
	total := decimal.Zero
	for i, l := range linhas {
		p := l.PrecoReferencia
		if l.Modo != ModoVolume {
			p = p.Mul(decimal.NewFromInt(l.Quantidade))
		}
		pesos[i] = p
		total = total.Add(p)
	}
	if total.IsZero() {
		return nil, ErrPesoZero
	}

	cobrancas := make([]decimal.Decimal, len(linhas))
	soma := decimal.Zero
	for i, peso := range pesos {
		c := precoComposto.Mul(peso).Div(total).Round(2)
		cobrancas[i] = c
		soma = soma.Add(c)
	}

	// A última linha absorve o resíduo: soma exata ao centavo.
	last := len(cobrancas) - 1
	cobrancas[last] = cobrancas[last].Add(precoComposto.Sub(soma))
	return cobrancas, nil
}

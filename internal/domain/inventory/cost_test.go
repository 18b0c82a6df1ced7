package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/adegaplus/pdv-api/internal/domain/inventory"
)

// TestAverageCost_MisturaExata valida o vetor clássico do custo médio
// ponderado: 10 unidades a R$5,00 + 10 unidades a R$7,00 = R$6,00 exato.
func TestAverageCost_MisturaExata(t *testing.T) {
	custo := inventory.AverageCost(10, dec("5.00"), 10, dec("7.00"))
	assert.True(t, dec("6.00").Equal(custo), "custo médio deve ser exatamente 6.00, veio %s", custo)
}

// TestAverageCost_PesosDesiguais: 30 unidades a R$2,00 + 10 a R$6,00 =
// (60 + 60) / 40 = R$3,00.
func TestAverageCost_PesosDesiguais(t *testing.T) {
	custo := inventory.AverageCost(30, dec("2.00"), 10, dec("6.00"))
	assert.True(t, dec("3.00").Equal(custo), "custo médio deve ser 3.00, veio %s", custo)
}

// TestAverageCost_EstoqueZero com estoque zero não há mistura: o custo vira o
// da entrada, sem divisão por zero.
func TestAverageCost_EstoqueZero(t *testing.T) {
	custo := inventory.AverageCost(0, dec("4.50"), 25, dec("3.10"))
	assert.True(t, dec("3.10").Equal(custo))
}

// TestAverageCost_EstoqueNegativo estoque negativo (ajuste manual) recebe o
// mesmo tratamento do zero: custo da entrada.
func TestAverageCost_EstoqueNegativo(t *testing.T) {
	custo := inventory.AverageCost(-3, dec("9.99"), 12, dec("5.00"))
	assert.True(t, dec("5.00").Equal(custo))
}

// TestAverageCost_DizimaPeriodica divisões não exatas ficam no decimal, sem
// arredondamento prematuro: 1@1.00 + 2@2.00 = 5/3.
func TestAverageCost_DizimaPeriodica(t *testing.T) {
	custo := inventory.AverageCost(1, dec("1.00"), 2, dec("2.00"))
	esperado := dec("5").Div(dec("3"))
	assert.True(t, esperado.Sub(custo).Abs().LessThan(dec("0.0000001")),
		"custo deve ser 5/3, veio %s", custo)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adegaplus/pdv-api/internal/domain/pricing"
)

// TestAllocate_ProporcaoExata combo de R$30 com referências 20 e 10: o rateio
// sai limpo, sem resíduo.
func TestAllocate_ProporcaoExata(t *testing.T) {
	cobrancas, err := pricing.Allocate(dec("30.00"), []pricing.AllocationLine{
		{PrecoReferencia: dec("20.00"), Quantidade: 1, Modo: pricing.ModoUnidade},
		{PrecoReferencia: dec("10.00"), Quantidade: 1, Modo: pricing.ModoUnidade},
	})
	require.NoError(t, err)
	require.Len(t, cobrancas, 2)
	assert.True(t, dec("20.00").Equal(cobrancas[0]), "veio %s", cobrancas[0])
	assert.True(t, dec("10.00").Equal(cobrancas[1]), "veio %s", cobrancas[1])
}

// TestAllocate_ResiduoNaUltima combo de R$29 com referências 20 e 10:
// 19.3333→19.33, 9.6667→9.67 e a última absorve o resíduo para fechar 29.00.
func TestAllocate_ResiduoNaUltima(t *testing.T) {
	cobrancas, err := pricing.Allocate(dec("29.00"), []pricing.AllocationLine{
		{PrecoReferencia: dec("20.00"), Quantidade: 1, Modo: pricing.ModoUnidade},
		{PrecoReferencia: dec("10.00"), Quantidade: 1, Modo: pricing.ModoUnidade},
	})
	require.NoError(t, err)
	assert.True(t, dec("19.33").Equal(cobrancas[0]), "veio %s", cobrancas[0])
	assert.True(t, dec("9.67").Equal(cobrancas[1]), "veio %s", cobrancas[1])
}

// TestAllocate_SomaSempreExata propriedade central: para qualquer combinação,
// a soma das cobranças é o preço do composto ao centavo.
func TestAllocate_SomaSempreExata(t *testing.T) {
	casos := []struct {
		preco  string
		linhas []pricing.AllocationLine
	}{
		{"10.00", []pricing.AllocationLine{
			{PrecoReferencia: dec("3.33"), Quantidade: 1, Modo: pricing.ModoUnidade},
			{PrecoReferencia: dec("3.33"), Quantidade: 1, Modo: pricing.ModoUnidade},
			{PrecoReferencia: dec("3.33"), Quantidade: 1, Modo: pricing.ModoUnidade},
		}},
		{"99.99", []pricing.AllocationLine{
			{PrecoReferencia: dec("7.77"), Quantidade: 3, Modo: pricing.ModoUnidade},
			{PrecoReferencia: dec("15.50"), Quantidade: 1, Modo: pricing.ModoVolume},
			{PrecoReferencia: dec("1.05"), Quantidade: 7, Modo: pricing.ModoUnidade},
		}},
		{"0.01", []pricing.AllocationLine{
			{PrecoReferencia: dec("5.00"), Quantidade: 1, Modo: pricing.ModoUnidade},
			{PrecoReferencia: dec("5.00"), Quantidade: 1, Modo: pricing.ModoUnidade},
		}},
		{"45.90", []pricing.AllocationLine{
			{PrecoReferencia: dec("12.00"), Quantidade: 2, Modo: pricing.ModoUnidade},
			{PrecoReferencia: dec("30.00"), Quantidade: 50, Modo: pricing.ModoVolume},
		}},
	}
	for _, c := range casos {
		cobrancas, err := pricing.Allocate(dec(c.preco), c.linhas)
		require.NoError(t, err)
		soma := decimal.Zero
		for _, cb := range cobrancas {
			soma = soma.Add(cb)
		}
		assert.True(t, dec(c.preco).Equal(soma),
			"soma deve ser %s, veio %s", c.preco, soma)
	}
}

// TestAllocate_ModoVolumeIgnoraQuantidade no modo volume o peso é o preço de
// referência: 50ml e 500ml da mesma garrafa pesam igual no rateio.
func TestAllocate_ModoVolumeIgnoraQuantidade(t *testing.T) {
	a, err := pricing.Allocate(dec("20.00"), []pricing.AllocationLine{
		{PrecoReferencia: dec("10.00"), Quantidade: 50, Modo: pricing.ModoVolume},
		{PrecoReferencia: dec("10.00"), Quantidade: 1, Modo: pricing.ModoUnidade},
	})
	require.NoError(t, err)

	b, err := pricing.Allocate(dec("20.00"), []pricing.AllocationLine{
		{PrecoReferencia: dec("10.00"), Quantidade: 500, Modo: pricing.ModoVolume},
		{PrecoReferencia: dec("10.00"), Quantidade: 1, Modo: pricing.ModoUnidade},
	})
	require.NoError(t, err)

	assert.True(t, a[0].Equal(b[0]), "peso do modo volume não pode depender dos ml")
	assert.True(t, dec("10.00").Equal(a[0]))
}

// TestAllocate_ModoUnidadeMultiplicaQuantidade no modo unidade o peso é
// preço * quantidade: 2 cervejas pesam o dobro de 1.
func TestAllocate_ModoUnidadeMultiplicaQuantidade(t *testing.T) {
	cobrancas, err := pricing.Allocate(dec("30.00"), []pricing.AllocationLine{
		{PrecoReferencia: dec("5.00"), Quantidade: 2, Modo: pricing.ModoUnidade},
		{PrecoReferencia: dec("5.00"), Quantidade: 4, Modo: pricing.ModoUnidade},
	})
	require.NoError(t, err)
	assert.True(t, dec("10.00").Equal(cobrancas[0]), "veio %s", cobrancas[0])
	assert.True(t, dec("20.00").Equal(cobrancas[1]), "veio %s", cobrancas[1])
}

// TestAllocate_SemLinhas e peso total zero são rejeitados com erros próprios.
func TestAllocate_SemLinhas(t *testing.T) {
	_, err := pricing.Allocate(dec("10.00"), nil)
	assert.ErrorIs(t, err, pricing.ErrSemLinhas)
}

func TestAllocate_PesoZero(t *testing.T) {
	_, err := pricing.Allocate(dec("10.00"), []pricing.AllocationLine{
		{PrecoReferencia: decimal.Zero, Quantidade: 3, Modo: pricing.ModoUnidade},
	})
	assert.ErrorIs(t, err, pricing.ErrPesoZero)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

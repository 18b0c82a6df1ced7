package inventory

import "github.com/shopspring/decimal"

// AverageCost implementa o custo médio ponderado cumulativo (serviço de domínio).
// NovoCusto = ((EstoqueAtual * CustoAtual) + (QtdEntrada * CustoEntrada)) / (EstoqueAtual + QtdEntrada)
//
// Com estoque atual zero (ou negativo por ajuste) não há mistura: o novo custo
// é o custo da entrada. Todas as unidades são fungíveis e compartilham um
// único custo misturado, independente do lote físico de origem.
func AverageCost(estoqueAtual int64, custoAtual decimal.Decimal, qtdEntrada int64, custoEntrada decimal.Decimal) decimal.Decimal {
	if estoqueAtual <= 0 {
		return custoEntrada
	}
	atual := decimal.NewFromInt(estoqueAtual)
	entrada := decimal.NewFromInt(qtdEntrada)
	num := atual.Mul(custoAtual).Add(entrada.Mul(custoEntrada))
	return num.Div(atual.Add(entrada))
}

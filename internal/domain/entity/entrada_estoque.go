package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntradaEstoque registra uma reposição (write-once). Criar uma dispara o
// recálculo do custo médio e um MovimentoEstoque de entrada.
type EntradaEstoque struct {
	ID            string
	ProdutoID     string
	Quantidade    int64 // unidades inteiras
	CustoUnitario decimal.Decimal
	FornecedorID  string
	CriadoEm      time.Time
	CriadoPor     string
}

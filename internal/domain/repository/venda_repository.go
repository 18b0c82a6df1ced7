package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/adegaplus/pdv-api/internal/domain/entity"
)

// VendaRepository porta de persistência de vendas (agregado com itens).
type VendaRepository interface {
	// Create persiste a venda e seus itens.
	Create(v *entity.Venda) error
	GetByID(id string) (*entity.Venda, error)
	// GetForUpdate bloqueia a linha da venda (cancelamento/edição).
	GetForUpdate(id string) (*entity.Venda, error)
	AtualizarStatus(id, status string, atualizadoEm time.Time) error
	// SubstituirItens troca a coleção de itens e o total (edição de venda).
	SubstituirItens(vendaID string, itens []entity.ItemVenda, total decimal.Decimal, atualizadoEm time.Time) error
	ListPorPeriodo(de, ate time.Time) ([]*entity.Venda, error)
	ListPorSessao(sessaoID string) ([]*entity.Venda, error)
	// SomaTotalPorSessao soma o total das vendas COMPLETED da sessão.
	SomaTotalPorSessao(sessaoID string) (decimal.Decimal, error)
}

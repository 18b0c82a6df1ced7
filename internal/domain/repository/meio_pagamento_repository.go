package repository

import "github.com/adegaplus/pdv-api/internal/domain/entity"

// MeioPagamentoRepository porta de consulta de meios de pagamento.
type MeioPagamentoRepository interface {
	GetByID(id string) (*entity.MeioPagamento, error)
}

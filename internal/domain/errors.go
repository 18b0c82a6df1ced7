package domain

import (
	"errors"
	"fmt"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound               = errors.New("recurso não encontrado")
	ErrInvalidInput           = errors.New("entrada inválida")
	ErrDuplicate              = errors.New("recurso duplicado")
	ErrInvalidPaymentMethod   = errors.New("meio de pagamento inválido")
	ErrSaleAlreadyCancelled   = errors.New("venda já cancelada")
	ErrSessionAlreadyOpen     = errors.New("já existe uma sessão de caixa aberta")
	ErrSessionAlreadyClosed   = errors.New("sessão de caixa já fechada")
	ErrConcurrentModification = errors.New("modificação concorrente: tentativas esgotadas")
)

// ProductNotFoundError indica que um produto referenciado não existe.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("produto não encontrado: %s", e.ProductID)
}

// Unwrap permite errors.Is(err, ErrNotFound).
func (e *ProductNotFoundError) Unwrap() error { return ErrNotFound }

// InsufficientStockError indica estoque insuficiente para uma linha, com o
// produto ofensor e o déficit. Requested e Available ficam em unidades para
// produtos inteiros e em ml para baixas por volume.
type InsufficientStockError struct {
	ProductID string
	Requested int64
	Available int64
	ByVolume  bool
}

func (e *InsufficientStockError) Error() string {
	unit := "un"
	if e.ByVolume {
		unit = "ml"
	}
	return fmt.Sprintf("estoque insuficiente para o produto %s: solicitado %d %s, disponível %d %s",
		e.ProductID, e.Requested, unit, e.Available, unit)
}

// InvalidCompositeError indica um combo/dose/oferta mal definido: produto
// constituinte inexistente ou seleção que resulta em peso total zero.
type InvalidCompositeError struct {
	CompositeID string
	Reason      string
}

func (e *InvalidCompositeError) Error() string {
	return fmt.Sprintf("definição de composto inválida (%s): %s", e.CompositeID, e.Reason)
}

package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/adegaplus/pdv-api/internal/application/dto"
	"github.com/adegaplus/pdv-api/internal/domain"
)

// respondErro traduz os erros de domínio para status HTTP. O domínio nunca
// conhece HTTP; a tradução vive só aqui.
func respondErro(c *fiber.Ctx, err error) error {
	var faltaEstoque *domain.InsufficientStockError
	if errors.As(err, &faltaEstoque) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"code":       "INSUFFICIENT_STOCK",
			"message":    faltaEstoque.Error(),
			"produto_id": faltaEstoque.ProductID,
			"solicitado": faltaEstoque.Requested,
			"disponivel": faltaEstoque.Available,
		})
	}

	var compostoInvalido *domain.InvalidCompositeError
	if errors.As(err, &compostoInvalido) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code: "INVALID_COMPOSITE", Message: compostoInvalido.Error(),
		})
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidPaymentMethod):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_PAYMENT_METHOD", Message: err.Error()})
	case errors.Is(err, domain.ErrSaleAlreadyCancelled):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SALE_ALREADY_CANCELLED", Message: err.Error()})
	case errors.Is(err, domain.ErrSessionAlreadyOpen):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SESSION_ALREADY_OPEN", Message: err.Error()})
	case errors.Is(err, domain.ErrSessionAlreadyClosed):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SESSION_ALREADY_CLOSED", Message: err.Error()})
	case errors.Is(err, domain.ErrConcurrentModification):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONCURRENT_MODIFICATION", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/adegaplus/pdv-api/internal/application/dto"
	"github.com/adegaplus/pdv-api/internal/application/inventory"
	"github.com/adegaplus/pdv-api/internal/domain/entity"
)

// EstoqueHandler trata as requisições HTTP de estoque (entradas, baixas
// manuais e consulta do livro-razão).
type EstoqueHandler struct {
	entrada    *inventory.EntradaEstoqueUseCase
	saida      *inventory.SaidaManualUseCase
	movimentos *inventory.ConsultaMovimentosUseCase
}

// NewEstoqueHandler constrói o handler.
func NewEstoqueHandler(
	entrada *inventory.EntradaEstoqueUseCase,
	saida *inventory.SaidaManualUseCase,
	movimentos *inventory.ConsultaMovimentosUseCase,
) *EstoqueHandler {
	return &EstoqueHandler{entrada: entrada, saida: saida, movimentos: movimentos}
}

// RegistrarEntrada POST /api/estoque/entradas
func (h *EstoqueHandler) RegistrarEntrada(c *fiber.Ctx) error {
	var in dto.EntradaEstoqueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}

	entrada, err := h.entrada.Registrar(c.Context(), inventory.EntradaInput{
		ProdutoID:     in.ProdutoID,
		Quantidade:    in.Quantidade,
		CustoUnitario: in.CustoUnitario,
		FornecedorID:  in.FornecedorID,
		CriadoPor:     in.CriadoPor,
	})
	if err != nil {
		return respondErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": entrada.ID, "message": "entrada registrada"})
}

// RegistrarSaidaManual POST /api/estoque/saida-manual
func (h *EstoqueHandler) RegistrarSaidaManual(c *fiber.Ctx) error {
	var in dto.SaidaManualRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}

	err := h.saida.Registrar(c.Context(), inventory.SaidaManualInput{
		ProdutoID:  in.ProdutoID,
		Quantidade: in.Quantidade,
		BaixaPor:   in.BaixaPor,
		Observacao: in.Observacao,
		CriadoPor:  in.CriadoPor,
	})
	if err != nil {
		return respondErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "saída registrada"})
}

// ListarMovimentos GET /api/produtos/:id/movimentos?de=...&ate=...&limit=&offset=
func (h *EstoqueHandler) ListarMovimentos(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parâmetros inválidos"})
	}
	page.DefaultPage()

	de, err := parseData(c.Query("de"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parâmetro 'de' inválido (RFC 3339)"})
	}
	ate, err := parseData(c.Query("ate"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parâmetro 'ate' inválido (RFC 3339)"})
	}

	movs, err := h.movimentos.PorProduto(c.Context(), c.Params("id"), de, ate, page.Limit, page.Offset)
	if err != nil {
		return respondErro(c, err)
	}

	out := make([]dto.MovimentoResponse, len(movs))
	for i, m := range movs {
		out[i] = movimentoResponse(m)
	}
	return c.JSON(fiber.Map{"total": len(out), "movimentos": out})
}

func parseData(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func movimentoResponse(m *entity.MovimentoEstoque) dto.MovimentoResponse {
	return dto.MovimentoResponse{
		ID:            m.ID,
		ProdutoID:     m.ProdutoID,
		Direcao:       m.Direcao,
		Quantidade:    m.Quantidade,
		BaixaPor:      m.BaixaPor,
		CustoUnitario: m.CustoUnitario,
		CustoTotal:    m.CustoTotal,
		Origem:        m.Origem,
		ReferenciaID:  m.ReferenciaID,
		Observacao:    m.Observacao,
		CriadoEm:      m.CriadoEm,
		CriadoPor:     m.CriadoPor,
	}
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/adegaplus/pdv-api/internal/application/caixa"
	"github.com/adegaplus/pdv-api/internal/application/dto"
	"github.com/adegaplus/pdv-api/internal/domain/entity"
)

// CaixaHandler trata as requisições HTTP de sessão de caixa.
type CaixaHandler struct {
	uc *caixa.SessaoCaixaUseCase
}

// NewCaixaHandler constrói o handler.
func NewCaixaHandler(uc *caixa.SessaoCaixaUseCase) *CaixaHandler {
	return &CaixaHandler{uc: uc}
}

// Abrir POST /api/caixa/abrir
func (h *CaixaHandler) Abrir(c *fiber.Ctx) error {
	var in dto.AbrirCaixaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	sessao, err := h.uc.Abrir(c.Context(), in.AbertaPor, in.ValorInicial)
	if err != nil {
		return respondErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sessaoResponse(sessao))
}

// Fechar POST /api/caixa/fechar
func (h *CaixaHandler) Fechar(c *fiber.Ctx) error {
	var in dto.FecharCaixaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	sessao, err := h.uc.Fechar(c.Context(), in.SessaoID, in.FechadaPor, in.ValorFinal)
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(sessaoResponse(sessao))
}

// Relatorio GET /api/caixa/:id/relatorio — PDF de fechamento.
func (h *CaixaHandler) Relatorio(c *fiber.Ctx) error {
	pdf, err := h.uc.Relatorio(c.Context(), c.Params("id"))
	if err != nil {
		return respondErro(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="fechamento-caixa.pdf"`)
	return c.Send(pdf)
}

// VendasHoje GET /api/vendas/hoje — janela da sessão aberta, ou o dia corrente.
func (h *CaixaHandler) VendasHoje(c *fiber.Ctx) error {
	vendas, err := h.uc.VendasHoje(c.Context())
	if err != nil {
		return respondErro(c, err)
	}
	out := make([]dto.VendaResponse, len(vendas))
	for i, v := range vendas {
		out[i] = vendaResponse(v)
	}
	return c.JSON(fiber.Map{"total": len(out), "vendas": out})
}

func sessaoResponse(s *entity.SessaoCaixa) dto.SessaoCaixaResponse {
	return dto.SessaoCaixaResponse{
		ID:           s.ID,
		AbertaEm:     s.AbertaEm,
		AbertaPor:    s.AbertaPor,
		FechadaEm:    s.FechadaEm,
		FechadaPor:   s.FechadaPor,
		ValorInicial: s.ValorInicial,
		ValorFinal:   s.ValorFinal,
		TotalVendas:  s.TotalVendas,
		Ativa:        s.Ativa,
	}
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/adegaplus/pdv-api/internal/application/dto"
	"github.com/adegaplus/pdv-api/internal/application/sales"
	"github.com/adegaplus/pdv-api/internal/domain/entity"
)

// VendasHandler trata as requisições HTTP de vendas.
type VendasHandler struct {
	criar    *sales.CriarVendaUseCase
	cancelar *sales.CancelarVendaUseCase
	editar   *sales.EditarVendaUseCase
	consulta *sales.ConsultaVendasUseCase
}

// NewVendasHandler constrói o handler.
func NewVendasHandler(
	criar *sales.CriarVendaUseCase,
	cancelar *sales.CancelarVendaUseCase,
	editar *sales.EditarVendaUseCase,
	consulta *sales.ConsultaVendasUseCase,
) *VendasHandler {
	return &VendasHandler{criar: criar, cancelar: cancelar, editar: editar, consulta: consulta}
}

// Criar POST /api/vendas
func (h *VendasHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarVendaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}

	venda, err := h.criar.Criar(c.Context(), sales.CriarVendaInput{
		Canal:           in.Canal,
		Itens:           itensAvulsos(in.Itens),
		Compostos:       selecoesCompostos(in.Compostos),
		MeioPagamentoID: in.MeioPagamentoID,
		CriadoPor:       in.CriadoPor,
	})
	if err != nil {
		return respondErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(vendaResponse(venda))
}

// Cancelar POST /api/vendas/:id/cancelar
func (h *VendasHandler) Cancelar(c *fiber.Ctx) error {
	var in dto.CancelarVendaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.cancelar.Cancelar(c.Context(), c.Params("id"), in.CanceladoPor); err != nil {
		return respondErro(c, err)
	}
	return c.JSON(fiber.Map{"message": "venda cancelada"})
}

// Editar PUT /api/vendas/:id/itens
func (h *VendasHandler) Editar(c *fiber.Ctx) error {
	var in dto.EditarVendaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}

	venda, err := h.editar.Editar(c.Context(), sales.EditarVendaInput{
		VendaID:    c.Params("id"),
		Itens:      itensAvulsos(in.Itens),
		Compostos:  selecoesCompostos(in.Compostos),
		EditadoPor: in.EditadoPor,
	})
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(vendaResponse(venda))
}

// GetByID GET /api/vendas/:id
func (h *VendasHandler) GetByID(c *fiber.Ctx) error {
	venda, err := h.consulta.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(vendaResponse(venda))
}

func itensAvulsos(in []dto.ItemAvulsoRequest) []sales.ItemAvulsoInput {
	out := make([]sales.ItemAvulsoInput, len(in))
	for i, it := range in {
		out[i] = sales.ItemAvulsoInput{ProdutoID: it.ProdutoID, Quantidade: it.Quantidade, BaixaPor: it.BaixaPor}
	}
	return out
}

func selecoesCompostos(in []dto.CompostoRequest) []sales.SelecaoComposto {
	out := make([]sales.SelecaoComposto, len(in))
	for i, sel := range in {
		escolhas := make([]sales.EscolhaProduto, len(sel.Escolhas))
		for j, e := range sel.Escolhas {
			escolhas[j] = sales.EscolhaProduto{ProdutoID: e.ProdutoID, Quantidade: e.Quantidade}
		}
		out[i] = sales.SelecaoComposto{CompostoID: sel.CompostoID, Escolhas: escolhas}
	}
	return out
}

func vendaResponse(v *entity.Venda) dto.VendaResponse {
	itens := make([]dto.ItemVendaResponse, len(v.Itens))
	for i, it := range v.Itens {
		itens[i] = dto.ItemVendaResponse{
			ID:               it.ID,
			ProdutoID:        it.ProdutoID,
			Quantidade:       it.Quantidade,
			BaixaPor:         it.BaixaPor,
			Preco:            it.Preco,
			PrecoCusto:       it.PrecoCusto,
			ComboInstanceID:  it.ComboInstanceID,
			DoseInstanceID:   it.DoseInstanceID,
			OfertaInstanceID: it.OfertaInstanceID,
		}
	}
	return dto.VendaResponse{
		ID:              v.ID,
		Status:          v.Status,
		Canal:           v.Canal,
		Itens:           itens,
		Total:           v.Total,
		MeioPagamentoID: v.MeioPagamentoID,
		SessaoCaixaID:   v.SessaoCaixaID,
		CriadoEm:        v.CriadoEm,
		AtualizadoEm:    v.AtualizadoEm,
		CriadoPor:       v.CriadoPor,
	}
}

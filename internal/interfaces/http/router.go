package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/adegaplus/pdv-api/internal/application/caixa"
	"github.com/adegaplus/pdv-api/internal/application/inventory"
	"github.com/adegaplus/pdv-api/internal/application/sales"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	CriarVenda    *sales.CriarVendaUseCase
	CancelarVenda *sales.CancelarVendaUseCase
	EditarVenda   *sales.EditarVendaUseCase
	ConsultaVenda *sales.ConsultaVendasUseCase
	Entrada       *inventory.EntradaEstoqueUseCase
	SaidaManual   *inventory.SaidaManualUseCase
	Movimentos    *inventory.ConsultaMovimentosUseCase
	Caixa         *caixa.SessaoCaixaUseCase
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Vendas
	vendas := api.Group("/vendas")
	vendasHandler := NewVendasHandler(deps.CriarVenda, deps.CancelarVenda, deps.EditarVenda, deps.ConsultaVenda)
	caixaHandler := NewCaixaHandler(deps.Caixa)
	vendas.Post("/", vendasHandler.Criar)
	vendas.Get("/hoje", caixaHandler.VendasHoje) // antes de /:id para não colidir
	vendas.Get("/:id", vendasHandler.GetByID)
	vendas.Post("/:id/cancelar", vendasHandler.Cancelar)
	vendas.Put("/:id/itens", vendasHandler.Editar)

	// Estoque
	estoque := api.Group("/estoque")
	estoqueHandler := NewEstoqueHandler(deps.Entrada, deps.SaidaManual, deps.Movimentos)
	estoque.Post("/entradas", estoqueHandler.RegistrarEntrada)
	estoque.Post("/saida-manual", estoqueHandler.RegistrarSaidaManual)

	// Livro-razão por produto
	api.Get("/produtos/:id/movimentos", estoqueHandler.ListarMovimentos)

	// Caixa
	cx := api.Group("/caixa")
	cx.Post("/abrir", caixaHandler.Abrir)
	cx.Post("/fechar", caixaHandler.Fechar)
	cx.Get("/:id/relatorio", caixaHandler.Relatorio)
}

package ports

import "context"

// Eventos de domínio emitidos após commit. A entrega (sockets, push) é de um
// colaborador externo; aqui só publicamos.
const (
	EventoVendaCriada       = "venda.criada"
	EventoVendaEditada      = "venda.editada"
	EventoVendaCancelada    = "venda.cancelada"
	EventoEstoqueAtualizado = "estoque.atualizado"
)

// Notificador publica eventos de domínio. Implementações não devem falhar a
// operação já commitada: erro de publicação é logado, não propagado.
type Notificador interface {
	Publicar(ctx context.Context, evento string, payload any)
}

// NotificadorNulo descarta eventos (dev sem Redis, testes).
type NotificadorNulo struct{}

func (NotificadorNulo) Publicar(context.Context, string, any) {}

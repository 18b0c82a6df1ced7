package sales

import (
	"context"
	"time"

	appinv "github.com/adegaplus/pdv-api/internal/application/inventory"
	"github.com/adegaplus/pdv-api/internal/application/ports"
	"github.com/adegaplus/pdv-api/internal/domain"
	"github.com/adegaplus/pdv-api/internal/domain/entity"
	"github.com/adegaplus/pdv-api/internal/domain/repository"
)

// CancelarVendaUseCase cancela uma venda COMPLETED: devolve o estoque de cada
// linha (inverso exato da baixa original), grava movimentos compensatórios
// com origem `cancelamento_venda` e vira o status para CANCELLED. Tudo em uma
// transação; cancelar de novo é rejeitado.
type CancelarVendaUseCase struct {
	txRunner    TxRunner
	notificador ports.Notificador
}

// NewCancelarVendaUseCase constrói o caso de uso.
func NewCancelarVendaUseCase(txRunner TxRunner, notificador ports.Notificador) *CancelarVendaUseCase {
	return &CancelarVendaUseCase{txRunner: txRunner, notificador: notificador}
}

// Cancelar executa o cancelamento.
func (uc *CancelarVendaUseCase) Cancelar(ctx context.Context, vendaID, canceladoPor string) error {
	if vendaID == "" {
		return domain.ErrInvalidInput
	}

	now := time.Now()
	err := uc.txRunner.RunVenda(ctx, func(
		produtoRepo repository.ProdutoRepository,
		movRepo repository.MovimentoEstoqueRepository,
		vendaRepo repository.VendaRepository,
		_ repository.SessaoCaixaRepository,
	) error {
		venda, err := vendaRepo.GetForUpdate(vendaID)
		if err != nil {
			return err
		}
		if venda == nil {
			return domain.ErrNotFound
		}
		if venda.Status != entity.VendaConcluida {
			return domain.ErrSaleAlreadyCancelled
		}

		linhas := make([]appinv.LinhaMutacao, len(venda.Itens))
		for i, it := range venda.Itens {
			linhas[i] = appinv.LinhaMutacao{ProdutoID: it.ProdutoID, Quantidade: it.Quantidade, BaixaPor: it.BaixaPor}
		}
		if _, err := appinv.VerificarEAplicar(
			produtoRepo, movRepo, linhas,
			entity.MovimentoEntrada, entity.OrigemCancelamentoVenda,
			"", vendaID, canceladoPor, now,
		); err != nil {
			return err
		}

		return vendaRepo.AtualizarStatus(vendaID, entity.VendaCancelada, now)
	})
	if err != nil {
		return err
	}

	uc.notificador.Publicar(ctx, ports.EventoVendaCancelada, map[string]any{
		"venda_id": vendaID,
	})
	return nil
}

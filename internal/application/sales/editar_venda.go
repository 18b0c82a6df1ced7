package sales

import (
	"context"
	"time"

	"github.com/google/uuid"

	appinv "github.com/adegaplus/pdv-api/internal/application/inventory"
	"github.com/adegaplus/pdv-api/internal/application/ports"
	"github.com/adegaplus/pdv-api/internal/domain"
	"github.com/adegaplus/pdv-api/internal/domain/entity"
	"github.com/adegaplus/pdv-api/internal/domain/repository"
)

// EditarVendaUseCase substitui os itens de uma venda existente como se ela
// fosse desfeita e refeita — mas atomicamente, numa única transação:
//
//  1. devolve o estoque de todas as linhas originais;
//  2. verifica as linhas novas contra o estoque já restaurado;
//  3. reprovou: a transação inteira reverte e nada muda;
//  4. aprovou: baixa as linhas novas, troca a coleção de itens e o total.
//
// Dividir o estorno e a reaplicação em commits separados é exatamente o
// defeito que este caso de uso existe para impedir.
type EditarVendaUseCase struct {
	txRunner     TxRunner
	produtoRepo  repository.ProdutoRepository
	compostoRepo repository.CompostoRepository
	notificador  ports.Notificador
}

// NewEditarVendaUseCase constrói o caso de uso.
func NewEditarVendaUseCase(
	txRunner TxRunner,
	produtoRepo repository.ProdutoRepository,
	compostoRepo repository.CompostoRepository,
	notificador ports.Notificador,
) *EditarVendaUseCase {
	return &EditarVendaUseCase{
		txRunner:     txRunner,
		produtoRepo:  produtoRepo,
		compostoRepo: compostoRepo,
		notificador:  notificador,
	}
}

// EditarVendaInput entrada para substituir os itens de uma venda.
type EditarVendaInput struct {
	VendaID    string
	Itens      []ItemAvulsoInput
	Compostos  []SelecaoComposto
	EditadoPor string
}

// Editar executa a edição.
func (uc *EditarVendaUseCase) Editar(ctx context.Context, in EditarVendaInput) (*entity.Venda, error) {
	if in.VendaID == "" {
		return nil, domain.ErrInvalidInput
	}

	// Montagem das linhas novas fora da transação (leitura + rateio puros).
	novosItens, err := montarItens(uc.produtoRepo, uc.compostoRepo, in.Itens, in.Compostos)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var venda *entity.Venda

	err = uc.txRunner.RunVenda(ctx, func(
		produtoRepo repository.ProdutoRepository,
		movRepo repository.MovimentoEstoqueRepository,
		vendaRepo repository.VendaRepository,
		_ repository.SessaoCaixaRepository,
	) error {
		v, err := vendaRepo.GetForUpdate(in.VendaID)
		if err != nil {
			return err
		}
		if v == nil {
			return domain.ErrNotFound
		}
		if v.Status != entity.VendaConcluida {
			return domain.ErrSaleAlreadyCancelled
		}

		// 1) Restaura o estoque das linhas originais. A venda continua
		// COMPLETED; só o conteúdo muda.
		originais := make([]appinv.LinhaMutacao, len(v.Itens))
		for i, it := range v.Itens {
			originais[i] = appinv.LinhaMutacao{ProdutoID: it.ProdutoID, Quantidade: it.Quantidade, BaixaPor: it.BaixaPor}
		}
		if _, err := appinv.VerificarEAplicar(
			produtoRepo, movRepo, originais,
			entity.MovimentoEntrada, entity.OrigemEdicaoVenda,
			"estorno de edição", in.VendaID, in.EditadoPor, now,
		); err != nil {
			return err
		}

		// 2+4) Verifica as linhas novas contra o estoque restaurado e baixa.
		// Reprovação aqui reverte também o estorno acima: mesma transação.
		novas := make([]appinv.LinhaMutacao, len(novosItens))
		for i, it := range novosItens {
			novas[i] = appinv.LinhaMutacao{ProdutoID: it.ProdutoID, Quantidade: it.Quantidade, BaixaPor: it.BaixaPor}
		}
		produtos, err := appinv.VerificarEAplicar(
			produtoRepo, movRepo, novas,
			entity.MovimentoSaida, entity.OrigemEdicaoVenda,
			"", in.VendaID, in.EditadoPor, now,
		)
		if err != nil {
			return err
		}

		for i := range novosItens {
			novosItens[i].ID = uuid.New().String()
			novosItens[i].VendaID = in.VendaID
			novosItens[i].PrecoCusto = produtos[novosItens[i].ProdutoID].PrecoCusto
		}

		total := somaTotal(novosItens)
		if err := vendaRepo.SubstituirItens(in.VendaID, novosItens, total, now); err != nil {
			return err
		}

		v.Itens = novosItens
		v.Total = total
		v.AtualizadoEm = now
		venda = v
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.notificador.Publicar(ctx, ports.EventoVendaEditada, map[string]any{
		"venda_id": venda.ID,
		"total":    venda.Total,
	})
	return venda, nil
}

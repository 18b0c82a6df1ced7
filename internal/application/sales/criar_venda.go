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

// CriarVendaUseCase cria uma venda: expande compostos, verifica e baixa o
// estoque de todas as linhas e persiste o agregado numa única transação.
// Qualquer linha reprovada reverte tudo: nenhuma venda parcial existe.
type CriarVendaUseCase struct {
	txRunner          TxRunner
	produtoRepo       repository.ProdutoRepository
	compostoRepo      repository.CompostoRepository
	meioPagamentoRepo repository.MeioPagamentoRepository
	notificador       ports.Notificador
}

// NewCriarVendaUseCase constrói o caso de uso. Os repositórios soltos são de
// leitura (atados ao pool); as escritas passam pelo TxRunner.
func NewCriarVendaUseCase(
	txRunner TxRunner,
	produtoRepo repository.ProdutoRepository,
	compostoRepo repository.CompostoRepository,
	meioPagamentoRepo repository.MeioPagamentoRepository,
	notificador ports.Notificador,
) *CriarVendaUseCase {
	return &CriarVendaUseCase{
		txRunner:          txRunner,
		produtoRepo:       produtoRepo,
		compostoRepo:      compostoRepo,
		meioPagamentoRepo: meioPagamentoRepo,
		notificador:       notificador,
	}
}

// CriarVendaInput entrada para criar uma venda.
type CriarVendaInput struct {
	Canal           string // pdv | online
	Itens           []ItemAvulsoInput
	Compostos       []SelecaoComposto
	MeioPagamentoID string
	CriadoPor       string
}

// Criar valida o meio de pagamento, monta as linhas (com rateio de compostos)
// e executa baixa de estoque + persistência da venda em uma transação.
func (uc *CriarVendaUseCase) Criar(ctx context.Context, in CriarVendaInput) (*entity.Venda, error) {
	mp, err := uc.meioPagamentoRepo.GetByID(in.MeioPagamentoID)
	if err != nil {
		return nil, err
	}
	if mp == nil || !mp.Ativo {
		return nil, domain.ErrInvalidPaymentMethod
	}

	canal := in.Canal
	if canal == "" {
		canal = entity.CanalPDV
	}
	origem := entity.OrigemVendaPDV
	if canal == entity.CanalOnline {
		origem = entity.OrigemVendaOnline
	}

	// Montagem fora da transação: só leitura de catálogo e aritmética pura.
	itens, err := montarItens(uc.produtoRepo, uc.compostoRepo, in.Itens, in.Compostos)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	venda := &entity.Venda{
		ID:              uuid.New().String(),
		Status:          entity.VendaConcluida,
		Canal:           canal,
		Total:           somaTotal(itens),
		MeioPagamentoID: in.MeioPagamentoID,
		CriadoEm:        now,
		AtualizadoEm:    now,
		CriadoPor:       in.CriadoPor,
	}

	err = uc.txRunner.RunVenda(ctx, func(
		produtoRepo repository.ProdutoRepository,
		movRepo repository.MovimentoEstoqueRepository,
		vendaRepo repository.VendaRepository,
		sessaoRepo repository.SessaoCaixaRepository,
	) error {
		linhas := make([]appinv.LinhaMutacao, len(itens))
		for i, it := range itens {
			linhas[i] = appinv.LinhaMutacao{ProdutoID: it.ProdutoID, Quantidade: it.Quantidade, BaixaPor: it.BaixaPor}
		}
		produtos, err := appinv.VerificarEAplicar(
			produtoRepo, movRepo, linhas,
			entity.MovimentoSaida, origem, "", venda.ID, in.CriadoPor, now,
		)
		if err != nil {
			return err
		}

		// Snapshot de custo congelado na venda, lido das linhas bloqueadas.
		// Nunca recalculado depois: é a verdade histórica para relatórios.
		for i := range itens {
			itens[i].ID = uuid.New().String()
			itens[i].VendaID = venda.ID
			itens[i].PrecoCusto = produtos[itens[i].ProdutoID].PrecoCusto
		}
		venda.Itens = itens

		// Venda criada com sessão de caixa aberta fica marcada com ela.
		sessao, err := sessaoRepo.ObterAtiva()
		if err != nil {
			return err
		}
		if sessao != nil {
			venda.SessaoCaixaID = &sessao.ID
		}

		return vendaRepo.Create(venda)
	})
	if err != nil {
		return nil, err
	}

	uc.notificador.Publicar(ctx, ports.EventoVendaCriada, map[string]any{
		"venda_id": venda.ID,
		"total":    venda.Total,
		"canal":    venda.Canal,
	})
	return venda, nil
}

package caixa

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/adegaplus/pdv-api/internal/domain"
	"github.com/adegaplus/pdv-api/internal/domain/entity"
	"github.com/adegaplus/pdv-api/internal/domain/repository"
)

// SessaoCaixaUseCase abre e fecha sessões de caixa e responde as consultas
// que dependem da janela da sessão. No máximo uma sessão aberta no sistema.
type SessaoCaixaUseCase struct {
	txRunner   TxRunner
	sessaoRepo repository.SessaoCaixaRepository
	vendaRepo  repository.VendaRepository
	relatorio  GeradorRelatorio
}

// NewSessaoCaixaUseCase constrói o caso de uso. Os repositórios soltos são de
// leitura; abertura e fechamento passam pelo TxRunner.
func NewSessaoCaixaUseCase(
	txRunner TxRunner,
	sessaoRepo repository.SessaoCaixaRepository,
	vendaRepo repository.VendaRepository,
	relatorio GeradorRelatorio,
) *SessaoCaixaUseCase {
	return &SessaoCaixaUseCase{
		txRunner:   txRunner,
		sessaoRepo: sessaoRepo,
		vendaRepo:  vendaRepo,
		relatorio:  relatorio,
	}
}

// Abrir abre uma sessão. Abrir com outra já aberta é rejeitado.
func (uc *SessaoCaixaUseCase) Abrir(ctx context.Context, abertaPor string, valorInicial decimal.Decimal) (*entity.SessaoCaixa, error) {
	if abertaPor == "" || valorInicial.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	sessao := &entity.SessaoCaixa{
		ID:           uuid.New().String(),
		AbertaEm:     time.Now(),
		AbertaPor:    abertaPor,
		ValorInicial: valorInicial,
		TotalVendas:  decimal.Zero,
		Ativa:        true,
	}

	err := uc.txRunner.RunCaixa(ctx, func(
		sessaoRepo repository.SessaoCaixaRepository,
		_ repository.VendaRepository,
	) error {
		ativa, err := sessaoRepo.ObterAtiva()
		if err != nil {
			return err
		}
		if ativa != nil {
			return domain.ErrSessionAlreadyOpen
		}
		return sessaoRepo.Create(sessao)
	})
	if err != nil {
		return nil, err
	}
	return sessao, nil
}

// Fechar fecha a sessão: congela totalVendas (soma das vendas COMPLETED da
// sessão) e grava fechamento. Sessão fechada nunca reabre.
func (uc *SessaoCaixaUseCase) Fechar(ctx context.Context, sessaoID, fechadaPor string, valorFinal decimal.Decimal) (*entity.SessaoCaixa, error) {
	if sessaoID == "" || fechadaPor == "" {
		return nil, domain.ErrInvalidInput
	}

	var sessao *entity.SessaoCaixa
	err := uc.txRunner.RunCaixa(ctx, func(
		sessaoRepo repository.SessaoCaixaRepository,
		vendaRepo repository.VendaRepository,
	) error {
		s, err := sessaoRepo.GetByID(sessaoID)
		if err != nil {
			return err
		}
		if s == nil {
			return domain.ErrNotFound
		}
		if !s.Ativa {
			return domain.ErrSessionAlreadyClosed
		}

		total, err := vendaRepo.SomaTotalPorSessao(s.ID)
		if err != nil {
			return err
		}

		now := time.Now()
		s.FechadaEm = &now
		s.FechadaPor = &fechadaPor
		s.ValorFinal = &valorFinal
		s.TotalVendas = total
		s.Ativa = false
		if err := sessaoRepo.Fechar(s); err != nil {
			return err
		}
		sessao = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sessao, nil
}

// VendasHoje lista as vendas "de hoje": com sessão aberta, a janela é da
// abertura até agora; sem sessão, o dia corrente. Afeta relatório, não
// inventário — mas consome o mesmo agregado de venda.
func (uc *SessaoCaixaUseCase) VendasHoje(_ context.Context) ([]*entity.Venda, error) {
	now := time.Now()
	ativa, err := uc.sessaoRepo.ObterAtiva()
	if err != nil {
		return nil, err
	}
	de := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if ativa != nil {
		de = ativa.AbertaEm
	}
	return uc.vendaRepo.ListPorPeriodo(de, now)
}

// Relatorio gera o PDF de fechamento da sessão. Para sessão ainda aberta o
// total é calculado na hora; fechada, usa o snapshot.
func (uc *SessaoCaixaUseCase) Relatorio(_ context.Context, sessaoID string) ([]byte, error) {
	s, err := uc.sessaoRepo.GetByID(sessaoID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if s.Ativa {
		total, err := uc.vendaRepo.SomaTotalPorSessao(s.ID)
		if err != nil {
			return nil, err
		}
		s.TotalVendas = total
	}
	vendas, err := uc.vendaRepo.ListPorSessao(s.ID)
	if err != nil {
		return nil, err
	}
	return uc.relatorio.Gerar(s, vendas)
}

package caixa

import (
	"context"

	"github.com/adegaplus/pdv-api/internal/domain/entity"
	"github.com/adegaplus/pdv-api/internal/domain/repository"
)

// TxRunner executa abertura/fechamento de sessão em transação: o guard de
// sessão única e o snapshot de totais precisam ser atômicos.
type TxRunner interface {
	RunCaixa(ctx context.Context, fn func(
		sessaoRepo repository.SessaoCaixaRepository,
		vendaRepo repository.VendaRepository,
	) error) error
}

// GeradorRelatorio gera o relatório de fechamento de uma sessão (PDF).
type GeradorRelatorio interface {
	Gerar(sessao *entity.SessaoCaixa, vendas []*entity.Venda) ([]byte, error)
}

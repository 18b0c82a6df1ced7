package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/adegaplus/pdv-api/internal/application/ports"
	"github.com/adegaplus/pdv-api/internal/domain"
	"github.com/adegaplus/pdv-api/internal/domain/entity"
	"github.com/adegaplus/pdv-api/internal/domain/repository"
)

// SaidaManualUseCase registra baixas manuais (quebra, perda, consumo interno)
// pelo mesmo motor de mutação das vendas, com origem `manual`.
type SaidaManualUseCase struct {
	txRunner    TxRunner
	notificador ports.Notificador
}

// NewSaidaManualUseCase constrói o caso de uso.
func NewSaidaManualUseCase(txRunner TxRunner, notificador ports.Notificador) *SaidaManualUseCase {
	return &SaidaManualUseCase{txRunner: txRunner, notificador: notificador}
}

// SaidaManualInput entrada para uma baixa manual.
type SaidaManualInput struct {
	ProdutoID  string
	Quantidade int64
	BaixaPor   string // unidade | volume
	Observacao string
	CriadoPor  string
}

// Registrar aplica a baixa dentro de uma transação.
func (uc *SaidaManualUseCase) Registrar(ctx context.Context, in SaidaManualInput) error {
	if in.ProdutoID == "" || in.Quantidade <= 0 {
		return domain.ErrInvalidInput
	}
	switch in.BaixaPor {
	case "":
		in.BaixaPor = entity.BaixaPorUnidade
	case entity.BaixaPorUnidade, entity.BaixaPorVolume:
	default:
		return domain.ErrInvalidInput
	}

	referencia := uuid.New().String()
	err := uc.txRunner.Run(ctx, func(
		produtoRepo repository.ProdutoRepository,
		movRepo repository.MovimentoEstoqueRepository,
		_ repository.EntradaEstoqueRepository,
	) error {
		_, err := VerificarEAplicar(
			produtoRepo, movRepo,
			[]LinhaMutacao{{ProdutoID: in.ProdutoID, Quantidade: in.Quantidade, BaixaPor: in.BaixaPor}},
			entity.MovimentoSaida, entity.OrigemManual,
			in.Observacao, referencia, in.CriadoPor, time.Now(),
		)
		return err
	})
	if err != nil {
		return err
	}

	uc.notificador.Publicar(ctx, ports.EventoEstoqueAtualizado, map[string]any{
		"produto_id": in.ProdutoID,
	})
	return nil
}

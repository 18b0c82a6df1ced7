package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/adegaplus/pdv-api/internal/application/ports"
	"github.com/adegaplus/pdv-api/internal/domain"
	"github.com/adegaplus/pdv-api/internal/domain/entity"
	domaininv "github.com/adegaplus/pdv-api/internal/domain/inventory"
	"github.com/adegaplus/pdv-api/internal/domain/repository"
)

// EntradaEstoqueUseCase registra reposições: recalcula o custo médio
// ponderado, soma o estoque e grava entrada + movimento na mesma transação.
type EntradaEstoqueUseCase struct {
	txRunner    TxRunner
	notificador ports.Notificador
}

// NewEntradaEstoqueUseCase constrói o caso de uso.
func NewEntradaEstoqueUseCase(txRunner TxRunner, notificador ports.Notificador) *EntradaEstoqueUseCase {
	return &EntradaEstoqueUseCase{txRunner: txRunner, notificador: notificador}
}

// EntradaInput entrada para registrar uma reposição.
type EntradaInput struct {
	ProdutoID     string
	Quantidade    int64 // unidades inteiras
	CustoUnitario decimal.Decimal
	FornecedorID  string
	CriadoPor     string
}

// Registrar valida, bloqueia a linha do produto, aplica o custo médio e o
// incremento de estoque e grava EntradaEstoque + MovimentoEstoque de entrada.
func (uc *EntradaEstoqueUseCase) Registrar(ctx context.Context, in EntradaInput) (*entity.EntradaEstoque, error) {
	if in.ProdutoID == "" || in.Quantidade <= 0 || in.CustoUnitario.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	entrada := &entity.EntradaEstoque{
		ID:            uuid.New().String(),
		ProdutoID:     in.ProdutoID,
		Quantidade:    in.Quantidade,
		CustoUnitario: in.CustoUnitario,
		FornecedorID:  in.FornecedorID,
		CriadoEm:      now,
		CriadoPor:     in.CriadoPor,
	}

	err := uc.txRunner.Run(ctx, func(
		produtoRepo repository.ProdutoRepository,
		movRepo repository.MovimentoEstoqueRepository,
		entradaRepo repository.EntradaEstoqueRepository,
	) error {
		p, err := produtoRepo.GetForUpdate(in.ProdutoID)
		if err != nil {
			return err
		}
		if p == nil {
			return &domain.ProductNotFoundError{ProductID: in.ProdutoID}
		}

		// Custo médio ponderado antes de mexer no estoque (a fórmula usa o
		// estoque atual).
		novoCusto := domaininv.AverageCost(p.Estoque, p.PrecoCusto, in.Quantidade, in.CustoUnitario)
		if err := produtoRepo.AtualizarCusto(p.ID, novoCusto); err != nil {
			return err
		}
		p.PrecoCusto = novoCusto

		if p.Fracionado {
			if p.VolumeUnitario == nil || *p.VolumeUnitario <= 0 {
				return domain.ErrInvalidInput
			}
			atual := int64(0)
			if p.VolumeTotal != nil {
				atual = *p.VolumeTotal
			}
			novo := atual + in.Quantidade*(*p.VolumeUnitario)
			p.VolumeTotal = &novo
			p.Estoque = domaininv.DerivedStock(novo, *p.VolumeUnitario)
		} else {
			p.Estoque += in.Quantidade
		}
		p.StatusEstoque = domaininv.ClassifyStatus(p.Estoque, p.Fracionado, p.VolumeTotal)
		p.AtualizadoEm = now
		if err := produtoRepo.AtualizarEstoque(p); err != nil {
			return err
		}

		mov := &entity.MovimentoEstoque{
			ID:            uuid.New().String(),
			ProdutoID:     p.ID,
			Direcao:       entity.MovimentoEntrada,
			Quantidade:    in.Quantidade,
			BaixaPor:      entity.BaixaPorUnidade,
			CustoUnitario: in.CustoUnitario,
			CustoTotal:    in.CustoUnitario.Mul(decimal.NewFromInt(in.Quantidade)),
			Origem:        entity.OrigemEntradaEstoque,
			ReferenciaID:  entrada.ID,
			CriadoEm:      now,
			CriadoPor:     in.CriadoPor,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}

		return entradaRepo.Create(entrada)
	})
	if err != nil {
		return nil, err
	}

	uc.notificador.Publicar(ctx, ports.EventoEstoqueAtualizado, map[string]any{
		"produto_id": in.ProdutoID,
		"entrada_id": entrada.ID,
	})
	return entrada, nil
}

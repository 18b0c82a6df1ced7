package inventory

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/adegaplus/pdv-api/internal/domain"
	"github.com/adegaplus/pdv-api/internal/domain/entity"
	domaininv "github.com/adegaplus/pdv-api/internal/domain/inventory"
	"github.com/adegaplus/pdv-api/internal/domain/repository"
)

// LinhaMutacao é uma linha de mutação de estoque. Quantidade em unidades
// inteiras, ou em ml quando BaixaPor == volume (doses, frações).
type LinhaMutacao struct {
	ProdutoID  string
	Quantidade int64
	BaixaPor   string
}

// VerificarEAplicar é o motor de mutação de estoque. Deve rodar dentro de uma
// transação (repositórios atados à tx): bloqueia as linhas dos produtos
// tocados (SELECT FOR UPDATE), verifica TODAS as linhas sem escrever nada e,
// só com todas aprovadas, aplica as mutações, recalcula estoque derivado e
// status e grava um MovimentoEstoque por linha.
//
// Qualquer erro no meio do lote faz a transação inteira reverter: nunca há
// aplicação parcial. Devolve os produtos bloqueados (com estado pós-mutação)
// para o caller congelar snapshots de custo na mesma transação.
func VerificarEAplicar(
	produtoRepo repository.ProdutoRepository,
	movRepo repository.MovimentoEstoqueRepository,
	linhas []LinhaMutacao,
	direcao string,
	origem string,
	observacao string,
	referenciaID string,
	criadoPor string,
	now time.Time,
) (map[string]*entity.Produto, error) {
	if len(linhas) == 0 {
		return nil, domain.ErrInvalidInput
	}

	// Bloqueio em ordem de ID: duas vendas concorrentes com os mesmos
	// produtos nunca se travam em deadlock.
	ids := make([]string, 0, len(linhas))
	seen := make(map[string]bool, len(linhas))
	for _, l := range linhas {
		if l.Quantidade <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if l.BaixaPor != entity.BaixaPorUnidade && l.BaixaPor != entity.BaixaPorVolume {
			return nil, domain.ErrInvalidInput
		}
		if !seen[l.ProdutoID] {
			seen[l.ProdutoID] = true
			ids = append(ids, l.ProdutoID)
		}
	}
	sort.Strings(ids)

	produtos := make(map[string]*entity.Produto, len(ids))
	for _, id := range ids {
		p, err := produtoRepo.GetForUpdate(id)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, &domain.ProductNotFoundError{ProductID: id}
		}
		produtos[id] = p
	}

	// Fase de verificação: calcula o estado pós-mutação em memória, linha a
	// linha, sem nenhuma escrita. Linhas repetidas do mesmo produto acumulam.
	for _, l := range linhas {
		p := produtos[l.ProdutoID]
		if p.Fracionado {
			if p.VolumeUnitario == nil || *p.VolumeUnitario <= 0 {
				return nil, domain.ErrInvalidInput
			}
			necessarioMl := l.Quantidade
			if l.BaixaPor != entity.BaixaPorVolume {
				necessarioMl = l.Quantidade * (*p.VolumeUnitario)
			}
			atual := int64(0)
			if p.VolumeTotal != nil {
				atual = *p.VolumeTotal
			}
			novo := atual + necessarioMl
			if direcao == entity.MovimentoSaida {
				novo = atual - necessarioMl
				if novo < 0 {
					return nil, &domain.InsufficientStockError{
						ProductID: p.ID,
						Requested: necessarioMl,
						Available: atual,
						ByVolume:  true,
					}
				}
			}
			p.VolumeTotal = &novo
			continue
		}

		novo := p.Estoque + l.Quantidade
		if direcao == entity.MovimentoSaida {
			novo = p.Estoque - l.Quantidade
			if novo < 0 {
				return nil, &domain.InsufficientStockError{
					ProductID: p.ID,
					Requested: l.Quantidade,
					Available: p.Estoque,
				}
			}
		}
		p.Estoque = novo
	}

	// Fase de aplicação: estoque derivado, status recalculado (nunca
	// remendado incrementalmente) e persistência.
	for _, id := range ids {
		p := produtos[id]
		if p.Fracionado {
			p.Estoque = domaininv.DerivedStock(valor(p.VolumeTotal), valor(p.VolumeUnitario))
		}
		p.StatusEstoque = domaininv.ClassifyStatus(p.Estoque, p.Fracionado, p.VolumeTotal)
		p.AtualizadoEm = now
		if err := produtoRepo.AtualizarEstoque(p); err != nil {
			return nil, err
		}
	}

	// Um movimento imutável por linha, com snapshot do custo médio.
	for _, l := range linhas {
		p := produtos[l.ProdutoID]
		mov := &entity.MovimentoEstoque{
			ID:            uuid.New().String(),
			ProdutoID:     l.ProdutoID,
			Direcao:       direcao,
			Quantidade:    l.Quantidade,
			BaixaPor:      l.BaixaPor,
			CustoUnitario: p.PrecoCusto,
			CustoTotal:    custoDaLinha(p, l),
			Origem:        origem,
			ReferenciaID:  referenciaID,
			Observacao:    observacao,
			CriadoEm:      now,
			CriadoPor:     criadoPor,
		}
		if err := movRepo.Create(mov); err != nil {
			return nil, err
		}
	}

	return produtos, nil
}

// custoDaLinha converte a quantidade da linha em unidades equivalentes para
// valorar o movimento ao custo médio por unidade inteira.
func custoDaLinha(p *entity.Produto, l LinhaMutacao) decimal.Decimal {
	if l.BaixaPor == entity.BaixaPorVolume && p.VolumeUnitario != nil && *p.VolumeUnitario > 0 {
		ml := decimal.NewFromInt(l.Quantidade)
		vol := decimal.NewFromInt(*p.VolumeUnitario)
		return p.PrecoCusto.Mul(ml).Div(vol)
	}
	return p.PrecoCusto.Mul(decimal.NewFromInt(l.Quantidade))
}

func valor(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

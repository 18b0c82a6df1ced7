package sales

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/adegaplus/pdv-api/internal/domain"
	"github.com/adegaplus/pdv-api/internal/domain/entity"
	"github.com/adegaplus/pdv-api/internal/domain/repository"
)

// ItemAvulsoInput é um item vendido fora de composto. Quantidade em unidades,
// ou em ml quando BaixaPor == volume (dose avulsa, fração).
type ItemAvulsoInput struct {
	ProdutoID  string
	Quantidade int64
	BaixaPor   string
}

// SelecaoComposto é a compra de um composto: o template e as escolhas do
// cliente para os itens escolhíveis.
type SelecaoComposto struct {
	CompostoID string
	Escolhas   []EscolhaProduto
}

// montarItens resolve avulsos e compostos em itens de venda concretos com
// preço cobrado por linha. Leitura pura de catálogo, fora da transação; o
// custo é congelado depois, dentro da transação, sobre as linhas bloqueadas.
func montarItens(
	produtoRepo repository.ProdutoRepository,
	compostoRepo repository.CompostoRepository,
	avulsos []ItemAvulsoInput,
	compostos []SelecaoComposto,
) ([]entity.ItemVenda, error) {
	if len(avulsos) == 0 && len(compostos) == 0 {
		return nil, domain.ErrInvalidInput
	}

	var itens []entity.ItemVenda

	for _, a := range avulsos {
		if a.ProdutoID == "" || a.Quantidade <= 0 {
			return nil, domain.ErrInvalidInput
		}
		switch a.BaixaPor {
		case "":
			a.BaixaPor = entity.BaixaPorUnidade
		case entity.BaixaPorUnidade, entity.BaixaPorVolume:
		default:
			return nil, domain.ErrInvalidInput
		}
		p, err := produtoRepo.GetByID(a.ProdutoID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, &domain.ProductNotFoundError{ProductID: a.ProdutoID}
		}
		preco, err := precoAvulso(p, a.Quantidade, a.BaixaPor)
		if err != nil {
			return nil, err
		}
		itens = append(itens, entity.ItemVenda{
			ProdutoID:  a.ProdutoID,
			Quantidade: a.Quantidade,
			BaixaPor:   a.BaixaPor,
			Preco:      preco,
		})
	}

	for _, sel := range compostos {
		c, err := compostoRepo.GetByID(sel.CompostoID)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, &domain.InvalidCompositeError{CompositeID: sel.CompostoID, Reason: "composto inexistente"}
		}
		produtos, err := produtosDoComposto(produtoRepo, c, sel.Escolhas)
		if err != nil {
			return nil, err
		}
		expandidos, err := ExpandirComposto(c, produtos, sel.Escolhas, uuid.New().String())
		if err != nil {
			return nil, err
		}
		itens = append(itens, expandidos...)
	}

	return itens, nil
}

// precoAvulso calcula o valor cobrado por um item fora de composto: preço de
// catálogo por unidade, ou proporcional ao volume para baixa em ml.
func precoAvulso(p *entity.Produto, quantidade int64, baixaPor string) (decimal.Decimal, error) {
	if baixaPor == entity.BaixaPorVolume {
		if !p.Fracionado || p.VolumeUnitario == nil || *p.VolumeUnitario <= 0 {
			return decimal.Zero, domain.ErrInvalidInput
		}
		ml := decimal.NewFromInt(quantidade)
		vol := decimal.NewFromInt(*p.VolumeUnitario)
		return p.Preco.Mul(ml).Div(vol).Round(2), nil
	}
	return p.Preco.Mul(decimal.NewFromInt(quantidade)), nil
}

// produtosDoComposto carrega todos os produtos referenciados pelo template e
// pelas escolhas.
func produtosDoComposto(
	produtoRepo repository.ProdutoRepository,
	c *entity.Composto,
	escolhas []EscolhaProduto,
) (map[string]*entity.Produto, error) {
	produtos := make(map[string]*entity.Produto)
	carregar := func(id string) error {
		if _, ok := produtos[id]; ok {
			return nil
		}
		p, err := produtoRepo.GetByID(id)
		if err != nil {
			return err
		}
		if p != nil {
			produtos[id] = p
		}
		return nil
	}
	for _, it := range c.Itens {
		if it.Fixo() {
			if err := carregar(*it.ProdutoID); err != nil {
				return nil, err
			}
		}
	}
	for _, e := range escolhas {
		if err := carregar(e.ProdutoID); err != nil {
			return nil, err
		}
	}
	return produtos, nil
}

// somaTotal soma o valor cobrado das linhas.
func somaTotal(itens []entity.ItemVenda) decimal.Decimal {
	total := decimal.Zero
	for _, it := range itens {
		total = total.Add(it.Preco)
	}
	return total
}

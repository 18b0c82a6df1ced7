package sales

import (
	"errors"

	"github.com/adegaplus/pdv-api/internal/domain"
	"github.com/adegaplus/pdv-api/internal/domain/entity"
	"github.com/adegaplus/pdv-api/internal/domain/pricing"
)

// EscolhaProduto é uma escolha do cliente para um item escolhível do
// composto: produto concreto e quantidade.
type EscolhaProduto struct {
	ProdutoID  string
	Quantidade int64
}

// ExpandirComposto transforma um template (combo/dose/oferta) + escolhas do
// cliente em itens de venda concretos, com o preço fechado do template
// rateado entre as linhas. Transformação pura: recebe o template e os
// produtos já carregados e não toca em persistência.
func ExpandirComposto(
	c *entity.Composto,
	produtos map[string]*entity.Produto,
	escolhas []EscolhaProduto,
	instanceID string,
) ([]entity.ItemVenda, error) {
	type linhaConcreta struct {
		produto    *entity.Produto
		quantidade int64
		baixaPor   string
	}
	var concretas []linhaConcreta

	// Itens fixos do template.
	var escolhiveis []entity.ItemComposto
	for _, it := range c.Itens {
		if !it.Fixo() {
			escolhiveis = append(escolhiveis, it)
			continue
		}
		p, ok := produtos[*it.ProdutoID]
		if !ok || p == nil {
			return nil, &domain.InvalidCompositeError{CompositeID: c.ID, Reason: "produto constituinte inexistente: " + *it.ProdutoID}
		}
		concretas = append(concretas, linhaConcreta{produto: p, quantidade: it.Quantidade, baixaPor: it.BaixaPor})
	}

	// Escolhas do cliente: cada uma precisa casar com um item escolhível da
	// categoria do produto, respeitando o máximo de escolhas do item.
	usos := make(map[string]int, len(escolhiveis))
	for _, e := range escolhas {
		if e.Quantidade <= 0 {
			return nil, domain.ErrInvalidInput
		}
		p, ok := produtos[e.ProdutoID]
		if !ok || p == nil {
			return nil, &domain.ProductNotFoundError{ProductID: e.ProdutoID}
		}
		var slot *entity.ItemComposto
		for i := range escolhiveis {
			it := &escolhiveis[i]
			if it.CategoriaID != nil && *it.CategoriaID == p.CategoriaID && usos[it.ID] < it.MaxEscolhas {
				slot = it
				break
			}
		}
		if slot == nil {
			return nil, &domain.InvalidCompositeError{CompositeID: c.ID, Reason: "escolha fora das categorias do composto ou acima do máximo"}
		}
		usos[slot.ID]++
		concretas = append(concretas, linhaConcreta{produto: p, quantidade: e.Quantidade, baixaPor: slot.BaixaPor})
	}

	if len(concretas) == 0 {
		return nil, &domain.InvalidCompositeError{CompositeID: c.ID, Reason: "composto sem linhas concretas"}
	}

	// Rateio do preço fechado entre as linhas.
	aloc := make([]pricing.AllocationLine, len(concretas))
	for i, lc := range concretas {
		modo := pricing.ModoUnidade
		if lc.baixaPor == entity.BaixaPorVolume {
			modo = pricing.ModoVolume
		}
		aloc[i] = pricing.AllocationLine{
			PrecoReferencia: lc.produto.Preco,
			Quantidade:      lc.quantidade,
			Modo:            modo,
		}
	}
	cobrancas, err := pricing.Allocate(c.Preco, aloc)
	if err != nil {
		if errors.Is(err, pricing.ErrPesoZero) || errors.Is(err, pricing.ErrSemLinhas) {
			return nil, &domain.InvalidCompositeError{CompositeID: c.ID, Reason: err.Error()}
		}
		return nil, err
	}

	itens := make([]entity.ItemVenda, len(concretas))
	for i, lc := range concretas {
		item := entity.ItemVenda{
			ProdutoID:  lc.produto.ID,
			Quantidade: lc.quantidade,
			BaixaPor:   lc.baixaPor,
			Preco:      cobrancas[i],
		}
		id := instanceID
		switch c.Tipo {
		case entity.CompostoDose:
			item.DoseInstanceID = &id
		case entity.CompostoOferta:
			item.OfertaInstanceID = &id
		default:
			item.ComboInstanceID = &id
		}
		itens[i] = item
	}
	return itens, nil
}

// Package pdf gera o relatório de fechamento de caixa em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nome da adega  │  Sessão + janela de abertura      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMO: valor inicial / total vendas / valor final          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Hora | Venda | Status | Itens | Total               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RODAPÉ: contagem de vendas e carimbo de geração             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appcaixa "github.com/adegaplus/pdv-api/internal/application/caixa"
	"github.com/adegaplus/pdv-api/internal/domain/entity"
)

var (
	corPrimaria = &props.Color{Red: 110, Green: 30, Blue: 50}
	corCinza    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ appcaixa.GeradorRelatorio = (*RelatorioCaixaGenerator)(nil)

// RelatorioCaixaGenerator implementa caixa.GeradorRelatorio usando Maroto v2.
type RelatorioCaixaGenerator struct {
	nomeLoja string
}

// NewRelatorioCaixaGenerator constrói o gerador.
func NewRelatorioCaixaGenerator(nomeLoja string) *RelatorioCaixaGenerator {
	if nomeLoja == "" {
		nomeLoja = "Adega PDV"
	}
	return &RelatorioCaixaGenerator{nomeLoja: nomeLoja}
}

// Gerar gera o PDF de fechamento e devolve seus bytes.
func (g *RelatorioCaixaGenerator) Gerar(sessao *entity.SessaoCaixa, vendas []*entity.Venda) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Fechamento de Caixa", true).
		WithAuthor(g.nomeLoja, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(sessao))
	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.5}))
	m.AddRows(resumoRow(sessao))
	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.3}))

	m.AddRows(tabelaHeaderRow())
	for _, r := range tabelaVendasRows(vendas) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: corCinza, Thickness: 0.3}))
	m.AddRows(rodapeRow(sessao, vendas))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nome da loja (esq) e identificação da sessão (dir).
func (g *RelatorioCaixaGenerator) headerRow(sessao *entity.SessaoCaixa) core.Row {
	janela := "Aberta em " + sessao.AbertaEm.Format("02/01/2006 15:04")
	if sessao.FechadaEm != nil {
		janela += " · Fechada em " + sessao.FechadaEm.Format("02/01/2006 15:04")
	}

	return row.New(18).Add(
		col.New(6).Add(
			text.New(g.nomeLoja, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: corPrimaria, Top: 1,
			}),
			text.New("Operador: "+sessao.AbertaPor, props.Text{
				Size: 9, Top: 9, Color: corCinza,
			}),
		),
		col.New(6).Add(
			text.New("FECHAMENTO DE CAIXA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: corPrimaria, Top: 1,
			}),
			text.New("Sessão "+curto(sessao.ID), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New(janela, props.Text{
				Size: 7.5, Align: align.Right, Top: 14, Color: corCinza,
			}),
		),
	)
}

// resumoRow: valor inicial, total de vendas e valor final contado.
func resumoRow(sessao *entity.SessaoCaixa) core.Row {
	valorFinal := "—"
	if sessao.ValorFinal != nil {
		valorFinal = "R$ " + sessao.ValorFinal.StringFixed(2)
	}

	bloco := func(label, valor string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center,
				Color: corCinza, Top: 2,
			}),
			text.New(valor, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center,
				Color: corPrimaria, Top: 8,
			}),
		)
	}

	return row.New(18).Add(
		bloco("VALOR INICIAL", "R$ "+sessao.ValorInicial.StringFixed(2)),
		bloco("TOTAL DE VENDAS", "R$ "+sessao.TotalVendas.StringFixed(2)),
		bloco("VALOR FINAL CONTADO", valorFinal),
	)
}

// tabelaHeaderRow: cabeçalho da tabela de vendas da sessão.
func tabelaHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: corPrimaria, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Hora", 2, align.Left),
		h("Venda", 3, align.Left),
		h("Status", 2, align.Center),
		h("Itens", 2, align.Center),
		h("Total", 3, align.Right),
	)
}

// tabelaVendasRows: uma linha por venda. Vendas canceladas saem riscadas do
// total mas permanecem listadas para conferência.
func tabelaVendasRows(vendas []*entity.Venda) []core.Row {
	result := make([]core.Row, 0, len(vendas))
	for _, v := range vendas {
		cor := corPrimaria
		if v.Status == entity.VendaCancelada {
			cor = corCinza
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				v.CriadoEm.Format("15:04:05"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				curto(v.ID),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				v.Status,
				props.Text{Size: 7.5, Align: align.Center, Top: 1, Color: cor},
			)),
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", len(v.Itens)),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				"R$ "+v.Total.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: cor},
			)),
		))
	}
	return result
}

// rodapeRow: contagem por status e carimbo de geração.
func rodapeRow(sessao *entity.SessaoCaixa, vendas []*entity.Venda) core.Row {
	concluidas, canceladas := 0, 0
	for _, v := range vendas {
		if v.Status == entity.VendaCancelada {
			canceladas++
		} else {
			concluidas++
		}
	}

	situacao := "SESSÃO ABERTA"
	if !sessao.Ativa {
		situacao = "SESSÃO FECHADA"
	}

	return row.New(12).Add(
		col.New(8).Add(
			text.New(fmt.Sprintf("%d vendas concluídas · %d canceladas", concluidas, canceladas), props.Text{
				Size: 8, Top: 2, Color: corCinza,
			}),
			text.New("Gerado em "+time.Now().Format("02/01/2006 15:04:05"), props.Text{
				Size: 7, Top: 7, Color: corCinza,
			}),
		),
		col.New(4).Add(
			text.New(situacao, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: corPrimaria, Top: 3,
			}),
		),
	)
}

// curto encurta um UUID para exibição (primeiro bloco).
func curto(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

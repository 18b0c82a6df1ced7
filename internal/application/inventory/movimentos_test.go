package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinv "github.com/adegaplus/pdv-api/internal/application/inventory"
	"github.com/adegaplus/pdv-api/internal/domain/entity"
)

// TestConsultaMovimentos_FiltroEJanela lista só o produto pedido, dentro do
// intervalo, com limite aplicado.
func TestConsultaMovimentos_FiltroEJanela(t *testing.T) {
	movRepo := &fakeMovRepo{}
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_ = movRepo.Create(&entity.MovimentoEstoque{
			ID:        string(rune('a' + i)),
			ProdutoID: "p1",
			Direcao:   entity.MovimentoSaida,
			CriadoEm:  base.Add(time.Duration(i) * time.Hour),
		})
	}
	_ = movRepo.Create(&entity.MovimentoEstoque{ID: "outro", ProdutoID: "p2", CriadoEm: base})

	uc := appinv.NewConsultaMovimentosUseCase(movRepo)

	de := base.Add(30 * time.Minute)
	ate := base.Add(3 * time.Hour)
	movs, err := uc.PorProduto(context.Background(), "p1", &de, &ate, 10, 0)
	require.NoError(t, err)
	assert.Len(t, movs, 3, "só os movimentos de p1 dentro da janela")
	for _, m := range movs {
		assert.Equal(t, "p1", m.ProdutoID)
	}
}

// TestConsultaMovimentos_LimitePadrao limite fora da faixa cai no padrão 50.
func TestConsultaMovimentos_LimitePadrao(t *testing.T) {
	movRepo := &fakeMovRepo{}
	for i := 0; i < 60; i++ {
		_ = movRepo.Create(&entity.MovimentoEstoque{ProdutoID: "p1", CriadoEm: time.Now()})
	}
	uc := appinv.NewConsultaMovimentosUseCase(movRepo)

	movs, err := uc.PorProduto(context.Background(), "p1", nil, nil, 0, 0)
	require.NoError(t, err)
	assert.Len(t, movs, 50)

	movs, err = uc.PorProduto(context.Background(), "p1", nil, nil, 500, 0)
	require.NoError(t, err)
	assert.Len(t, movs, 50, "limite acima do teto também cai no padrão")
}

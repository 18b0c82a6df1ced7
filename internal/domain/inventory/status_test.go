package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adegaplus/pdv-api/internal/domain/entity"
	"github.com/adegaplus/pdv-api/internal/domain/inventory"
)

// TestClassifyStatus_Limiares cobre as fronteiras exatas do classificador
// para produtos inteiros: 0 esgotado, 1..5 baixo, 6+ em estoque.
func TestClassifyStatus_Limiares(t *testing.T) {
	casos := []struct {
		estoque  int64
		esperado string
	}{
		{0, entity.StatusEsgotado},
		{1, entity.StatusBaixo},
		{5, entity.StatusBaixo},
		{6, entity.StatusEmEstoque},
		{100, entity.StatusEmEstoque},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, inventory.ClassifyStatus(c.estoque, false, nil),
			"estoque %d", c.estoque)
	}
}

// TestClassifyStatus_FracionadoVolumeZero produto fracionado com 0 ml está
// esgotado mesmo que o estoque derivado diga outra coisa.
func TestClassifyStatus_FracionadoVolumeZero(t *testing.T) {
	zero := int64(0)
	assert.Equal(t, entity.StatusEsgotado, inventory.ClassifyStatus(0, true, &zero))
	assert.Equal(t, entity.StatusEsgotado, inventory.ClassifyStatus(0, true, nil))
}

// TestClassifyStatus_FracionadoComVolume com volume positivo a classificação
// usa o estoque derivado (garrafas inteiras restantes).
func TestClassifyStatus_FracionadoComVolume(t *testing.T) {
	ml := int64(4500)
	assert.Equal(t, entity.StatusBaixo, inventory.ClassifyStatus(4, true, &ml))

	ml = 9000
	assert.Equal(t, entity.StatusEmEstoque, inventory.ClassifyStatus(9, true, &ml))
}

// TestClassifyStatus_FracionadoRestoDeDose sobrou meia garrafa (derivado 0,
// volume > 0): sem unidade inteira restante o produto está esgotado, ainda
// que o resto dê para doses.
func TestClassifyStatus_FracionadoRestoDeDose(t *testing.T) {
	ml := int64(500)
	assert.Equal(t, entity.StatusEsgotado, inventory.ClassifyStatus(0, true, &ml))
}

// TestDerivedStock_Floor o estoque derivado trunca sempre para baixo.
func TestDerivedStock_Floor(t *testing.T) {
	assert.Equal(t, int64(2), inventory.DerivedStock(2999, 1000))
	assert.Equal(t, int64(3), inventory.DerivedStock(3000, 1000))
	assert.Equal(t, int64(0), inventory.DerivedStock(999, 1000))
	assert.Equal(t, int64(0), inventory.DerivedStock(0, 1000))
	assert.Equal(t, int64(0), inventory.DerivedStock(500, 0))
}

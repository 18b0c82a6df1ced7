package inventory

import "github.com/adegaplus/pdv-api/internal/domain/entity"

// LimiarEstoqueBaixo é o limite fixo do classificador. O cadastro tem
// EstoqueMinimo por produto, mas o comportamento observado usa a constante.
const LimiarEstoqueBaixo = 5

// ClassifyStatus classifica o estoque de um produto (função pura, chamada após
// toda mutação; o status desnormalizado nunca é a fonte de verdade). O estoque
// derivado manda: produto fracionado com resto de dose (volume > 0, derivado 0)
// está esgotado — não sobrou nenhuma unidade inteira.
func ClassifyStatus(estoque int64, fracionado bool, volumeTotal *int64) string {
	if estoque <= 0 {
		return entity.StatusEsgotado
	}
	if fracionado && (volumeTotal == nil || *volumeTotal <= 0) {
		return entity.StatusEsgotado
	}
	if estoque <= LimiarEstoqueBaixo {
		return entity.StatusBaixo
	}
	return entity.StatusEmEstoque
}

package inventory

import (
	"context"
	"time"

	"github.com/adegaplus/pdv-api/internal/domain/entity"
	"github.com/adegaplus/pdv-api/internal/domain/repository"
)

// ConsultaMovimentosUseCase lado de leitura do livro-razão de estoque.
type ConsultaMovimentosUseCase struct {
	movRepo repository.MovimentoEstoqueRepository
}

// NewConsultaMovimentosUseCase constrói o caso de uso (repositório atado ao pool).
func NewConsultaMovimentosUseCase(movRepo repository.MovimentoEstoqueRepository) *ConsultaMovimentosUseCase {
	return &ConsultaMovimentosUseCase{movRepo: movRepo}
}

// PorProduto lista os movimentos de um produto num intervalo de datas.
func (uc *ConsultaMovimentosUseCase) PorProduto(_ context.Context, produtoID string, de, ate *time.Time, limit, offset int) ([]*entity.MovimentoEstoque, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return uc.movRepo.ListByProduto(produtoID, de, ate, limit, offset)
}

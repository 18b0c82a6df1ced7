package sales

import (
	"context"

	"github.com/adegaplus/pdv-api/internal/domain"
	"github.com/adegaplus/pdv-api/internal/domain/entity"
	"github.com/adegaplus/pdv-api/internal/domain/repository"
)

// ConsultaVendasUseCase lado de leitura das vendas.
type ConsultaVendasUseCase struct {
	vendaRepo repository.VendaRepository
}

// NewConsultaVendasUseCase constrói o caso de uso (repositório atado ao pool).
func NewConsultaVendasUseCase(vendaRepo repository.VendaRepository) *ConsultaVendasUseCase {
	return &ConsultaVendasUseCase{vendaRepo: vendaRepo}
}

// GetByID devolve a venda com seus itens.
func (uc *ConsultaVendasUseCase) GetByID(_ context.Context, id string) (*entity.Venda, error) {
	v, err := uc.vendaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	return v, nil
}

package repository

import "github.com/adegaplus/pdv-api/internal/domain/entity"

// EntradaEstoqueRepository porta das reposições (write-once).
type EntradaEstoqueRepository interface {
	Create(e *entity.EntradaEstoque) error
}

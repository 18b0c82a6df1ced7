package repository

import "github.com/adegaplus/pdv-api/internal/domain/entity"

// CompostoRepository porta de consulta dos templates de combo/dose/oferta.
type CompostoRepository interface {
	// GetByID devolve o template com seus itens.
	GetByID(id string) (*entity.Composto, error)
}

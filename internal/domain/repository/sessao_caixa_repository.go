package repository

import "github.com/adegaplus/pdv-api/internal/domain/entity"

// SessaoCaixaRepository porta das sessões de caixa.
type SessaoCaixaRepository interface {
	Create(s *entity.SessaoCaixa) error
	GetByID(id string) (*entity.SessaoCaixa, error)
	// ObterAtiva devolve a sessão aberta, ou nil se não houver.
	ObterAtiva() (*entity.SessaoCaixa, error)
	// Fechar grava os campos de fechamento e desativa a sessão.
	Fechar(s *entity.SessaoCaixa) error
}

package entity

// MeioPagamento é validado na venda; captura/liquidação é externa.
type MeioPagamento struct {
	ID    string
	Nome  string
	Ativo bool
}

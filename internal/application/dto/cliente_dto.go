package dto

// ClienteInput entrada para cadastrar um cliente. Observacoes é opcional.
type ClienteInput struct {
	Nome        string
	Email       string
	Telefone    string
	Observacoes string
}

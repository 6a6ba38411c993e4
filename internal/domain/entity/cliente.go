package entity

import "time"

// Cliente representa um cliente do salão. Sem restrição de unicidade em email/telefone.
type Cliente struct {
	ID          string
	Nome        string
	Email       string
	Telefone    string
	Observacoes string // opcional
	CreatedAt   time.Time
}

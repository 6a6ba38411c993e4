package entity

import "time"

// Usuario representa um usuário do sistema com flag binária de administrador.
type Usuario struct {
	ID           string
	Username     string // único no armazenamento
	PasswordHash string // bcrypt hash, nunca em texto plano após persistir
	IsAdmin      bool
	CreatedAt    time.Time
}

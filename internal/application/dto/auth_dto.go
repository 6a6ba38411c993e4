package dto

import "time"

// RegisterRequest entrada para registro (password em texto, hasheado no use case).
type RegisterRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// UsuarioResponse saída de um usuário (sem password).
type UsuarioResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse saída do login: token de sessão assinado + usuário.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}

package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jvcastro/salao-api/internal/application/auth"
	"github.com/jvcastro/salao-api/internal/application/dto"
	"github.com/jvcastro/salao-api/internal/domain"
)

// AuthHandler trata registro, login e logout.
type AuthHandler struct {
	uc         *auth.AuthUseCase
	expMinutes int
}

// NewAuthHandler constrói o handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, expMinutes int) *AuthHandler {
	return &AuthHandler{uc: uc, expMinutes: expMinutes}
}

// Registrar POST /registrar
func (h *AuthHandler) Registrar(c *fiber.Ctx) error {
	in := dto.RegisterRequest{
		Username: c.FormValue("username"),
		Password: c.FormValue("password"),
	}
	if in.Username == "" || in.Password == "" {
		return redirectComFlash(c, FlashWarning, "Por favor, preencha todos os campos obrigatórios.")
	}
	if _, err := h.uc.Register(c.Context(), in); err != nil {
		if errors.Is(err, domain.ErrUsernameJaExiste) {
			return redirectComFlash(c, FlashWarning, "Nome de usuário já existe. Escolha outro.")
		}
		return err
	}
	return redirectComFlash(c, FlashSuccess, "Usuário registrado com sucesso!")
}

// Login POST /login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	in := dto.LoginRequest{
		Username: c.FormValue("username"),
		Password: c.FormValue("password"),
	}
	if in.Username == "" || in.Password == "" {
		return redirectComFlash(c, FlashWarning, "Por favor, preencha todos os campos obrigatórios.")
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrCredenciaisInvalidas) {
			// Mensagem única para usuário inexistente e senha errada.
			return redirectComFlash(c, FlashDanger, "Nome de usuário ou senha incorretos.")
		}
		return err
	}
	CriarCookieSessao(c, out.Token, h.expMinutes)
	return redirectComFlash(c, FlashSuccess, "Login bem-sucedido!")
}

// Logout GET /logout — destrói a sessão incondicionalmente.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	DestruirCookieSessao(c)
	return redirectComFlash(c, FlashSuccess, "Logout realizado com sucesso.")
}

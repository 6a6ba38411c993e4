package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jvcastro/salao-api/pkg/session"
)

// Nome do cookie de sessão assinado (JWT HS256).
const sessionCookie = "salao_sessao"

// Locals keys para a identidade resolvida em Fiber.
const (
	LocalUsuarioID = "usuario_id"
	LocalUsername  = "username"
	LocalIsAdmin   = "is_admin"
)

// ResolverSessao valida o cookie de sessão uma vez por requisição e carrega a
// identidade nos locals. Cookie ausente ou inválido resolve para anônimo, sem
// interromper a requisição: os gates ExigirLogin/ExigirAdmin decidem depois.
func ResolverSessao(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(sessionCookie)
		if token != "" {
			if ident, err := session.Parse(secret, token); err == nil {
				c.Locals(LocalUsuarioID, ident.UserID)
				c.Locals(LocalUsername, ident.Username)
				c.Locals(LocalIsAdmin, ident.IsAdmin)
			}
		}
		return c.Next()
	}
}

// ExigirLogin bloqueia anônimos: flash de aviso + redirect, sem efeito parcial.
func ExigirLogin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetUsuarioID(c) == "" {
			return redirectComFlash(c, FlashWarning, "Você precisa estar logado para continuar.")
		}
		return c.Next()
	}
}

// ExigirAdmin bloqueia anônimos e não-administradores.
func ExigirAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetUsuarioID(c) == "" || !IsAdmin(c) {
			return redirectComFlash(c, FlashWarning, "Apenas administradores podem acessar essa página.")
		}
		return c.Next()
	}
}

// CriarCookieSessao grava o cookie de sessão assinado no response.
func CriarCookieSessao(c *fiber.Ctx, token string, expMinutes int) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(time.Duration(expMinutes) * time.Minute),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// DestruirCookieSessao expira o cookie de sessão. Idempotente.
func DestruirCookieSessao(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// GetUsuarioID devolve o ID do usuário da sessão ("" se anônimo).
func GetUsuarioID(c *fiber.Ctx) string {
	v := c.Locals(LocalUsuarioID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetUsername devolve o username da sessão ("" se anônimo).
func GetUsername(c *fiber.Ctx) string {
	v := c.Locals(LocalUsername)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// IsAdmin devolve a flag de administrador da sessão.
func IsAdmin(c *fiber.Ctx) bool {
	v := c.Locals(LocalIsAdmin)
	if v == nil {
		return false
	}
	b, _ := v.(bool)
	return b
}

package http

import (
	"encoding/base64"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Cookie transiente de mensagem flash: escrito no redirect, consumido (e
// expirado) na próxima renderização da página inicial.
const flashCookie = "salao_flash"

// Categorias de flash, alinhadas com o front.
const (
	FlashSuccess = "success"
	FlashWarning = "warning"
	FlashDanger  = "danger"
	FlashError   = "error"
)

// Flash mensagem transiente exibida após um redirect.
type Flash struct {
	Categoria string `json:"categoria"`
	Mensagem  string `json:"mensagem"`
}

// SetFlash grava a mensagem flash no cookie transiente.
func SetFlash(c *fiber.Ctx, categoria, mensagem string) {
	valor := base64.URLEncoding.EncodeToString([]byte(categoria + "|" + mensagem))
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    valor,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// ConsumeFlash lê a mensagem flash, expira o cookie e devolve nil se não houver.
func ConsumeFlash(c *fiber.Ctx) *Flash {
	valor := c.Cookies(flashCookie)
	if valor == "" {
		return nil
	}
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	decoded, err := base64.URLEncoding.DecodeString(valor)
	if err != nil {
		return nil
	}
	categoria, mensagem, ok := strings.Cut(string(decoded), "|")
	if !ok {
		return nil
	}
	return &Flash{Categoria: categoria, Mensagem: mensagem}
}

// redirectComFlash grava a flash e devolve o redirect 303 para a página inicial.
// Todo handler de formulário termina aqui, em sucesso ou falha.
func redirectComFlash(c *fiber.Ctx, categoria, mensagem string) error {
	SetFlash(c, categoria, mensagem)
	return c.Redirect("/", fiber.StatusSeeOther)
}

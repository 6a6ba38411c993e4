package http

import "github.com/gofiber/fiber/v2"

// IndexHandler página inicial: ponto de chegada de todos os redirects.
// A renderização HTML fica a cargo do front; aqui devolvemos a identidade da
// sessão e a flash pendente (consumida nesta leitura).
type IndexHandler struct {
	appName string
}

// NewIndexHandler constrói o handler.
func NewIndexHandler(appName string) *IndexHandler {
	return &IndexHandler{appName: appName}
}

// Mostrar GET /
func (h *IndexHandler) Mostrar(c *fiber.Ctx) error {
	payload := fiber.Map{
		"app":         h.appName,
		"autenticado": GetUsuarioID(c) != "",
	}
	if username := GetUsername(c); username != "" {
		payload["username"] = username
		payload["is_admin"] = IsAdmin(c)
	}
	if flash := ConsumeFlash(c); flash != nil {
		payload["flash"] = flash
	}
	return c.JSON(payload)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jvcastro/salao-api/internal/application/usecase"
)

// AtividadeHandler leitura da trilha de atividades (exige admin).
type AtividadeHandler struct {
	uc *usecase.AtividadeUseCase
}

// NewAtividadeHandler constrói o handler.
func NewAtividadeHandler(uc *usecase.AtividadeUseCase) *AtividadeHandler {
	return &AtividadeHandler{uc: uc}
}

// Listar GET /registro_atividades
func (h *AtividadeHandler) Listar(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(list)
}

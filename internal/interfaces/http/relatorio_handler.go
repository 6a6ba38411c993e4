package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jvcastro/salao-api/internal/application/usecase"
)

// RelatorioHandler relatório texto com os totais de clientes e produtos.
type RelatorioHandler struct {
	uc *usecase.RelatorioUseCase
}

// NewRelatorioHandler constrói o handler.
func NewRelatorioHandler(uc *usecase.RelatorioUseCase) *RelatorioHandler {
	return &RelatorioHandler{uc: uc}
}

// Mostrar GET /relatorio
func (h *RelatorioHandler) Mostrar(c *fiber.Ctx) error {
	totais, err := h.uc.Totais(c.Context())
	if err != nil {
		return err
	}
	return c.SendString(fmt.Sprintf("Total de Clientes: %d\nTotal de Produtos: %d\n",
		totais.TotalClientes, totais.TotalProdutos))
}

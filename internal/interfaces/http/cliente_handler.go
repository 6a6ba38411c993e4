package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jvcastro/salao-api/internal/application/dto"
	"github.com/jvcastro/salao-api/internal/application/usecase"
)

// ClienteHandler trata o cadastro de clientes (exige usuário autenticado).
type ClienteHandler struct {
	uc *usecase.ClienteUseCase
}

// NewClienteHandler constrói o handler.
func NewClienteHandler(uc *usecase.ClienteUseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

// Cadastrar POST /cadastrar_cliente — observacoes é opcional.
func (h *ClienteHandler) Cadastrar(c *fiber.Ctx) error {
	in := dto.ClienteInput{
		Nome:        c.FormValue("nome"),
		Email:       c.FormValue("email"),
		Telefone:    c.FormValue("telefone"),
		Observacoes: c.FormValue("observacoes"),
	}
	if in.Nome == "" || in.Email == "" || in.Telefone == "" {
		return redirectComFlash(c, FlashWarning, "Por favor, preencha todos os campos obrigatórios.")
	}
	if err := h.uc.Create(c.Context(), in); err != nil {
		return err
	}
	return redirectComFlash(c, FlashSuccess, "Cliente cadastrado com sucesso!")
}

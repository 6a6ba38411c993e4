package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jvcastro/salao-api/internal/application/dto"
	"github.com/jvcastro/salao-api/internal/application/usecase"
)

// ProdutoHandler trata o cadastro de produtos (exige usuário autenticado).
type ProdutoHandler struct {
	uc *usecase.ProdutoUseCase
}

// NewProdutoHandler constrói o handler.
func NewProdutoHandler(uc *usecase.ProdutoUseCase) *ProdutoHandler {
	return &ProdutoHandler{uc: uc}
}

// Cadastrar POST /cadastrar_produto
func (h *ProdutoHandler) Cadastrar(c *fiber.Ctx) error {
	nome := c.FormValue("produto_nome")
	custoStr := c.FormValue("custo")
	precoStr := c.FormValue("preco_venda")
	if nome == "" || custoStr == "" || precoStr == "" {
		return redirectComFlash(c, FlashWarning, "Por favor, preencha todos os campos obrigatórios.")
	}
	custo, err := decimal.NewFromString(strings.TrimSpace(custoStr))
	if err != nil {
		return redirectComFlash(c, FlashError, "Por favor, insira valores numéricos válidos para custo e preço de venda.")
	}
	preco, err := decimal.NewFromString(strings.TrimSpace(precoStr))
	if err != nil {
		return redirectComFlash(c, FlashError, "Por favor, insira valores numéricos válidos para custo e preço de venda.")
	}
	in := dto.ProdutoInput{Nome: nome, Custo: custo, PrecoVenda: preco}
	if err := h.uc.Create(c.Context(), in); err != nil {
		return err
	}
	return redirectComFlash(c, FlashSuccess, "Produto cadastrado com sucesso!")
}

package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jvcastro/salao-api/internal/application/dto"
	"github.com/jvcastro/salao-api/internal/application/usecase"
	"github.com/jvcastro/salao-api/internal/domain"
)

// FuncionarioHandler trata o CRUD de funcionários (todas as rotas exigem admin).
type FuncionarioHandler struct {
	uc *usecase.FuncionarioUseCase
}

// NewFuncionarioHandler constrói o handler.
func NewFuncionarioHandler(uc *usecase.FuncionarioUseCase) *FuncionarioHandler {
	return &FuncionarioHandler{uc: uc}
}

// lerFuncionarioForm aplica o pipeline de validação do formulário: presença
// dos campos e coerção do salário para decimal. Nenhuma escrita acontece se
// qualquer passo falhar.
func lerFuncionarioForm(c *fiber.Ctx) (dto.FuncionarioInput, error) {
	nome := c.FormValue("nome")
	cargo := c.FormValue("cargo")
	salario := c.FormValue("salario")
	if nome == "" || cargo == "" || salario == "" {
		return dto.FuncionarioInput{}, domain.ErrCampoObrigatorio
	}
	valor, err := decimal.NewFromString(strings.TrimSpace(salario))
	if err != nil {
		return dto.FuncionarioInput{}, domain.ErrNumeroInvalido
	}
	return dto.FuncionarioInput{Nome: nome, Cargo: cargo, Salario: valor}, nil
}

// Cadastrar POST /cadastrar_funcionario
func (h *FuncionarioHandler) Cadastrar(c *fiber.Ctx) error {
	in, err := lerFuncionarioForm(c)
	if err != nil {
		return redirectFormError(c, err)
	}
	if _, err := h.uc.Create(c.Context(), GetUsuarioID(c), in); err != nil {
		return err
	}
	return redirectComFlash(c, FlashSuccess, "Funcionário cadastrado com sucesso!")
}

// EditarForm GET /editar_funcionario/:id — devolve a linha atual para
// pré-preencher o formulário de edição.
func (h *FuncionarioHandler) EditarForm(c *fiber.Ctx) error {
	funcionario, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return redirectComFlash(c, FlashWarning, "Funcionário não encontrado.")
		}
		return err
	}
	return c.JSON(funcionario)
}

// Editar POST /editar_funcionario/:id
func (h *FuncionarioHandler) Editar(c *fiber.Ctx) error {
	in, err := lerFuncionarioForm(c)
	if err != nil {
		return redirectFormError(c, err)
	}
	if _, err := h.uc.Update(c.Context(), GetUsuarioID(c), c.Params("id"), in); err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return redirectComFlash(c, FlashWarning, "Funcionário não encontrado.")
		}
		return err
	}
	return redirectComFlash(c, FlashSuccess, "Funcionário atualizado com sucesso!")
}

// Remover POST /remover_funcionario/:id — confirma existência antes de remover.
func (h *FuncionarioHandler) Remover(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUsuarioID(c), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return redirectComFlash(c, FlashWarning, "Funcionário não encontrado.")
		}
		return err
	}
	return redirectComFlash(c, FlashSuccess, "Funcionário removido com sucesso!")
}

// Listar GET /listar_funcionarios
func (h *FuncionarioHandler) Listar(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(list)
}

// redirectFormError mapeia os erros de validação do formulário de funcionário
// para a flash correspondente.
func redirectFormError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrNumeroInvalido) {
		return redirectComFlash(c, FlashError, "Por favor, insira um valor numérico válido para o salário.")
	}
	return redirectComFlash(c, FlashWarning, "Por favor, preencha todos os campos obrigatórios.")
}

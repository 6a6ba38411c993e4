package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// FuncionarioInput entrada para criar ou editar um funcionário.
// Salario já chega convertido: a coerção string -> decimal acontece no handler.
type FuncionarioInput struct {
	Nome    string
	Cargo   string
	Salario decimal.Decimal
}

// FuncionarioResponse saída de um funcionário (pré-preenchimento de formulário e listagens).
type FuncionarioResponse struct {
	ID        string          `json:"id"`
	Nome      string          `json:"nome"`
	Cargo     string          `json:"cargo"`
	Salario   decimal.Decimal `json:"salario"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Funcionario representa um membro da equipe do salão.
type Funcionario struct {
	ID        string
	Nome      string
	Cargo     string
	Salario   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

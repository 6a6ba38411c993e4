package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produto representa um produto vendido pelo salão.
type Produto struct {
	ID         string
	Nome       string
	Custo      decimal.Decimal
	PrecoVenda decimal.Decimal
	CreatedAt  time.Time
}

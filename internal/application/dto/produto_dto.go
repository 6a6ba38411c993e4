package dto

import "github.com/shopspring/decimal"

// ProdutoInput entrada para cadastrar um produto.
// Custo e PrecoVenda já chegam convertidos pelo handler.
type ProdutoInput struct {
	Nome       string
	Custo      decimal.Decimal
	PrecoVenda decimal.Decimal
}

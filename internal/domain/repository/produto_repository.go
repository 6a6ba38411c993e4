package repository

import (
	"context"

	"github.com/jvcastro/salao-api/internal/domain/entity"
)

// ProdutoRepository define o porto de persistência para Produto.
// Neste sistema produtos só são criados e lidos.
type ProdutoRepository interface {
	Create(ctx context.Context, produto *entity.Produto) error
	Count(ctx context.Context) (int64, error)
}

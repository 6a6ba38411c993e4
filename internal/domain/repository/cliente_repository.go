package repository

import (
	"context"

	"github.com/jvcastro/salao-api/internal/domain/entity"
)

// ClienteRepository define o porto de persistência para Cliente.
// Neste sistema clientes só são criados e lidos.
type ClienteRepository interface {
	Create(ctx context.Context, cliente *entity.Cliente) error
	Count(ctx context.Context) (int64, error)
}

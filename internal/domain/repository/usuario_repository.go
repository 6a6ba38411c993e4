package repository

import (
	"context"

	"github.com/jvcastro/salao-api/internal/domain/entity"
)

// UsuarioRepository define o porto de persistência para Usuario (DIP).
type UsuarioRepository interface {
	Create(ctx context.Context, usuario *entity.Usuario) error
	GetByID(ctx context.Context, id string) (*entity.Usuario, error)
	GetByUsername(ctx context.Context, username string) (*entity.Usuario, error)
	Count(ctx context.Context) (int64, error)
}

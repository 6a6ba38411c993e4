package repository

import (
	"context"

	"github.com/jvcastro/salao-api/internal/domain/entity"
)

// FuncionarioRepository define o porto de persistência para Funcionario.
type FuncionarioRepository interface {
	Create(ctx context.Context, funcionario *entity.Funcionario) error
	GetByID(ctx context.Context, id string) (*entity.Funcionario, error)
	Update(ctx context.Context, funcionario *entity.Funcionario) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Funcionario, error)
}

package repository

import (
	"context"

	"github.com/jvcastro/salao-api/internal/domain/entity"
)

// AtividadeRepository define o porto de persistência para a trilha de
// atividades. Append-only: não há Update nem Delete.
type AtividadeRepository interface {
	Append(ctx context.Context, atividade *entity.Atividade) error
	List(ctx context.Context) ([]*entity.Atividade, error)
}

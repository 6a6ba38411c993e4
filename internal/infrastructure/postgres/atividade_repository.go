package postgres

import (
	"context"
	"fmt"

	"github.com/jvcastro/salao-api/internal/domain/entity"
	"github.com/jvcastro/salao-api/internal/domain/repository"
)

var _ repository.AtividadeRepository = (*AtividadeRepo)(nil)

// AtividadeRepo implementação do porto AtividadeRepository sobre PostgreSQL
// (usável com pool ou tx). A tabela é append-only.
type AtividadeRepo struct {
	q Querier
}

// NewAtividadeRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewAtividadeRepository(q Querier) *AtividadeRepo {
	return &AtividadeRepo{q: q}
}

// Append persiste um novo registro de atividade.
func (r *AtividadeRepo) Append(ctx context.Context, atividade *entity.Atividade) error {
	query := `
		INSERT INTO registro_atividades (id, usuario_id, acao, data_hora)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query,
		atividade.ID, atividade.UsuarioID, atividade.Acao, atividade.DataHora,
	)
	if err != nil {
		return fmt.Errorf("append atividade: %w", err)
	}
	return nil
}

// List devolve todos os registros da trilha.
func (r *AtividadeRepo) List(ctx context.Context) ([]*entity.Atividade, error) {
	query := `
		SELECT id, usuario_id, acao, data_hora
		FROM registro_atividades`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list atividades: %w", err)
	}
	defer rows.Close()
	var list []*entity.Atividade
	for rows.Next() {
		var a entity.Atividade
		if err := rows.Scan(&a.ID, &a.UsuarioID, &a.Acao, &a.DataHora); err != nil {
			return nil, fmt.Errorf("scan atividade: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

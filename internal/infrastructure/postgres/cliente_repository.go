package postgres

import (
	"context"
	"fmt"

	"github.com/jvcastro/salao-api/internal/domain/entity"
	"github.com/jvcastro/salao-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementação do porto ClienteRepository sobre PostgreSQL.
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository constrói o adaptador de persistência para clientes.
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Create persiste um novo cliente.
func (r *ClienteRepo) Create(ctx context.Context, cliente *entity.Cliente) error {
	query := `
		INSERT INTO clientes (id, nome, email, telefone, observacoes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		cliente.ID, cliente.Nome, cliente.Email, cliente.Telefone, cliente.Observacoes, cliente.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// Count devolve o total de clientes cadastrados.
func (r *ClienteRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM clientes`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count clientes: %w", err)
	}
	return total, nil
}

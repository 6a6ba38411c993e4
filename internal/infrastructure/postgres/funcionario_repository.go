package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jvcastro/salao-api/internal/domain/entity"
	"github.com/jvcastro/salao-api/internal/domain/repository"
)

var _ repository.FuncionarioRepository = (*FuncionarioRepo)(nil)

// FuncionarioRepo implementação do porto FuncionarioRepository sobre
// PostgreSQL (usável com pool ou tx).
type FuncionarioRepo struct {
	q Querier
}

// NewFuncionarioRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewFuncionarioRepository(q Querier) *FuncionarioRepo {
	return &FuncionarioRepo{q: q}
}

// Create persiste um novo funcionário.
func (r *FuncionarioRepo) Create(ctx context.Context, funcionario *entity.Funcionario) error {
	query := `
		INSERT INTO funcionarios (id, nome, cargo, salario, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		funcionario.ID, funcionario.Nome, funcionario.Cargo, funcionario.Salario,
		funcionario.CreatedAt, funcionario.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert funcionario: %w", err)
	}
	return nil
}

// GetByID obtém um funcionário por ID. Devolve nil sem erro se não existir.
func (r *FuncionarioRepo) GetByID(ctx context.Context, id string) (*entity.Funcionario, error) {
	query := `
		SELECT id, nome, cargo, salario, created_at, updated_at
		FROM funcionarios WHERE id = $1`
	var f entity.Funcionario
	err := r.q.QueryRow(ctx, query, id).Scan(
		&f.ID, &f.Nome, &f.Cargo, &f.Salario, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get funcionario by id: %w", err)
	}
	return &f, nil
}

// Update atualiza um funcionário existente.
func (r *FuncionarioRepo) Update(ctx context.Context, funcionario *entity.Funcionario) error {
	query := `
		UPDATE funcionarios SET nome = $2, cargo = $3, salario = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		funcionario.ID, funcionario.Nome, funcionario.Cargo, funcionario.Salario, funcionario.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update funcionario: %w", err)
	}
	return nil
}

// Delete remove um funcionário por ID.
func (r *FuncionarioRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM funcionarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete funcionario: %w", err)
	}
	return nil
}

// List devolve todos os funcionários.
func (r *FuncionarioRepo) List(ctx context.Context) ([]*entity.Funcionario, error) {
	query := `
		SELECT id, nome, cargo, salario, created_at, updated_at
		FROM funcionarios`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list funcionarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Funcionario
	for rows.Next() {
		var f entity.Funcionario
		if err := rows.Scan(&f.ID, &f.Nome, &f.Cargo, &f.Salario, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan funcionario: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jvcastro/salao-api/internal/domain"
	"github.com/jvcastro/salao-api/internal/domain/entity"
	"github.com/jvcastro/salao-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementação do porto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository constrói o adaptador de persistência para usuários.
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste um novo usuário. Colisão de username devolve ErrUsernameJaExiste.
func (r *UsuarioRepo) Create(ctx context.Context, usuario *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (id, username, password_hash, is_admin, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		usuario.ID, usuario.Username, usuario.PasswordHash, usuario.IsAdmin, usuario.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameJaExiste
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtém um usuário por ID. Devolve nil sem erro se não existir.
func (r *UsuarioRepo) GetByID(ctx context.Context, id string) (*entity.Usuario, error) {
	query := `
		SELECT id, username, password_hash, is_admin, created_at
		FROM usuarios WHERE id = $1`
	var u entity.Usuario
	err := r.q.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario by id: %w", err)
	}
	return &u, nil
}

// GetByUsername obtém um usuário por username. Devolve nil sem erro se não existir.
func (r *UsuarioRepo) GetByUsername(ctx context.Context, username string) (*entity.Usuario, error) {
	query := `
		SELECT id, username, password_hash, is_admin, created_at
		FROM usuarios WHERE username = $1`
	var u entity.Usuario
	err := r.q.QueryRow(ctx, query, username).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario by username: %w", err)
	}
	return &u, nil
}

// Count devolve o total de usuários registrados.
func (r *UsuarioRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM usuarios`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count usuarios: %w", err)
	}
	return total, nil
}

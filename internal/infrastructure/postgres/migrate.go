package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate cria o esquema de forma idempotente. Chamado uma única vez no
// arranque do processo, desacoplado do tratamento de requisições.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS usuarios (
			id            UUID PRIMARY KEY,
			username      TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			is_admin      BOOLEAN NOT NULL DEFAULT FALSE,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS clientes (
			id          UUID PRIMARY KEY,
			nome        TEXT NOT NULL,
			email       TEXT NOT NULL,
			telefone    TEXT NOT NULL,
			observacoes TEXT NOT NULL DEFAULT '',
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS produtos (
			id          UUID PRIMARY KEY,
			nome        TEXT NOT NULL,
			custo       NUMERIC(12,2) NOT NULL,
			preco_venda NUMERIC(12,2) NOT NULL,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS funcionarios (
			id         UUID PRIMARY KEY,
			nome       TEXT NOT NULL,
			cargo      TEXT NOT NULL,
			salario    NUMERIC(12,2) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		// usuario_id é referência fraca a usuarios: declarada no modelo, sem
		// foreign key imposta, para que a trilha sobreviva a qualquer futuro
		// ciclo de vida de usuários.
		`CREATE TABLE IF NOT EXISTS registro_atividades (
			id         UUID PRIMARY KEY,
			usuario_id UUID,
			acao       TEXT NOT NULL,
			data_hora  TIMESTAMPTZ NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate schema: %w", err)
		}
	}
	return nil
}

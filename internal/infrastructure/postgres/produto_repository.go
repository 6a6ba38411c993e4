package postgres

import (
	"context"
	"fmt"

	"github.com/jvcastro/salao-api/internal/domain/entity"
	"github.com/jvcastro/salao-api/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

// ProdutoRepo implementação do porto ProdutoRepository sobre PostgreSQL.
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador de persistência para produtos.
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

// Create persiste um novo produto. Custo e preço de venda entram como NUMERIC
// via codec shopspring/decimal registrado no pool.
func (r *ProdutoRepo) Create(ctx context.Context, produto *entity.Produto) error {
	query := `
		INSERT INTO produtos (id, nome, custo, preco_venda, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		produto.ID, produto.Nome, produto.Custo, produto.PrecoVenda, produto.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// Count devolve o total de produtos cadastrados.
func (r *ProdutoRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM produtos`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count produtos: %w", err)
	}
	return total, nil
}

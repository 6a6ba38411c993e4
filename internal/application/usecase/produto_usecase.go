package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jvcastro/salao-api/internal/application/dto"
	"github.com/jvcastro/salao-api/internal/domain/entity"
	"github.com/jvcastro/salao-api/internal/domain/repository"
)

// ProdutoUseCase caso de uso de produtos. Mutações de produto não geram
// registro de atividade (política atual do negócio).
type ProdutoUseCase struct {
	repo repository.ProdutoRepository
}

// NewProdutoUseCase constrói o caso de uso.
func NewProdutoUseCase(repo repository.ProdutoRepository) *ProdutoUseCase {
	return &ProdutoUseCase{repo: repo}
}

// Create cadastra um produto.
func (uc *ProdutoUseCase) Create(ctx context.Context, in dto.ProdutoInput) error {
	produto := &entity.Produto{
		ID:         uuid.New().String(),
		Nome:       in.Nome,
		Custo:      in.Custo,
		PrecoVenda: in.PrecoVenda,
		CreatedAt:  time.Now(),
	}
	return uc.repo.Create(ctx, produto)
}

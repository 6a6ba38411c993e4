package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jvcastro/salao-api/internal/application/dto"
	"github.com/jvcastro/salao-api/internal/domain/entity"
	"github.com/jvcastro/salao-api/internal/domain/repository"
)

// ClienteUseCase caso de uso de clientes. Mutações de cliente não geram
// registro de atividade (política atual do negócio).
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase constrói o caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Create cadastra um cliente.
func (uc *ClienteUseCase) Create(ctx context.Context, in dto.ClienteInput) error {
	cliente := &entity.Cliente{
		ID:          uuid.New().String(),
		Nome:        in.Nome,
		Email:       in.Email,
		Telefone:    in.Telefone,
		Observacoes: in.Observacoes,
		CreatedAt:   time.Now(),
	}
	return uc.repo.Create(ctx, cliente)
}

package usecase

import (
	"context"

	"github.com/jvcastro/salao-api/internal/application/dto"
	"github.com/jvcastro/salao-api/internal/domain/repository"
)

// RelatorioUseCase relatório somente leitura: totais de clientes e produtos.
// Sem cache: cada chamada reconta as duas tabelas.
type RelatorioUseCase struct {
	clienteRepo repository.ClienteRepository
	produtoRepo repository.ProdutoRepository
}

// NewRelatorioUseCase constrói o caso de uso.
func NewRelatorioUseCase(clienteRepo repository.ClienteRepository, produtoRepo repository.ProdutoRepository) *RelatorioUseCase {
	return &RelatorioUseCase{clienteRepo: clienteRepo, produtoRepo: produtoRepo}
}

// Totais devolve as contagens integrais das tabelas de clientes e produtos.
func (uc *RelatorioUseCase) Totais(ctx context.Context) (*dto.RelatorioResponse, error) {
	clientes, err := uc.clienteRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	produtos, err := uc.produtoRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.RelatorioResponse{
		TotalClientes: clientes,
		TotalProdutos: produtos,
	}, nil
}

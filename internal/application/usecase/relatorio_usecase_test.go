package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvcastro/salao-api/internal/application/dto"
	"github.com/jvcastro/salao-api/internal/application/usecase"
)

// O relatório reconta as duas tabelas a cada chamada.
func TestRelatorioTotais_ContagensAtuais(t *testing.T) {
	clienteRepo := &fakeClienteRepo{}
	produtoRepo := &fakeProdutoRepo{}
	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	produtoUC := usecase.NewProdutoUseCase(produtoRepo)
	relatorioUC := usecase.NewRelatorioUseCase(clienteRepo, produtoRepo)

	for _, nome := range []string{"Maria", "José", "Paula"} {
		require.NoError(t, clienteUC.Create(context.Background(), dto.ClienteInput{
			Nome: nome, Email: nome + "@exemplo.com", Telefone: "11999990000",
		}))
	}
	for _, nome := range []string{"Shampoo", "Esmalte"} {
		require.NoError(t, produtoUC.Create(context.Background(), dto.ProdutoInput{
			Nome: nome, Custo: decimal.NewFromInt(10), PrecoVenda: decimal.NewFromInt(25),
		}))
	}

	totais, err := relatorioUC.Totais(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 3, totais.TotalClientes)
	assert.EqualValues(t, 2, totais.TotalProdutos)
}

// Sem registros, o relatório devolve zeros.
func TestRelatorioTotais_Vazio(t *testing.T) {
	relatorioUC := usecase.NewRelatorioUseCase(&fakeClienteRepo{}, &fakeProdutoRepo{})

	totais, err := relatorioUC.Totais(context.Background())
	require.NoError(t, err)
	assert.Zero(t, totais.TotalClientes)
	assert.Zero(t, totais.TotalProdutos)
}

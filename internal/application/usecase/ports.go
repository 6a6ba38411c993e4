package usecase

import (
	"context"

	"github.com/jvcastro/salao-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. Garante que mutação de funcionário e
// respectivo registro de atividade aconteçam ambos ou nenhum.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		funcRepo repository.FuncionarioRepository,
		ativRepo repository.AtividadeRepository,
	) error) error
}

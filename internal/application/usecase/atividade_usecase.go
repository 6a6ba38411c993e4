package usecase

import (
	"context"

	"github.com/jvcastro/salao-api/internal/application/dto"
	"github.com/jvcastro/salao-api/internal/domain/repository"
)

// AtividadeUseCase leitura da trilha de atividades. A escrita acontece junto
// com as mutações de funcionário (ver FuncionarioUseCase).
type AtividadeUseCase struct {
	repo repository.AtividadeRepository
}

// NewAtividadeUseCase constrói o caso de uso.
func NewAtividadeUseCase(repo repository.AtividadeRepository) *AtividadeUseCase {
	return &AtividadeUseCase{repo: repo}
}

// List devolve todos os registros da trilha.
func (uc *AtividadeUseCase) List(ctx context.Context) ([]dto.AtividadeResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AtividadeResponse, 0, len(list))
	for _, a := range list {
		items = append(items, dto.AtividadeResponse{
			ID:        a.ID,
			UsuarioID: a.UsuarioID,
			Acao:      a.Acao,
			DataHora:  a.DataHora,
		})
	}
	return items, nil
}

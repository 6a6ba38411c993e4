package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jvcastro/salao-api/internal/application/dto"
	"github.com/jvcastro/salao-api/internal/domain"
	"github.com/jvcastro/salao-api/internal/domain/entity"
	"github.com/jvcastro/salao-api/internal/domain/repository"
)

// FuncionarioUseCase casos de uso de funcionários. Toda mutação grava também
// o registro de atividade correspondente, na mesma transação.
type FuncionarioUseCase struct {
	repo repository.FuncionarioRepository
	tx   TxRunner
}

// NewFuncionarioUseCase constrói o caso de uso.
func NewFuncionarioUseCase(repo repository.FuncionarioRepository, tx TxRunner) *FuncionarioUseCase {
	return &FuncionarioUseCase{repo: repo, tx: tx}
}

// Create cadastra um funcionário e registra a atividade do usuário que o criou.
func (uc *FuncionarioUseCase) Create(ctx context.Context, usuarioID string, in dto.FuncionarioInput) (*dto.FuncionarioResponse, error) {
	now := time.Now()
	funcionario := &entity.Funcionario{
		ID:        uuid.New().String(),
		Nome:      in.Nome,
		Cargo:     in.Cargo,
		Salario:   in.Salario,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := uc.tx.Run(ctx, func(funcRepo repository.FuncionarioRepository, ativRepo repository.AtividadeRepository) error {
		if err := funcRepo.Create(ctx, funcionario); err != nil {
			return err
		}
		return ativRepo.Append(ctx, novaAtividade(usuarioID, fmt.Sprintf("Funcionário %s cadastrado.", funcionario.Nome)))
	})
	if err != nil {
		return nil, err
	}
	return toFuncionarioResponse(funcionario), nil
}

// GetByID carrega um funcionário para pré-preencher o formulário de edição.
func (uc *FuncionarioUseCase) GetByID(ctx context.Context, id string) (*dto.FuncionarioResponse, error) {
	funcionario, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if funcionario == nil {
		return nil, domain.ErrNaoEncontrado
	}
	return toFuncionarioResponse(funcionario), nil
}

// Update edita um funcionário existente e registra a atividade.
// Devolve ErrNaoEncontrado se o id não existir.
func (uc *FuncionarioUseCase) Update(ctx context.Context, usuarioID, id string, in dto.FuncionarioInput) (*dto.FuncionarioResponse, error) {
	funcionario, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if funcionario == nil {
		return nil, domain.ErrNaoEncontrado
	}
	funcionario.Nome = in.Nome
	funcionario.Cargo = in.Cargo
	funcionario.Salario = in.Salario
	funcionario.UpdatedAt = time.Now()
	err = uc.tx.Run(ctx, func(funcRepo repository.FuncionarioRepository, ativRepo repository.AtividadeRepository) error {
		if err := funcRepo.Update(ctx, funcionario); err != nil {
			return err
		}
		return ativRepo.Append(ctx, novaAtividade(usuarioID, fmt.Sprintf("Funcionário %s editado.", funcionario.Nome)))
	})
	if err != nil {
		return nil, err
	}
	return toFuncionarioResponse(funcionario), nil
}

// Delete remove um funcionário e registra a atividade. Confirma a existência
// antes de remover: id inexistente devolve ErrNaoEncontrado sem efeito algum.
func (uc *FuncionarioUseCase) Delete(ctx context.Context, usuarioID, id string) error {
	funcionario, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if funcionario == nil {
		return domain.ErrNaoEncontrado
	}
	return uc.tx.Run(ctx, func(funcRepo repository.FuncionarioRepository, ativRepo repository.AtividadeRepository) error {
		if err := funcRepo.Delete(ctx, id); err != nil {
			return err
		}
		return ativRepo.Append(ctx, novaAtividade(usuarioID, fmt.Sprintf("Funcionário %s removido.", funcionario.Nome)))
	})
}

// List devolve todos os funcionários, sem ordenação garantida nem paginação.
func (uc *FuncionarioUseCase) List(ctx context.Context) ([]dto.FuncionarioResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FuncionarioResponse, 0, len(list))
	for _, f := range list {
		items = append(items, *toFuncionarioResponse(f))
	}
	return items, nil
}

func novaAtividade(usuarioID, acao string) *entity.Atividade {
	return &entity.Atividade{
		ID:        uuid.New().String(),
		UsuarioID: usuarioID,
		Acao:      acao,
		DataHora:  time.Now(),
	}
}

func toFuncionarioResponse(f *entity.Funcionario) *dto.FuncionarioResponse {
	if f == nil {
		return nil
	}
	return &dto.FuncionarioResponse{
		ID:        f.ID,
		Nome:      f.Nome,
		Cargo:     f.Cargo,
		Salario:   f.Salario,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

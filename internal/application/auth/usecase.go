package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jvcastro/salao-api/internal/application/dto"
	"github.com/jvcastro/salao-api/internal/domain"
	"github.com/jvcastro/salao-api/internal/domain/entity"
	"github.com/jvcastro/salao-api/internal/domain/repository"
	"github.com/jvcastro/salao-api/pkg/session"
)

// SessionConfig configuração para geração do token de sessão.
type SessionConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticação: registro e login.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	sessCfg     SessionConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, sessCfg SessionConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, sessCfg: sessCfg}
}

// Register cria um usuário: hasheia o password com bcrypt e persiste.
// Apenas o primeiro usuário registrado recebe is_admin (contagem == 0 no
// momento do registro); os demais entram sem privilégio.
// Devolve ErrUsernameJaExiste em colisão de username.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UsuarioResponse, error) {
	total, err := uc.usuarioRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	usuario := &entity.Usuario{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		IsAdmin:      total == 0,
		CreatedAt:    time.Now(),
	}
	if err := uc.usuarioRepo.Create(ctx, usuario); err != nil {
		return nil, err
	}
	return toUsuarioResponse(usuario), nil
}

// Login verifica username/password e gera o token de sessão assinado.
// Username desconhecido e senha errada devolvem o mesmo ErrCredenciaisInvalidas
// para não permitir enumeração de usuários.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := uc.usuarioRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrCredenciaisInvalidas
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrCredenciaisInvalidas
	}
	token, err := session.Generate(uc.sessCfg.Secret, usuario.ID, usuario.Username, usuario.IsAdmin, uc.sessCfg.Issuer, uc.sessCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Usuario: *toUsuarioResponse(usuario),
	}, nil
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:        u.ID,
		Username:  u.Username,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}

package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNaoEncontrado        = errors.New("recurso não encontrado")
	ErrUsernameJaExiste     = errors.New("nome de usuário já existe")
	ErrCredenciaisInvalidas = errors.New("nome de usuário ou senha incorretos")
	ErrCampoObrigatorio     = errors.New("campo obrigatório não preenchido")
	ErrNumeroInvalido       = errors.New("valor numérico inválido")
	ErrNaoAutenticado       = errors.New("não autenticado")
	ErrNaoAutorizado        = errors.New("acesso restrito a administradores")
)

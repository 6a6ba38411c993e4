package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jvcastro/salao-api/internal/application/auth"
	"github.com/jvcastro/salao-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	FuncionarioUC *usecase.FuncionarioUseCase
	ClienteUC     *usecase.ClienteUseCase
	ProdutoUC     *usecase.ProdutoUseCase
	AtividadeUC   *usecase.AtividadeUseCase
	RelatorioUC   *usecase.RelatorioUseCase
	AppName       string
	SessionSecret string
	SessionExp    int
}

// Router registra as rotas da aplicação. A sessão é resolvida uma vez por
// requisição; os gates de login/admin vêm depois, por rota.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(ResolverSessao(deps.SessionSecret))

	indexHandler := NewIndexHandler(deps.AppName)
	app.Get("/", indexHandler.Mostrar)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.SessionExp)
	app.Post("/registrar", authHandler.Registrar)
	app.Post("/login", authHandler.Login)
	app.Get("/logout", authHandler.Logout)

	// Funcionários e trilha de atividades (admin)
	funcionarioHandler := NewFuncionarioHandler(deps.FuncionarioUC)
	app.Post("/cadastrar_funcionario", ExigirAdmin(), funcionarioHandler.Cadastrar)
	app.Get("/editar_funcionario/:id", ExigirAdmin(), funcionarioHandler.EditarForm)
	app.Post("/editar_funcionario/:id", ExigirAdmin(), funcionarioHandler.Editar)
	app.Post("/remover_funcionario/:id", ExigirAdmin(), funcionarioHandler.Remover)
	app.Get("/listar_funcionarios", ExigirAdmin(), funcionarioHandler.Listar)

	atividadeHandler := NewAtividadeHandler(deps.AtividadeUC)
	app.Get("/registro_atividades", ExigirAdmin(), atividadeHandler.Listar)

	// Clientes, produtos e relatório (autenticado)
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	app.Post("/cadastrar_cliente", ExigirLogin(), clienteHandler.Cadastrar)

	produtoHandler := NewProdutoHandler(deps.ProdutoUC)
	app.Post("/cadastrar_produto", ExigirLogin(), produtoHandler.Cadastrar)

	relatorioHandler := NewRelatorioHandler(deps.RelatorioUC)
	app.Get("/relatorio", ExigirLogin(), relatorioHandler.Mostrar)
}

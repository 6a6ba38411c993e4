package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jvcastro/salao-api/internal/application/auth"
	"github.com/jvcastro/salao-api/internal/application/usecase"
	"github.com/jvcastro/salao-api/internal/infrastructure/postgres"
	appHTTP "github.com/jvcastro/salao-api/internal/interfaces/http"
	"github.com/jvcastro/salao-api/pkg/config"
	"github.com/jvcastro/salao-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	// Migração idempotente do esquema, uma vez no arranque.
	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migração do esquema")
	}
	log.Info().Msg("esquema verificado")

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	produtoRepo := postgres.NewProdutoRepository(pool)
	funcionarioRepo := postgres.NewFuncionarioRepository(pool)
	atividadeRepo := postgres.NewAtividadeRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.SessionConfig{
		Secret:     cfg.Session.Secret,
		ExpMinutes: cfg.Session.Expiration,
		Issuer:     cfg.Session.Issuer,
	})
	funcionarioUC := usecase.NewFuncionarioUseCase(funcionarioRepo, txRunner)
	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	produtoUC := usecase.NewProdutoUseCase(produtoRepo)
	atividadeUC := usecase.NewAtividadeUseCase(atividadeRepo)
	relatorioUC := usecase.NewRelatorioUseCase(clienteRepo, produtoRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	appHTTP.Router(app, appHTTP.RouterDeps{
		AuthUC:        authUC,
		FuncionarioUC: funcionarioUC,
		ClienteUC:     clienteUC,
		ProdutoUC:     produtoUC,
		AtividadeUC:   atividadeUC,
		RelatorioUC:   relatorioUC,
		AppName:       cfg.App.Name,
		SessionSecret: cfg.Session.Secret,
		SessionExp:    cfg.Session.Expiration,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}

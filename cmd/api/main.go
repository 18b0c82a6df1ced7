package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appcaixa "github.com/adegaplus/pdv-api/internal/application/caixa"
	appinv "github.com/adegaplus/pdv-api/internal/application/inventory"
	"github.com/adegaplus/pdv-api/internal/application/ports"
	"github.com/adegaplus/pdv-api/internal/application/sales"
	"github.com/adegaplus/pdv-api/internal/infrastructure/notify"
	infrapdf "github.com/adegaplus/pdv-api/internal/infrastructure/pdf"
	"github.com/adegaplus/pdv-api/internal/infrastructure/postgres"
	httpRouter "github.com/adegaplus/pdv-api/internal/interfaces/http"
	"github.com/adegaplus/pdv-api/pkg/config"
	"github.com/adegaplus/pdv-api/pkg/logger"
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

	// Repositórios atados ao pool (leituras fora de transação).
	produtoRepo := postgres.NewProdutoRepository(pool)
	movRepo := postgres.NewMovimentoEstoqueRepository(pool)
	vendaRepo := postgres.NewVendaRepository(pool)
	sessaoRepo := postgres.NewSessaoCaixaRepository(pool)
	meioPagamentoRepo := postgres.NewMeioPagamentoRepository(pool)
	compostoRepo := postgres.NewCompostoRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Publicador de eventos: Redis quando configurado, nulo caso contrário.
	var notificador ports.Notificador = ports.NotificadorNulo{}
	if cfg.Redis.Addr != "" {
		redisNotifier, err := notify.NewRedisNotifier(cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("conexão ao Redis")
		}
		defer redisNotifier.Close()
		notificador = redisNotifier
	}

	entradaUC := appinv.NewEntradaEstoqueUseCase(txRunner, notificador)
	saidaManualUC := appinv.NewSaidaManualUseCase(txRunner, notificador)
	movimentosUC := appinv.NewConsultaMovimentosUseCase(movRepo)

	criarVendaUC := sales.NewCriarVendaUseCase(txRunner, produtoRepo, compostoRepo, meioPagamentoRepo, notificador)
	cancelarVendaUC := sales.NewCancelarVendaUseCase(txRunner, notificador)
	editarVendaUC := sales.NewEditarVendaUseCase(txRunner, produtoRepo, compostoRepo, notificador)
	consultaVendaUC := sales.NewConsultaVendasUseCase(vendaRepo)

	relatorioPDF := infrapdf.NewRelatorioCaixaGenerator(cfg.App.Name)
	caixaUC := appcaixa.NewSessaoCaixaUseCase(txRunner, sessaoRepo, vendaRepo, relatorioPDF)

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

	httpRouter.Router(app, httpRouter.RouterDeps{
		CriarVenda:    criarVendaUC,
		CancelarVenda: cancelarVendaUC,
		EditarVenda:   editarVendaUC,
		ConsultaVenda: consultaVendaUC,
		Entrada:       entradaUC,
		SaidaManual:   saidaManualUC,
		Movimentos:    movimentosUC,
		Caixa:         caixaUC,
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
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}

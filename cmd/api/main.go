package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jcastrillo/restopos-api/internal/application/usecase"
	infrapdf "github.com/jcastrillo/restopos-api/internal/infrastructure/pdf"
	"github.com/jcastrillo/restopos-api/internal/infrastructure/postgres"
	httpRouter "github.com/jcastrillo/restopos-api/internal/interfaces/http"
	"github.com/jcastrillo/restopos-api/pkg/config"
	"github.com/jcastrillo/restopos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	insumoRepo := postgres.NewInsumoRepository(pool)
	proveedorRepo := postgres.NewProveedorRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	gastoRepo := postgres.NewGastoRepository(pool)
	compraRepo := postgres.NewCompraRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	subRecetaRepo := postgres.NewSubRecetaRepository(pool)
	recetaRepo := postgres.NewRecetaRepository(pool)
	movimientoRepo := postgres.NewMovimientoRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	voucherGenerator := infrapdf.NewMarotoVoucherGenerator()

	catalogo := usecase.CatalogoDeRepositorio{Repo: insumoRepo}
	recetario := usecase.RecetarioDeRepositorio{Repo: recetaRepo}
	subRecetario := usecase.SubRecetarioDeRepositorio{Repo: subRecetaRepo}

	insumoUC := usecase.NewInsumoUseCase(insumoRepo)
	proveedorUC := usecase.NewProveedorUseCase(proveedorRepo)
	categoriaUC := usecase.NewCategoriaUseCase(categoriaRepo)
	gastoUC := usecase.NewGastoUseCase(gastoRepo)
	compraUC := usecase.NewCompraUseCase(txRunner, insumoRepo, proveedorRepo, compraRepo)
	productoUC := usecase.NewProductoUseCase(productoRepo, catalogo, recetario)
	subRecetaUC := usecase.NewSubRecetaUseCase(subRecetaRepo, catalogo)
	recetaUC := usecase.NewRecetaUseCase(recetaRepo, subRecetario, catalogo)
	movimientoUC := usecase.NewMovimientoUseCase(movimientoRepo, insumoRepo, compraRepo, voucherGenerator)

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
		InsumoUC:     insumoUC,
		ProveedorUC:  proveedorUC,
		CategoriaUC:  categoriaUC,
		GastoUC:      gastoUC,
		CompraUC:     compraUC,
		ProductoUC:   productoUC,
		SubRecetaUC:  subRecetaUC,
		RecetaUC:     recetaUC,
		MovimientoUC: movimientoUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

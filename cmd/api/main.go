package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/vinilos-api/internal/application/inventory"
	"github.com/jhoicas/vinilos-api/internal/application/receipt"
	"github.com/jhoicas/vinilos-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/vinilos-api/internal/infrastructure/pdf"
	"github.com/jhoicas/vinilos-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/vinilos-api/internal/interfaces/http"
	"github.com/jhoicas/vinilos-api/pkg/config"
	"github.com/jhoicas/vinilos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	recordRepo := postgres.NewRecordRepository(pool)
	artistRepo := postgres.NewArtistRepository(pool)
	genreRepo := postgres.NewGenreRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	statusRepo := postgres.NewStatusRepository(pool)
	shipmentRepo := postgres.NewShipmentRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	recordUC := usecase.NewRecordUseCase(recordRepo, artistRepo, genreRepo)
	artistUC := usecase.NewArtistUseCase(artistRepo)
	genreUC := usecase.NewGenreUseCase(genreRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	statusUC := usecase.NewStatusUseCase(statusRepo)
	shipmentUC := inventory.NewShipmentUseCase(txRunner, shipmentRepo, supplierRepo)
	saleUC := inventory.NewSaleUseCase(txRunner, saleRepo)

	// PDF: recibo de venta
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	receiptUC := receipt.NewUseCase(saleRepo, recordRepo, artistRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Vinilos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		RecordUC:   recordUC,
		ArtistUC:   artistUC,
		GenreUC:    genreUC,
		SupplierUC: supplierUC,
		StatusUC:   statusUC,
		ShipmentUC: shipmentUC,
		SaleUC:     saleUC,
		ReceiptUC:  receiptUC,
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

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

	_ "github.com/jhoicas/compras-dashboard/docs"
	appanalytics "github.com/jhoicas/compras-dashboard/internal/application/analytics"
	"github.com/jhoicas/compras-dashboard/internal/bootstrap"
	infrapdf "github.com/jhoicas/compras-dashboard/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/compras-dashboard/internal/interfaces/http"
	"github.com/jhoicas/compras-dashboard/pkg/config"
	"github.com/jhoicas/compras-dashboard/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("source", cfg.Dataset.Source).
		Msg("iniciando aplicación")

	// Snapshot inmutable: se carga una sola vez al arrancar.
	ctx := context.Background()
	dataset, err := bootstrap.LoadDataset(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("carga del snapshot")
	}

	dashboardUC, err := bootstrap.DashboardUseCase(dataset, cfg.Dashboard, log)
	if err != nil {
		log.Fatal().Err(err).Msg("configuración del dashboard")
	}

	// PDF: exportación del resumen filtrado
	pdfGenerator := infrapdf.NewMarotoReportGenerator(cfg.App.Name)
	reportUC := appanalytics.NewReportUseCase(dashboardUC, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Compras Dashboard API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":      "ok",
			"service":     cfg.App.Name,
			"snapshot_id": dataset.ID(),
			"lines":       dataset.Len(),
		})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
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

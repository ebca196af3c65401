package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appanalytics "github.com/tu-usuario/distribuidora-pdv/internal/application/analytics"
	"github.com/tu-usuario/distribuidora-pdv/internal/application/auth"
	"github.com/tu-usuario/distribuidora-pdv/internal/application/inventory"
	"github.com/tu-usuario/distribuidora-pdv/internal/application/orders"
	"github.com/tu-usuario/distribuidora-pdv/internal/application/receipts"
	"github.com/tu-usuario/distribuidora-pdv/internal/application/usecase"
	infrapdf "github.com/tu-usuario/distribuidora-pdv/internal/infrastructure/pdf"
	"github.com/tu-usuario/distribuidora-pdv/internal/infrastructure/sqlite"
	httpRouter "github.com/tu-usuario/distribuidora-pdv/internal/interfaces/http"
	"github.com/tu-usuario/distribuidora-pdv/pkg/config"
	"github.com/tu-usuario/distribuidora-pdv/pkg/logger"
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
	db, err := sqlite.Open(ctx, cfg.Store.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir base de datos")
	}
	defer db.Close()

	productRepo := sqlite.NewProductRepository(db)
	customerRepo := sqlite.NewCustomerRepository(db)
	orderRepo := sqlite.NewOrderRepository(db)
	movementRepo := sqlite.NewStockMovementRepository(db)
	userRepo := sqlite.NewUserRepository(db)
	analyticsRepo := sqlite.NewAnalyticsRepository(db)
	txRunner := sqlite.NewTxRunner(db)

	productUC := usecase.NewProductUseCase(productRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	orderUC := orders.NewUseCase(orderRepo, txRunner)
	inventoryUC := inventory.NewUseCase(movementRepo, txRunner)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)
	receiptUC := receipts.NewUseCase(orderRepo, infrapdf.NewMarotoReceiptGenerator())
	authUC := auth.NewUseCase(userRepo, cfg.JWT)

	// Siembra del admin en cada arranque; si ya existe no toca nada.
	if err := authUC.SeedAdmin(cfg.Admin.SeedPassword); err != nil {
		log.Error().Err(err).Msg("sembrar cuenta admin")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		CustomerUC:  customerUC,
		UserUC:      userUC,
		OrderUC:     orderUC,
		InventoryUC: inventoryUC,
		DashboardUC: dashboardUC,
		ReceiptUC:   receiptUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
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

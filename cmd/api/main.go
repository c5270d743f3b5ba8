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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Logistica-api/internal/application/fleet"
	"github.com/jhoicas/Logistica-api/internal/application/inventory"
	"github.com/jhoicas/Logistica-api/internal/domain/entity"
	"github.com/jhoicas/Logistica-api/internal/domain/repository"
	"github.com/jhoicas/Logistica-api/internal/infrastructure/memory"
	"github.com/jhoicas/Logistica-api/internal/infrastructure/migration"
	"github.com/jhoicas/Logistica-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Logistica-api/internal/interfaces/http"
	"github.com/jhoicas/Logistica-api/pkg/config"
	"github.com/jhoicas/Logistica-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

// stores puertos del libro según el driver elegido.
type stores struct {
	tx          inventory.TxRunner
	stockItems  repository.StockItemRepository
	movements   repository.MovementRepository
	vehicles    repository.VehicleRepository
	maintenance repository.MaintenanceRepository
	close       func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st := openStores(ctx, cfg, log)
	defer st.close()

	fuelLog := log.Component("fuel")
	entryUC := inventory.NewRecordEntryUseCase(st.tx, inventory.CostAllocationConfig{BranchIDs: cfg.Accounting.CostBranchIDs}, fuelLog)
	consumptionUC := inventory.NewRecordConsumptionUseCase(st.tx, fuelLog)
	reversalUC := inventory.NewReverseMovementUseCase(st.tx, fuelLog)
	ledgerUC := inventory.NewLedgerQueryUseCase(st.stockItems, st.movements)
	alertsUC := fleet.NewMaintenanceAlertUseCase(st.vehicles, st.maintenance)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	httpLog := log.Component("http")
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(httpLog))

	// Swagger UI en http://localhost:<port>/docs (solo si el archivo está presente)
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Logística API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		RecordEntry:       entryUC,
		RecordConsumption: consumptionUC,
		ReverseMovement:   reversalUC,
		LedgerQuery:       ledgerUC,
		MaintenanceAlerts: alertsUC,
		JWTSecret:         cfg.JWT.Secret,
		JWTIssuer:         cfg.JWT.Issuer,
		Log:               httpLog,
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

func openStores(ctx context.Context, cfg *config.Config, log *logger.Logger) stores {
	if cfg.Store.Driver == config.StoreDriverMemory {
		store := memory.New()
		seedDevelopment(store)
		log.Warn().Msg("store en memoria: los datos se pierden al reiniciar")
		return stores{
			tx:          store,
			stockItems:  store.StockItems(),
			movements:   store.Movements(),
			vehicles:    store.Vehicles(),
			maintenance: store.Maintenance(),
			close:       func() {},
		}
	}

	if cfg.Store.AutoMigrate {
		m, err := migration.New(cfg.DB.ConnectionString(), log.Component("migrate"))
		if err != nil {
			log.Fatal().Err(err).Msg("inicializar migraciones")
		}
		if err := m.Up(); err != nil {
			log.Fatal().Err(err).Msg("aplicar migraciones")
		}
		if err := m.Close(); err != nil {
			log.Warn().Err(err).Msg("cerrar migrador")
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	repos := postgres.NewRepositories(pool)
	return stores{
		tx:          postgres.NewTxRunner(pool),
		stockItems:  repos.StockItems,
		movements:   repos.Movements,
		vehicles:    repos.Vehicles,
		maintenance: repos.Maintenance,
		close:       pool.Close,
	}
}

// seedDevelopment datos mínimos para probar la API sin base de datos.
func seedDevelopment(store *memory.Store) {
	store.AddStockItem(entity.StockItem{
		ID:             1,
		Name:           "Diésel S10",
		UnitOfMeasure:  "L",
		QuantityOnHand: decimal.Zero,
		LastUnitPrice:  decimal.Zero,
		UpdatedAt:      time.Now(),
	})
	store.AddVehicle(entity.Vehicle{ID: 1, Plate: "DEV-0001", BranchID: 1, Active: true, UpdatedAt: time.Now()})
	store.AddPlan(entity.MaintenancePlan{ServiceType: "Troca de Óleo", IntervalKm: 10000})
}

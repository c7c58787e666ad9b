// Файл: main.go

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"recruitment-form/internal/branchselect"
	"recruitment-form/internal/integrations"
	"recruitment-form/internal/integrations/bigquery"
	"recruitment-form/internal/integrations/directory"
	"recruitment-form/internal/integrations/postgres"
	"recruitment-form/internal/repositories"
	"recruitment-form/internal/routes"
	"recruitment-form/internal/services"
	"recruitment-form/pkg/config"
	"recruitment-form/pkg/database/postgresql"
	applogger "recruitment-form/pkg/logger"
	"recruitment-form/pkg/validation"
)

func main() {
	// 1. Конфиг и логгер
	cfg := config.New()
	var outputs []string
	if cfg.Log.File != "" {
		outputs = append(outputs, cfg.Log.File)
	}
	logger := applogger.NewLogger(cfg.Log.Level, outputs...)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Хранилище филиалов
	registry := integrations.NewRegistry()
	cleanup := setupWarehouse(ctx, cfg, registry, logger)
	defer cleanup()

	// 3. Кеш справочника (может быть nil)
	cacheRepo, closeCache := setupCache(ctx, cfg, logger)
	defer closeCache()

	// 4. Сервисы
	branchService := services.NewBranchService(registry, cacheRepo, services.BranchServiceOptions{
		ServiceName:  cfg.Server.ServiceName,
		QueryTimeout: cfg.Warehouse.Timeout,
		CacheTTL:     cfg.Redis.CacheTTL,
	}, logger)
	validator := validation.New()
	applicationService := services.NewApplicationService(validator, logger)

	// Страница выбора филиала ходит либо в удалённый справочник, либо в сервис этого процесса.
	var selectSource branchselect.Source = branchService
	if cfg.Directory.URL != "" {
		selectSource = directory.New(cfg.Directory.URL, cfg.Directory.Timeout, logger)
		logger.Info("Страница выбора филиала использует удалённый справочник", zap.String("url", cfg.Directory.URL))
	}

	// 5. Роуты
	e := echo.New()
	e.HideBanner = true
	e.Validator = validator
	if err := routes.InitRouter(e, routes.Dependencies{
		BranchService:      branchService,
		ApplicationService: applicationService,
		SelectSource:       selectSource,
	}, cfg, logger); err != nil {
		logger.Fatal("Ошибка инициализации маршрутов", zap.Error(err))
	}

	// 6. Запускаем сервер
	go func() {
		logger.Info("🚀 Сервер запущен", zap.String("port", cfg.Server.Port))
		if err := e.Start(":" + cfg.Server.Port); err != nil {
			logger.Info("Сервер остановлен", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Ошибка остановки сервера", zap.Error(err))
	}
}

// setupWarehouse регистрирует провайдера по WAREHOUSE_DRIVER. Если хранилище
// недоступно, сервер всё равно стартует и отдаёт запасной список.
func setupWarehouse(ctx context.Context, cfg *config.Config, registry integrations.RegistryInterface, logger *zap.Logger) func() {
	noop := func() {}
	wh := cfg.Warehouse

	var provider integrations.DataProvider
	cleanup := noop

	switch wh.Driver {
	case config.DriverBigQuery:
		p, err := bigquery.New(ctx, bigquery.Options{
			ProjectID: wh.BigQuery.ProjectID,
			Dataset:   wh.BigQuery.Dataset,
			Table:     wh.BigQuery.Table,
			Location:  wh.BigQuery.Location,
			Statuses:  wh.Statuses,
			Limit:     wh.Limit,
		}, logger)
		if err != nil {
			logger.Error("BigQuery недоступен, работаем на запасном списке", zap.Error(err))
			return noop
		}
		provider = p
		cleanup = func() {
			if err := registry.Close(); err != nil {
				logger.Warn("Ошибка закрытия хранилища", zap.Error(err))
			}
		}

	case config.DriverPostgres:
		pool, err := postgresql.ConnectDB(ctx, wh.Postgres.DSN)
		if err != nil {
			logger.Error("Postgres недоступен, работаем на запасном списке", zap.Error(err))
			return noop
		}
		if wh.Postgres.Migrate {
			if err := postgresql.Migrate(ctx, pool); err != nil {
				logger.Error("Ошибка миграций хранилища", zap.Error(err))
			}
		}
		p, err := postgres.New(pool, postgres.Options{
			Table:    wh.Postgres.Table,
			Statuses: wh.Statuses,
			Limit:    wh.Limit,
		}, logger)
		if err != nil {
			pool.Close()
			logger.Fatal("Неверная настройка хранилища Postgres", zap.Error(err))
		}
		provider = p
		cleanup = pool.Close

	case config.DriverNone:
		logger.Warn("Хранилище не настроено, справочник всегда отдаёт запасной список")
		return noop

	default:
		logger.Fatal("Неизвестный WAREHOUSE_DRIVER", zap.String("driver", wh.Driver))
	}

	if err := registry.Register(provider); err != nil {
		logger.Fatal("Ошибка регистрации провайдера", zap.Error(err))
	}
	if err := registry.SetActive(provider.Name()); err != nil {
		logger.Fatal("Ошибка активации провайдера", zap.Error(err))
	}
	logger.Info("Хранилище филиалов подключено",
		zap.String("active", provider.Name()),
		zap.Strings("registered", registry.Names()),
	)
	return cleanup
}

// setupCache: Redis, если задан REDIS_ADDRESS и он отвечает. Иначе кеша нет
// и каждый запрос идёт в хранилище.
func setupCache(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repositories.CacheRepositoryInterface, func()) {
	if cfg.Redis.Address == "" {
		logger.Info("REDIS_ADDRESS не задан, кеш справочника отключён")
		return nil, func() {}
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		logger.Warn("Redis недоступен, кеш справочника отключён", zap.Error(err), zap.String("address", cfg.Redis.Address))
		_ = redisClient.Close()
		return nil, func() {}
	}
	return repositories.NewRedisCacheRepository(redisClient), func() { _ = redisClient.Close() }
}

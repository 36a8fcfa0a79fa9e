package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"

	storefrontserver "github.com/Apurer/delish-express/go"

	cartapp "github.com/Apurer/delish-express/internal/domains/cart/application"
	catalogmemory "github.com/Apurer/delish-express/internal/domains/catalog/adapters/memory"
	catalogpostgres "github.com/Apurer/delish-express/internal/domains/catalog/adapters/persistence/postgres"
	catalogapp "github.com/Apurer/delish-express/internal/domains/catalog/application"
	catalogdomain "github.com/Apurer/delish-express/internal/domains/catalog/domain"
	catalogports "github.com/Apurer/delish-express/internal/domains/catalog/ports"
	checkoutobs "github.com/Apurer/delish-express/internal/domains/checkout/adapters/observability"
	checkoutapp "github.com/Apurer/delish-express/internal/domains/checkout/application"
	ordersmemory "github.com/Apurer/delish-express/internal/domains/orders/adapters/memory"
	orderskafka "github.com/Apurer/delish-express/internal/domains/orders/adapters/messaging/kafka"
	ordersobs "github.com/Apurer/delish-express/internal/domains/orders/adapters/observability"
	ordersworkflows "github.com/Apurer/delish-express/internal/domains/orders/adapters/workflows"
	ordersapp "github.com/Apurer/delish-express/internal/domains/orders/application"
	ordersports "github.com/Apurer/delish-express/internal/domains/orders/ports"
	profilememory "github.com/Apurer/delish-express/internal/domains/profile/adapters/memory"
	profileapp "github.com/Apurer/delish-express/internal/domains/profile/application"
	platformobservability "github.com/Apurer/delish-express/internal/platform/observability"
	platformpostgres "github.com/Apurer/delish-express/internal/platform/postgres"
	"github.com/Apurer/delish-express/internal/platform/scheduler"
	"github.com/Apurer/delish-express/internal/shared/notify"
)

// Run boots the storefront HTTP server with observability, repositories and order tracking wired.
func Run(ctx context.Context, cfg Config) error {
	const serviceName = "delish-express-api"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	catalogRepo, cleanupRepo := buildCatalogRepository(ctx, cfg, logger)
	defer cleanupRepo()
	catalogService := catalogapp.NewService(catalogRepo)
	restaurants, err := catalogService.ListRestaurants(ctx, catalogdomain.DefaultFilterSelection())
	if err != nil {
		return fmt.Errorf("failed to load restaurant catalog: %w", err)
	}
	session := storefrontserver.NewSession(restaurants)
	notifier := notify.Fanout{session.Notices(), notify.NewLogger(logger)}

	orderRepo := ordersmemory.NewRepository()
	tracker, cleanupTracker := buildTracker(ctx, cfg, instruments, orderRepo)
	defer cleanupTracker()
	orderService := ordersobs.New(
		ordersapp.NewService(orderRepo, tracker,
			ordersapp.WithLogger(logger),
			ordersapp.WithDeliveryFee(cfg.DeliveryFee),
			ordersapp.WithEstimatedDelivery(cfg.EstimatedDelivery),
			ordersapp.WithStageDelay(cfg.StageDelay),
		),
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)
	cartService := cartapp.NewService(catalogService, cartapp.WithNotifier(notifier), cartapp.WithLogger(logger))
	checkoutService := checkoutobs.New(
		checkoutapp.NewService(orderService, checkoutapp.WithNotifier(notifier), checkoutapp.WithLogger(logger)),
		checkoutobs.WithLogger(logger),
		checkoutobs.WithTracer(instruments.Tracer("internal.checkout.application")),
		checkoutobs.WithMeter(instruments.Meter("internal.checkout.application")),
	)
	profileService := profileapp.NewService(profilememory.NewSeededRepository(), orderService)

	handlers := storefrontserver.ApiHandleFunctions{
		RestaurantsAPI: storefrontserver.NewRestaurantsAPI(catalogService, session),
		CartAPI:        storefrontserver.NewCartAPI(cartService, session),
		CheckoutAPI:    storefrontserver.NewCheckoutAPI(checkoutService, session),
		OrdersAPI:      storefrontserver.NewOrdersAPI(orderService, session),
		ProfileAPI:     storefrontserver.NewProfileAPI(profileService, session),
	}
	pages, err := storefrontserver.NewPages(handlers.RestaurantsAPI, handlers.CartAPI, handlers.CheckoutAPI, handlers.OrdersAPI, handlers.ProfileAPI)
	if err != nil {
		return fmt.Errorf("failed to parse page templates: %w", err)
	}
	handlers.Pages = pages

	router := gin.Default()
	router.Use(otelgin.Middleware(serviceName))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Location"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router = storefrontserver.NewRouterWithGinEngine(router, handlers)

	addr := cfg.Addr()
	logger.Info("storefront API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("storefront API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

func buildCatalogRepository(ctx context.Context, cfg Config, logger *slog.Logger) (catalogports.Repository, func()) {
	if cfg.PostgresDSN == "" {
		logger.Warn("POSTGRES_DSN not set, falling back to in-memory restaurant catalog")
		return catalogmemory.NewSeededRepository(), func() {}
	}
	db, err := platformpostgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Warn("failed to connect to postgres, falling back to memory", slog.String("error", err.Error()))
		return catalogmemory.NewSeededRepository(), func() {}
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("failed to unwrap postgres connection, falling back to memory", slog.String("error", err.Error()))
		return catalogmemory.NewSeededRepository(), func() {}
	}
	logger.Info("restaurant catalog configured with postgres")
	return catalogpostgres.NewRepository(db), func() { _ = sqlDB.Close() }
}

// buildTracker prefers the durable Temporal workflow and falls back to
// in-process machines that publish straight to the status observers.
func buildTracker(ctx context.Context, cfg Config, instruments *platformobservability.Instruments, repo ordersports.Repository) (ordersports.Tracker, func()) {
	logger := instruments.Logger
	if temporalClient, err := connectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, tracking orders inline", slog.String("error", err.Error()))
	} else {
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
		return ordersworkflows.NewTemporalTracker(temporalClient, cfg.StageDelay), temporalClient.Close
	}

	publishers := ordersapp.StatusFanout{
		ordersapp.NewStatusProjector(repo),
		ordersapp.NewStatusLogger(logger),
		ordersobs.NewStatusMetrics(instruments.Meter("internal.orders.tracking")),
	}
	var kafkaPublisher *orderskafka.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher = orderskafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaOrderStatusTopic)
		publishers = append(publishers, kafkaPublisher)
		logger.Info("order status events enabled", slog.String("topic", cfg.KafkaOrderStatusTopic))
	}
	tracker := ordersworkflows.NewInlineTracker(scheduler.Real{}, cfg.StageDelay, publishers,
		ordersworkflows.WithInlineLogger(logger))
	return tracker, func() {
		tracker.StopAll()
		if kafkaPublisher != nil {
			if err := kafkaPublisher.Close(); err != nil {
				logger.WarnContext(ctx, "failed to close kafka writer", slog.String("error", err.Error()))
			}
		}
	}
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(effectiveLogger(instruments)),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

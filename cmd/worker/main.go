package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	"github.com/Apurer/delish-express/internal/app/api"
	orderskafka "github.com/Apurer/delish-express/internal/domains/orders/adapters/messaging/kafka"
	ordersobs "github.com/Apurer/delish-express/internal/domains/orders/adapters/observability"
	ordersapp "github.com/Apurer/delish-express/internal/domains/orders/application"
	platformobservability "github.com/Apurer/delish-express/internal/platform/observability"
	orderactivities "github.com/Apurer/delish-express/internal/platform/temporal/activities/orders"
	orderworkflows "github.com/Apurer/delish-express/internal/platform/temporal/workflows/orders"
)

func main() {
	_ = godotenv.Load()
	ctx := context.Background()
	const serviceName = "delish-express-worker"

	cfg, err := api.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	publishers := ordersapp.StatusFanout{
		ordersapp.NewStatusLogger(logger),
		ordersobs.NewStatusMetrics(instruments.Meter("internal.orders.tracking")),
	}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := orderskafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaOrderStatusTopic)
		defer func() {
			if err := kafkaPublisher.Close(); err != nil {
				logger.Warn("failed to close kafka writer", slog.String("error", err.Error()))
			}
		}()
		publishers = append(publishers, kafkaPublisher)
		logger.Info("order status events enabled", slog.String("topic", cfg.KafkaOrderStatusTopic))
	}
	statusActivities := orderactivities.NewActivities(publishers)

	tracerOptions := temporalotel.TracerOptions{Tracer: instruments.Tracer("temporal-worker")}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		logger.Error("failed to configure Temporal tracing interceptor", slog.String("error", err.Error()))
		os.Exit(1)
	}
	clientOptions := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(logger),
	}
	clientOptions.Interceptors = append(clientOptions.Interceptors, tracingInterceptor)
	temporalClient, err := client.Dial(clientOptions)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, orderworkflows.OrderTrackingTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(orderworkflows.OrderTrackingWorkflow, workflow.RegisterOptions{Name: orderworkflows.OrderTrackingWorkflowName})
	w.RegisterActivityWithOptions(statusActivities.RecordStatus, activity.RegisterOptions{Name: orderactivities.RecordStatusActivityName})

	logger.Info("worker listening", slog.String("taskQueue", orderworkflows.OrderTrackingTaskQueue), slog.String("namespace", clientOptions.Namespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pharmacygo/cmd"
	"pharmacygo/internal/adapters/in/events"
	httpin "pharmacygo/internal/adapters/in/http"
	rabbitmqin "pharmacygo/internal/adapters/in/rabbitmq"
	"pharmacygo/internal/adapters/out/eventbus"
	"pharmacygo/internal/adapters/out/postgres"
	rabbitmqout "pharmacygo/internal/adapters/out/rabbitmq"
	"pharmacygo/internal/adapters/out/redisstore"
	"pharmacygo/internal/core/domain/model/order"
	"pharmacygo/internal/core/domain/model/pharmacy"
	"pharmacygo/internal/core/ports"
	"pharmacygo/internal/jobs"
	"pharmacygo/internal/pkg/logger"

	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	zl, err := logger.New(logger.Config{Level: configs.LogLevel, Env: configs.Env, ServiceName: "pharmacygo"})
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}
	defer logger.Sync(zl)

	if err = run(configs, zl); err != nil {
		zl.Error("pharmacygo stopped", zap.Error(err))
		logger.Sync(zl)
		os.Exit(1)
	}
}

func run(configs cmd.Config, zl *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	redisClient, err := redisstore.NewClient(ctx, redisstore.Config{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
		DB:       configs.RedisDB,
	})
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer redisClient.Close()

	app := cmd.NewCompositionRoot(configs, gormDB, zl)

	recordNotification := app.CreateRecordNotificationCommandHandler()
	eventRouter := events.NewRouter(&recordNotification, zl)

	bus, closeBus, err := startMessageBus(ctx, configs, eventRouter, zl)
	if err != nil {
		return err
	}
	defer closeBus()

	publishOutbox := app.CreatePublishOutboxCommandHandler(bus)
	ageStock := app.CreateAgeStockCommandHandler()
	jobManager := jobs.NewJobManager(&publishOutbox, &ageStock, zl)
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	sessions, err := app.CreateSessionManager(redisstore.NewSessionStore(redisClient))
	if err != nil {
		return err
	}

	e, err := httpin.NewRouter(app.CreateRouterConfig(sessions))
	if err != nil {
		return err
	}
	e.Logger.SetLevel(echoLogLevel(configs.LogLevel))

	serverErr := make(chan error, 1)
	go func() {
		zl.Info("http server listening", zap.String("port", configs.HTTPPort))
		serverErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
	}()

	select {
	case err = <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	zl.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// startMessageBus publishes to RabbitMQ and consumes the notification queue
// when a broker URL is configured, and delivers in-process otherwise.
func startMessageBus(
	ctx context.Context,
	configs cmd.Config,
	handler *events.Router,
	zl *zap.Logger,
) (ports.MessageBus, func(), error) {
	if configs.RabbitMQURL == "" {
		zl.Info("no broker configured, delivering events in-process")
		return eventbus.New(handler), func() {}, nil
	}

	conn, err := rabbitmqout.NewConnection(configs.RabbitMQURL, rabbitmqout.DefaultExchange)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	consumeCh, err := conn.Conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("open consumer channel: %w", err)
	}

	consumer, err := rabbitmqin.NewConsumer(consumeCh, rabbitmqin.Config{
		Exchange: rabbitmqout.DefaultExchange,
		Queue:    rabbitmqin.DefaultQueue,
		RoutingKeys: []string{
			order.StatusChangedEventName,
			pharmacy.ApplicationReviewedEventName,
		},
		MaxRetries: 3,
		MessageTTL: 5000,
	}, handler, zl)
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("start consumer: %w", err)
	}
	go consumer.Run(ctx)

	closeFn := func() {
		if err := conn.Close(); err != nil {
			zl.Warn("closing rabbitmq connection", zap.Error(err))
		}
	}
	return rabbitmqout.NewPublisher(conn.Ch, rabbitmqout.DefaultExchange), closeFn, nil
}

func echoLogLevel(level string) log.Lvl {
	switch level {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}

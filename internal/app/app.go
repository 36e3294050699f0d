package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-settlement-service/config"
	"github.com/jeffleon2/draftea-settlement-service/internal/database"
	"github.com/jeffleon2/draftea-settlement-service/internal/gateway"
	handlers "github.com/jeffleon2/draftea-settlement-service/internal/handlers"
	"github.com/jeffleon2/draftea-settlement-service/internal/metrics"
	"github.com/jeffleon2/draftea-settlement-service/internal/publisher"
	"github.com/jeffleon2/draftea-settlement-service/internal/repository/posgrest"
	"github.com/jeffleon2/draftea-settlement-service/internal/service"
	"github.com/jeffleon2/draftea-settlement-service/internal/subscriber"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const shutdownTimeout = 15 * time.Second

type App struct {
	config    *config.Config
	Router    *gin.Engine
	db        *gorm.DB
	publisher *publisher.KafkaPublisher
	consumer  *subscriber.KafkaConsumer
	handler   *handlers.SettlementHandler
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	cfg.APP.ConfigureLogger()

	db, err := cfg.DB.GormConnect()
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}
	a.db = db

	if err := posgrest.Migrate(db); err != nil {
		logrus.Fatalf("failed to auto migrate: %v", err)
	}

	if cfg.APP.IsLocal() {
		if err := database.SeedTransactions(db); err != nil {
			logrus.Warnf("failed to seed transactions: %v", err)
		}
	}

	metrics.RegisterMetrics()

	brokers := strings.Split(cfg.Kafka.Brokers, ",")
	publishTopics := strings.Split(cfg.Kafka.PublishTopics, ",")
	a.publisher = publisher.NewKafkaPublisher(brokers, publishTopics, cfg.Kafka.GetRetryConfig())

	gatewayClient := gateway.NewClient(gateway.Config{
		BaseURL:        cfg.Gateway.BaseURL,
		AuthToken:      cfg.Gateway.AuthToken,
		ConnectTimeout: cfg.Gateway.ConnectTimeout,
		Timeout:        cfg.Gateway.Timeout,
	})
	builder := gateway.NewBuilder(cfg.Gateway.RoutingNumber, cfg.Gateway.AccountNumber)

	transactionRepo := posgrest.NewTransactionRepo(db)
	settlementRepo := posgrest.NewSettlementEventRepo(db)
	dispatcher := service.NewSettlementDispatcher(
		transactionRepo,
		settlementRepo,
		gatewayClient,
		builder,
		a.publisher,
		cfg.Settlement.CreatedBy,
		cfg.Settlement.StorageTimeout,
	)
	a.handler = handlers.NewSettlementHandler(dispatcher, settlementRepo)

	if !cfg.APP.IsLocal() {
		gin.SetMode(gin.ReleaseMode)
	}
	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(a.handler)

	subscriberTopics := strings.Split(cfg.Kafka.SubscriberTopics, ",")
	a.consumer = subscriber.NewMultiTopicConsumer(brokers, subscriberTopics, cfg.Kafka.SettlementConsumerGroup, a.publisher, cfg.Kafka.GetRetryConfig())
}

// Run serves HTTP and consumes the settlement topics until ctx is cancelled,
// then drains both and releases the Kafka and database handles.
func (a *App) Run(ctx context.Context) error {
	a.consumer.Listen(ctx, a.handler.HandleMessage)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", a.config.APP.PORT),
		Handler: a.Router,
	}

	serveErr := make(chan error, 1)
	go func() {
		logrus.Infof("settlement service listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case err := <-serveErr:
		runErr = err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Error shutting down http server: %s", err.Error())
	}

	a.consumer.Wait()
	a.close()

	logrus.Info("Settlement service stopped")
	return runErr
}

func (a *App) close() {
	if err := a.consumer.Close(); err != nil {
		logrus.Errorf("Error closing consumer: %s", err.Error())
	}
	if err := a.publisher.Close(); err != nil {
		logrus.Errorf("Error closing publisher: %s", err.Error())
	}
	if sqlDB, err := a.db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logrus.Errorf("Error closing database: %s", err.Error())
		}
	}
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mrshoofer/mrshoofer/internal/pkg/config"
	"github.com/mrshoofer/mrshoofer/internal/pkg/database"
	"github.com/mrshoofer/mrshoofer/internal/pkg/logger"
	nrpkg "github.com/mrshoofer/mrshoofer/internal/pkg/newrelic"
	nsqpkg "github.com/mrshoofer/mrshoofer/internal/pkg/nsq"
	"github.com/mrshoofer/mrshoofer/internal/pkg/sms"
	nsqHandler "github.com/mrshoofer/mrshoofer/services/notifications/handler/nsq"
	"github.com/mrshoofer/mrshoofer/services/notifications/repository"
	"github.com/mrshoofer/mrshoofer/services/notifications/usecase"
)

// The notifier drains the notification topic and sends each SMS. It is only
// needed when the API runs with NSQ_ADDRESS set.
func main() {
	appName := "mrshoofer-notifier"
	configs := config.InitConfig(config.GetEnv("CONFIG_PATH", ".env"))
	if configs.NSQ.Address == "" && len(configs.NSQ.LookupdAddrs) == 0 {
		log.Fatal("NSQ_ADDRESS or NSQ_LOOKUPD_ADDRESSES is required")
	}

	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, appName, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	smsProvider, err := sms.NewProvider(configs.SMS, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to create SMS provider", logger.Err(err))
	}

	notificationRepo := repository.NewNotificationRepo(configs, postgresClient.GetDB())
	notificationUC := usecase.NewNotificationUC(notificationRepo, smsProvider, configs)
	handler := nsqHandler.NewNotificationHandler(notificationUC, configs)

	consumer, err := nsqpkg.NewConsumer(nsqpkg.ConsumerConfig{
		Topic:       configs.NSQ.Topic,
		Channel:     configs.NSQ.Channel,
		MaxInFlight: configs.NSQ.MaxInFlight,
	}, handler.HandleMessage, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to create NSQ consumer", logger.Err(err))
	}

	if len(configs.NSQ.LookupdAddrs) > 0 {
		err = consumer.ConnectToLookupd(configs.NSQ.LookupdAddrs)
	} else {
		err = consumer.ConnectToNSQD(configs.NSQ.Address)
	}
	if err != nil {
		zapLogger.Fatal("Failed to connect NSQ consumer", logger.Err(err))
	}

	zapLogger.Info("Notifier started",
		logger.String("topic", configs.NSQ.Topic),
		logger.String("channel", configs.NSQ.Channel),
		logger.String("sms_provider", smsProvider.Name()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	zapLogger.Info("Stopping notifier")
	consumer.Stop()
	if nrApp != nil {
		nrApp.Shutdown(5 * time.Second)
	}
}

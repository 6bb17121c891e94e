package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lastmile/dispatch/internal/pkg/config"
	"github.com/lastmile/dispatch/internal/pkg/constants"
	"github.com/lastmile/dispatch/internal/pkg/logger"
	"github.com/lastmile/dispatch/internal/pkg/models"
	nsqpkg "github.com/lastmile/dispatch/internal/pkg/nsq"
)

// The notifier consumes match notifications and delivers them to
// drivers. Delivery is currently a structured log entry; the push
// mechanics live outside this repository.
func main() {
	configs := config.InitConfig("config/notifier.env")

	zapLogger, err := logger.NewZapLogger(logger.Config{
		Level:    configs.Logger.Level,
		FilePath: configs.Logger.FilePath,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)
	defer zapLogger.Close()

	consumer, err := nsqpkg.NewConsumer(
		constants.TopicMatchNotify,
		constants.ChannelNotifier,
		configs.NSQ.Address,
		handleNotification,
	)
	if err != nil {
		zapLogger.Fatal("Failed to start NSQ consumer", logger.Err(err))
	}
	defer consumer.Stop()

	if len(configs.NSQ.LookupdAddresses) > 0 {
		if err := consumer.ConnectToLookupd(configs.NSQ.LookupdAddresses); err != nil {
			zapLogger.Fatal("Failed to connect to NSQ lookupd", logger.Err(err))
		}
	}

	zapLogger.Info("Notifier started",
		logger.String("topic", constants.TopicMatchNotify),
		logger.String("channel", constants.ChannelNotifier))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	sig := <-quit

	zapLogger.Info("Shutting down notifier", logger.String("signal", sig.String()))
}

func handleNotification(body []byte) error {
	var notification models.MatchNotification
	if err := nsqpkg.UnmarshalMessage(body, &notification); err != nil {
		// drop malformed payloads instead of requeueing them forever
		logger.Warn("Dropping malformed match notification", logger.Err(err))
		return nil
	}

	logger.Info("Match notification delivered",
		logger.String("match_id", notification.MatchID),
		logger.String("driver_id", notification.DriverID),
		logger.String("rider_id", notification.RiderID),
		logger.String("trip_id", notification.TripID))
	return nil
}

package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/chokka/chokka-api/apps/notification-processor/internal/processor"
	"github.com/chokka/chokka-api/libs/go/bootstrap"
	"github.com/chokka/chokka-api/libs/go/client/events"
	"github.com/chokka/chokka-api/libs/go/config"
	"github.com/chokka/chokka-api/libs/go/logger"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	rt, err := bootstrap.Init(ctx, ".env", "../../.env")
	if err != nil {
		log.Fatalf("Failed to initialise runtime: %v", err)
	}
	defer func() {
		_ = rt.Shutdown(context.Background())
	}()

	logger.Info("Cold start: initialising notification processor", zap.String("stage", rt.Config.Stage))

	notifier := rt.NewNotifier(ctx)
	app := processor.NewNotificationProcessor(notifier, logger.Log)

	if rt.Config.EventsBackend != config.EventsBackendKafka {
		lambda.Start(app.HandleSQSEvent)
		return
	}

	if len(rt.Config.KafkaBrokers) == 0 {
		logger.Fatal("KAFKA_BROKERS is required for the kafka events backend")
	}

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reader := events.NewKafkaReader(rt.Config.KafkaBrokers, rt.Config.KafkaTopic, rt.Config.KafkaGroupID)
	defer reader.Close()

	if err := app.RunKafka(runCtx, reader); err != nil {
		logger.Error("Kafka consumer stopped", zap.Error(err))
	}
}

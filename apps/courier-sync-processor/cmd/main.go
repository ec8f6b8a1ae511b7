package main

import (
	"context"
	"log"

	"github.com/chokka/chokka-api/apps/courier-sync-processor/internal/processor"
	"github.com/chokka/chokka-api/libs/go/bootstrap"
	"github.com/chokka/chokka-api/libs/go/helpers"
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

	logger.Info("Cold start: initialising courier sync processor", zap.String("stage", rt.Config.Stage))

	svcs, err := rt.BuildServices(ctx)
	if err != nil {
		logger.Fatal("Failed to build services", zap.Error(err))
	}

	app := processor.NewCourierSyncProcessor(svcs.Courier, logger.Log)

	if rt.Config.Stage == helpers.StageLocal {
		// Local runs do a single pass
		if _, err := app.HandleRequest(ctx); err != nil {
			logger.Fatal("Courier sync failed", zap.Error(err))
		}
		return
	}

	lambda.Start(app.HandleRequest)
}

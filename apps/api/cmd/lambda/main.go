//go:build lambda
// +build lambda

package main

import (
	"context"

	_ "github.com/chokka/chokka-api/apps/api/docs"
	"github.com/chokka/chokka-api/apps/api/server"
	"github.com/chokka/chokka-api/libs/go/logger"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title           Chokka API
// @version         1.0
// @description     Storefront and admin API for the Chokka card game shop

// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin token.

var ginLambda *ginadapter.GinLambda

func init() {
	if err := server.InitializeHandlers(context.Background()); err != nil {
		panic(err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	server.InitializeRoutes(r)

	ginLambda = ginadapter.New(r)
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if logger.Log.Core().Enabled(zap.DebugLevel) {
		logger.Debug("Received Lambda request",
			zap.String("path", req.Path),
			zap.String("request", server.DumpLambdaRequest(req)),
		)
	}

	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	defer func() {
		_ = server.Shutdown(context.Background())
	}()
	lambda.Start(Handler)
}

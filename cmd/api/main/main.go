//go:build lambda
// +build lambda

package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"

	"github.com/pranavc1515/email-sender/internal/helpers"
	"github.com/pranavc1515/email-sender/internal/logger"
	"github.com/pranavc1515/email-sender/internal/server"
)

// @title           Email Sender API
// @version         1.0.0
// @description     A REST API for sending emails using Gmail SMTP. Supports single and bulk email sending with both plain text and HTML content.
// @BasePath        /

var ginLambda *ginadapter.GinLambda

func init() {
	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageProd
	}
	logger.InitLogger(stage)

	router, _, err := server.NewRouter(context.Background())
	if err != nil {
		logger.Fatal("Failed to initialize email sender", zap.Error(err))
	}

	ginLambda = ginadapter.New(router)
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger.Debug("Received Lambda request",
		zap.String("path", req.Path),
		zap.String("request", spew.Sdump(req)),
	)

	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	defer func() { _ = logger.Sync() }()
	lambda.Start(Handler)
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"

	"github.com/tunequiz/tunequiz/internal/container"
	"github.com/tunequiz/tunequiz/internal/router"
)

var chiLambda *chiadapter.ChiLambda

func proxy(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return chiLambda.ProxyWithContext(ctx, req)
}

func main() {
	c := container.New()

	r := router.New(router.RouterConfig{
		UserHandler:        c.UserContainer.Handler,
		QuizGenHandler:     c.QuizGenContainer.Handler,
		QuizHistoryHandler: c.QuizHistoryContainer.Handler,
		SessionHandler:     c.SessionContainer.Handler,
		PlaybackHandler:    c.PlaybackContainer.Handler,
		PreferenceHandler:  c.PreferenceContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		chiLambda = chiadapter.New(r)
		lambda.Start(proxy)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("listening on :%s", port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}

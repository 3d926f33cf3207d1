package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"

	"github.com/quizapp/quiz-service/internal/container"
	"github.com/quizapp/quiz-service/internal/router"
)

var chiLambda *chiadapter.ChiLambda

func init() {
	c := container.New()

	r := router.New(router.RouterConfig{
		QuizHandler: c.QuizContainer.Handler,
	})

	chiLambda = chiadapter.New(r)
}

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return chiLambda.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(handler)
}

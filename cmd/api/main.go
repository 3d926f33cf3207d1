package main

import (
	"log"
	"net/http"
	"os"

	"github.com/quizapp/quiz-service/internal/container"
	"github.com/quizapp/quiz-service/internal/router"
)

func main() {
	c := container.New()

	r := router.New(router.RouterConfig{
		QuizHandler: c.QuizContainer.Handler,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("quiz-service listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

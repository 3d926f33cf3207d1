package container

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/quizapp/quiz-service/internal/auth"
	"github.com/quizapp/quiz-service/internal/config"
	"github.com/quizapp/quiz-service/internal/quiz"
	"github.com/quizapp/quiz-service/internal/user"
)

type Container struct {
	QuizContainer *quiz.QuizContainer
	UsersClient   user.Client
}

func New() *Container {
	config.Init()
	auth.Init()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if err := config.DB.AutoMigrate(&quiz.Quiz{}, &quiz.Question{}, &quiz.Submission{}); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	usersClient := user.NewClient(os.Getenv("USERS_SERVICE_URL"), &http.Client{
		Timeout: 10 * time.Second,
	})

	quizContainer := quiz.NewQuizContainer(config.DB, usersClient)

	return &Container{
		QuizContainer: quizContainer,
		UsersClient:   usersClient,
	}
}

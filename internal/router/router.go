package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/quizapp/quiz-service/internal/auth"
	"github.com/quizapp/quiz-service/internal/middlewares"
	"github.com/quizapp/quiz-service/internal/quiz"
)

type RouterConfig struct {
	QuizHandler *quiz.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/quizzes", quiz.Routes(cfg.QuizHandler))

		r.Get("/submissions/me", cfg.QuizHandler.MySubmissions)
		r.Get("/stats/user", cfg.QuizHandler.UserStats)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireRole("ADMIN"))
			r.Get("/stats/admin", cfg.QuizHandler.AdminStats)
		})
	})

	return r
}

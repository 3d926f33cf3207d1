package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/quizapp/quiz-service/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/{id}", h.GetQuiz)
	r.Post("/{id}/submit", h.SubmitQuiz)
	r.Get("/{id}/questions", h.ListQuestions)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole("ADMIN"))

		r.Get("/", h.ListQuizzes)
		r.Post("/", h.CreateQuiz)
		r.Put("/{id}", h.UpdateQuiz)
		r.Delete("/{id}", h.DeleteQuiz)
		r.Post("/{id}/questions", h.CreateQuestions)
		r.Get("/{id}/questions/answers", h.ListQuestionsWithAnswers)
		r.Get("/{id}/submissions", h.ListSubmissions)
	})

	return r
}

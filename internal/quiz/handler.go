package quiz

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/quizapp/quiz-service/internal/auth"
	"github.com/quizapp/quiz-service/internal/config"
	"github.com/quizapp/quiz-service/internal/user"
)

var validate = validator.New()

type Handler struct {
	quizzes     QuizService
	questions   QuestionsService
	submissions SubmissionsService
}

func NewHandler(quizzes QuizService, questions QuestionsService, submissions SubmissionsService) *Handler {
	return &Handler{
		quizzes:     quizzes,
		questions:   questions,
		submissions: submissions,
	}
}

func quizIDFromURL(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}
	return id, nil
}

func actingUser(r *http.Request) (*user.User, error) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		return nil, err
	}
	return &user.User{UserID: claims.UserID, Role: claims.Role}, nil
}

// writeServiceError maps the two domain error kinds to their HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrQuizNotFound), errors.Is(err, ErrQuestionNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrQuizAlreadyAttempted):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, ErrInvalidID):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var payload QuizRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.WithError(err).Error("Invalid request body for quiz creation")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.quizzes.CreateQuiz(r.Context(), payload.toEntity())
	if err != nil {
		log.WithError(err).Error("Failed to create quiz")
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, created)
}

func (h *Handler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	quizID, err := quizIDFromURL(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	u, err := actingUser(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	q, err := h.quizzes.GetQuiz(r.Context(), quizID, u)
	if err != nil {
		if !errors.Is(err, ErrQuizNotFound) && !errors.Is(err, ErrQuizAlreadyAttempted) {
			log.WithError(err).Error("Failed to fetch quiz")
		}
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, q)
}

func (h *Handler) UpdateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	quizID, err := quizIDFromURL(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	var payload QuizRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.WithError(err).Error("Invalid request body for quiz update")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	q := payload.toEntity()
	q.ID = quizID

	updated, err := h.quizzes.UpdateQuiz(r.Context(), q)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, updated)
}

func (h *Handler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	quizzes, err := h.quizzes.GetAllQuizzes(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list quizzes")
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, quizzes)
}

func (h *Handler) DeleteQuiz(w http.ResponseWriter, r *http.Request) {
	quizID, err := quizIDFromURL(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if err := h.quizzes.DeleteQuiz(r.Context(), quizID); err != nil {
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "quiz deleted successfully",
	})
}

func (h *Handler) CreateQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	quizID, err := quizIDFromURL(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	var payload []CreateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.WithError(err).Error("Invalid request body for question creation")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if len(payload) == 0 {
		http.Error(w, "at least one question is required", http.StatusBadRequest)
		return
	}
	for _, q := range payload {
		if err := validate.Struct(q); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	exists, err := h.quizzes.CheckIfQuizExists(r.Context(), quizID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !exists {
		writeServiceError(w, ErrQuizNotFound)
		return
	}

	questions := make([]Question, 0, len(payload))
	for _, q := range payload {
		entity := q.toEntity()
		entity.QuizID = quizID
		questions = append(questions, entity)
	}

	created, err := h.questions.CreateQuestions(r.Context(), questions)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, created)
}

// ListQuestions serves the answer-stripped projection. The admin variant with
// answer keys is ListQuestionsWithAnswers.
func (h *Handler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	quizID, err := quizIDFromURL(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	questions, err := h.questions.GetQuestionsWithoutAnswers(r.Context(), quizID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, questions)
}

func (h *Handler) ListQuestionsWithAnswers(w http.ResponseWriter, r *http.Request) {
	quizID, err := quizIDFromURL(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	questions, err := h.questions.GetQuestionsWithAnswers(r.Context(), quizID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, questions)
}

// SubmitQuiz composes the attempt flow: gate through GetQuiz, score the
// submitted answers, persist the resulting submission.
func (h *Handler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	quizID, err := quizIDFromURL(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	u, err := actingUser(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var payload SubmitQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.WithError(err).Error("Invalid request body for quiz submission")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := h.quizzes.GetQuiz(r.Context(), quizID, u); err != nil {
		writeServiceError(w, err)
		return
	}

	entries := make([]Question, 0, len(payload.Answers))
	for _, a := range payload.Answers {
		entries = append(entries, a.toEntity())
	}

	score, err := h.quizzes.SubmitQuiz(r.Context(), entries)
	if err != nil {
		log.WithError(err).Error("Failed to grade quiz submission")
		writeServiceError(w, err)
		return
	}

	stored, err := h.submissions.SubmitQuizResults(r.Context(), &Submission{
		UserID:       u.UserID,
		QuizID:       quizID,
		TotalCorrect: score,
	})
	if err != nil {
		log.WithError(err).Error("Failed to store quiz submission")
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, SubmitQuizResponse{
		Score:      score,
		Submission: stored,
	})
}

func (h *Handler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	quizID, err := quizIDFromURL(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	token := auth.GetBearerTokenFromContext(r.Context())

	submissions, err := h.submissions.GetSubmissions(r.Context(), quizID, token)
	if err != nil {
		if !errors.Is(err, ErrQuizNotFound) {
			log.WithError(err).Error("Failed to list submissions")
		}
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, submissions)
}

func (h *Handler) MySubmissions(w http.ResponseWriter, r *http.Request) {
	u, err := actingUser(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	summaries, err := h.submissions.GetSubmissionsByUserID(r.Context(), u.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, summaries)
}

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	token := auth.GetBearerTokenFromContext(r.Context())

	stats, err := h.quizzes.GetAdminStats(r.Context(), token)
	if err != nil {
		log.WithError(err).Error("Failed to aggregate admin stats")
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, stats)
}

func (h *Handler) UserStats(w http.ResponseWriter, r *http.Request) {
	u, err := actingUser(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	token := auth.GetBearerTokenFromContext(r.Context())

	stats, err := h.quizzes.GetUserStats(r.Context(), token, u.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, stats)
}

package quiz

import (
	"github.com/quizapp/quiz-service/internal/user"
	"gorm.io/gorm"
)

type QuizContainer struct {
	Handler            *Handler
	QuizService        QuizService
	QuestionsService   QuestionsService
	SubmissionsService SubmissionsService
}

func NewQuizContainer(db *gorm.DB, users user.Client) *QuizContainer {
	quizRepo := NewQuizRepository(db)
	questionRepo := NewQuestionRepository(db)
	submissionRepo := NewSubmissionRepository(db)

	questionsService := NewQuestionsService(questionRepo)
	submissionsService := NewSubmissionsService(submissionRepo, quizRepo, users)
	quizService := NewQuizService(quizRepo, questionsService, submissionsService, users)

	handler := NewHandler(quizService, questionsService, submissionsService)

	return &QuizContainer{
		Handler:            handler,
		QuizService:        quizService,
		QuestionsService:   questionsService,
		SubmissionsService: submissionsService,
	}
}

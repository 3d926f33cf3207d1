package quiz

import (
	"context"

	"github.com/quizapp/quiz-service/internal/config"
)

type QuestionsService interface {
	GetQuestionsWithAnswers(ctx context.Context, quizID int64) ([]Question, error)
	GetQuestionsWithoutAnswers(ctx context.Context, quizID int64) ([]Question, error)
	CreateQuestions(ctx context.Context, questions []Question) ([]Question, error)
	IsAnswerCorrect(ctx context.Context, entry Question) (bool, error)
	FilterQuestionsForUser(questions []Question) []Question
}

type questionsService struct {
	repo QuestionRepository
}

func NewQuestionsService(repo QuestionRepository) QuestionsService {
	return &questionsService{repo: repo}
}

func (s *questionsService) GetQuestionsWithAnswers(ctx context.Context, quizID int64) ([]Question, error) {
	log := config.WithContext(ctx)

	questions, err := s.repo.FindAllByQuizID(quizID)
	if err != nil {
		log.WithError(err).Error("Failed to list questions for quiz")
		return nil, err
	}
	return questions, nil
}

func (s *questionsService) GetQuestionsWithoutAnswers(ctx context.Context, quizID int64) ([]Question, error) {
	questions, err := s.GetQuestionsWithAnswers(ctx, quizID)
	if err != nil {
		return nil, err
	}
	return s.FilterQuestionsForUser(questions), nil
}

func (s *questionsService) CreateQuestions(ctx context.Context, questions []Question) ([]Question, error) {
	log := config.WithContext(ctx)

	created, err := s.repo.SaveAll(questions)
	if err != nil {
		log.WithError(err).Error("Failed to create questions")
		return nil, err
	}

	log.Infof("Created %d questions", len(created))
	return created, nil
}

// IsAnswerCorrect compares the stored answer key against the submitted answer
// for the entry's question id. The comparison is exact and case-sensitive.
func (s *questionsService) IsAnswerCorrect(ctx context.Context, entry Question) (bool, error) {
	log := config.WithContext(ctx)

	canonical, err := s.repo.FindByID(entry.ID)
	if err != nil {
		log.WithError(err).Error("Failed to look up question for grading")
		return false, err
	}
	if canonical == nil {
		log.Warnf("Graded entry references missing question %d", entry.ID)
		return false, ErrQuestionNotFound
	}

	return canonical.Answer == entry.SubmittedAnswer, nil
}

// FilterQuestionsForUser returns answer-stripped copies. Pure, no store access.
func (s *questionsService) FilterQuestionsForUser(questions []Question) []Question {
	filtered := make([]Question, len(questions))
	for i, q := range questions {
		q.Answer = ""
		filtered[i] = q
	}
	return filtered
}

package quiz

import (
	"context"

	"github.com/quizapp/quiz-service/internal/config"
	"github.com/quizapp/quiz-service/internal/user"
)

type QuizService interface {
	GetQuiz(ctx context.Context, quizID int64, u *user.User) (*Quiz, error)
	CreateQuiz(ctx context.Context, q *Quiz) (*Quiz, error)
	UpdateQuiz(ctx context.Context, q *Quiz) (*Quiz, error)
	GetAllQuizzes(ctx context.Context) ([]Quiz, error)
	SubmitQuiz(ctx context.Context, entries []Question) (int64, error)
	DeleteQuiz(ctx context.Context, quizID int64) error
	CheckIfQuizExists(ctx context.Context, quizID int64) (bool, error)
	GetAdminStats(ctx context.Context, token string) (*AdminStats, error)
	GetUserStats(ctx context.Context, token string, userID int64) (*UserStats, error)
}

type quizService struct {
	repo        QuizRepository
	questions   QuestionsService
	submissions SubmissionsService
	users       user.Client
}

func NewQuizService(repo QuizRepository, questions QuestionsService, submissions SubmissionsService, users user.Client) QuizService {
	return &quizService{
		repo:        repo,
		questions:   questions,
		submissions: submissions,
		users:       users,
	}
}

// GetQuiz is the user-facing gated fetch: the quiz must exist, be active, and
// not have been attempted by the caller yet. An inactive quiz is reported the
// same as a missing one. Nested questions come back answer-stripped.
func (s *quizService) GetQuiz(ctx context.Context, quizID int64, u *user.User) (*Quiz, error) {
	log := config.WithContext(ctx)

	q, err := s.repo.FindByID(quizID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch quiz")
		return nil, err
	}
	if q == nil || !q.Active {
		return nil, ErrQuizNotFound
	}

	existing, err := s.submissions.GetSubmissionByQuizAndUser(ctx, quizID, u.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to check prior submission")
		return nil, err
	}
	if existing != nil {
		log.Warnf("User %d already attempted quiz %d", u.UserID, quizID)
		return nil, ErrQuizAlreadyAttempted
	}

	q.Questions = s.questions.FilterQuestionsForUser(q.Questions)
	return q, nil
}

func (s *quizService) CreateQuiz(ctx context.Context, q *Quiz) (*Quiz, error) {
	log := config.WithContext(ctx)

	if err := s.repo.Save(q); err != nil {
		log.WithError(err).Error("Failed to create quiz")
		return nil, err
	}

	log.Infof("Created quiz %d", q.ID)
	return q, nil
}

// UpdateQuiz overwrites the stored quiz in full. Partial patches are not
// supported at this layer.
func (s *quizService) UpdateQuiz(ctx context.Context, q *Quiz) (*Quiz, error) {
	log := config.WithContext(ctx)

	existing, err := s.repo.FindByID(q.ID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch quiz for update")
		return nil, err
	}
	if existing == nil {
		return nil, ErrQuizNotFound
	}

	if err := s.repo.Save(q); err != nil {
		log.WithError(err).Error("Failed to update quiz")
		return nil, err
	}

	return q, nil
}

// GetAllQuizzes is unfiltered. Restricting to active quizzes for end users is
// the caller's responsibility.
func (s *quizService) GetAllQuizzes(ctx context.Context) ([]Quiz, error) {
	return s.repo.FindAll()
}

// SubmitQuiz tallies correct entries. It persists nothing; storing the result
// is a separate SubmitQuizResults call.
func (s *quizService) SubmitQuiz(ctx context.Context, entries []Question) (int64, error) {
	var score int64
	for _, entry := range entries {
		correct, err := s.questions.IsAnswerCorrect(ctx, entry)
		if err != nil {
			return 0, err
		}
		if correct {
			score++
		}
	}
	return score, nil
}

func (s *quizService) DeleteQuiz(ctx context.Context, quizID int64) error {
	log := config.WithContext(ctx)

	q, err := s.repo.FindByID(quizID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch quiz for deletion")
		return err
	}
	if q == nil {
		return ErrQuizNotFound
	}

	if err := s.repo.DeleteByID(quizID); err != nil {
		log.WithError(err).Error("Failed to delete quiz")
		return err
	}

	log.Infof("Deleted quiz %d", quizID)
	return nil
}

func (s *quizService) CheckIfQuizExists(ctx context.Context, quizID int64) (bool, error) {
	return s.repo.ExistsByID(quizID)
}

// GetAdminStats aggregates quiz and submission counts with the user headcount
// from the users service. One is subtracted from the fetched user count to
// exclude the requesting admin account.
func (s *quizService) GetAdminStats(ctx context.Context, token string) (*AdminStats, error) {
	log := config.WithContext(ctx)

	quizCount, err := s.repo.Count()
	if err != nil {
		log.WithError(err).Error("Failed to count quizzes")
		return nil, err
	}

	submissionsCount, err := s.submissions.GetSubmissionsCount(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to count submissions")
		return nil, err
	}

	users, err := s.users.GetAll(ctx, token)
	if err != nil {
		log.WithError(err).Error("Failed to fetch users from users service")
		return nil, err
	}

	return &AdminStats{
		QuizCount:        quizCount,
		SubmissionsCount: submissionsCount,
		UsersCount:       int64(len(users)) - 1,
	}, nil
}

func (s *quizService) GetUserStats(ctx context.Context, token string, userID int64) (*UserStats, error) {
	count, err := s.submissions.GetUserSubmissionsCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &UserStats{SubmissionsCount: count}, nil
}

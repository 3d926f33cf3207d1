package quiz

import (
	"context"
	"fmt"
	"strconv"

	"github.com/quizapp/quiz-service/internal/config"
	"github.com/quizapp/quiz-service/internal/user"
)

type SubmissionsService interface {
	SubmitQuizResults(ctx context.Context, submission *Submission) (*Submission, error)
	GetSubmissions(ctx context.Context, quizID int64, token string) ([]Submission, error)
	GetSubmissionByQuizAndUser(ctx context.Context, quizID, userID int64) (*Submission, error)
	GetSubmissionsCount(ctx context.Context) (int64, error)
	GetUserSubmissionsCount(ctx context.Context, userID int64) (int64, error)
	GetSubmissionsByUserID(ctx context.Context, userID int64) ([]UserSubmissionSummary, error)
}

type submissionsService struct {
	repo     SubmissionRepository
	quizRepo QuizRepository
	users    user.Client
}

func NewSubmissionsService(repo SubmissionRepository, quizRepo QuizRepository, users user.Client) SubmissionsService {
	return &submissionsService{
		repo:     repo,
		quizRepo: quizRepo,
		users:    users,
	}
}

func (s *submissionsService) SubmitQuizResults(ctx context.Context, submission *Submission) (*Submission, error) {
	log := config.WithContext(ctx)

	if err := s.repo.Save(submission); err != nil {
		log.WithError(err).Error("Failed to persist submission")
		return nil, err
	}

	log.Infof("Stored submission %d for quiz %d by user %d", submission.ID, submission.QuizID, submission.UserID)
	return submission, nil
}

// GetSubmissions lists every submission for a quiz with the submitting user
// attached, resolved one call per submission against the users service. A
// failing lookup fails the whole listing.
func (s *submissionsService) GetSubmissions(ctx context.Context, quizID int64, token string) ([]Submission, error) {
	log := config.WithContext(ctx)

	exists, err := s.quizRepo.ExistsByID(quizID)
	if err != nil {
		log.WithError(err).Error("Failed to check quiz existence")
		return nil, err
	}
	if !exists {
		return nil, ErrQuizNotFound
	}

	submissions, err := s.repo.FindAllByQuizID(quizID)
	if err != nil {
		log.WithError(err).Error("Failed to list submissions for quiz")
		return nil, err
	}

	for i := range submissions {
		u, err := s.users.GetByID(ctx, token, submissions[i].UserID)
		if err != nil {
			log.WithError(err).Errorf("Failed to resolve user %d for submission %d", submissions[i].UserID, submissions[i].ID)
			return nil, err
		}
		submissions[i].User = u
	}

	return submissions, nil
}

// GetSubmissionByQuizAndUser returns (nil, nil) when the user has not
// attempted the quiz. Absence here is a normal signal, not an error.
func (s *submissionsService) GetSubmissionByQuizAndUser(ctx context.Context, quizID, userID int64) (*Submission, error) {
	return s.repo.FindByQuizAndUser(quizID, userID)
}

func (s *submissionsService) GetSubmissionsCount(ctx context.Context) (int64, error) {
	return s.repo.Count()
}

func (s *submissionsService) GetUserSubmissionsCount(ctx context.Context, userID int64) (int64, error) {
	submissions, err := s.repo.FindAllByUserID(userID)
	if err != nil {
		return 0, err
	}
	return int64(len(submissions)), nil
}

func (s *submissionsService) GetSubmissionsByUserID(ctx context.Context, userID int64) ([]UserSubmissionSummary, error) {
	log := config.WithContext(ctx)

	submissions, err := s.repo.FindAllByUserID(userID)
	if err != nil {
		log.WithError(err).Error("Failed to list submissions for user")
		return nil, err
	}

	summaries := make([]UserSubmissionSummary, 0, len(submissions))
	for _, sub := range submissions {
		q, err := s.quizRepo.FindByID(sub.QuizID)
		if err != nil {
			log.WithError(err).Errorf("Failed to resolve quiz %d for submission %d", sub.QuizID, sub.ID)
			return nil, err
		}
		if q == nil {
			log.Warnf("Submission %d references missing quiz %d", sub.ID, sub.QuizID)
			return nil, fmt.Errorf("submission %d: %w", sub.ID, ErrQuizNotFound)
		}

		summaries = append(summaries, UserSubmissionSummary{
			Score:    strconv.FormatInt(sub.TotalCorrect, 10),
			QuizName: q.Name,
			QuizID:   strconv.FormatInt(q.ID, 10),
		})
	}

	return summaries, nil
}

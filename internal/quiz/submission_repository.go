package quiz

import (
	"errors"

	"gorm.io/gorm"
)

type SubmissionRepository interface {
	Save(s *Submission) error
	FindAllByQuizID(quizID int64) ([]Submission, error)
	FindAllByUserID(userID int64) ([]Submission, error)
	FindByQuizAndUser(quizID, userID int64) (*Submission, error)
	Count() (int64, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Save(s *Submission) error {
	return r.db.Save(s).Error
}

func (r *submissionRepository) FindAllByQuizID(quizID int64) ([]Submission, error) {
	var submissions []Submission
	if err := r.db.
		Where("quiz_id = ?", quizID).
		Order("submission_id ASC").
		Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *submissionRepository) FindAllByUserID(userID int64) ([]Submission, error) {
	var submissions []Submission
	if err := r.db.
		Where("user_id = ?", userID).
		Order("submission_id ASC").
		Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

// FindByQuizAndUser returns (nil, nil) when the user has no submission for the
// quiz. Callers treat that as "not attempted yet", not as an error.
func (r *submissionRepository) FindByQuizAndUser(quizID, userID int64) (*Submission, error) {
	var s Submission
	if err := r.db.First(&s, "quiz_id = ? AND user_id = ?", quizID, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *submissionRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&Submission{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

package quiz

import (
	"errors"

	"gorm.io/gorm"
)

type QuizRepository interface {
	Save(q *Quiz) error
	FindByID(id int64) (*Quiz, error)
	ExistsByID(id int64) (bool, error)
	FindAll() ([]Quiz, error)
	Count() (int64, error)
	DeleteByID(id int64) error
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Save(q *Quiz) error {
	return r.db.Save(q).Error
}

// FindByID returns (nil, nil) when no quiz exists with the given id.
func (r *quizRepository) FindByID(id int64) (*Quiz, error) {
	var q Quiz
	if err := r.db.Preload("Questions").First(&q, "quiz_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

// ExistsByID is a bare presence check, without loading the quiz or its questions.
func (r *quizRepository) ExistsByID(id int64) (bool, error) {
	var count int64
	if err := r.db.Model(&Quiz{}).Where("quiz_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *quizRepository) FindAll() ([]Quiz, error) {
	var quizzes []Quiz
	if err := r.db.Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&Quiz{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *quizRepository) DeleteByID(id int64) error {
	return r.db.Select("Questions", "Submissions").Delete(&Quiz{ID: id}).Error
}

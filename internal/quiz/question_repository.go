package quiz

import (
	"errors"

	"gorm.io/gorm"
)

type QuestionRepository interface {
	SaveAll(questions []Question) ([]Question, error)
	FindByID(id int64) (*Question, error)
	FindAllByQuizID(quizID int64) ([]Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) SaveAll(questions []Question) ([]Question, error) {
	if len(questions) == 0 {
		return questions, nil
	}
	if err := r.db.Create(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// FindByID returns (nil, nil) when no question exists with the given id.
func (r *questionRepository) FindByID(id int64) (*Question, error) {
	var q Question
	if err := r.db.First(&q, "question_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *questionRepository) FindAllByQuizID(quizID int64) ([]Question, error) {
	var questions []Question
	if err := r.db.
		Where("quiz_id = ?", quizID).
		Order("question_id ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

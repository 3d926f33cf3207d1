package quiz

import (
	"github.com/quizapp/quiz-service/internal/user"
)

type Quiz struct {
	ID       int64  `gorm:"column:quiz_id;primaryKey;autoIncrement" json:"quizId"`
	Name     string `gorm:"type:text;not null" json:"name"`
	Active   bool   `gorm:"column:quiz_active;not null;default:false" json:"quizActive"`
	Duration int64  `gorm:"not null;default:0" json:"duration"`

	Questions   []Question   `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
	Submissions []Submission `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"submissions,omitempty"`
}

type Question struct {
	ID      int64  `gorm:"column:question_id;primaryKey;autoIncrement" json:"questionId"`
	Title   string `gorm:"type:text;not null" json:"title"`
	Option1 string `gorm:"type:text" json:"option1"`
	Option2 string `gorm:"type:text" json:"option2"`
	Option3 string `gorm:"type:text" json:"option3"`
	Option4 string `gorm:"type:text" json:"option4"`
	Answer  string `gorm:"type:text" json:"answer,omitempty"`
	QuizID  int64  `gorm:"not null;index" json:"quizId"`

	// SubmittedAnswer only travels on grading payloads, never to the database.
	SubmittedAnswer string `gorm:"-" json:"submittedAnswer,omitempty"`
}

type Submission struct {
	ID           int64 `gorm:"column:submission_id;primaryKey;autoIncrement" json:"submissionId"`
	UserID       int64 `gorm:"not null;uniqueIndex:idx_quiz_user" json:"userId"`
	QuizID       int64 `gorm:"not null;uniqueIndex:idx_quiz_user" json:"quizId"`
	TotalCorrect int64 `gorm:"not null;default:0" json:"totalCorrect"`

	// User is resolved from the users service at read time, never persisted.
	User *user.User `gorm:"-" json:"user,omitempty"`
}

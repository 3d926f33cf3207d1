package quiz

type AdminStats struct {
	QuizCount        int64 `json:"quizCount"`
	SubmissionsCount int64 `json:"submissionsCount"`
	UsersCount       int64 `json:"usersCount"`
}

type UserStats struct {
	SubmissionsCount int64 `json:"submissionsCount"`
}

// UserSubmissionSummary is the flat per-submission record of a user's history.
// Score and QuizID are serialized as strings.
type UserSubmissionSummary struct {
	Score    string `json:"score"`
	QuizName string `json:"quizName"`
	QuizID   string `json:"quizId"`
}

type QuizRequest struct {
	Name      string                  `json:"name" validate:"required"`
	Active    bool                    `json:"quizActive"`
	Duration  int64                   `json:"duration" validate:"gte=0"`
	Questions []CreateQuestionRequest `json:"questions" validate:"dive"`
}

type CreateQuestionRequest struct {
	Title   string `json:"title" validate:"required"`
	Option1 string `json:"option1" validate:"required"`
	Option2 string `json:"option2" validate:"required"`
	Option3 string `json:"option3" validate:"required"`
	Option4 string `json:"option4" validate:"required"`
	Answer  string `json:"answer" validate:"required"`
}

type SubmittedAnswer struct {
	QuestionID      int64  `json:"questionId" validate:"required"`
	SubmittedAnswer string `json:"submittedAnswer"`
}

type SubmitQuizRequest struct {
	Answers []SubmittedAnswer `json:"answers" validate:"dive"`
}

type SubmitQuizResponse struct {
	Score      int64       `json:"score"`
	Submission *Submission `json:"submission"`
}

func (r QuizRequest) toEntity() *Quiz {
	q := &Quiz{
		Name:     r.Name,
		Active:   r.Active,
		Duration: r.Duration,
	}
	for _, question := range r.Questions {
		q.Questions = append(q.Questions, question.toEntity())
	}
	return q
}

func (r CreateQuestionRequest) toEntity() Question {
	return Question{
		Title:   r.Title,
		Option1: r.Option1,
		Option2: r.Option2,
		Option3: r.Option3,
		Option4: r.Option4,
		Answer:  r.Answer,
	}
}

func (a SubmittedAnswer) toEntity() Question {
	return Question{
		ID:              a.QuestionID,
		SubmittedAnswer: a.SubmittedAnswer,
	}
}

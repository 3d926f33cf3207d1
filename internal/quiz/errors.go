package quiz

import "errors"

var (
	ErrQuizNotFound         = errors.New("quiz not found")
	ErrQuestionNotFound     = errors.New("question not found")
	ErrQuizAlreadyAttempted = errors.New("quiz already attempted by user")
	ErrInvalidID            = errors.New("invalid id format")
)

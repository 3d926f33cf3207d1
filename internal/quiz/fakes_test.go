package quiz_test

import (
	"context"
	"fmt"

	"github.com/quizapp/quiz-service/internal/quiz"
	"github.com/quizapp/quiz-service/internal/user"
)

type fakeQuizRepo struct {
	quizzes map[int64]*quiz.Quiz
	nextID  int64
	err     error

	// Sibling stores, wired by the fixture to model the storage-layer
	// ownership cascade on quiz deletion.
	questionStore   *fakeQuestionRepo
	submissionStore *fakeSubmissionRepo
}

func newFakeQuizRepo(quizzes ...*quiz.Quiz) *fakeQuizRepo {
	repo := &fakeQuizRepo{quizzes: make(map[int64]*quiz.Quiz)}
	for _, q := range quizzes {
		cp := *q
		repo.quizzes[q.ID] = &cp
		if q.ID > repo.nextID {
			repo.nextID = q.ID
		}
	}
	return repo
}

func (f *fakeQuizRepo) Save(q *quiz.Quiz) error {
	if f.err != nil {
		return f.err
	}
	if q.ID == 0 {
		f.nextID++
		q.ID = f.nextID
	}
	cp := *q
	f.quizzes[q.ID] = &cp
	return nil
}

func (f *fakeQuizRepo) FindByID(id int64) (*quiz.Quiz, error) {
	if f.err != nil {
		return nil, f.err
	}
	q, ok := f.quizzes[id]
	if !ok {
		return nil, nil
	}
	cp := *q
	return &cp, nil
}

func (f *fakeQuizRepo) ExistsByID(id int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.quizzes[id]
	return ok, nil
}

func (f *fakeQuizRepo) FindAll() ([]quiz.Quiz, error) {
	if f.err != nil {
		return nil, f.err
	}
	var all []quiz.Quiz
	for _, q := range f.quizzes {
		all = append(all, *q)
	}
	return all, nil
}

func (f *fakeQuizRepo) Count() (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.quizzes)), nil
}

func (f *fakeQuizRepo) DeleteByID(id int64) error {
	if f.err != nil {
		return f.err
	}
	delete(f.quizzes, id)
	if f.questionStore != nil {
		for qid, q := range f.questionStore.questions {
			if q.QuizID == id {
				delete(f.questionStore.questions, qid)
			}
		}
	}
	if f.submissionStore != nil {
		for sid, s := range f.submissionStore.submissions {
			if s.QuizID == id {
				delete(f.submissionStore.submissions, sid)
			}
		}
	}
	return nil
}

type fakeQuestionRepo struct {
	questions map[int64]*quiz.Question
	nextID    int64
	err       error
}

func newFakeQuestionRepo(questions ...*quiz.Question) *fakeQuestionRepo {
	repo := &fakeQuestionRepo{questions: make(map[int64]*quiz.Question)}
	for _, q := range questions {
		cp := *q
		repo.questions[q.ID] = &cp
		if q.ID > repo.nextID {
			repo.nextID = q.ID
		}
	}
	return repo
}

func (f *fakeQuestionRepo) SaveAll(questions []quiz.Question) ([]quiz.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range questions {
		if questions[i].ID == 0 {
			f.nextID++
			questions[i].ID = f.nextID
		}
		cp := questions[i]
		f.questions[cp.ID] = &cp
	}
	return questions, nil
}

func (f *fakeQuestionRepo) FindByID(id int64) (*quiz.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	q, ok := f.questions[id]
	if !ok {
		return nil, nil
	}
	cp := *q
	return &cp, nil
}

func (f *fakeQuestionRepo) FindAllByQuizID(quizID int64) ([]quiz.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	var matched []quiz.Question
	for id := int64(1); id <= f.nextID; id++ {
		if q, ok := f.questions[id]; ok && q.QuizID == quizID {
			matched = append(matched, *q)
		}
	}
	return matched, nil
}

type fakeSubmissionRepo struct {
	submissions map[int64]*quiz.Submission
	nextID      int64
	err         error
}

func newFakeSubmissionRepo(submissions ...*quiz.Submission) *fakeSubmissionRepo {
	repo := &fakeSubmissionRepo{submissions: make(map[int64]*quiz.Submission)}
	for _, s := range submissions {
		cp := *s
		repo.submissions[s.ID] = &cp
		if s.ID > repo.nextID {
			repo.nextID = s.ID
		}
	}
	return repo
}

func (f *fakeSubmissionRepo) Save(s *quiz.Submission) error {
	if f.err != nil {
		return f.err
	}
	if s.ID == 0 {
		f.nextID++
		s.ID = f.nextID
	}
	cp := *s
	f.submissions[s.ID] = &cp
	return nil
}

func (f *fakeSubmissionRepo) FindAllByQuizID(quizID int64) ([]quiz.Submission, error) {
	if f.err != nil {
		return nil, f.err
	}
	var matched []quiz.Submission
	for id := int64(1); id <= f.nextID; id++ {
		if s, ok := f.submissions[id]; ok && s.QuizID == quizID {
			matched = append(matched, *s)
		}
	}
	return matched, nil
}

func (f *fakeSubmissionRepo) FindAllByUserID(userID int64) ([]quiz.Submission, error) {
	if f.err != nil {
		return nil, f.err
	}
	var matched []quiz.Submission
	for id := int64(1); id <= f.nextID; id++ {
		if s, ok := f.submissions[id]; ok && s.UserID == userID {
			matched = append(matched, *s)
		}
	}
	return matched, nil
}

func (f *fakeSubmissionRepo) FindByQuizAndUser(quizID, userID int64) (*quiz.Submission, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.submissions {
		if s.QuizID == quizID && s.UserID == userID {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeSubmissionRepo) Count() (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.submissions)), nil
}

type fakeUsersClient struct {
	byID      map[int64]*user.User
	all       []user.User
	err       error
	gotTokens []string
}

func (f *fakeUsersClient) GetByID(ctx context.Context, token string, userID int64) (*user.User, error) {
	f.gotTokens = append(f.gotTokens, token)
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byID[userID]
	if !ok {
		return nil, fmt.Errorf("users service returned status 404")
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsersClient) GetAll(ctx context.Context, token string) ([]user.User, error) {
	f.gotTokens = append(f.gotTokens, token)
	if f.err != nil {
		return nil, f.err
	}
	return f.all, nil
}

package domain

import (
	"context"
	"strconv"
	"time"
)

// Quiz represents a quiz record. Quizzes are immutable once created; there is
// no update path anywhere in the system.
type Quiz struct {
	ID        int64
	CourseID  int64
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// QuizItem is one flattened (question, option) row of a quiz's content,
// ordered by question id then option id. The ordering is a display
// convenience, not semantically meaningful.
type QuizItem struct {
	QuestionID   int64
	QuizID       int64
	QuestionText string
	OptionID     int64
	OptionText   string
	IsCorrect    bool
}

// CorrectAnswer is one (question, correct option) row of a quiz's answer key
// as returned by the store, ordered by question id then option id.
type CorrectAnswer struct {
	QuestionID int64
	OptionID   int64
}

// SubmittedAnswer is a single (question, option) pair from one submission.
// Submissions are ephemeral; nothing about them is ever persisted.
type SubmittedAnswer struct {
	QuestionID int64
	OptionID   int64
}

// ScoreResult is the outcome of grading one submission.
type ScoreResult struct {
	Score int
	Total int
}

// AnswerKey maps a question id to its correct option id, both normalized to
// strings. It is a read-only snapshot borrowed for the duration of one
// grading call.
type AnswerKey map[string]string

// BuildAnswerKey collapses the store's correct-answer rows into a
// single-valued key. A question with multiple options flagged correct keeps
// only the first row seen; callers pass rows ordered by option id, so the
// lowest option id wins. A question with zero flagged options simply does not
// appear in the key.
func BuildAnswerKey(rows []CorrectAnswer) AnswerKey {
	key := make(AnswerKey, len(rows))
	for _, row := range rows {
		q := strconv.FormatInt(row.QuestionID, 10)
		if _, ok := key[q]; ok {
			continue
		}
		key[q] = strconv.FormatInt(row.OptionID, 10)
	}
	return key
}

// Grade scores a submission against the key. Each submitted answer whose
// option id matches the key's entry for that question increments the score;
// unknown question ids contribute nothing. Total is the number of questions
// in the key, not the number of answers submitted. Duplicate question ids in
// the submission each count, so score can exceed total; the behavior is
// inherited from the system this replaces and is covered by tests.
func (k AnswerKey) Grade(answers []SubmittedAnswer) ScoreResult {
	score := 0
	for _, ans := range answers {
		q := strconv.FormatInt(ans.QuestionID, 10)
		if correct, ok := k[q]; ok && correct == strconv.FormatInt(ans.OptionID, 10) {
			score++
		}
	}
	return ScoreResult{Score: score, Total: len(k)}
}

// QuizRepository defines the read surface for quiz content and answer keys.
type QuizRepository interface {
	GetQuizByID(ctx context.Context, id int64) (*Quiz, error)
	// GetQuizItems returns the flattened question/option rows for a quiz,
	// ordered by question id then option id.
	GetQuizItems(ctx context.Context, quizID int64) ([]*QuizItem, error)
	// GetCorrectAnswers returns (question, option) pairs where the option is
	// flagged correct, ordered by question id then option id.
	GetCorrectAnswers(ctx context.Context, quizID int64) ([]CorrectAnswer, error)
}

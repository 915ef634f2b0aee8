package models

import "time"

// Quiz maps the quizzes table.
type Quiz struct {
	ID        int64     `db:"id"`
	CourseID  int64     `db:"course_id"`
	Title     string    `db:"title"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// QuizItem is the flattened (question, option) join row used by the quiz
// content query.
type QuizItem struct {
	QuestionID   int64  `db:"question_id"`
	QuizID       int64  `db:"quiz_id"`
	QuestionText string `db:"question_text"`
	OptionID     int64  `db:"option_id"`
	OptionText   string `db:"option_text"`
	IsCorrect    bool   `db:"is_correct"`
}

// CorrectAnswer is the (question, correct option) join row behind the
// grading engine's answer key.
type CorrectAnswer struct {
	QuestionID int64 `db:"question_id"`
	OptionID   int64 `db:"correct_option_id"`
}

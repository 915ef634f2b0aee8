package dto

// QuizItemResponse is one flattened (question, option) row of quiz content.
// The is_correct flag is exposed to any caller; see the design notes for the
// open product question around that.
type QuizItemResponse struct {
	QuestionID   int64  `json:"question_id"`
	QuizID       int64  `json:"quiz_id"`
	QuestionText string `json:"question_text"`
	OptionID     int64  `json:"option_id"`
	OptionText   string `json:"option_text"`
	IsCorrect    bool   `json:"is_correct"`
}

// QuizContentResponse is the quiz record plus its flattened items,
// ordered by question id then option id.
type QuizContentResponse struct {
	Quiz  QuizInfo           `json:"quiz"`
	Items []QuizItemResponse `json:"items"`
}

// QuizInfo is the quiz metadata portion of QuizContentResponse.
type QuizInfo struct {
	ID       int64  `json:"id"`
	CourseID int64  `json:"course_id"`
	Title    string `json:"title"`
}

// SubmittedAnswerInput is a single (questionId, optionId) pair in a
// submission body.
type SubmittedAnswerInput struct {
	QuestionID int64 `json:"questionId"`
	OptionID   int64 `json:"optionId"`
}

// SubmitQuizRequest is the body of POST /courses/quiz/:id/submit.
// @Description Quiz submission: a non-empty collection of answers
type SubmitQuizRequest struct {
	Answers []SubmittedAnswerInput `json:"answers"`
}

// SubmitQuizResponse carries the grading result.
// @Description Score over the quiz's answer-key size
type SubmitQuizResponse struct {
	Score int `json:"score"`
	Total int `json:"total"`
}

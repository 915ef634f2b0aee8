package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"learnhub/internal/domain"
	"learnhub/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// QuizDatabaseAdapter implements domain.QuizRepository using sqlx.DB
type QuizDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuizDatabaseAdapter creates a new instance of QuizDatabaseAdapter
func NewQuizDatabaseAdapter(db *sqlx.DB) domain.QuizRepository {
	return &QuizDatabaseAdapter{db: db}
}

// GetQuizByID implements domain.QuizRepository
func (a *QuizDatabaseAdapter) GetQuizByID(ctx context.Context, id int64) (*domain.Quiz, error) {
	var modelQuiz models.Quiz
	query := `SELECT id, course_id, title, created_at, updated_at
	FROM quizzes
	WHERE id = ?`

	err := a.db.GetContext(ctx, &modelQuiz, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz by ID %d: %w", id, err)
	}
	return &domain.Quiz{
		ID:        modelQuiz.ID,
		CourseID:  modelQuiz.CourseID,
		Title:     modelQuiz.Title,
		CreatedAt: modelQuiz.CreatedAt,
		UpdatedAt: modelQuiz.UpdatedAt,
	}, nil
}

// GetQuizItems implements domain.QuizRepository. Rows come back ordered by
// question id then option id; questions without options still appear, with a
// zero option id.
func (a *QuizDatabaseAdapter) GetQuizItems(ctx context.Context, quizID int64) ([]*domain.QuizItem, error) {
	var modelItems []*models.QuizItem
	query := `SELECT
		qq.id AS question_id, qq.quiz_id, qq.question_text,
		COALESCE(qo.id, 0) AS option_id,
		COALESCE(qo.option_text, '') AS option_text,
		COALESCE(qo.is_correct, 0) AS is_correct
	FROM quiz_questions qq
	LEFT JOIN quiz_options qo ON qo.question_id = qq.id
	WHERE qq.quiz_id = ?
	ORDER BY qq.id, qo.id`

	if err := a.db.SelectContext(ctx, &modelItems, query, quizID); err != nil {
		return nil, fmt.Errorf("failed to query quiz items for quiz %d: %w", quizID, err)
	}

	items := make([]*domain.QuizItem, 0, len(modelItems))
	for _, mi := range modelItems {
		items = append(items, &domain.QuizItem{
			QuestionID:   mi.QuestionID,
			QuizID:       mi.QuizID,
			QuestionText: mi.QuestionText,
			OptionID:     mi.OptionID,
			OptionText:   mi.OptionText,
			IsCorrect:    mi.IsCorrect,
		})
	}
	return items, nil
}

// GetCorrectAnswers implements domain.QuizRepository. The ORDER BY makes the
// single-valued answer-key collapse deterministic: for a question with more
// than one option flagged correct, the lowest option id is the one kept.
func (a *QuizDatabaseAdapter) GetCorrectAnswers(ctx context.Context, quizID int64) ([]domain.CorrectAnswer, error) {
	var modelRows []models.CorrectAnswer
	query := `SELECT qq.id AS question_id, qo.id AS correct_option_id
	FROM quiz_questions qq
	JOIN quiz_options qo ON qo.question_id = qq.id AND qo.is_correct = 1
	WHERE qq.quiz_id = ?
	ORDER BY qq.id, qo.id`

	if err := a.db.SelectContext(ctx, &modelRows, query, quizID); err != nil {
		return nil, fmt.Errorf("failed to query correct answers for quiz %d: %w", quizID, err)
	}

	rows := make([]domain.CorrectAnswer, 0, len(modelRows))
	for _, mr := range modelRows {
		rows = append(rows, domain.CorrectAnswer{
			QuestionID: mr.QuestionID,
			OptionID:   mr.OptionID,
		})
	}
	return rows, nil
}

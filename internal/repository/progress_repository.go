package repository

import (
	"context"
	"fmt"
	"time"

	"learnhub/internal/domain"
	"learnhub/internal/repository/models"
	"learnhub/internal/util"

	"github.com/jmoiron/sqlx"
)

// ProgressDatabaseAdapter implements domain.ProgressRepository using sqlx.DB
type ProgressDatabaseAdapter struct {
	db *sqlx.DB
}

// NewProgressDatabaseAdapter creates a new instance of ProgressDatabaseAdapter
func NewProgressDatabaseAdapter(db *sqlx.DB) domain.ProgressRepository {
	return &ProgressDatabaseAdapter{db: db}
}

// GetProgressByUserAndCourse implements domain.ProgressRepository. Zero rows
// is an empty slice, not an error.
func (a *ProgressDatabaseAdapter) GetProgressByUserAndCourse(ctx context.Context, userID string, courseID int64) ([]*domain.Progress, error) {
	var modelRows []*models.UserProgress
	query := `SELECT id, user_id, course_id, lesson_id, completed, completed_at, created_at, updated_at
	FROM user_progress
	WHERE user_id = ? AND course_id = ?
	ORDER BY lesson_id`

	if err := a.db.SelectContext(ctx, &modelRows, query, userID, courseID); err != nil {
		return nil, fmt.Errorf("failed to query progress for user %s course %d: %w", userID, courseID, err)
	}

	rows := make([]*domain.Progress, 0, len(modelRows))
	for _, mr := range modelRows {
		rows = append(rows, toDomainProgress(mr))
	}
	return rows, nil
}

// UpsertProgress implements domain.ProgressRepository. One row per
// (user, lesson); re-completing a lesson refreshes completed_at.
func (a *ProgressDatabaseAdapter) UpsertProgress(ctx context.Context, progress *domain.Progress) error {
	if progress == nil {
		return fmt.Errorf("cannot upsert nil progress")
	}
	now := time.Now()
	if progress.ID == "" {
		progress.ID = util.NewULID()
	}
	progress.CreatedAt = now
	progress.UpdatedAt = now

	query := `INSERT INTO user_progress (id, user_id, course_id, lesson_id, completed, completed_at, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON DUPLICATE KEY UPDATE completed = VALUES(completed), completed_at = VALUES(completed_at), updated_at = VALUES(updated_at)`

	_, err := a.db.ExecContext(ctx, query,
		progress.ID,
		progress.UserID,
		progress.CourseID,
		progress.LessonID,
		progress.Completed,
		util.TimePtrToNullTime(progress.CompletedAt),
		progress.CreatedAt,
		progress.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert progress: %w", err)
	}
	return nil
}

func toDomainProgress(m *models.UserProgress) *domain.Progress {
	if m == nil {
		return nil
	}
	p := &domain.Progress{
		ID:        m.ID,
		UserID:    m.UserID,
		CourseID:  m.CourseID,
		LessonID:  m.LessonID,
		Completed: m.Completed,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.CompletedAt.Valid {
		t := m.CompletedAt.Time
		p.CompletedAt = &t
	}
	return p
}

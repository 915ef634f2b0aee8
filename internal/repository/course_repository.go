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

// CourseDatabaseAdapter implements domain.CourseRepository using sqlx.DB
type CourseDatabaseAdapter struct {
	db *sqlx.DB
}

// NewCourseDatabaseAdapter creates a new instance of CourseDatabaseAdapter
func NewCourseDatabaseAdapter(db *sqlx.DB) domain.CourseRepository {
	return &CourseDatabaseAdapter{db: db}
}

// GetAllCourses implements domain.CourseRepository. Courses come back newest
// first; zero rows is an empty slice, not an error.
func (a *CourseDatabaseAdapter) GetAllCourses(ctx context.Context) ([]*domain.Course, error) {
	var modelCourses []*models.Course
	query := `SELECT
		c.id, c.title, c.description, c.created_at, c.updated_at,
		COUNT(DISTINCT l.id) AS lesson_count,
		COUNT(DISTINCT q.id) AS quiz_count
	FROM courses c
	LEFT JOIN lessons l ON c.id = l.course_id
	LEFT JOIN quizzes q ON c.id = q.course_id
	GROUP BY c.id, c.title, c.description, c.created_at, c.updated_at
	ORDER BY c.created_at DESC`

	if err := a.db.SelectContext(ctx, &modelCourses, query); err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}

	courses := make([]*domain.Course, 0, len(modelCourses))
	for _, mc := range modelCourses {
		courses = append(courses, toDomainCourse(mc))
	}
	return courses, nil
}

// GetCourseByID implements domain.CourseRepository
func (a *CourseDatabaseAdapter) GetCourseByID(ctx context.Context, id int64) (*domain.Course, error) {
	var modelCourse models.Course
	query := `SELECT
		c.id, c.title, c.description, c.created_at, c.updated_at,
		COUNT(DISTINCT l.id) AS lesson_count,
		COUNT(DISTINCT q.id) AS quiz_count
	FROM courses c
	LEFT JOIN lessons l ON c.id = l.course_id
	LEFT JOIN quizzes q ON c.id = q.course_id
	WHERE c.id = ?
	GROUP BY c.id, c.title, c.description, c.created_at, c.updated_at`

	err := a.db.GetContext(ctx, &modelCourse, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get course by ID %d: %w", id, err)
	}
	return toDomainCourse(&modelCourse), nil
}

// GetLessonByID implements domain.CourseRepository. The parent course title is
// joined in for display.
func (a *CourseDatabaseAdapter) GetLessonByID(ctx context.Context, id int64) (*domain.Lesson, error) {
	var modelLesson models.Lesson
	query := `SELECT
		l.id, l.course_id, l.title, l.content, l.position, l.created_at, l.updated_at,
		COALESCE(c.title, '') AS course_title
	FROM lessons l
	LEFT JOIN courses c ON c.id = l.course_id
	WHERE l.id = ?`

	err := a.db.GetContext(ctx, &modelLesson, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get lesson by ID %d: %w", id, err)
	}
	return toDomainLesson(&modelLesson), nil
}

// Helper functions for model conversion
func toDomainCourse(m *models.Course) *domain.Course {
	if m == nil {
		return nil
	}
	return &domain.Course{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		LessonCount: m.LessonCount,
		QuizCount:   m.QuizCount,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toDomainLesson(m *models.Lesson) *domain.Lesson {
	if m == nil {
		return nil
	}
	return &domain.Lesson{
		ID:          m.ID,
		CourseID:    m.CourseID,
		Title:       m.Title,
		Content:     m.Content,
		Position:    m.Position,
		CourseTitle: m.CourseTitle,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

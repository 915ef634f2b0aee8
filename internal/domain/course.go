package domain

import (
	"context"
	"time"
)

// Course represents a course together with its aggregate lesson/quiz counts.
type Course struct {
	ID          int64
	Title       string
	Description string
	LessonCount int64
	QuizCount   int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Lesson represents a single lesson. CourseTitle is denormalized from the
// parent course for display.
type Lesson struct {
	ID          int64
	CourseID    int64
	Title       string
	Content     string
	Position    int
	CourseTitle string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Progress represents one user_progress row: a user's completion state for a
// lesson within a course.
type Progress struct {
	ID          string
	UserID      string
	CourseID    int64
	LessonID    int64
	Completed   bool
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CourseRepository defines the read surface for courses and lessons.
type CourseRepository interface {
	GetAllCourses(ctx context.Context) ([]*Course, error)
	GetCourseByID(ctx context.Context, id int64) (*Course, error)
	GetLessonByID(ctx context.Context, id int64) (*Lesson, error)
}

// ProgressRepository defines per-user progress persistence.
type ProgressRepository interface {
	GetProgressByUserAndCourse(ctx context.Context, userID string, courseID int64) ([]*Progress, error)
	UpsertProgress(ctx context.Context, progress *Progress) error
}

package dto

import "time"

// CourseResponse represents a course in the API response
// @Description Course with aggregate lesson/quiz counts
type CourseResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	LessonCount int64     `json:"lesson_count"`
	QuizCount   int64     `json:"quiz_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CourseListResponse wraps the course collection
type CourseListResponse struct {
	Courses []CourseResponse `json:"courses"`
}

// LessonResponse represents a lesson with its parent course title
type LessonResponse struct {
	ID          int64     `json:"id"`
	CourseID    int64     `json:"course_id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Position    int       `json:"position"`
	CourseTitle string    `json:"course_title"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProgressResponse represents one user_progress row
type ProgressResponse struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	CourseID    int64      `json:"course_id"`
	LessonID    int64      `json:"lesson_id"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// CompleteLessonResponse is returned after marking a lesson complete
type CompleteLessonResponse struct {
	LessonID  int64 `json:"lesson_id"`
	CourseID  int64 `json:"course_id"`
	Completed bool  `json:"completed"`
}

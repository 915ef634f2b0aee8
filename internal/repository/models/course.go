package models

import "time"

// Course is the row shape of the course listing queries, counts included.
type Course struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	LessonCount int64     `db:"lesson_count"`
	QuizCount   int64     `db:"quiz_count"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// Lesson maps the lessons table joined with the parent course title.
type Lesson struct {
	ID          int64     `db:"id"`
	CourseID    int64     `db:"course_id"`
	Title       string    `db:"title"`
	Content     string    `db:"content"`
	Position    int       `db:"position"`
	CourseTitle string    `db:"course_title"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

package models

import (
	"database/sql"
	"time"
)

// User maps the users table.
type User struct {
	ID                string         `db:"id"`
	GoogleID          sql.NullString `db:"google_id"`
	Email             string         `db:"email"`
	Name              sql.NullString `db:"name"`
	PasswordHash      sql.NullString `db:"password_hash"`
	ProfilePictureURL sql.NullString `db:"profile_picture_url"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
	DeletedAt         sql.NullTime   `db:"deleted_at"`
}

// UserProgress maps the user_progress table.
type UserProgress struct {
	ID          string       `db:"id"`
	UserID      string       `db:"user_id"`
	CourseID    int64        `db:"course_id"`
	LessonID    int64        `db:"lesson_id"`
	Completed   bool         `db:"completed"`
	CompletedAt sql.NullTime `db:"completed_at"`
	CreatedAt   time.Time    `db:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at"`
}

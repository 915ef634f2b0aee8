package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTime() time.Time {
	return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
}

func TestCourseDatabaseAdapter_GetAllCourses(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCourseDatabaseAdapter(db)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "title", "description", "created_at", "updated_at", "lesson_count", "quiz_count"}).
		AddRow(int64(2), "Algebra II", "Quadratics and beyond", testTime(), testTime(), int64(8), int64(2)).
		AddRow(int64(1), "Algebra I", "Linear equations", testTime(), testTime(), int64(12), int64(3))

	mock.ExpectQuery(`FROM courses c\s+LEFT JOIN lessons l ON c.id = l.course_id\s+LEFT JOIN quizzes q ON c.id = q.course_id\s+GROUP BY`).
		WillReturnRows(rows)

	courses, err := repo.GetAllCourses(context.Background())

	assert.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "Algebra II", courses[0].Title)
	assert.Equal(t, int64(8), courses[0].LessonCount)
	assert.Equal(t, int64(3), courses[1].QuizCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseDatabaseAdapter_GetAllCourses_Empty(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCourseDatabaseAdapter(db)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "title", "description", "created_at", "updated_at", "lesson_count", "quiz_count"})

	mock.ExpectQuery(`FROM courses c\s+LEFT JOIN lessons l ON c.id = l.course_id`).
		WillReturnRows(rows)

	courses, err := repo.GetAllCourses(context.Background())

	// Zero rows in the store is success with an empty list, never an error.
	assert.NoError(t, err)
	assert.NotNil(t, courses)
	assert.Empty(t, courses)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseDatabaseAdapter_GetCourseByID_Success(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCourseDatabaseAdapter(db)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "title", "description", "created_at", "updated_at", "lesson_count", "quiz_count"}).
		AddRow(int64(1), "Algebra I", "Linear equations", testTime(), testTime(), int64(12), int64(3))

	mock.ExpectQuery(`WHERE c.id = \?\s+GROUP BY`).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	course, err := repo.GetCourseByID(context.Background(), 1)

	assert.NoError(t, err)
	require.NotNil(t, course)
	assert.Equal(t, "Algebra I", course.Title)
	assert.Equal(t, int64(12), course.LessonCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseDatabaseAdapter_GetCourseByID_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCourseDatabaseAdapter(db)
	defer db.Close()

	mock.ExpectQuery(`WHERE c.id = \?\s+GROUP BY`).
		WithArgs(int64(999)).
		WillReturnError(sql.ErrNoRows)

	course, err := repo.GetCourseByID(context.Background(), 999)

	assert.NoError(t, err)
	assert.Nil(t, course)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseDatabaseAdapter_GetLessonByID_Success(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCourseDatabaseAdapter(db)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "course_id", "title", "content", "position", "created_at", "updated_at", "course_title"}).
		AddRow(int64(5), int64(1), "Slope-intercept form", "y = mx + b ...", 3, testTime(), testTime(), "Algebra I")

	mock.ExpectQuery(`FROM lessons l\s+LEFT JOIN courses c ON c.id = l.course_id\s+WHERE l.id = \?`).
		WithArgs(int64(5)).
		WillReturnRows(rows)

	lesson, err := repo.GetLessonByID(context.Background(), 5)

	assert.NoError(t, err)
	require.NotNil(t, lesson)
	assert.Equal(t, "Slope-intercept form", lesson.Title)
	assert.Equal(t, "Algebra I", lesson.CourseTitle)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseDatabaseAdapter_GetLessonByID_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCourseDatabaseAdapter(db)
	defer db.Close()

	mock.ExpectQuery(`FROM lessons l\s+LEFT JOIN courses c ON c.id = l.course_id\s+WHERE l.id = \?`).
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	lesson, err := repo.GetLessonByID(context.Background(), 404)

	assert.NoError(t, err)
	assert.Nil(t, lesson)
	assert.NoError(t, mock.ExpectationsWereMet())
}

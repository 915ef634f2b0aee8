// Command seed loads a small set of demo courses, lessons, and quizzes so a
// fresh environment has something to serve.
package main

import (
	"context"
	"fmt"
	"os"

	"learnhub/internal/config"
	"learnhub/internal/database"
	"learnhub/internal/logger"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type seedOption struct {
	Text    string
	Correct bool
}

type seedQuestion struct {
	Text    string
	Options []seedOption
}

type seedQuiz struct {
	Title     string
	Questions []seedQuestion
}

type seedLesson struct {
	Title   string
	Content string
}

type seedCourse struct {
	Title       string
	Description string
	Lessons     []seedLesson
	Quizzes     []seedQuiz
}

var seedCourses = []seedCourse{
	{
		Title:       "Introduction to Go",
		Description: "Syntax, tooling, and the standard library from zero.",
		Lessons: []seedLesson{
			{Title: "Hello, World", Content: "Install the toolchain and run your first program."},
			{Title: "Variables and Types", Content: "Declarations, zero values, and type inference."},
			{Title: "Slices and Maps", Content: "Go's core collection types and how they grow."},
		},
		Quizzes: []seedQuiz{
			{
				Title: "Basics Check",
				Questions: []seedQuestion{
					{
						Text: "What is the zero value of an int?",
						Options: []seedOption{
							{Text: "0", Correct: true},
							{Text: "nil"},
							{Text: "undefined"},
						},
					},
					{
						Text: "Which keyword declares a constant?",
						Options: []seedOption{
							{Text: "var"},
							{Text: "const", Correct: true},
							{Text: "let"},
						},
					},
				},
			},
		},
	},
	{
		Title:       "Concurrent Programming",
		Description: "Goroutines, channels, and the sync package in practice.",
		Lessons: []seedLesson{
			{Title: "Goroutines", Content: "Starting and reasoning about lightweight threads."},
			{Title: "Channels", Content: "Communicating instead of sharing memory."},
		},
		Quizzes: []seedQuiz{
			{
				Title: "Concurrency Check",
				Questions: []seedQuestion{
					{
						Text: "What does an unbuffered channel send do until a receiver is ready?",
						Options: []seedOption{
							{Text: "Blocks", Correct: true},
							{Text: "Drops the value"},
							{Text: "Panics"},
						},
					},
				},
			},
		},
	},
}

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	db, err := database.NewSQLXMySQLDB(cfg.GetDSN())
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	for _, course := range seedCourses {
		if err := seedCourseData(ctx, db, course); err != nil {
			log.Error("Error seeding course, transaction rolled back", zap.String("course", course.Title), zap.Error(err))
			continue
		}
		log.Info("Seeded course", zap.String("course", course.Title))
	}
	log.Info("Seeding completed")
}

func seedCourseData(ctx context.Context, db *sqlx.DB, course seedCourse) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO courses (title, description) VALUES (?, ?)`,
		course.Title, course.Description)
	if err != nil {
		return fmt.Errorf("failed to insert course: %w", err)
	}
	courseID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get course id: %w", err)
	}

	for i, lesson := range course.Lessons {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO lessons (course_id, title, content, position) VALUES (?, ?, ?, ?)`,
			courseID, lesson.Title, lesson.Content, i+1); err != nil {
			return fmt.Errorf("failed to insert lesson %q: %w", lesson.Title, err)
		}
	}

	for _, quiz := range course.Quizzes {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO quizzes (course_id, title) VALUES (?, ?)`,
			courseID, quiz.Title)
		if err != nil {
			return fmt.Errorf("failed to insert quiz %q: %w", quiz.Title, err)
		}
		quizID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get quiz id: %w", err)
		}

		for _, question := range quiz.Questions {
			res, err := tx.ExecContext(ctx,
				`INSERT INTO quiz_questions (quiz_id, question_text) VALUES (?, ?)`,
				quizID, question.Text)
			if err != nil {
				return fmt.Errorf("failed to insert question: %w", err)
			}
			questionID, err := res.LastInsertId()
			if err != nil {
				return fmt.Errorf("failed to get question id: %w", err)
			}

			for _, option := range question.Options {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO quiz_options (question_id, option_text, is_correct) VALUES (?, ?, ?)`,
					questionID, option.Text, option.Correct); err != nil {
					return fmt.Errorf("failed to insert option: %w", err)
				}
			}
		}
	}

	return tx.Commit()
}

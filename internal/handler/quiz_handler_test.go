package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"learnhub/internal/domain"
	"learnhub/internal/dto"
	"learnhub/internal/handler"
	"learnhub/internal/middleware"
	"learnhub/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Manual mock for service.QuizService
type mockQuizService struct {
	GetQuizContentFunc func(ctx context.Context, quizID int64) (*dto.QuizContentResponse, error)
	SubmitQuizFunc     func(ctx context.Context, quizID int64, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error)
}

func (m *mockQuizService) GetQuizContent(ctx context.Context, quizID int64) (*dto.QuizContentResponse, error) {
	if m.GetQuizContentFunc != nil {
		return m.GetQuizContentFunc(ctx, quizID)
	}
	return nil, errors.New("GetQuizContentFunc not set on mock")
}

func (m *mockQuizService) SubmitQuiz(ctx context.Context, quizID int64, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error) {
	if m.SubmitQuizFunc != nil {
		return m.SubmitQuizFunc(ctx, quizID, req)
	}
	return nil, errors.New("SubmitQuizFunc not set on mock")
}

func newQuizTestApp(svc *mockQuizService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	h := handler.NewQuizHandler(svc, validation.NewValidator())
	app.Get("/api/courses/quiz/:id", h.GetQuizContent)
	app.Post("/api/courses/quiz/:id/submit", h.SubmitQuiz)
	return app
}

func decodeEnvelope(t *testing.T, body io.Reader) dto.Envelope {
	t.Helper()
	var env dto.Envelope
	require.NoError(t, json.NewDecoder(body).Decode(&env))
	return env
}

func TestQuizHandler_GetQuizContent(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &mockQuizService{
			GetQuizContentFunc: func(ctx context.Context, quizID int64) (*dto.QuizContentResponse, error) {
				assert.Equal(t, int64(3), quizID)
				return &dto.QuizContentResponse{
					Quiz: dto.QuizInfo{ID: 3, CourseID: 1, Title: "Go Basics Quiz"},
					Items: []dto.QuizItemResponse{
						{QuestionID: 10, QuizID: 3, QuestionText: "What is a goroutine?", OptionID: 100, OptionText: "A lightweight thread", IsCorrect: true},
					},
				}, nil
			},
		}
		app := newQuizTestApp(svc)

		resp, err := app.Test(httptest.NewRequest("GET", "/api/courses/quiz/3", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		env := decodeEnvelope(t, resp.Body)
		assert.True(t, env.Success)
		assert.NotNil(t, env.Data)
		assert.Empty(t, env.Error)
	})

	t.Run("non-numeric id is rejected before the service", func(t *testing.T) {
		called := false
		svc := &mockQuizService{
			GetQuizContentFunc: func(ctx context.Context, quizID int64) (*dto.QuizContentResponse, error) {
				called = true
				return nil, nil
			},
		}
		app := newQuizTestApp(svc)

		resp, err := app.Test(httptest.NewRequest("GET", "/api/courses/quiz/abc", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.False(t, called)

		env := decodeEnvelope(t, resp.Body)
		assert.False(t, env.Success)
		assert.Equal(t, string(domain.ErrInvalidInput), env.Error)
	})

	t.Run("quiz not found", func(t *testing.T) {
		svc := &mockQuizService{
			GetQuizContentFunc: func(ctx context.Context, quizID int64) (*dto.QuizContentResponse, error) {
				return nil, domain.NewQuizNotFoundError(quizID)
			},
		}
		app := newQuizTestApp(svc)

		resp, err := app.Test(httptest.NewRequest("GET", "/api/courses/quiz/99", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		env := decodeEnvelope(t, resp.Body)
		assert.False(t, env.Success)
		assert.Equal(t, string(domain.ErrQuizNotFound), env.Error)
	})

	t.Run("store unavailable maps to 500", func(t *testing.T) {
		svc := &mockQuizService{
			GetQuizContentFunc: func(ctx context.Context, quizID int64) (*dto.QuizContentResponse, error) {
				return nil, domain.NewUnavailableError("Failed to get quiz content", errors.New("connection refused"))
			},
		}
		app := newQuizTestApp(svc)

		resp, err := app.Test(httptest.NewRequest("GET", "/api/courses/quiz/3", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}

func TestQuizHandler_SubmitQuiz(t *testing.T) {
	t.Run("grades a valid submission", func(t *testing.T) {
		svc := &mockQuizService{
			SubmitQuizFunc: func(ctx context.Context, quizID int64, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error) {
				assert.Equal(t, int64(3), quizID)
				require.Len(t, req.Answers, 2)
				return &dto.SubmitQuizResponse{Score: 1, Total: 2}, nil
			},
		}
		app := newQuizTestApp(svc)

		body := `{"answers":[{"questionId":10,"optionId":100},{"questionId":11,"optionId":999}]}`
		req := httptest.NewRequest("POST", "/api/courses/quiz/3/submit", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		env := decodeEnvelope(t, resp.Body)
		assert.True(t, env.Success)
		data, ok := env.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, float64(1), data["score"])
		assert.Equal(t, float64(2), data["total"])
	})

	t.Run("missing answers field", func(t *testing.T) {
		svc := &mockQuizService{}
		app := newQuizTestApp(svc)

		req := httptest.NewRequest("POST", "/api/courses/quiz/3/submit", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		env := decodeEnvelope(t, resp.Body)
		assert.False(t, env.Success)
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := &mockQuizService{}
		app := newQuizTestApp(svc)

		req := httptest.NewRequest("POST", "/api/courses/quiz/3/submit", strings.NewReader(`{not json`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("empty answers list is rejected", func(t *testing.T) {
		svc := &mockQuizService{}
		app := newQuizTestApp(svc)

		req := httptest.NewRequest("POST", "/api/courses/quiz/3/submit", strings.NewReader(`{"answers":[]}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

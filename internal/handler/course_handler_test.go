package handler_test

import (
	"context"
	"errors"
	"net/http/httptest"
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

// Manual mock for service.CourseService
type mockCourseService struct {
	GetAllCoursesFunc     func(ctx context.Context) (*dto.CourseListResponse, error)
	GetCourseByIDFunc     func(ctx context.Context, id int64) (*dto.CourseResponse, error)
	GetLessonByIDFunc     func(ctx context.Context, id int64) (*dto.LessonResponse, error)
	GetCourseProgressFunc func(ctx context.Context, userID string, courseID int64) ([]dto.ProgressResponse, error)
	CompleteLessonFunc    func(ctx context.Context, userID string, lessonID int64) (*dto.CompleteLessonResponse, error)
}

func (m *mockCourseService) GetAllCourses(ctx context.Context) (*dto.CourseListResponse, error) {
	if m.GetAllCoursesFunc != nil {
		return m.GetAllCoursesFunc(ctx)
	}
	return nil, errors.New("GetAllCoursesFunc not set on mock")
}

func (m *mockCourseService) GetCourseByID(ctx context.Context, id int64) (*dto.CourseResponse, error) {
	if m.GetCourseByIDFunc != nil {
		return m.GetCourseByIDFunc(ctx, id)
	}
	return nil, errors.New("GetCourseByIDFunc not set on mock")
}

func (m *mockCourseService) GetLessonByID(ctx context.Context, id int64) (*dto.LessonResponse, error) {
	if m.GetLessonByIDFunc != nil {
		return m.GetLessonByIDFunc(ctx, id)
	}
	return nil, errors.New("GetLessonByIDFunc not set on mock")
}

func (m *mockCourseService) GetCourseProgress(ctx context.Context, userID string, courseID int64) ([]dto.ProgressResponse, error) {
	if m.GetCourseProgressFunc != nil {
		return m.GetCourseProgressFunc(ctx, userID, courseID)
	}
	return nil, errors.New("GetCourseProgressFunc not set on mock")
}

func (m *mockCourseService) CompleteLesson(ctx context.Context, userID string, lessonID int64) (*dto.CompleteLessonResponse, error) {
	if m.CompleteLessonFunc != nil {
		return m.CompleteLessonFunc(ctx, userID, lessonID)
	}
	return nil, errors.New("CompleteLessonFunc not set on mock")
}

// fakeAuth stands in for Protected and injects a fixed caller identity.
func fakeAuth(userID string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(middleware.UserIDKey, userID)
		return c.Next()
	}
}

func newCourseTestApp(svc *mockCourseService, authed string) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	h := handler.NewCourseHandler(svc, validation.NewValidator())

	api := app.Group("/api")
	api.Get("/courses/lessons/:id", h.GetLessonByID)
	api.Get("/courses", h.GetAllCourses)
	if authed != "" {
		api.Post("/courses/lessons/:id/complete", fakeAuth(authed), h.CompleteLesson)
		api.Get("/courses/:courseId/progress", fakeAuth(authed), h.GetCourseProgress)
	}
	api.Get("/courses/:id", h.GetCourseByID)
	return app
}

func TestCourseHandler_GetAllCourses(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &mockCourseService{
			GetAllCoursesFunc: func(ctx context.Context) (*dto.CourseListResponse, error) {
				return &dto.CourseListResponse{Courses: []dto.CourseResponse{
					{ID: 1, Title: "Intro to Go", LessonCount: 8, QuizCount: 3},
				}}, nil
			},
		}
		app := newCourseTestApp(svc, "")

		resp, err := app.Test(httptest.NewRequest("GET", "/api/courses", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		env := decodeEnvelope(t, resp.Body)
		assert.True(t, env.Success)
	})

	t.Run("store down", func(t *testing.T) {
		svc := &mockCourseService{
			GetAllCoursesFunc: func(ctx context.Context) (*dto.CourseListResponse, error) {
				return nil, domain.NewUnavailableError("Failed to get courses", errors.New("dial tcp: connection refused"))
			},
		}
		app := newCourseTestApp(svc, "")

		resp, err := app.Test(httptest.NewRequest("GET", "/api/courses", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

		env := decodeEnvelope(t, resp.Body)
		assert.False(t, env.Success)
		assert.Equal(t, string(domain.ErrUnavailable), env.Error)
	})
}

func TestCourseHandler_GetCourseByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc := &mockCourseService{
			GetCourseByIDFunc: func(ctx context.Context, id int64) (*dto.CourseResponse, error) {
				return nil, domain.NewCourseNotFoundError(id)
			},
		}
		app := newCourseTestApp(svc, "")

		resp, err := app.Test(httptest.NewRequest("GET", "/api/courses/77", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("bad id", func(t *testing.T) {
		app := newCourseTestApp(&mockCourseService{}, "")

		resp, err := app.Test(httptest.NewRequest("GET", "/api/courses/-3", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestCourseHandler_GetLessonByID(t *testing.T) {
	svc := &mockCourseService{
		GetLessonByIDFunc: func(ctx context.Context, id int64) (*dto.LessonResponse, error) {
			assert.Equal(t, int64(5), id)
			return &dto.LessonResponse{ID: 5, CourseID: 1, Title: "Slices", CourseTitle: "Intro to Go"}, nil
		},
	}
	app := newCourseTestApp(svc, "")

	resp, err := app.Test(httptest.NewRequest("GET", "/api/courses/lessons/5", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp.Body)
	assert.True(t, env.Success)
	data, ok := env.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Intro to Go", data["course_title"])
}

func TestCourseHandler_GetCourseProgress(t *testing.T) {
	svc := &mockCourseService{
		GetCourseProgressFunc: func(ctx context.Context, userID string, courseID int64) ([]dto.ProgressResponse, error) {
			assert.Equal(t, "user-1", userID)
			assert.Equal(t, int64(1), courseID)
			return []dto.ProgressResponse{
				{ID: "01HGZ8VNRYXS8QKNJV5GRWPWDQ", UserID: "user-1", CourseID: 1, LessonID: 5, Completed: true},
			}, nil
		},
	}
	app := newCourseTestApp(svc, "user-1")

	resp, err := app.Test(httptest.NewRequest("GET", "/api/courses/1/progress", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp.Body)
	assert.True(t, env.Success)
}

func TestCourseHandler_CompleteLesson(t *testing.T) {
	t.Run("records completion for the caller", func(t *testing.T) {
		svc := &mockCourseService{
			CompleteLessonFunc: func(ctx context.Context, userID string, lessonID int64) (*dto.CompleteLessonResponse, error) {
				assert.Equal(t, "user-1", userID)
				assert.Equal(t, int64(5), lessonID)
				return &dto.CompleteLessonResponse{LessonID: 5, CourseID: 1, Completed: true}, nil
			},
		}
		app := newCourseTestApp(svc, "user-1")

		resp, err := app.Test(httptest.NewRequest("POST", "/api/courses/lessons/5/complete", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("unknown lesson", func(t *testing.T) {
		svc := &mockCourseService{
			CompleteLessonFunc: func(ctx context.Context, userID string, lessonID int64) (*dto.CompleteLessonResponse, error) {
				return nil, domain.NewLessonNotFoundError(lessonID)
			},
		}
		app := newCourseTestApp(svc, "user-1")

		resp, err := app.Test(httptest.NewRequest("POST", "/api/courses/lessons/404/complete", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

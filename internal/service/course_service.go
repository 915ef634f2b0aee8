package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"learnhub/internal/cache"
	"learnhub/internal/config"
	"learnhub/internal/domain"
	"learnhub/internal/dto"
	"learnhub/internal/logger"

	"go.uber.org/zap"
)

const courseListCacheKeyID = "all"

// CourseService defines the interface for course and lesson operations.
type CourseService interface {
	GetAllCourses(ctx context.Context) (*dto.CourseListResponse, error)
	GetCourseByID(ctx context.Context, id int64) (*dto.CourseResponse, error)
	GetLessonByID(ctx context.Context, id int64) (*dto.LessonResponse, error)
	GetCourseProgress(ctx context.Context, userID string, courseID int64) ([]dto.ProgressResponse, error)
	CompleteLesson(ctx context.Context, userID string, lessonID int64) (*dto.CompleteLessonResponse, error)
}

// courseService implements CourseService
type courseService struct {
	courseRepo   domain.CourseRepository
	progressRepo domain.ProgressRepository
	cache        domain.Cache
	cfg          *config.Config
}

// NewCourseService creates a new instance of courseService
func NewCourseService(
	courseRepo domain.CourseRepository,
	progressRepo domain.ProgressRepository,
	cache domain.Cache,
	cfg *config.Config,
) CourseService {
	return &courseService{
		courseRepo:   courseRepo,
		progressRepo: progressRepo,
		cache:        cache,
		cfg:          cfg,
	}
}

// GetAllCourses returns every course with its lesson/quiz counts, newest
// first. The list is served read-through from the cache when one is wired.
func (s *courseService) GetAllCourses(ctx context.Context) (*dto.CourseListResponse, error) {
	cacheKey := cache.GenerateCacheKey("course", "list", courseListCacheKeyID)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey)
		if err == nil {
			var resp dto.CourseListResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return &resp, nil
			}
			logger.Get().Warn("Failed to unmarshal cached course list, falling back to store", zap.Error(err))
		} else if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Error("Cache error on course list read", zap.Error(err))
		}
	}

	courses, err := s.courseRepo.GetAllCourses(ctx)
	if err != nil {
		return nil, domain.NewUnavailableError("Failed to get courses", err)
	}

	resp := &dto.CourseListResponse{Courses: make([]dto.CourseResponse, 0, len(courses))}
	for _, c := range courses {
		resp.Courses = append(resp.Courses, toCourseResponse(c))
	}

	if s.cache != nil {
		if payload, err := json.Marshal(resp); err == nil {
			if err := s.cache.Set(ctx, cacheKey, string(payload), s.cfg.Cache.CourseListTTL); err != nil {
				logger.Get().Error("Failed to cache course list", zap.Error(err))
			}
		}
	}

	return resp, nil
}

// GetCourseByID implements CourseService
func (s *courseService) GetCourseByID(ctx context.Context, id int64) (*dto.CourseResponse, error) {
	course, err := s.courseRepo.GetCourseByID(ctx, id)
	if err != nil {
		return nil, domain.NewUnavailableError("Failed to get course", err)
	}
	if course == nil {
		return nil, domain.NewCourseNotFoundError(id)
	}
	resp := toCourseResponse(course)
	return &resp, nil
}

// GetLessonByID implements CourseService
func (s *courseService) GetLessonByID(ctx context.Context, id int64) (*dto.LessonResponse, error) {
	lesson, err := s.courseRepo.GetLessonByID(ctx, id)
	if err != nil {
		return nil, domain.NewUnavailableError("Failed to get lesson", err)
	}
	if lesson == nil {
		return nil, domain.NewLessonNotFoundError(id)
	}
	return &dto.LessonResponse{
		ID:          lesson.ID,
		CourseID:    lesson.CourseID,
		Title:       lesson.Title,
		Content:     lesson.Content,
		Position:    lesson.Position,
		CourseTitle: lesson.CourseTitle,
		CreatedAt:   lesson.CreatedAt,
		UpdatedAt:   lesson.UpdatedAt,
	}, nil
}

// GetCourseProgress returns the caller's per-lesson completion rows for a
// course. An unknown course yields an empty list, not an error.
func (s *courseService) GetCourseProgress(ctx context.Context, userID string, courseID int64) ([]dto.ProgressResponse, error) {
	rows, err := s.progressRepo.GetProgressByUserAndCourse(ctx, userID, courseID)
	if err != nil {
		return nil, domain.NewUnavailableError("Failed to get progress", err)
	}

	resp := make([]dto.ProgressResponse, 0, len(rows))
	for _, p := range rows {
		resp = append(resp, dto.ProgressResponse{
			ID:          p.ID,
			UserID:      p.UserID,
			CourseID:    p.CourseID,
			LessonID:    p.LessonID,
			Completed:   p.Completed,
			CompletedAt: p.CompletedAt,
		})
	}
	return resp, nil
}

// CompleteLesson marks a lesson as completed for the caller. Re-completing a
// lesson is idempotent apart from refreshing completed_at.
func (s *courseService) CompleteLesson(ctx context.Context, userID string, lessonID int64) (*dto.CompleteLessonResponse, error) {
	lesson, err := s.courseRepo.GetLessonByID(ctx, lessonID)
	if err != nil {
		return nil, domain.NewUnavailableError("Failed to get lesson", err)
	}
	if lesson == nil {
		return nil, domain.NewLessonNotFoundError(lessonID)
	}

	now := time.Now()
	progress := &domain.Progress{
		UserID:      userID,
		CourseID:    lesson.CourseID,
		LessonID:    lesson.ID,
		Completed:   true,
		CompletedAt: &now,
	}
	if err := s.progressRepo.UpsertProgress(ctx, progress); err != nil {
		return nil, domain.NewUnavailableError("Failed to record progress", err)
	}

	logger.Get().Info("Lesson completed",
		zap.String("userID", userID),
		zap.Int64("lessonID", lesson.ID),
		zap.Int64("courseID", lesson.CourseID))

	return &dto.CompleteLessonResponse{
		LessonID:  lesson.ID,
		CourseID:  lesson.CourseID,
		Completed: true,
	}, nil
}

func toCourseResponse(c *domain.Course) dto.CourseResponse {
	return dto.CourseResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		LessonCount: c.LessonCount,
		QuizCount:   c.QuizCount,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

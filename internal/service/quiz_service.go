package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"learnhub/internal/cache"
	"learnhub/internal/config"
	"learnhub/internal/domain"
	"learnhub/internal/dto"
	"learnhub/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// QuizService defines the interface for quiz content and grading operations.
type QuizService interface {
	GetQuizContent(ctx context.Context, quizID int64) (*dto.QuizContentResponse, error)
	SubmitQuiz(ctx context.Context, quizID int64, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error)
}

// quizService implements QuizService
type quizService struct {
	repo  domain.QuizRepository
	cache domain.Cache
	cfg   *config.Config
}

// NewQuizService creates a new instance of quizService
func NewQuizService(repo domain.QuizRepository, cache domain.Cache, cfg *config.Config) QuizService {
	return &quizService{
		repo:  repo,
		cache: cache,
		cfg:   cfg,
	}
}

// GetQuizContent returns a quiz with its flattened question/option rows.
// Content is served read-through from the cache; the quiz record and its
// items are fetched concurrently on a miss.
func (s *quizService) GetQuizContent(ctx context.Context, quizID int64) (*dto.QuizContentResponse, error) {
	cacheKey := cache.GenerateCacheKey("quiz", "content", strconv.FormatInt(quizID, 10))

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey)
		if err == nil {
			var resp dto.QuizContentResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return &resp, nil
			}
			logger.Get().Warn("Failed to unmarshal cached quiz content, falling back to store",
				zap.Error(err), zap.Int64("quizID", quizID))
		} else if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Error("Cache error on quiz content read", zap.Error(err), zap.Int64("quizID", quizID))
		}
	}

	var (
		quiz  *domain.Quiz
		items []*domain.QuizItem
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		quiz, err = s.repo.GetQuizByID(gctx, quizID)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = s.repo.GetQuizItems(gctx, quizID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewUnavailableError("Failed to get quiz content", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(quizID)
	}

	resp := &dto.QuizContentResponse{
		Quiz: dto.QuizInfo{
			ID:       quiz.ID,
			CourseID: quiz.CourseID,
			Title:    quiz.Title,
		},
		Items: make([]dto.QuizItemResponse, 0, len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.QuizItemResponse{
			QuestionID:   item.QuestionID,
			QuizID:       item.QuizID,
			QuestionText: item.QuestionText,
			OptionID:     item.OptionID,
			OptionText:   item.OptionText,
			IsCorrect:    item.IsCorrect,
		})
	}

	if s.cache != nil {
		if payload, err := json.Marshal(resp); err == nil {
			if err := s.cache.Set(ctx, cacheKey, string(payload), s.cfg.Cache.QuizContentTTL); err != nil {
				logger.Get().Error("Failed to cache quiz content", zap.Error(err), zap.Int64("quizID", quizID))
			}
		}
	}

	return resp, nil
}

// SubmitQuiz grades a submission against the quiz's answer key. The quiz must
// exist; a quiz with no flagged correct options grades everything to
// {0, 0}. Nothing about the submission is persisted.
func (s *quizService) SubmitQuiz(ctx context.Context, quizID int64, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error) {
	quiz, err := s.repo.GetQuizByID(ctx, quizID)
	if err != nil {
		return nil, domain.NewUnavailableError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(quizID)
	}

	rows, err := s.repo.GetCorrectAnswers(ctx, quizID)
	if err != nil {
		return nil, domain.NewUnavailableError("Failed to get answer key", err)
	}

	answers := make([]domain.SubmittedAnswer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, domain.SubmittedAnswer{
			QuestionID: a.QuestionID,
			OptionID:   a.OptionID,
		})
	}

	result := domain.BuildAnswerKey(rows).Grade(answers)

	logger.Get().Info("Quiz graded",
		zap.Int64("quizID", quizID),
		zap.Int("score", result.Score),
		zap.Int("total", result.Total),
		zap.Int("answers", len(answers)))

	return &dto.SubmitQuizResponse{
		Score: result.Score,
		Total: result.Total,
	}, nil
}

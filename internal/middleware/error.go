package middleware

import (
	"errors"
	"net/http"

	"learnhub/internal/domain"
	"learnhub/internal/dto"
	"learnhub/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler is the centralized error handler. Every error escaping a
// handler is translated here into the uniform response envelope.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get()

		// Validation errors
		var validationErrs domain.ValidationErrors
		if errors.As(err, &validationErrs) {
			log.Warn("Validation errors occurred",
				zap.String("path", c.Path()),
				zap.Int("error_count", len(validationErrs)),
			)
			return c.Status(http.StatusBadRequest).JSON(dto.Envelope{
				Success: false,
				Message: validationErrs.Error(),
				Error:   string(domain.ErrInvalidInput),
			})
		}

		// Domain errors
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			statusCode := mapDomainErrorToHTTPStatus(domainErr)

			log.Error("Domain error occurred",
				zap.String("code", string(domainErr.Code)),
				zap.String("message", domainErr.Message),
				zap.Int("status", statusCode),
				zap.Error(domainErr.Err),
			)

			return c.Status(statusCode).JSON(dto.Envelope{
				Success: false,
				Message: domainErr.Message,
				Error:   string(domainErr.Code),
			})
		}

		// Fiber errors (bad routes, oversized bodies, etc.)
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			log.Warn("Fiber error occurred",
				zap.Int("code", fiberErr.Code),
				zap.String("message", fiberErr.Message),
			)
			return c.Status(fiberErr.Code).JSON(dto.Envelope{
				Success: false,
				Message: fiberErr.Message,
				Error:   "HTTP_ERROR",
			})
		}

		// Unknown errors
		log.Error("Unknown error occurred",
			zap.String("path", c.Path()),
			zap.Error(err),
		)

		return c.Status(http.StatusInternalServerError).JSON(dto.Envelope{
			Success: false,
			Message: "Internal server error",
			Error:   string(domain.ErrInternal),
		})
	}
}

// mapDomainErrorToHTTPStatus maps domain error codes to HTTP status codes
func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.ErrNotFound, domain.ErrCourseNotFound, domain.ErrLessonNotFound,
		domain.ErrQuizNotFound, domain.ErrUserNotFound:
		return http.StatusNotFound
	case domain.ErrInvalidInput, domain.ErrEmailTaken:
		return http.StatusBadRequest
	case domain.ErrUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

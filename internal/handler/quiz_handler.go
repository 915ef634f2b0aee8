package handler

import (
	"learnhub/internal/domain"
	"learnhub/internal/dto"
	"learnhub/internal/service"
	"learnhub/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService, validator *validation.Validator) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validator,
	}
}

// GetQuizContent godoc
// @Summary Get quiz content
// @Description Returns a quiz with its flattened question/option rows
// @Tags quiz
// @Produce json
// @Param id path int true "Quiz ID"
// @Success 200 {object} dto.Envelope{data=dto.QuizContentResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Router /courses/quiz/{id} [get]
func (h *QuizHandler) GetQuizContent(c *fiber.Ctx) error {
	id, errs := h.validator.ValidateNumericID("id", c.Params("id"))
	if len(errs) > 0 {
		return errs
	}

	resp, err := h.service.GetQuizContent(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(resp))
}

// SubmitQuiz godoc
// @Summary Submit quiz answers
// @Description Grades a submission against the quiz's answer key
// @Tags quiz
// @Accept json
// @Produce json
// @Param id path int true "Quiz ID"
// @Param submission body dto.SubmitQuizRequest true "Submitted answers"
// @Security BearerAuth
// @Success 200 {object} dto.Envelope{data=dto.SubmitQuizResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Router /courses/quiz/{id}/submit [post]
func (h *QuizHandler) SubmitQuiz(c *fiber.Ctx) error {
	id, errs := h.validator.ValidateNumericID("id", c.Params("id"))
	if len(errs) > 0 {
		return errs
	}

	var req dto.SubmitQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Request body must be valid JSON")
	}

	if errs := h.validator.ValidateSubmitQuizRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.SubmitQuiz(c.Context(), id, &req)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(resp))
}

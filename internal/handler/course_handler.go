package handler

import (
	"learnhub/internal/dto"
	"learnhub/internal/middleware"
	"learnhub/internal/service"
	"learnhub/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CourseHandler handles course, lesson, and progress HTTP requests
type CourseHandler struct {
	service   service.CourseService
	validator *validation.Validator
}

// NewCourseHandler creates a new CourseHandler instance
func NewCourseHandler(service service.CourseService, validator *validation.Validator) *CourseHandler {
	return &CourseHandler{
		service:   service,
		validator: validator,
	}
}

// GetAllCourses godoc
// @Summary List all courses
// @Description Returns every course with its lesson and quiz counts, newest first
// @Tags courses
// @Produce json
// @Success 200 {object} dto.Envelope{data=dto.CourseListResponse}
// @Failure 500 {object} dto.Envelope
// @Router /courses [get]
func (h *CourseHandler) GetAllCourses(c *fiber.Ctx) error {
	resp, err := h.service.GetAllCourses(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(resp))
}

// GetCourseByID godoc
// @Summary Get a course
// @Description Returns a single course by id
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.Envelope{data=dto.CourseResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Router /courses/{id} [get]
func (h *CourseHandler) GetCourseByID(c *fiber.Ctx) error {
	id, errs := h.validator.ValidateNumericID("id", c.Params("id"))
	if len(errs) > 0 {
		return errs
	}

	resp, err := h.service.GetCourseByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(resp))
}

// GetLessonByID godoc
// @Summary Get a lesson
// @Description Returns a lesson with its parent course title
// @Tags lessons
// @Produce json
// @Param id path int true "Lesson ID"
// @Success 200 {object} dto.Envelope{data=dto.LessonResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Router /courses/lessons/{id} [get]
func (h *CourseHandler) GetLessonByID(c *fiber.Ctx) error {
	id, errs := h.validator.ValidateNumericID("id", c.Params("id"))
	if len(errs) > 0 {
		return errs
	}

	resp, err := h.service.GetLessonByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(resp))
}

// GetCourseProgress godoc
// @Summary Get course progress
// @Description Returns the caller's per-lesson completion rows for a course
// @Tags progress
// @Produce json
// @Param courseId path int true "Course ID"
// @Security BearerAuth
// @Success 200 {object} dto.Envelope{data=[]dto.ProgressResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Router /courses/{courseId}/progress [get]
func (h *CourseHandler) GetCourseProgress(c *fiber.Ctx) error {
	courseID, errs := h.validator.ValidateNumericID("courseId", c.Params("courseId"))
	if len(errs) > 0 {
		return errs
	}

	userID, _ := c.Locals(middleware.UserIDKey).(string)

	resp, err := h.service.GetCourseProgress(c.Context(), userID, courseID)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(resp))
}

// CompleteLesson godoc
// @Summary Mark a lesson complete
// @Description Records the caller's completion of a lesson
// @Tags progress
// @Produce json
// @Param id path int true "Lesson ID"
// @Security BearerAuth
// @Success 200 {object} dto.Envelope{data=dto.CompleteLessonResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Router /courses/lessons/{id}/complete [post]
func (h *CourseHandler) CompleteLesson(c *fiber.Ctx) error {
	lessonID, errs := h.validator.ValidateNumericID("id", c.Params("id"))
	if len(errs) > 0 {
		return errs
	}

	userID, _ := c.Locals(middleware.UserIDKey).(string)

	resp, err := h.service.CompleteLesson(c.Context(), userID, lessonID)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(resp))
}

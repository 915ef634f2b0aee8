package validation

import (
	"strconv"
	"strings"

	"learnhub/internal/domain"
	"learnhub/internal/dto"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateNumericID validates a positive numeric path parameter and returns
// its parsed value.
func (v *Validator) ValidateNumericID(field, raw string) (int64, domain.ValidationErrors) {
	var errors domain.ValidationErrors

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		errors = append(errors, domain.NewMissingFieldError(field))
		return 0, errors
	}

	id, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil || id <= 0 {
		errors = append(errors, domain.NewInvalidFormatError(field, raw))
		return 0, errors
	}
	return id, nil
}

// ValidateSubmitQuizRequest validates a quiz submission payload. Answers must
// be a non-empty collection and every entry must carry a positive questionId
// and optionId.
func (v *Validator) ValidateSubmitQuizRequest(req *dto.SubmitQuizRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req == nil || len(req.Answers) == 0 {
		errors = append(errors, domain.NewMissingFieldError("answers"))
		return errors
	}

	for i, answer := range req.Answers {
		if answer.QuestionID <= 0 {
			errors = append(errors, domain.NewInvalidFormatError("answers["+strconv.Itoa(i)+"].questionId", strconv.FormatInt(answer.QuestionID, 10)))
		}
		if answer.OptionID <= 0 {
			errors = append(errors, domain.NewInvalidFormatError("answers["+strconv.Itoa(i)+"].optionId", strconv.FormatInt(answer.OptionID, 10)))
		}
	}

	return errors
}

// ValidateRegisterRequest validates a registration payload.
func (v *Validator) ValidateRegisterRequest(req *dto.RegisterRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req == nil {
		errors = append(errors, domain.NewMissingFieldError("body"))
		return errors
	}

	if strings.TrimSpace(req.Email) == "" {
		errors = append(errors, domain.NewMissingFieldError("email"))
	} else if !isValidEmail(req.Email) {
		errors = append(errors, domain.NewInvalidFormatError("email", req.Email))
	}

	if strings.TrimSpace(req.Name) == "" {
		errors = append(errors, domain.NewMissingFieldError("name"))
	}

	if req.Password == "" {
		errors = append(errors, domain.NewMissingFieldError("password"))
	} else if len(req.Password) < 8 || len(req.Password) > 72 {
		errors = append(errors, domain.NewInvalidFormatError("password", "must be 8-72 characters"))
	}

	return errors
}

// ValidateLoginRequest validates a login payload.
func (v *Validator) ValidateLoginRequest(req *dto.LoginRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req == nil {
		errors = append(errors, domain.NewMissingFieldError("body"))
		return errors
	}

	if strings.TrimSpace(req.Email) == "" {
		errors = append(errors, domain.NewMissingFieldError("email"))
	}
	if req.Password == "" {
		errors = append(errors, domain.NewMissingFieldError("password"))
	}

	return errors
}

// Helper functions for validation

// isValidEmail performs a structural check, not a full RFC 5322 parse.
func isValidEmail(s string) bool {
	if len(s) > 254 {
		return false
	}
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	domainPart := s[at+1:]
	if !strings.Contains(domainPart, ".") || strings.Contains(s, " ") {
		return false
	}
	return true
}

package service

import (
	"fmt"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
)

// OptionInput is a proposed option inside a question payload.
type OptionInput struct {
	Text      string
	IsCorrect bool
}

// QuestionInput is a proposed question payload, validated before any
// persistence happens.
type QuestionInput struct {
	Text    string
	Type    string
	Order   *int
	Options []OptionInput
}

// ValidateQuestionPayload enforces the structural rules on a question payload.
// Rules are checked in a fixed order and the first violation wins; nothing is
// persisted on rejection. Every failure wraps apperrors.ErrValidation.
func ValidateQuestionPayload(input QuestionInput) error {
	if !entity.IsValidType(input.Type) {
		return fmt.Errorf("%w: %q is not a valid question type", apperrors.ErrValidation, input.Type)
	}

	if input.Type == entity.QuestionTypeText {
		if len(input.Options) > 0 {
			return fmt.Errorf("%w: text questions cannot have options", apperrors.ErrValidation)
		}
		if len([]rune(input.Text)) > entity.QuestionTextLimit {
			return fmt.Errorf("%w: text question text cannot exceed %d characters", apperrors.ErrValidation, entity.QuestionTextLimit)
		}
		return nil
	}

	if len(input.Options) < 2 {
		return fmt.Errorf("%w: choice questions must have at least two options", apperrors.ErrValidation)
	}

	correctCount := 0
	for _, opt := range input.Options {
		if opt.IsCorrect {
			correctCount++
		}
	}

	if input.Type == entity.QuestionTypeSingle && correctCount != 1 {
		return fmt.Errorf("%w: single-choice questions must have exactly one correct option", apperrors.ErrValidation)
	}

	if input.Type == entity.QuestionTypeMultiple && correctCount < 1 {
		return fmt.Errorf("%w: multiple-choice questions must have at least one correct option", apperrors.ErrValidation)
	}

	return nil
}

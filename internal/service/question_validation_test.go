package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
)

func TestValidateQuestionPayload_TextQuestionWithOptions(t *testing.T) {
	// Arrange
	input := QuestionInput{
		Text: "Explain gravity",
		Type: entity.QuestionTypeText,
		Options: []OptionInput{
			{Text: "Not allowed"},
		},
	}

	// Act
	err := ValidateQuestionPayload(input)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "text questions cannot have options")
}

func TestValidateQuestionPayload_TextQuestionTooLong(t *testing.T) {
	// Arrange: 301 characters
	input := QuestionInput{
		Text: strings.Repeat("a", entity.QuestionTextLimit+1),
		Type: entity.QuestionTypeText,
	}

	// Act & Assert
	err := ValidateQuestionPayload(input)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestValidateQuestionPayload_TextQuestionAtLimit(t *testing.T) {
	// Arrange: exactly 300 characters is allowed
	input := QuestionInput{
		Text: strings.Repeat("д", entity.QuestionTextLimit), // multi-byte runes count as one
		Type: entity.QuestionTypeText,
	}

	// Act & Assert
	assert.NoError(t, ValidateQuestionPayload(input))
}

func TestValidateQuestionPayload_ChoiceNeedsTwoOptions(t *testing.T) {
	// Arrange: single-choice with one correct option but only one option total
	input := QuestionInput{
		Text: "H2O is?",
		Type: entity.QuestionTypeSingle,
		Options: []OptionInput{
			{Text: "Water", IsCorrect: true},
		},
	}

	// Act
	err := ValidateQuestionPayload(input)

	// Assert
	require.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "at least two options")
}

func TestValidateQuestionPayload_SingleChoiceExactlyOneCorrect(t *testing.T) {
	base := func(correct ...bool) QuestionInput {
		input := QuestionInput{Text: "H2O is?", Type: entity.QuestionTypeSingle}
		for _, c := range correct {
			input.Options = append(input.Options, OptionInput{Text: "opt", IsCorrect: c})
		}
		return input
	}

	assert.NoError(t, ValidateQuestionPayload(base(true, false)))
	assert.ErrorIs(t, ValidateQuestionPayload(base(false, false)), apperrors.ErrValidation, "zero correct options must be rejected")
	assert.ErrorIs(t, ValidateQuestionPayload(base(true, true)), apperrors.ErrValidation, "two correct options must be rejected")
}

func TestValidateQuestionPayload_MultipleChoiceAtLeastOneCorrect(t *testing.T) {
	base := func(correct ...bool) QuestionInput {
		input := QuestionInput{Text: "Which are mammals?", Type: entity.QuestionTypeMultiple}
		for _, c := range correct {
			input.Options = append(input.Options, OptionInput{Text: "opt", IsCorrect: c})
		}
		return input
	}

	assert.NoError(t, ValidateQuestionPayload(base(true, false)))
	assert.NoError(t, ValidateQuestionPayload(base(true, true, false)))
	assert.ErrorIs(t, ValidateQuestionPayload(base(false, false)), apperrors.ErrValidation, "zero correct options must be rejected")
}

func TestValidateQuestionPayload_InvalidType(t *testing.T) {
	err := ValidateQuestionPayload(QuestionInput{Text: "?", Type: "essay"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestValidateQuestionPayload_FirstFailureWins(t *testing.T) {
	// Arrange: violates both the option-count rule and the correctness rule
	input := QuestionInput{
		Text: "H2O is?",
		Type: entity.QuestionTypeSingle,
		Options: []OptionInput{
			{Text: "Water"}, // one option, zero correct
		},
	}

	// Act
	err := ValidateQuestionPayload(input)

	// Assert: the earlier rule (option count) is the one reported
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least two options")
	assert.NotContains(t, err.Error(), "exactly one correct")
}

package repository

import (
	"github.com/google/uuid"
	"github.com/yourusername/quiz-api/internal/domain/entity"
)

// QuestionRepository defines persistence operations for questions and their
// options. Writes that touch both tables are atomic: a rejected or failed
// request leaves no partial rows behind.
type QuestionRepository interface {
	// CreateWithOptions inserts the question and then its options in slice
	// order, all in one transaction.
	CreateWithOptions(question *entity.Question) error

	// GetByID returns the question with its options preloaded, or
	// apperrors.ErrNotFound.
	GetByID(id uuid.UUID) (*entity.Question, error)

	// GetByQuizID returns all questions of a quiz with options preloaded,
	// ordered by display order, then creation time.
	GetByQuizID(quizID uuid.UUID) ([]entity.Question, error)

	// CountByQuizID returns the live question count of a quiz.
	CountByQuizID(quizID uuid.UUID) (int64, error)

	// UpdateWithOptions applies targeted column updates and, when options is
	// non-nil, replaces the full option set in the same transaction.
	UpdateWithOptions(id uuid.UUID, updates map[string]interface{}, options []entity.Option) error

	Delete(id uuid.UUID) error
}

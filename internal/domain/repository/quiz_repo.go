package repository

import (
	"github.com/google/uuid"
	"github.com/yourusername/quiz-api/internal/domain/entity"
)

// QuizRepository defines persistence operations for quizzes.
type QuizRepository interface {
	Create(quiz *entity.Quiz) error

	// GetByID returns the quiz or apperrors.ErrNotFound.
	GetByID(id uuid.UUID) (*entity.Quiz, error)

	// List returns quizzes ordered by recency (newest first).
	List(limit, offset int) ([]entity.Quiz, error)

	// UpdateFields applies a targeted column update without a full Save.
	UpdateFields(id uuid.UUID, updates map[string]interface{}) error

	// Delete removes the quiz; questions, options, submissions and answers
	// cascade at the storage level.
	Delete(id uuid.UUID) error
}

package repository

import (
	"github.com/google/uuid"
	"github.com/yourusername/quiz-api/internal/domain/entity"
)

// SubmissionRepository defines read access to persisted submissions.
// Submissions are written exclusively by the scoring transaction in
// service.SubmissionService and are never mutated afterwards.
type SubmissionRepository interface {
	// GetByID returns the submission with its answers and selected options
	// preloaded, or apperrors.ErrNotFound.
	GetByID(id uuid.UUID) (*entity.Submission, error)

	// ListByQuizID returns submissions for a quiz ordered by recency.
	ListByQuizID(quizID uuid.UUID, limit, offset int) ([]entity.Submission, error)
}

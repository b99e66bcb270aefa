package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/google/uuid"
	"github.com/yourusername/quiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
)

// SubmissionRepo implements repository.SubmissionRepository
type SubmissionRepo struct {
	db *gorm.DB
}

// NewSubmissionRepo creates a new submission repository
func NewSubmissionRepo(db *gorm.DB) *SubmissionRepo {
	return &SubmissionRepo{db: db}
}

// GetByID returns a submission with answers and selected options preloaded
func (r *SubmissionRepo) GetByID(id uuid.UUID) (*entity.Submission, error) {
	var submission entity.Submission
	err := r.db.Preload("Answers.SelectedOptions", orderOptions).
		First(&submission, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &submission, nil
}

// ListByQuizID returns submissions for a quiz ordered by recency
func (r *SubmissionRepo) ListByQuizID(quizID uuid.UUID, limit, offset int) ([]entity.Submission, error) {
	var submissions []entity.Submission
	err := r.db.Where("quiz_id = ?", quizID).
		Order("submitted_at DESC").
		Limit(limit).Offset(offset).
		Find(&submissions).Error
	if err != nil {
		return nil, err
	}
	return submissions, nil
}

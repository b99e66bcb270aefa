package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/google/uuid"
	"github.com/yourusername/quiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
)

// QuizRepo implements repository.QuizRepository
type QuizRepo struct {
	db *gorm.DB
}

// NewQuizRepo creates a new quiz repository
func NewQuizRepo(db *gorm.DB) *QuizRepo {
	return &QuizRepo{db: db}
}

// Create inserts a new quiz
func (r *QuizRepo) Create(quiz *entity.Quiz) error {
	return r.db.Create(quiz).Error
}

// GetByID returns a quiz by ID
func (r *QuizRepo) GetByID(id uuid.UUID) (*entity.Quiz, error) {
	var quiz entity.Quiz
	err := r.db.First(&quiz, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

// List returns quizzes ordered by recency
func (r *QuizRepo) List(limit, offset int) ([]entity.Quiz, error) {
	var quizzes []entity.Quiz
	err := r.db.Limit(limit).Offset(offset).Order("created_at DESC").Find(&quizzes).Error
	return quizzes, err
}

// UpdateFields applies a targeted column update without a full Save
func (r *QuizRepo) UpdateFields(id uuid.UUID, updates map[string]interface{}) error {
	result := r.db.Model(&entity.Quiz{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete removes a quiz; children cascade via foreign keys
func (r *QuizRepo) Delete(id uuid.UUID) error {
	result := r.db.Delete(&entity.Quiz{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

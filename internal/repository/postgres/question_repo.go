package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/google/uuid"
	"github.com/yourusername/quiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
)

// QuestionRepo implements repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo creates a new question repository
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// orderOptions keeps preloaded options in their authoring order.
func orderOptions(db *gorm.DB) *gorm.DB {
	return db.Order("options.position")
}

// CreateWithOptions inserts a question and its options in slice order inside
// one transaction. The parent quiz may vanish between the service's existence
// check and this insert; the FK violation is mapped back to ErrNotFound.
func (r *QuestionRepo) CreateWithOptions(question *entity.Question) error {
	options := question.Options
	question.Options = nil

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(question).Error; err != nil {
			return err
		}
		for i := range options {
			options[i].QuestionID = question.ID
			if err := tx.Create(&options[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("quiz %s: %w", question.QuizID, apperrors.ErrNotFound)
		}
		return err
	}

	question.Options = options
	return nil
}

// GetByID returns a question with its options preloaded
func (r *QuestionRepo) GetByID(id uuid.UUID) (*entity.Question, error) {
	var question entity.Question
	err := r.db.Preload("Options", orderOptions).First(&question, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// GetByQuizID returns all questions of a quiz with options preloaded
func (r *QuestionRepo) GetByQuizID(quizID uuid.UUID) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Preload("Options", orderOptions).
		Where("quiz_id = ?", quizID).
		Order("display_order NULLS LAST, created_at").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// CountByQuizID returns the live question count of a quiz
func (r *QuestionRepo) CountByQuizID(quizID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&entity.Question{}).
		Where("quiz_id = ?", quizID).
		Count(&count).Error
	return count, err
}

// UpdateWithOptions applies targeted column updates and, when options is
// non-nil, replaces the full option set in the same transaction.
func (r *QuestionRepo) UpdateWithOptions(id uuid.UUID, updates map[string]interface{}, options []entity.Option) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			result := tx.Model(&entity.Question{}).
				Where("id = ?", id).
				Updates(updates)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return apperrors.ErrNotFound
			}
		}

		if options == nil {
			return nil
		}

		if err := tx.Where("question_id = ?", id).Delete(&entity.Option{}).Error; err != nil {
			return err
		}
		for i := range options {
			options[i].QuestionID = id
			if err := tx.Create(&options[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a question; options cascade via foreign keys
func (r *QuestionRepo) Delete(id uuid.UUID) error {
	result := r.db.Delete(&entity.Question{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

package service

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/yourusername/quiz-api/internal/domain/entity"
	"github.com/yourusername/quiz-api/internal/domain/repository"
)

// QuizService provides quiz authoring use cases
type QuizService struct {
	quizRepo     repository.QuizRepository
	questionRepo repository.QuestionRepository
}

// NewQuizService creates a new quiz service
func NewQuizService(quizRepo repository.QuizRepository, questionRepo repository.QuestionRepository) *QuizService {
	return &QuizService{
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
	}
}

// CreateQuiz creates a new quiz
func (s *QuizService) CreateQuiz(title, instructions string) (*entity.Quiz, error) {
	quiz := &entity.Quiz{
		ID:           uuid.New(),
		Title:        title,
		Instructions: instructions,
	}

	if err := s.quizRepo.Create(quiz); err != nil {
		return nil, fmt.Errorf("failed to create quiz: %w", err)
	}

	return quiz, nil
}

// GetQuiz returns a quiz together with its derived total marks
func (s *QuizService) GetQuiz(quizID uuid.UUID) (*entity.Quiz, int, error) {
	quiz, err := s.quizRepo.GetByID(quizID)
	if err != nil {
		return nil, 0, err
	}

	count, err := s.questionRepo.CountByQuizID(quizID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count questions for quiz %s: %w", quizID, err)
	}

	return quiz, entity.TotalMarks(count), nil
}

// ListQuizzes returns quizzes ordered by recency with pagination
func (s *QuizService) ListQuizzes(page, pageSize int) ([]entity.Quiz, error) {
	offset := (page - 1) * pageSize
	return s.quizRepo.List(pageSize, offset)
}

// UpdateQuiz applies a partial update and returns the fresh quiz with its
// derived total marks
func (s *QuizService) UpdateQuiz(quizID uuid.UUID, title, instructions *string) (*entity.Quiz, int, error) {
	updates := map[string]interface{}{}
	if title != nil {
		updates["title"] = *title
	}
	if instructions != nil {
		updates["instructions"] = *instructions
	}

	if len(updates) > 0 {
		if err := s.quizRepo.UpdateFields(quizID, updates); err != nil {
			return nil, 0, err
		}
	}

	return s.GetQuiz(quizID)
}

// DeleteQuiz removes a quiz and, through storage-level cascades, its
// questions, options, submissions and submission answers
func (s *QuizService) DeleteQuiz(quizID uuid.UUID) error {
	if err := s.quizRepo.Delete(quizID); err != nil {
		return err
	}
	log.Printf("[QuizService] Deleted quiz %s", quizID)
	return nil
}

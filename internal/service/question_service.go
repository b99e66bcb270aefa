package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/quiz-api/internal/domain/entity"
	"github.com/yourusername/quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
)

// publicQuestionsCacheTTL bounds staleness of the cached question list.
const publicQuestionsCacheTTL = 5 * time.Minute

// QuestionUpdate is a partial update of a question. Nil fields are left
// untouched. When Options is non-nil (or Type changes) the payload is
// re-validated and the option set replaced as a whole.
type QuestionUpdate struct {
	Text    *string
	Type    *string
	Order   *int
	Options *[]OptionInput
}

// QuestionService provides question authoring use cases. Every mutation
// invalidates the quiz's cached public question list.
type QuestionService struct {
	quizRepo     repository.QuizRepository
	questionRepo repository.QuestionRepository
	cacheRepo    repository.CacheRepository
}

// NewQuestionService creates a new question service
func NewQuestionService(
	quizRepo repository.QuizRepository,
	questionRepo repository.QuestionRepository,
	cacheRepo repository.CacheRepository,
) *QuestionService {
	return &QuestionService{
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
		cacheRepo:    cacheRepo,
	}
}

func publicQuestionsCacheKey(quizID uuid.UUID) string {
	return fmt.Sprintf("quiz:%s:questions", quizID)
}

// CreateQuestion validates the payload and persists the question with its
// options, preserving input order. Marks is always 1 regardless of input.
func (s *QuestionService) CreateQuestion(quizID uuid.UUID, input QuestionInput) (*entity.Question, error) {
	if err := ValidateQuestionPayload(input); err != nil {
		return nil, err
	}

	if _, err := s.quizRepo.GetByID(quizID); err != nil {
		return nil, err
	}

	question := &entity.Question{
		ID:     uuid.New(),
		QuizID: quizID,
		Text:   input.Text,
		Type:   input.Type,
		Order:  input.Order,
		Marks:  entity.QuestionMarks,
	}
	for i, opt := range input.Options {
		question.Options = append(question.Options, entity.Option{
			ID:        uuid.New(),
			Text:      opt.Text,
			IsCorrect: opt.IsCorrect,
			Position:  i,
		})
	}

	if err := s.questionRepo.CreateWithOptions(question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	s.invalidatePublicQuestions(quizID)
	return question, nil
}

// GetQuestion returns a question with its options (authoring view)
func (s *QuestionService) GetQuestion(questionID uuid.UUID) (*entity.Question, error) {
	return s.questionRepo.GetByID(questionID)
}

// ListQuizQuestions returns all questions of a quiz with options, reading
// through the cache. Callers decide which projection (authoring or public)
// to expose.
func (s *QuestionService) ListQuizQuestions(quizID uuid.UUID) ([]entity.Question, error) {
	key := publicQuestionsCacheKey(quizID)

	var cached []entity.Question
	if err := s.cacheRepo.GetJSON(key, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		log.Printf("[QuestionService] Cache read failed for quiz %s: %v", quizID, err)
	}

	if _, err := s.quizRepo.GetByID(quizID); err != nil {
		return nil, err
	}

	questions, err := s.questionRepo.GetByQuizID(quizID)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions for quiz %s: %w", quizID, err)
	}

	if err := s.cacheRepo.SetJSON(key, questions, publicQuestionsCacheTTL); err != nil {
		log.Printf("[QuestionService] Cache write failed for quiz %s: %v", quizID, err)
	}

	return questions, nil
}

// UpdateQuestion applies a partial update. When the type or the option set
// changes, the effective payload is validated with the same rules as creation
// and the options are replaced atomically. Marks stays untouched.
func (s *QuestionService) UpdateQuestion(questionID uuid.UUID, upd QuestionUpdate) (*entity.Question, error) {
	question, err := s.questionRepo.GetByID(questionID)
	if err != nil {
		return nil, err
	}

	effective := QuestionInput{
		Text: question.Text,
		Type: question.Type,
	}
	if upd.Text != nil {
		effective.Text = *upd.Text
	}
	if upd.Type != nil {
		effective.Type = *upd.Type
	}
	if upd.Options != nil {
		effective.Options = *upd.Options
	}

	// Type or option changes re-run full payload validation. Like the
	// original authoring flow, updating a choice question requires resending
	// its complete option set.
	var replacement []entity.Option
	revalidate := upd.Type != nil || upd.Options != nil
	if revalidate {
		if err := ValidateQuestionPayload(effective); err != nil {
			return nil, err
		}
		replacement = make([]entity.Option, 0, len(effective.Options))
		for i, opt := range effective.Options {
			replacement = append(replacement, entity.Option{
				ID:        uuid.New(),
				Text:      opt.Text,
				IsCorrect: opt.IsCorrect,
				Position:  i,
			})
		}
	} else if upd.Text != nil && question.IsText() {
		if err := ValidateQuestionPayload(effective); err != nil {
			return nil, err
		}
	}

	updates := map[string]interface{}{}
	if upd.Text != nil {
		updates["text"] = *upd.Text
	}
	if upd.Type != nil {
		updates["type"] = *upd.Type
	}
	if upd.Order != nil {
		updates["display_order"] = *upd.Order
	}

	if err := s.questionRepo.UpdateWithOptions(questionID, updates, replacement); err != nil {
		return nil, err
	}

	s.invalidatePublicQuestions(question.QuizID)
	return s.questionRepo.GetByID(questionID)
}

// DeleteQuestion removes a question; its options cascade
func (s *QuestionService) DeleteQuestion(questionID uuid.UUID) error {
	question, err := s.questionRepo.GetByID(questionID)
	if err != nil {
		return err
	}

	if err := s.questionRepo.Delete(questionID); err != nil {
		return err
	}

	s.invalidatePublicQuestions(question.QuizID)
	return nil
}

// invalidatePublicQuestions drops the cached question list for a quiz.
// Cache failures are logged, never surfaced: the store remains authoritative.
func (s *QuestionService) invalidatePublicQuestions(quizID uuid.UUID) {
	if err := s.cacheRepo.Delete(publicQuestionsCacheKey(quizID)); err != nil {
		log.Printf("[QuestionService] Cache invalidation failed for quiz %s: %v", quizID, err)
	}
}

package service

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/google/uuid"
	"github.com/yourusername/quiz-api/internal/domain/entity"
	"github.com/yourusername/quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
)

// AnswerInput is one submitted answer. SelectedOptionIDs stays raw strings:
// unparseable entries are dropped during scoring, not rejected.
type AnswerInput struct {
	QuestionID        uuid.UUID
	SelectedOptionIDs []string
	TextAnswer        string
}

// SubmissionService implements the scoring flow: it reads the quiz's
// questions, persists a submission with derived answers and computes the
// final score, all inside one transaction.
type SubmissionService struct {
	db             *gorm.DB
	quizRepo       repository.QuizRepository
	submissionRepo repository.SubmissionRepository
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(
	db *gorm.DB,
	quizRepo repository.QuizRepository,
	submissionRepo repository.SubmissionRepository,
) *SubmissionService {
	return &SubmissionService{
		db:             db,
		quizRepo:       quizRepo,
		submissionRepo: submissionRepo,
	}
}

// Submit scores an answer set against a quiz and persists the result.
//
// Total is a snapshot of the quiz's question count; later quiz edits never
// change past submissions. A question reference that does not resolve within
// the quiz aborts the whole transaction. Option references are handled
// leniently: unparseable ids and options of other questions are silently
// excluded from the chosen set. A question scores its marks only when the
// chosen set equals the correct set exactly.
func (s *SubmissionService) Submit(quizID uuid.UUID, answers []AnswerInput) (*entity.Submission, error) {
	var submission *entity.Submission

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var quiz entity.Quiz
		if err := tx.First(&quiz, "id = ?", quizID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("quiz %s: %w", quizID, apperrors.ErrNotFound)
			}
			return err
		}

		var questionCount int64
		if err := tx.Model(&entity.Question{}).
			Where("quiz_id = ?", quizID).
			Count(&questionCount).Error; err != nil {
			return err
		}

		submission = &entity.Submission{
			ID:     uuid.New(),
			QuizID: quizID,
			Total:  entity.TotalMarks(questionCount),
			Score:  0,
		}
		if err := tx.Create(submission).Error; err != nil {
			return err
		}

		scored, score, err := scoreAnswers(submission.ID, answers, func(questionID uuid.UUID) (*entity.Question, error) {
			var question entity.Question
			err := tx.Preload("Options").
				First(&question, "id = ? AND quiz_id = ?", questionID, quizID).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, fmt.Errorf("question %s does not belong to quiz %s: %w", questionID, quizID, apperrors.ErrNotFound)
				}
				return nil, err
			}
			return &question, nil
		})
		if err != nil {
			return err
		}

		for _, answer := range scored {
			// Omit prevents GORM from re-upserting the referenced options;
			// only the join rows are written.
			if err := tx.Omit("SelectedOptions.*").Create(answer).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(submission).Update("score", score).Error; err != nil {
			return err
		}
		submission.Score = score
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[SubmissionService] Quiz %s scored %d/%d (%d answers)",
		quizID, submission.Score, submission.Total, len(answers))
	return submission, nil
}

// GetSubmission returns a persisted submission with its answers
func (s *SubmissionService) GetSubmission(submissionID uuid.UUID) (*entity.Submission, error) {
	return s.submissionRepo.GetByID(submissionID)
}

// ListQuizSubmissions returns the submissions of a quiz ordered by recency
func (s *SubmissionService) ListQuizSubmissions(quizID uuid.UUID, page, pageSize int) ([]entity.Submission, error) {
	if _, err := s.quizRepo.GetByID(quizID); err != nil {
		return nil, err
	}
	offset := (page - 1) * pageSize
	return s.submissionRepo.ListByQuizID(quizID, pageSize, offset)
}

// scoreAnswers resolves every submitted answer against its question and
// accumulates the score. lookup resolves a question id within the quiz being
// scored; any lookup failure aborts the whole submission, so a foreign or
// unknown question never yields a partially scored result. Choice answers keep
// their resolved option set, text answers are truncated to the stored limit.
func scoreAnswers(
	submissionID uuid.UUID,
	answers []AnswerInput,
	lookup func(questionID uuid.UUID) (*entity.Question, error),
) ([]*entity.SubmissionAnswer, int, error) {
	scored := make([]*entity.SubmissionAnswer, 0, len(answers))
	score := 0

	for _, ans := range answers {
		question, err := lookup(ans.QuestionID)
		if err != nil {
			return nil, 0, err
		}

		answer := &entity.SubmissionAnswer{
			ID:           uuid.New(),
			SubmissionID: submissionID,
			QuestionID:   question.ID,
		}

		if question.IsChoice() {
			answer.SelectedOptions = resolveSelection(question, ans.SelectedOptionIDs)
			score += question.ScoreSelection(answer.SelectedOptions)
		} else {
			answer.TextAnswer = truncateRunes(ans.TextAnswer, entity.AnswerTextLimit)
		}

		scored = append(scored, answer)
	}

	return scored, score, nil
}

// resolveSelection maps raw option id strings onto the question's own
// options. Unparseable ids, duplicates and ids of foreign options are
// silently dropped, exactly as if never selected.
func resolveSelection(question *entity.Question, rawIDs []string) []entity.Option {
	byID := make(map[uuid.UUID]entity.Option, len(question.Options))
	for _, opt := range question.Options {
		byID[opt.ID] = opt
	}

	seen := make(map[uuid.UUID]struct{}, len(rawIDs))
	chosen := make([]entity.Option, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		opt, ok := byID[id]
		if !ok {
			continue
		}
		seen[id] = struct{}{}
		chosen = append(chosen, opt)
	}
	return chosen
}

// truncateRunes cuts s to at most limit runes. Limits are defined in
// characters, not bytes, so multi-byte text is never split mid-rune.
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

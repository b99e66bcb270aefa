package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/quiz-api/internal/domain/entity"
)

// The authoring and public views of a question are separate types on
// purpose: the public option DTO has no correctness field at all, so leaking
// is_correct to quiz takers is impossible by construction rather than policy.

// OptionResponse is the authoring view of an option, correctness included.
type OptionResponse struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	IsCorrect bool      `json:"is_correct"`
}

// PublicOptionResponse is the quiz-taker view of an option.
type PublicOptionResponse struct {
	ID   uuid.UUID `json:"id"`
	Text string    `json:"text"`
}

// QuestionResponse is the authoring view of a question.
type QuestionResponse struct {
	ID        uuid.UUID        `json:"id"`
	QuizID    uuid.UUID        `json:"quiz"`
	Text      string           `json:"text"`
	Type      string           `json:"type"`
	Order     *int             `json:"order,omitempty"`
	Marks     int              `json:"marks"`
	Options   []OptionResponse `json:"options"`
	CreatedAt time.Time        `json:"created_at"`
}

// PublicQuestionResponse is the quiz-taker view of a question.
type PublicQuestionResponse struct {
	ID      uuid.UUID              `json:"id"`
	QuizID  uuid.UUID              `json:"quiz"`
	Text    string                 `json:"text"`
	Type    string                 `json:"type"`
	Order   *int                   `json:"order,omitempty"`
	Options []PublicOptionResponse `json:"options"`
}

// NewQuestionResponse builds the authoring DTO for a question
func NewQuestionResponse(q *entity.Question) *QuestionResponse {
	if q == nil {
		return nil
	}
	options := make([]OptionResponse, len(q.Options))
	for i, opt := range q.Options {
		options[i] = OptionResponse{ID: opt.ID, Text: opt.Text, IsCorrect: opt.IsCorrect}
	}
	return &QuestionResponse{
		ID:        q.ID,
		QuizID:    q.QuizID,
		Text:      q.Text,
		Type:      q.Type,
		Order:     q.Order,
		Marks:     q.Marks,
		Options:   options,
		CreatedAt: q.CreatedAt,
	}
}

// NewPublicQuestionResponse builds the quiz-taker DTO for a question
func NewPublicQuestionResponse(q *entity.Question) *PublicQuestionResponse {
	if q == nil {
		return nil
	}
	options := make([]PublicOptionResponse, len(q.Options))
	for i, opt := range q.Options {
		options[i] = PublicOptionResponse{ID: opt.ID, Text: opt.Text}
	}
	return &PublicQuestionResponse{
		ID:      q.ID,
		QuizID:  q.QuizID,
		Text:    q.Text,
		Type:    q.Type,
		Order:   q.Order,
		Options: options,
	}
}

// NewPublicQuestionListResponse builds the quiz-taker DTO list
func NewPublicQuestionListResponse(questions []entity.Question) []*PublicQuestionResponse {
	list := make([]*PublicQuestionResponse, len(questions))
	for i := range questions {
		list[i] = NewPublicQuestionResponse(&questions[i])
	}
	return list
}

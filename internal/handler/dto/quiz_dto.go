package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/quiz-api/internal/domain/entity"
)

// QuizResponse is the full quiz representation for clients. TotalMarks is
// derived from the live question count at response time.
type QuizResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Instructions string    `json:"instructions,omitempty"`
	TotalMarks   int       `json:"total_marks"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// QuizListItem is the slimmed representation used by the quiz list.
type QuizListItem struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

// NewQuizResponse builds a quiz DTO
func NewQuizResponse(quiz *entity.Quiz, totalMarks int) *QuizResponse {
	if quiz == nil {
		return nil
	}
	return &QuizResponse{
		ID:           quiz.ID,
		Title:        quiz.Title,
		Instructions: quiz.Instructions,
		TotalMarks:   totalMarks,
		CreatedAt:    quiz.CreatedAt,
		UpdatedAt:    quiz.UpdatedAt,
	}
}

// NewQuizListResponse builds the slim list DTO
func NewQuizListResponse(quizzes []entity.Quiz) []QuizListItem {
	list := make([]QuizListItem, len(quizzes))
	for i, quiz := range quizzes {
		list[i] = QuizListItem{ID: quiz.ID, Title: quiz.Title}
	}
	return list
}

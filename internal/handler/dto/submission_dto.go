package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/quiz-api/internal/domain/entity"
)

// SubmissionResponse is the scored result returned after submitting answers.
type SubmissionResponse struct {
	ID          uuid.UUID `json:"id"`
	QuizID      uuid.UUID `json:"quiz"`
	Score       int       `json:"score"`
	Total       int       `json:"total"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// SubmissionAnswerResponse is one recorded answer of a submission.
type SubmissionAnswerResponse struct {
	ID              uuid.UUID   `json:"id"`
	QuestionID      uuid.UUID   `json:"question"`
	SelectedOptions []uuid.UUID `json:"selected_options"`
	TextAnswer      string      `json:"text_answer,omitempty"`
}

// SubmissionDetailResponse is a submission together with its answers.
type SubmissionDetailResponse struct {
	SubmissionResponse
	Answers []SubmissionAnswerResponse `json:"answers"`
}

// NewSubmissionResponse builds the submission DTO
func NewSubmissionResponse(s *entity.Submission) *SubmissionResponse {
	if s == nil {
		return nil
	}
	return &SubmissionResponse{
		ID:          s.ID,
		QuizID:      s.QuizID,
		Score:       s.Score,
		Total:       s.Total,
		SubmittedAt: s.SubmittedAt,
	}
}

// NewSubmissionDetailResponse builds the submission DTO including answers
func NewSubmissionDetailResponse(s *entity.Submission) *SubmissionDetailResponse {
	if s == nil {
		return nil
	}
	answers := make([]SubmissionAnswerResponse, len(s.Answers))
	for i, ans := range s.Answers {
		selected := make([]uuid.UUID, len(ans.SelectedOptions))
		for j, opt := range ans.SelectedOptions {
			selected[j] = opt.ID
		}
		answers[i] = SubmissionAnswerResponse{
			ID:              ans.ID,
			QuestionID:      ans.QuestionID,
			SelectedOptions: selected,
			TextAnswer:      ans.TextAnswer,
		}
	}
	return &SubmissionDetailResponse{
		SubmissionResponse: *NewSubmissionResponse(s),
		Answers:            answers,
	}
}

// NewSubmissionListResponse builds the submission list DTO
func NewSubmissionListResponse(submissions []entity.Submission) []*SubmissionResponse {
	list := make([]*SubmissionResponse, len(submissions))
	for i := range submissions {
		list[i] = NewSubmissionResponse(&submissions[i])
	}
	return list
}

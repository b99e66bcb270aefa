package entity

import "github.com/google/uuid"

// AnswerTextLimit caps a stored free-text answer. Longer input is truncated,
// not rejected.
const AnswerTextLimit = 300

// SubmissionAnswer records what a learner answered for one question of a
// submission. SelectedOptions is populated for choice questions, TextAnswer
// for text questions.
type SubmissionAnswer struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SubmissionID    uuid.UUID `gorm:"type:uuid;not null;index" json:"submission_id"`
	QuestionID      uuid.UUID `gorm:"type:uuid;not null;index" json:"question_id"`
	SelectedOptions []Option  `gorm:"many2many:submission_answer_options;constraint:OnDelete:CASCADE" json:"selected_options,omitempty"`
	TextAnswer      string    `gorm:"size:300;not null;default:''" json:"text_answer,omitempty"`
}

// TableName defines the table name for GORM
func (SubmissionAnswer) TableName() string {
	return "submission_answers"
}

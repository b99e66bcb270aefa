package entity

import (
	"time"

	"github.com/google/uuid"
)

// Quiz represents an authored quiz that owns a set of questions.
type Quiz struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string     `gorm:"size:255;not null" json:"title"`
	Instructions string     `gorm:"type:text;not null;default:''" json:"instructions,omitempty"`
	Questions    []Question `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TableName defines the table name for GORM
func (Quiz) TableName() string {
	return "quizzes"
}

// TotalMarks derives the achievable score of a quiz from its live question
// count. It is intentionally not a stored column: every question carries a
// fixed weight of QuestionMarks, so the value would go stale the moment a
// question is added or removed.
func TotalMarks(questionCount int64) int {
	return int(questionCount) * QuestionMarks
}

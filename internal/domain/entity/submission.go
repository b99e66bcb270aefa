package entity

import (
	"time"

	"github.com/google/uuid"
)

// Submission represents one scored attempt at a quiz. Score and Total are
// snapshots taken at submission time; later quiz edits never change them.
type Submission struct {
	ID          uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	QuizID      uuid.UUID          `gorm:"type:uuid;not null;index" json:"quiz_id"`
	Score       int                `gorm:"not null;default:0" json:"score"`
	Total       int                `gorm:"not null;default:0" json:"total"`
	Answers     []SubmissionAnswer `gorm:"foreignKey:SubmissionID;constraint:OnDelete:CASCADE" json:"answers,omitempty"`
	SubmittedAt time.Time          `gorm:"autoCreateTime" json:"submitted_at"`
}

// TableName defines the table name for GORM
func (Submission) TableName() string {
	return "submissions"
}

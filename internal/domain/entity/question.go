package entity

import (
	"time"

	"github.com/google/uuid"
)

// Question type constants
const (
	QuestionTypeSingle   = "single"
	QuestionTypeMultiple = "multiple"
	QuestionTypeText     = "text"
)

// QuestionMarks is the fixed weight of every question. Clients cannot set it.
const QuestionMarks = 1

// QuestionTextLimit caps the body of a text-type question.
const QuestionTextLimit = 300

// Question represents a single question belonging to a quiz.
// Choice questions (single/multiple) own their options; text questions own none.
type Question struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	QuizID    uuid.UUID `gorm:"type:uuid;not null;index" json:"quiz_id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Type      string    `gorm:"size:20;not null;default:'single'" json:"type"`
	Order     *int      `gorm:"column:display_order" json:"order,omitempty"`
	Marks     int       `gorm:"not null;default:1" json:"marks"`
	Options   []Option  `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"options,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName defines the table name for GORM
func (Question) TableName() string {
	return "questions"
}

// IsChoice reports whether the question expects option selection.
func (q *Question) IsChoice() bool {
	return q.Type == QuestionTypeSingle || q.Type == QuestionTypeMultiple
}

// IsText reports whether the question expects a free-text answer.
func (q *Question) IsText() bool {
	return q.Type == QuestionTypeText
}

// IsValidType reports whether t is one of the supported question types.
func IsValidType(t string) bool {
	switch t {
	case QuestionTypeSingle, QuestionTypeMultiple, QuestionTypeText:
		return true
	}
	return false
}

// CorrectOptionIDs returns the set of option IDs marked correct.
// Requires Options to be loaded.
func (q *Question) CorrectOptionIDs() map[uuid.UUID]struct{} {
	ids := make(map[uuid.UUID]struct{})
	for _, opt := range q.Options {
		if opt.IsCorrect {
			ids[opt.ID] = struct{}{}
		}
	}
	return ids
}

// ScoreSelection awards the question's marks when the chosen options are
// set-equal to the correct set. A strict subset, strict superset or any
// incorrect pick scores zero; there is no partial credit.
func (q *Question) ScoreSelection(chosen []Option) int {
	correct := q.CorrectOptionIDs()
	if len(chosen) != len(correct) {
		return 0
	}
	for _, opt := range chosen {
		if _, ok := correct[opt.ID]; !ok {
			return 0
		}
	}
	return q.Marks
}

package entity

import "github.com/google/uuid"

// OptionTextLimit caps the display text of an option.
const OptionTextLimit = 300

// Option represents a selectable answer belonging to a choice question.
// Position preserves the authoring order of the option within its question.
type Option struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;index" json:"question_id"`
	Text       string    `gorm:"size:300;not null" json:"text"`
	IsCorrect  bool      `gorm:"not null;default:false" json:"is_correct"`
	Position   int       `gorm:"not null;default:0" json:"-"`
}

// TableName defines the table name for GORM
func (Option) TableName() string {
	return "options"
}

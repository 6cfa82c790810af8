package model

import "time"

// Attempt is the durable record of one submitted answer. Rows are append-only;
// nothing in the normal quiz flow updates or deletes them.
// swagger:model Attempt
type Attempt struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username       string    `gorm:"size:255;not null;index" json:"username"`
	QuestionID     uint      `gorm:"not null;index;type:bigint unsigned" json:"questionId"`
	SelectedOption *string   `gorm:"type:text" json:"selectedOption,omitempty"`
	IsCorrect      bool      `gorm:"not null" json:"isCorrect"`
	Timestamp      time.Time `gorm:"autoCreateTime" json:"timestamp"`

	Question *Question `gorm:"foreignKey:QuestionID" json:"-"`
}

func (Attempt) TableName() string {
	return "attempts"
}

// AttemptWithQuestion is an attempt row joined with the level and topic of the
// question it references, the shape the progress aggregation works over.
type AttemptWithQuestion struct {
	Username  string    `json:"username"`
	IsCorrect bool      `json:"isCorrect"`
	Level     SOLOLevel `json:"level"`
	Topic     string    `json:"topic"`
	Timestamp time.Time `json:"timestamp"`
}

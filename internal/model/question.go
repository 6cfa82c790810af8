package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// swagger:model Question
type Question struct {
	ID            uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Topic         string          `gorm:"size:255;not null" json:"topic"`
	Level         SOLOLevel       `gorm:"size:50;not null" json:"level"`
	LevelOrder    int             `gorm:"not null;index:idx_question_order,priority:1" json:"levelOrder"`
	Question      string          `gorm:"type:text;not null" json:"question"`
	Options       json.RawMessage `gorm:"type:json;not null" json:"options"` // JSON array of exactly 4 strings
	CorrectOption string          `gorm:"type:text;not null" json:"correctOption"`
	Explanation   string          `gorm:"type:text;not null" json:"explanation"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func (Question) TableName() string {
	return "questions"
}

// OptionList decodes the serialized answer options.
func (q *Question) OptionList() ([]string, error) {
	var opts []string
	if err := json.Unmarshal(q.Options, &opts); err != nil {
		return nil, fmt.Errorf("decode options for question %d: %w", q.ID, err)
	}
	return opts, nil
}

// Validate checks catalog invariants: exactly four options, the correct option
// appearing among them verbatim, and a level_order consistent with the level label.
func (q *Question) Validate() error {
	if q.Topic == "" || q.Question == "" {
		return fmt.Errorf("topic and question text are required")
	}
	if !q.Level.Valid() {
		return fmt.Errorf("unknown SOLO level %q", q.Level)
	}
	if q.LevelOrder != q.Level.Order() {
		return fmt.Errorf("level_order %d does not match level %q (expected %d)", q.LevelOrder, q.Level, q.Level.Order())
	}
	opts, err := q.OptionList()
	if err != nil {
		return err
	}
	if len(opts) != 4 {
		return fmt.Errorf("question must have exactly 4 options, got %d", len(opts))
	}
	for _, o := range opts {
		if o == q.CorrectOption {
			return nil
		}
	}
	return fmt.Errorf("correct option is not among the options")
}

// NewQuestion builds a validated catalog entry, deriving level_order from the level.
func NewQuestion(topic string, level SOLOLevel, text string, options []string, correct, explanation string) (*Question, error) {
	raw, err := json.Marshal(options)
	if err != nil {
		return nil, err
	}
	q := &Question{
		Topic:         topic,
		Level:         level,
		LevelOrder:    level.Order(),
		Question:      text,
		Options:       raw,
		CorrectOption: correct,
		Explanation:   explanation,
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return q, nil
}

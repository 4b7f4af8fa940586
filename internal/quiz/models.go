package quiz

import "time"

// TypeMultipleChoice is the only question type the extractor produces.
// The field is kept explicit so stored quizzes stay forward-compatible
// with other types.
const TypeMultipleChoice = "multiple-choice"

// Option is one selectable answer of a question.
type Option struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
	ImageURL  string `json:"imageUrl,omitempty"`
}

// Question is one assessable unit. Text may be multi-line: paragraph
// continuations and, for compound questions, the appended reference
// legend are separated by blank lines.
type Question struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Type     string   `json:"type"`
	ImageURL string   `json:"imageUrl,omitempty"`
	Options  []Option `json:"options"`
	Points   float64  `json:"points"`
	Required bool     `json:"required"`
}

// Quiz is the immutable output of one extraction call and the payload
// stored for sharing.
type Quiz struct {
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Record is a persisted quiz with its sharing metadata.
type Record struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Data      Quiz      `json:"data"`
	UserID    string    `json:"userId,omitempty"`
	ShareID   string    `json:"shareId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CorrectOption returns the first option marked correct, or nil.
func (q Question) CorrectOption() *Option {
	for i := range q.Options {
		if q.Options[i].IsCorrect {
			return &q.Options[i]
		}
	}
	return nil
}

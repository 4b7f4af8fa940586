// Package extract converts a .docx document into a structured quiz.
//
// The pipeline is deliberately heuristic: source documents carry no
// schema, so the engine infers questions, options and correct-answer
// marks from loose paragraph formatting. Misclassifying an individual
// paragraph is an accepted outcome; the only fatal failure is a
// document whose bytes cannot be normalized at all.
package extract

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/quizforge/quizforge/internal/quiz"
)

// ErrDocumentParse is returned when the input bytes cannot be
// normalized into paragraphs (corrupt or unsupported binary). No
// partial result accompanies it.
var ErrDocumentParse = errors.New("quizforge: failed to parse document")

// DefaultTitle is used when the document has no heading paragraph.
const DefaultTitle = "Imported Quiz"

// Extract runs the full document-to-quiz pipeline: normalize the
// document into paragraphs, pull embedded images, then walk the
// paragraph sequence assembling questions. Image extraction failures
// are absorbed; normalization failures abort the whole call.
func Extract(data []byte) (*quiz.Quiz, error) {
	doc, err := Normalize(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentParse, err)
	}

	images := ExtractImages(data)

	eng := newEngine(doc.Rels, images, uuid.NewString)
	questions := eng.run(doc.Paragraphs)

	title := doc.Title
	if title == "" {
		title = DefaultTitle
	}
	return &quiz.Quiz{Title: title, Questions: questions}, nil
}

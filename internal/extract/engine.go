package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/quizforge/quizforge/internal/quiz"
)

// parserState is the segmentation engine's position in the paragraph
// stream.
type parserState int

const (
	seekingQuestion parserState = iota
	collectingRefItems
	collectingOptions
)

// lookaheadWindow bounds how far past a question boundary the engine
// scans for a reference-item run before committing to a state.
const lookaheadWindow = 15

var (
	// questionNumRe matches a numbered question prefix ("301) ...").
	// Multi-digit only: single digits belong to reference items.
	questionNumRe = regexp.MustCompile(`^\d{2,}[.)]\s*`)

	// refItemRe matches one enumerated reference statement ("1. ...").
	refItemRe = regexp.MustCompile(`^\d[.)]\s+`)

	// separatorRe matches paragraphs that are nothing but a dash run.
	separatorRe = regexp.MustCompile(`^[-–—]{3,}$`)
)

// engine walks one paragraph sequence and assembles question records.
// All state is local to a single extraction call.
type engine struct {
	rels   map[string]string
	images map[string]Image
	newID  func() string
}

func newEngine(rels map[string]string, images map[string]Image, newID func() string) *engine {
	return &engine{rels: rels, images: images, newID: newID}
}

// questionBuilder accumulates one in-flight question across
// transitions until it is finalized or discarded.
type questionBuilder struct {
	textLines     []string
	refItems      []string
	compound      bool
	legendFlushed bool
	options       []quiz.Option
	rawOpts       []string // raw option texts, for the compound resolver
	imageURL      string
}

func (e *engine) run(paras []Paragraph) []quiz.Question {
	var questions []quiz.Question
	state := seekingQuestion
	var cur *questionBuilder

	finalize := func() {
		if cur == nil {
			return
		}
		if q, ok := cur.build(e.newID); ok {
			questions = append(questions, q)
		}
		cur = nil
	}

	for i := 0; i < len(paras); i++ {
		p := paras[i]
		text := strings.TrimSpace(p.Text)
		if text == "" || separatorRe.MatchString(text) {
			continue
		}

		// Option lines bind to the open question before anything else,
		// so "A) is it X?" never tears the question apart.
		if cur != nil && isOptionLine(text) {
			if state != collectingOptions {
				cur.flushRefLegend()
				state = collectingOptions
			}
			cur.addOption(p, text, e.newID)
			e.attachImage(cur, p)
			continue
		}

		if cur != nil && state == collectingRefItems {
			if loc := refItemRe.FindStringIndex(text); loc != nil {
				cur.refItems = append(cur.refItems, strings.TrimSpace(text[loc[1]:]))
				continue
			}
		}

		openPrompt := cur != nil && len(cur.options) == 0
		if isQuestionStart(paras, i, text, openPrompt) {
			finalize()
			cur = &questionBuilder{textLines: []string{text}}
			e.attachImage(cur, p)
			if hasReferenceRun(paras, i+1) {
				cur.compound = true
				state = collectingRefItems
			} else {
				state = collectingOptions
			}
			continue
		}

		// Multi-paragraph prompt: prose between the question boundary
		// and its first option.
		if cur != nil && len(cur.options) == 0 {
			cur.textLines = append(cur.textLines, text)
			continue
		}

		// No open question, or trailing prose after options: ignored.
	}

	finalize()
	return questions
}

// isQuestionStart decides whether the paragraph at i opens a new
// question: it ends with "?", carries a multi-digit number prefix, or
// is a plain paragraph immediately followed by an option-looking line.
// The lookahead rule is suppressed while an open question is still
// collecting its prompt, so those lines join the prompt instead of
// splitting it.
func isQuestionStart(paras []Paragraph, i int, text string, openPrompt bool) bool {
	if strings.HasSuffix(text, "?") {
		return true
	}
	if questionNumRe.MatchString(text) {
		return true
	}
	if openPrompt {
		return false
	}
	if isOptionLine(text) || refItemRe.MatchString(text) {
		return false
	}
	if next, ok := nextNonEmpty(paras, i+1); ok && looksLikeOption(next) {
		return true
	}
	return false
}

// hasReferenceRun looks ahead for a run of single-digit-numbered
// paragraphs followed by a lettered option line, marking a compound
// question.
func hasReferenceRun(paras []Paragraph, from int) bool {
	sawRef := false
	end := from + lookaheadWindow
	if end > len(paras) {
		end = len(paras)
	}
	for j := from; j < end; j++ {
		text := strings.TrimSpace(paras[j].Text)
		if text == "" || separatorRe.MatchString(text) {
			continue
		}
		switch {
		case refItemRe.MatchString(text) && !questionNumRe.MatchString(text):
			sawRef = true
		case isOptionLine(text):
			return sawRef
		default:
			// The run is interrupted by prose; prose before the first
			// reference item is still part of the prompt.
			if sawRef {
				return false
			}
		}
	}
	return false
}

func nextNonEmpty(paras []Paragraph, from int) (string, bool) {
	for j := from; j < len(paras); j++ {
		text := strings.TrimSpace(paras[j].Text)
		if text == "" || separatorRe.MatchString(text) {
			continue
		}
		return text, true
	}
	return "", false
}

// isOptionLine requires the lettered prefix, allowing one leading
// bullet or plus marker before it ("+A) ...").
func isOptionLine(text string) bool {
	return optionPrefixRe.MatchString(bulletPrefixRe.ReplaceAllString(text, ""))
}

// looksLikeOption is the looser check used only for question-boundary
// lookahead: lettered options and "+"-prefixed correct answers.
func looksLikeOption(text string) bool {
	return isOptionLine(text) || strings.HasPrefix(text, "+")
}

func (b *questionBuilder) addOption(p Paragraph, text string, newID func() string) {
	b.rawOpts = append(b.rawOpts, text)
	b.options = append(b.options, quiz.Option{
		ID:        newID(),
		Text:      cleanOptionText(text),
		IsCorrect: MarkedCorrect(p, ExplicitMarker, BoldMajority),
	})
}

// flushRefLegend renders the collected reference items back into the
// question text as a trailing enumerated block. Option texts keep the
// raw numeric references ("1, 2"); they are not expanded.
func (b *questionBuilder) flushRefLegend() {
	if !b.compound || b.legendFlushed || len(b.refItems) == 0 {
		return
	}
	var legend strings.Builder
	for i, item := range b.refItems {
		if i > 0 {
			legend.WriteString("\n")
		}
		legend.WriteString(strconv.Itoa(i+1) + ". " + item)
	}
	b.textLines = append(b.textLines, legend.String())
	b.legendFlushed = true
}

// build finalizes the question: discards it when no options were
// collected, resolves compound correctness, and repairs the
// exactly-one-correct invariant. Zero marks fall back to the first
// option; multiple marks keep the first in document order.
func (b *questionBuilder) build(newID func() string) (quiz.Question, bool) {
	if len(b.options) == 0 {
		return quiz.Question{}, false
	}

	marked := -1
	for i, o := range b.options {
		if o.IsCorrect {
			if marked < 0 {
				marked = i
			} else {
				b.options[i].IsCorrect = false
			}
		}
	}
	if marked < 0 && b.compound {
		if idx := ResolveCompound(b.rawOpts); idx >= 0 {
			b.options[idx].IsCorrect = true
			marked = idx
		}
	}
	if marked < 0 {
		b.options[0].IsCorrect = true
	}

	return quiz.Question{
		ID:       newID(),
		Text:     strings.Join(b.textLines, "\n\n"),
		Type:     quiz.TypeMultipleChoice,
		ImageURL: b.imageURL,
		Options:  b.options,
		Points:   1,
		Required: true,
	}, true
}

func (e *engine) attachImage(b *questionBuilder, p Paragraph) {
	if b.imageURL != "" {
		return
	}
	for _, ref := range p.ImageRefs {
		if im, ok := resolveImage(e.rels, e.images, ref); ok {
			b.imageURL = im.DataURI()
			return
		}
	}
}

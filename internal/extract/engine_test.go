package extract

import (
	"fmt"
	"strings"
	"testing"
)

// newTestEngine returns an engine with a deterministic id generator.
func newTestEngine() *engine {
	n := 0
	return newEngine(nil, nil, func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	})
}

func paras(texts ...string) []Paragraph {
	out := make([]Paragraph, len(texts))
	for i, t := range texts {
		out[i] = Paragraph{Text: t}
	}
	return out
}

func TestSimpleQuestionWithDashMarker(t *testing.T) {
	qs := newTestEngine().run(paras(
		"What is 2+2?",
		"A) 3",
		"B) 4 -----",
		"C) 5",
	))

	if len(qs) != 1 {
		t.Fatalf("expected 1 question, got %d", len(qs))
	}
	q := qs[0]
	if q.Text != "What is 2+2?" {
		t.Errorf("question text = %q", q.Text)
	}
	if len(q.Options) != 3 {
		t.Fatalf("expected 3 options, got %d", len(q.Options))
	}
	wantTexts := []string{"3", "4", "5"}
	wantCorrect := []bool{false, true, false}
	for i, opt := range q.Options {
		if opt.Text != wantTexts[i] {
			t.Errorf("option %d text = %q, want %q", i, opt.Text, wantTexts[i])
		}
		if opt.IsCorrect != wantCorrect[i] {
			t.Errorf("option %d isCorrect = %v, want %v", i, opt.IsCorrect, wantCorrect[i])
		}
	}
}

func TestCompoundQuestionRendersLegend(t *testing.T) {
	qs := newTestEngine().run(paras(
		"301) Pick the true statements.",
		"1. Sky is blue",
		"2. Grass is green",
		"A) 1, 2 -----",
		"B) 1 only",
	))

	if len(qs) != 1 {
		t.Fatalf("expected 1 question, got %d", len(qs))
	}
	q := qs[0]
	if !strings.HasSuffix(q.Text, "1. Sky is blue\n2. Grass is green") {
		t.Errorf("question text missing reference legend: %q", q.Text)
	}
	if !strings.HasPrefix(q.Text, "301) Pick the true statements.") {
		t.Errorf("question text lost its prompt: %q", q.Text)
	}
	if len(q.Options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(q.Options))
	}
	if q.Options[0].Text != "1, 2" || !q.Options[0].IsCorrect {
		t.Errorf("option 0 = %+v, want text %q marked correct", q.Options[0], "1, 2")
	}
	if q.Options[1].IsCorrect {
		t.Errorf("option 1 should not be correct")
	}
}

func TestQuestionWithoutOptionsDiscarded(t *testing.T) {
	qs := newTestEngine().run(paras(
		"Is this a lonely question?",
		"Some trailing prose that is not an option.",
	))
	if len(qs) != 0 {
		t.Fatalf("expected no questions, got %d", len(qs))
	}
}

func TestFallbackMarksFirstOptionCorrect(t *testing.T) {
	qs := newTestEngine().run(paras(
		"Which way is up?",
		"A) North",
		"B) South",
	))
	if len(qs) != 1 {
		t.Fatalf("expected 1 question, got %d", len(qs))
	}
	opts := qs[0].Options
	if !opts[0].IsCorrect || opts[1].IsCorrect {
		t.Errorf("fallback should mark only the first option: %+v", opts)
	}
}

func TestEveryQuestionHasExactlyOneCorrectOption(t *testing.T) {
	qs := newTestEngine().run(paras(
		"First question?",
		"A) one",
		"B) two (correct)",
		"Second question?",
		"A) alpha",
		"B) beta",
		"C) gamma",
		"303) Third question without a question mark",
		"A) yes ✓",
		"B) no",
		"304) Fourth question with two marks",
		"A) first ✓",
		"B) second (correct)",
	))
	if len(qs) != 4 {
		t.Fatalf("expected 4 questions, got %d", len(qs))
	}
	for i, q := range qs {
		correct := 0
		for _, opt := range q.Options {
			if opt.IsCorrect {
				correct++
			}
		}
		if correct != 1 {
			t.Errorf("question %d has %d correct options, want 1", i, correct)
		}
	}
	if !qs[3].Options[0].IsCorrect || qs[3].Options[1].IsCorrect {
		t.Errorf("first marked option should win: %+v", qs[3].Options)
	}
}

func TestOptionTextHasNoMarkerArtifacts(t *testing.T) {
	qs := newTestEngine().run(paras(
		"Pick one?",
		"+A) plus marked",
		"B) dash marked -----",
		"C) token marked (correct)",
		"D) check marked ✓",
	))
	if len(qs) != 1 {
		t.Fatalf("expected 1 question, got %d", len(qs))
	}
	for _, opt := range qs[0].Options {
		for _, bad := range []string{"-----", "(correct)", "✓"} {
			if strings.Contains(opt.Text, bad) {
				t.Errorf("option text %q still contains %q", opt.Text, bad)
			}
		}
		if strings.HasPrefix(opt.Text, "+") {
			t.Errorf("option text %q keeps its leading +", opt.Text)
		}
	}
}

func TestMultiParagraphPrompt(t *testing.T) {
	qs := newTestEngine().run(paras(
		"205) Read the following scenario.",
		"A customer reports intermittent failures.",
		"A) Restart the service",
		"B) Read the logs -----",
	))
	if len(qs) != 1 {
		t.Fatalf("expected 1 question, got %d", len(qs))
	}
	want := "205) Read the following scenario.\n\nA customer reports intermittent failures."
	if qs[0].Text != want {
		t.Errorf("question text = %q, want %q", qs[0].Text, want)
	}
}

func TestSeparatorAndEmptyParagraphsSkipped(t *testing.T) {
	qs := newTestEngine().run(paras(
		"",
		"-----",
		"What now?",
		"   ",
		"A) this",
		"—————",
		"B) that",
	))
	if len(qs) != 1 {
		t.Fatalf("expected 1 question, got %d", len(qs))
	}
	if len(qs[0].Options) != 2 {
		t.Errorf("expected 2 options, got %d", len(qs[0].Options))
	}
}

func TestBoldMajorityOptionMarkedCorrect(t *testing.T) {
	input := []Paragraph{
		{Text: "Which animal barks?"},
		{Text: "A) Cat"},
		{Text: "B) Dog", BoldRuns: []string{"Dog"}},
		{Text: "C) Fish"},
	}
	qs := newTestEngine().run(input)
	if len(qs) != 1 {
		t.Fatalf("expected 1 question, got %d", len(qs))
	}
	if !qs[0].Options[1].IsCorrect {
		t.Errorf("bold option should be correct: %+v", qs[0].Options)
	}
	if qs[0].Options[0].IsCorrect || qs[0].Options[2].IsCorrect {
		t.Errorf("only the bold option should be correct: %+v", qs[0].Options)
	}
}

func TestUnnumberedQuestionDetectedByFollowingOption(t *testing.T) {
	qs := newTestEngine().run(paras(
		"The capital of France is",
		"A) Berlin",
		"B) Paris -----",
	))
	if len(qs) != 1 {
		t.Fatalf("expected 1 question, got %d", len(qs))
	}
	if qs[0].Text != "The capital of France is" {
		t.Errorf("question text = %q", qs[0].Text)
	}
}

func TestParagraphsBeforeFirstQuestionIgnored(t *testing.T) {
	qs := newTestEngine().run(paras(
		"Course introduction paragraph.",
		"Another stray paragraph.",
		"401) Real question here",
		"A) yes -----",
		"B) no",
	))
	if len(qs) != 1 {
		t.Fatalf("expected 1 question, got %d", len(qs))
	}
	if !strings.HasPrefix(qs[0].Text, "401)") {
		t.Errorf("question text = %q", qs[0].Text)
	}
}

func TestCompoundFallsBackToResolver(t *testing.T) {
	// No per-option mark detected as such, but one raw text embeds a
	// dash run mid-string where the trailing-run rule misses it.
	input := []Paragraph{
		{Text: "302) Which statements hold?"},
		{Text: "1. Water is wet"},
		{Text: "2. Fire is cold"},
		{Text: "A) 1 only ----- extra"},
		{Text: "B) 1, 2"},
	}
	qs := newTestEngine().run(input)
	if len(qs) != 1 {
		t.Fatalf("expected 1 question, got %d", len(qs))
	}
	if !qs[0].Options[0].IsCorrect {
		t.Errorf("resolver should pick the first embedded marker: %+v", qs[0].Options)
	}
}

func TestIdempotentAcrossRuns(t *testing.T) {
	input := paras(
		"Quiz on arithmetic?",
		"A) 1",
		"B) 2 (correct)",
		"305) Second",
		"A) x ✓",
		"B) y",
	)
	first := newTestEngine().run(input)
	second := newTestEngine().run(input)

	if len(first) != len(second) {
		t.Fatalf("question counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Text != second[i].Text {
			t.Errorf("question %d text differs", i)
		}
		if len(first[i].Options) != len(second[i].Options) {
			t.Fatalf("question %d option counts differ", i)
		}
		for j := range first[i].Options {
			if first[i].Options[j].Text != second[i].Options[j].Text ||
				first[i].Options[j].IsCorrect != second[i].Options[j].IsCorrect {
				t.Errorf("question %d option %d differs", i, j)
			}
		}
	}
}

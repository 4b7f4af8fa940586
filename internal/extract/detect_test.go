package extract

import "testing"

func TestExplicitMarker(t *testing.T) {
	cases := []struct {
		name string
		text string
		want bool
	}{
		{"plain option", "A) Nothing special", false},
		{"leading plus", "+B) Marked with plus", true},
		{"trailing dash run", "B) Four -----", true},
		{"trailing en dash run", "B) Four –––", true},
		{"dash run mid text", "B) Four ----- five", false},
		{"correct token", "C) Five (correct)", true},
		{"check mark", "D) Six ✓", true},
		{"short dash run", "B) Four --", false},
		{"whitespace around", "  +A) padded  ", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExplicitMarker(Paragraph{Text: tc.text})
			if got != tc.want {
				t.Errorf("ExplicitMarker(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestBoldMajority(t *testing.T) {
	cases := []struct {
		name string
		p    Paragraph
		want bool
	}{
		{"no bold runs", Paragraph{Text: "A) Dog"}, false},
		{"whole text bold", Paragraph{Text: "A) Dog", BoldRuns: []string{"Dog"}}, true},
		{"majority bold", Paragraph{Text: "A) Dog barks loud", BoldRuns: []string{"Dog barks"}}, true},
		{"minority bold", Paragraph{Text: "A) Dog barks very loudly", BoldRuns: []string{"Dog"}}, false},
		{"empty option core", Paragraph{Text: "A) ", BoldRuns: []string{"x"}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := BoldMajority(tc.p); got != tc.want {
				t.Errorf("BoldMajority(%+v) = %v, want %v", tc.p, got, tc.want)
			}
		})
	}
}

func TestMarkedCorrectFirstMatchWins(t *testing.T) {
	p := Paragraph{Text: "A) Dog ✓", BoldRuns: []string{"Dog"}}
	if !MarkedCorrect(p, ExplicitMarker, BoldMajority) {
		t.Errorf("expected marker to be detected")
	}
	if MarkedCorrect(Paragraph{Text: "A) Dog"}, ExplicitMarker, BoldMajority) {
		t.Errorf("unmarked paragraph reported correct")
	}
}

func TestResolveCompound(t *testing.T) {
	cases := []struct {
		name  string
		texts []string
		want  int
	}{
		{"dash run", []string{"A) 1 only", "B) 1, 2 -----"}, 1},
		{"embedded dash run", []string{"A) 1 ----- only", "B) 1, 2"}, 0},
		{"correct token", []string{"A) 1", "B) 2 (correct)", "C) 3"}, 1},
		{"check mark", []string{"A) 1", "B) 2", "C) 3 ✓"}, 2},
		{"first match wins", []string{"A) 1 -----", "B) 2 (correct)"}, 0},
		{"nothing marked", []string{"A) 1", "B) 2"}, -1},
		{"empty input", nil, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveCompound(tc.texts); got != tc.want {
				t.Errorf("ResolveCompound(%v) = %d, want %d", tc.texts, got, tc.want)
			}
		})
	}
}

func TestCleanOptionText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"A) Plain", "Plain"},
		{"B. Dotted", "Dotted"},
		{"+A) Plus marked", "Plus marked"},
		{"• C) Bulleted", "Bulleted"},
		{"B) Four -----", "Four"},
		{"C) Five (correct)", "Five"},
		{"D) Six ✓", "Six"},
		{"E) Keep inner - dash", "Keep inner - dash"},
		{"A)Tight", "Tight"},
	}
	for _, tc := range cases {
		if got := cleanOptionText(tc.in); got != tc.want {
			t.Errorf("cleanOptionText(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStripOptionPrefixOrdering(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"+A) after plus", "after plus"},
		{"A) + plus after letter", "plus after letter"},
		{"- B. bullet then letter", "bullet then letter"},
		{"No prefix at all", "No prefix at all"},
	}
	for _, tc := range cases {
		if got := stripOptionPrefix(tc.in); got != tc.want {
			t.Errorf("stripOptionPrefix(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

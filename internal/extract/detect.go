package extract

import (
	"regexp"
	"strings"
)

// Marker tokens shared by every detection strategy. Keeping a single
// source of truth here is what keeps single-option and compound
// detection consistent.
const (
	tokenCorrect = "(correct)"
	tokenCheck   = "✓"
)

var (
	// optionPrefixRe matches the lettered prefix of an option line:
	// "A) ", "B. " (upper-case only, per the documents this targets).
	optionPrefixRe = regexp.MustCompile(`^[A-Z][.)]\s*`)

	// bulletPrefixRe matches bullet/plus markers that some documents
	// use instead of (or after) the letter prefix.
	bulletPrefixRe = regexp.MustCompile(`^[•\-+]\s*`)

	// dashRunRe matches a run of 3+ dash-like characters (hyphen,
	// en dash, em dash) anywhere in the text.
	dashRunRe = regexp.MustCompile(`[-–—]{3,}`)

	// trailingDashRunRe matches a dash run at the end of the text.
	trailingDashRunRe = regexp.MustCompile(`[-–—]{3,}\s*$`)
)

// Strategy decides whether one candidate answer paragraph is marked
// correct. Strategies are pure: callers strip the marking tokens from
// the stored option text separately.
type Strategy func(Paragraph) bool

// MarkedCorrect applies the given strategies in order; the first match
// wins.
func MarkedCorrect(p Paragraph, strategies ...Strategy) bool {
	for _, s := range strategies {
		if s(p) {
			return true
		}
	}
	return false
}

// ExplicitMarker detects textual correctness marks: a leading "+", a
// trailing dash run, or a literal "(correct)" / "✓" token.
func ExplicitMarker(p Paragraph) bool {
	text := strings.TrimSpace(p.Text)
	if strings.HasPrefix(text, "+") {
		return true
	}
	if trailingDashRunRe.MatchString(text) {
		return true
	}
	return strings.Contains(text, tokenCorrect) || strings.Contains(text, tokenCheck)
}

// BoldMajority detects formatting marks: a bold run that equals the
// prefix-stripped option text, or covers more than half of it.
func BoldMajority(p Paragraph) bool {
	core := stripOptionPrefix(p.Text)
	if core == "" {
		return false
	}
	for _, run := range p.BoldRuns {
		if run == core || 2*len(run) > len(core) {
			return true
		}
	}
	return false
}

// ResolveCompound picks the correct option among a compound question's
// collected raw option texts: the first one carrying an explicit
// embedded marker (dash run, "(correct)", "✓"). Returns -1 when none
// match; callers apply their own fallback, the resolver never guesses
// on content semantics.
func ResolveCompound(texts []string) int {
	for i, t := range texts {
		if dashRunRe.MatchString(t) || strings.Contains(t, tokenCorrect) || strings.Contains(t, tokenCheck) {
			return i
		}
	}
	return -1
}

// stripOptionPrefix removes the lettered prefix and any bullet/plus
// markers from an option line.
func stripOptionPrefix(text string) string {
	text = strings.TrimSpace(text)
	text = bulletPrefixRe.ReplaceAllString(text, "")
	text = optionPrefixRe.ReplaceAllString(text, "")
	text = bulletPrefixRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// cleanOptionText produces the stored option text: prefix stripped and
// every correctness-marking artifact removed.
func cleanOptionText(text string) string {
	text = stripOptionPrefix(text)
	text = strings.ReplaceAll(text, tokenCorrect, "")
	text = strings.ReplaceAll(text, tokenCheck, "")
	text = dashRunRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

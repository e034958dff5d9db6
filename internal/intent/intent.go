// Package intent maps a free-text menu answer to one of the menu actions.
package intent

import (
	"regexp"
	"strings"
)

// Intent is the menu action a user asked for.
type Intent int

const (
	Unknown Intent = iota
	Quit
	RedoHealthCheck
	RedoStylisticAnalysis
)

func (i Intent) String() string {
	switch i {
	case Quit:
		return "quit"
	case RedoHealthCheck:
		return "redo-health-check"
	case RedoStylisticAnalysis:
		return "redo-stylistic-analysis"
	default:
		return "unknown"
	}
}

// Rule pairs a positive pattern for an intent with the negated form that
// cancels it ("I don't want to quit").
type Rule struct {
	Intent   Intent
	Positive *regexp.Regexp
	Negation *regexp.Regexp
}

// Matches reports whether the positive pattern matched and whether the
// negation matched as well.
func (r Rule) Matches(text string) (positive, negated bool) {
	return r.Positive.MatchString(text), r.Negation.MatchString(text)
}

const negator = `(n't|don't|not)`

var rules = []Rule{
	{
		Intent:   Quit,
		Positive: regexp.MustCompile(`(` + negator + `.+(continue|repeat))|(quit|terminate|exit|end|bye)`),
		Negation: regexp.MustCompile(negator + `.+(quit|terminate|exit|end|bye)`),
	},
	{
		Intent:   RedoHealthCheck,
		Positive: regexp.MustCompile(`(((^|.* )(re)?(do|take) )?.*(health([ -]?check| analysis)))`),
		Negation: regexp.MustCompile(`(` + negator + `.+ (re)?(do|take) .*(health([ -]?check| analysis)))`),
	},
	{
		Intent:   RedoStylisticAnalysis,
		Positive: regexp.MustCompile(`(((^|.* )(re)?(do|take) )?.*(stylistic (check|analysis)))`),
		Negation: regexp.MustCompile(`(` + negator + `.+ (re)?(do|take) .*(stylistic (check|analysis)))`),
	},
}

// shortcuts are the menu letters.
var shortcuts = map[string]Intent{
	"a": Quit,
	"b": RedoHealthCheck,
	"c": RedoStylisticAnalysis,
}

// Rules returns the pattern table used for free-text answers.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Resolve classifies a menu answer. Single characters are treated as menu
// letters. Longer answers resolve to an intent only when exactly one rule
// matched and that rule's negation did not.
func Resolve(text string) Intent {
	text = normalize(text)
	if text == "" {
		return Unknown
	}

	if len([]rune(text)) == 1 {
		if in, ok := shortcuts[text]; ok {
			return in
		}
		return Unknown
	}

	var (
		matched Rule
		count   int
		negated bool
	)
	for _, r := range rules {
		pos, neg := r.Matches(text)
		if !pos {
			continue
		}
		count++
		matched = r
		negated = neg
	}

	if count != 1 || negated {
		return Unknown
	}
	return matched.Intent
}

func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

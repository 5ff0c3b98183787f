// Package horoscope maps code metrics to a playful developer horoscope.
//
// Every rule is a pure threshold check over the Metrics record and the
// rule order is fixed, so identical metrics always produce byte-identical
// output.
package horoscope

import (
	"strings"

	"github.com/guna-amangeldi/dev-horoscope/types"
)

const (
	msgCommentsSparse   = "The stars whisper: your future holds… documentation. Consider leaving clues for your teammates."
	msgCommentsBalanced = "You comment when it matters. A balanced mind in a chaotic codebase."
	msgCommentsHeavy    = "Your comments shine brighter than your code. Future you will be very grateful."

	msgNoFunctions   = "The cosmos sees one giant script. Perhaps it is time to split logic into functions."
	msgFewFunctions  = "Few but focused functions. You seek clarity over fragmentation."
	msgManyFunctions = "Many small functions: you embrace modularity. The gods of refactoring approve."

	msgLongFunctions    = "Some functions carry heavy destiny. Consider granting them smaller responsibilities."
	msgShortFunctions   = "Short functions, sharp focus. Your future PRs will be easy to review."
	msgHealthyFunctions = "Your functions have a healthy length. The balance of Zen and practicality is strong in you."

	msgNoTodos   = "No TODOs in sight. Either your work is complete, or you fear the truth."
	msgFewTodos  = "A few TODOs mark the path ahead. Future sprints already know their purpose."
	msgManyTodos = "Many TODOs gather like clouds. This is a sign to schedule a refactoring ritual."

	msgSmallFile  = "A small file with big potential. Every line matters."
	msgMightyFile = "The constellations warn of a mighty file. Perhaps some pieces long to be modules."
	msgMiddleFile = "Your file walks the middle path: not too small, not too sprawling."
)

// rule inspects the metrics and contributes at most one fragment.
type rule func(m types.Metrics) (string, bool)

// rules run in this order; it is part of the output contract.
var rules = []rule{
	commentRule,
	functionRule,
	lengthRule,
	todoRule,
	sizeRule,
}

func commentRule(m types.Metrics) (string, bool) {
	ratio := m.CommentRatio()
	switch {
	case ratio < 0.05:
		return msgCommentsSparse, true
	case ratio < 0.20:
		return msgCommentsBalanced, true
	default:
		return msgCommentsHeavy, true
	}
}

func functionRule(m types.Metrics) (string, bool) {
	switch {
	case m.FunctionCount == 0:
		return msgNoFunctions, true
	case m.FunctionCount < 5:
		return msgFewFunctions, true
	default:
		return msgManyFunctions, true
	}
}

func lengthRule(m types.Metrics) (string, bool) {
	avg := m.AvgFunctionLength
	switch {
	case avg > 50:
		return msgLongFunctions, true
	case avg > 0 && avg <= 15:
		return msgShortFunctions, true
	case avg == 0:
		// No functions; the function rule already covers this.
		return "", false
	default:
		return msgHealthyFunctions, true
	}
}

func todoRule(m types.Metrics) (string, bool) {
	switch {
	case m.TodoCount == 0:
		return msgNoTodos, true
	case m.TodoCount < 5:
		return msgFewTodos, true
	default:
		return msgManyTodos, true
	}
}

func sizeRule(m types.Metrics) (string, bool) {
	switch {
	case m.TotalLines < 50:
		return msgSmallFile, true
	case m.TotalLines > 500:
		return msgMightyFile, true
	default:
		return msgMiddleFile, true
	}
}

// Fragments returns the selected messages in rule order.
func Fragments(m types.Metrics) []string {
	var fragments []string
	for _, r := range rules {
		if msg, ok := r(m); ok {
			fragments = append(fragments, msg)
		}
	}
	return fragments
}

// Compose joins the selected fragments into the final horoscope text.
func Compose(m types.Metrics) string {
	fragments := Fragments(m)
	bullets := make([]string, 0, len(fragments))
	for _, f := range fragments {
		bullets = append(bullets, "• "+f)
	}
	return strings.Join(bullets, "\n")
}

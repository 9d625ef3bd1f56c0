// Package moderation masks flagged words in message previews before
// they are surfaced as transient notices. Only the preview is touched;
// the message log itself is server-authoritative and never rewritten.
package moderation

import (
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"

	"mealbridge/errors"
)

// Masker matches flagged words with an Aho-Corasick automaton over a
// normalized view of the text, then stars out the matched spans in the
// original, spacing preserved.
type Masker struct {
	matcher     *goahocorasick.Machine
	replacement rune
}

// NewMasker builds the automaton from the flagged word list. Words are
// matched case-insensitively and through punctuation noise.
func NewMasker(words []string, replacement rune) (*Masker, error) {
	if len(words) == 0 {
		return nil, errors.ErrEmptyWords
	}
	patterns := make([][]rune, 0, len(words))
	for _, w := range words {
		norm, _ := normalize(w)
		if len(norm) > 0 {
			patterns = append(patterns, norm)
		}
	}
	if len(patterns) == 0 {
		return nil, errors.ErrEmptyWords
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Masker{matcher: m, replacement: replacement}, nil
}

// Censor replaces every flagged span with the replacement rune.
func (m *Masker) Censor(original string) string {
	norm, origIdx := normalize(original)
	if len(norm) == 0 {
		return original
	}

	spans := m.matcher.MultiPatternSearch(norm, false)
	if len(spans) == 0 {
		return original
	}

	out := []rune(original)
	for _, span := range spans {
		start := span.Pos
		end := start + len(span.Word)
		if start < 0 || end > len(origIdx) {
			continue
		}
		for i := origIdx[start]; i <= origIdx[end-1]; i++ {
			out[i] = m.replacement
		}
	}
	return string(out)
}

// normalize lowercases the text and drops punctuation, spacing and
// symbols, keeping a mapping from normalized positions back to the
// original rune positions.
func normalize(input string) ([]rune, []int) {
	orig := []rune(strings.ToLower(input))
	norm := make([]rune, 0, len(orig))
	origIdx := make([]int, 0, len(orig))
	for i, r := range orig {
		if unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r) {
			continue
		}
		norm = append(norm, r)
		origIdx = append(origIdx, i)
	}
	return norm, origIdx
}

package ingest

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/cognicore/issuefinder/pkg/issuefinder/internalerr"
)

// Script selects which letters survive normalization.
type Script string

const (
	// ScriptHangul keeps precomposed Hangul syllables (가-힣) only.
	ScriptHangul Script = "hangul"
	// ScriptLetters keeps any Unicode letter, lowercased. Compatibility
	// jamo (ㅋㅋ, ㅠㅠ) are dropped as noise.
	ScriptLetters Script = "letters"
)

const (
	hangulFirst = 0xAC00 // 가
	hangulLast  = 0xD7A3 // 힣

	compatJamoFirst = 0x3131 // ㄱ
	compatJamoLast  = 0x318E
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// ParseScript maps a config value to a Script. Empty means ScriptHangul.
func ParseScript(s string) (Script, error) {
	switch Script(strings.ToLower(strings.TrimSpace(s))) {
	case "", ScriptHangul:
		return ScriptHangul, nil
	case ScriptLetters:
		return ScriptLetters, nil
	default:
		return "", fmt.Errorf("script %q: %w", s, internalerr.ErrInvalidConfig)
	}
}

// Normalizer strips markup and every character outside the configured
// script, keeping whitespace untouched. The zero value uses ScriptHangul.
type Normalizer struct {
	Script Script
}

// NewNormalizer creates a normalizer for the given script
func NewNormalizer(script Script) Normalizer {
	return Normalizer{Script: script}
}

// Normalize cleans raw text. It is pure and idempotent; input with no
// surviving characters yields "".
func (n Normalizer) Normalize(text string) string {
	if text == "" {
		return ""
	}

	// Decomposed jamo sequences must become syllables before the range check.
	text = norm.NFC.String(text)

	// Tag fragments contain letters that would otherwise survive filtering.
	text = tagPattern.ReplaceAllString(text, "")

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsSpace(r) {
			b.WriteRune(r)
			continue
		}
		if n.keep(r) {
			if n.Script == ScriptLetters {
				r = unicode.ToLower(r)
			}
			b.WriteRune(r)
		}
	}

	out := b.String()
	if n.Script == ScriptLetters {
		// Removing a symbol can bring combinable letters together.
		out = norm.NFC.String(out)
	}
	return out
}

func (n Normalizer) keep(r rune) bool {
	switch n.Script {
	case ScriptLetters:
		if r >= compatJamoFirst && r <= compatJamoLast {
			return false
		}
		return unicode.IsLetter(r)
	default:
		return r >= hangulFirst && r <= hangulLast
	}
}

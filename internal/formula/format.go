// Package formula turns plain-text chemical formulas into their display form.
package formula

import (
	"strings"
	"unicode"
)

// Separator is the canonical hydrate separator.
const Separator = "·"

var separators = strings.NewReplacer(
	".", Separator,
	"*", Separator,
	"•", Separator,
	"∙", Separator,
	"⋅", Separator,
)

var subscripts = [10]rune{'₀', '₁', '₂', '₃', '₄', '₅', '₆', '₇', '₈', '₉'}

// Format rewrites raw so that digits become subscripts and any hydrate
// separator becomes "·". The coefficient right after a separator (the 6 in
// ·6H2O) stays a plain digit.
func Format(raw string) string {
	if raw == "" {
		return ""
	}
	parts := strings.Split(separators.Replace(raw), Separator)
	for i, p := range parts {
		parts[i] = subscriptDigits(p, i > 0)
	}
	return strings.Join(parts, Separator)
}

func subscriptDigits(segment string, keepCoefficient bool) string {
	var b strings.Builder
	b.Grow(len(segment) * 2)
	leading := keepCoefficient
	for _, r := range segment {
		switch {
		case r >= '0' && r <= '9':
			if leading {
				b.WriteRune(r)
			} else {
				b.WriteRune(subscripts[r-'0'])
			}
			continue
		case leading && unicode.IsSpace(r):
			b.WriteRune(r)
			continue
		}
		leading = false
		b.WriteRune(r)
	}
	return b.String()
}

// ASCII maps subscript digits back to ASCII digits. Output that cannot
// render subscript glyphs (PDF core fonts) uses it.
func ASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '₀' && r <= '₉' {
			return '0' + (r - '₀')
		}
		return r
	}, s)
}

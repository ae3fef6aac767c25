package search

import "strings"

// SimpleLetters lower-cases s and keeps only ASCII letters, plus spaces when allowSpaces is set.
func SimpleLetters(s string, allowSpaces bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r == ' ' && allowSpaces:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// normalize is the reduction applied to both queries and candidate names.
func normalize(s string) string {
	return strings.TrimSpace(SimpleLetters(s, true))
}

// tier classifies one normalized name against a normalized query.
// Stronger tiers win; weaker ones are not tested once one matches.
func tier(name, query string) (Quality, bool) {
	if name == query {
		return Perfect, true
	}
	if strings.HasPrefix(name, query) {
		return FromStart, true
	}
	// "the black cleaver" -> "black cleaver", "cleaver"
	for i := 0; i < len(name); i++ {
		if name[i] == ' ' && strings.HasPrefix(name[i+1:], query) {
			return FromWithin, true
		}
	}
	return 0, false
}

package search

import (
	"fmt"
	"strings"
)

// Quality says why an asset matched a query.
type Quality int

const (
	Perfect Quality = iota
	FromStart
	FromWithin
	AlternatePerfect
	AlternateFromStart
	AlternateFromWithin
)

var qualityNames = [...]string{
	Perfect:             "perfect",
	FromStart:           "from-start",
	FromWithin:          "from-within",
	AlternatePerfect:    "alternate-perfect",
	AlternateFromStart:  "alternate-from-start",
	AlternateFromWithin: "alternate-from-within",
}

func (q Quality) String() string {
	if q < 0 || int(q) >= len(qualityNames) {
		return fmt.Sprintf("quality(%d)", int(q))
	}
	return qualityNames[q]
}

// MarshalText lets qualities appear by name in JSON output.
func (q Quality) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

// UnmarshalText accepts the names produced by MarshalText.
func (q *Quality) UnmarshalText(text []byte) error {
	for i, name := range qualityNames {
		if name == string(text) {
			*q = Quality(i)
			return nil
		}
	}
	return fmt.Errorf("unknown match quality %q", text)
}

// alternate maps a primary-name tier to its alternate-name counterpart.
func (q Quality) alternate() Quality {
	return q + AlternatePerfect
}

// Ordering lists the categories to include, in priority order.
type Ordering []Quality

// Standard orderings.
var (
	Recommended           = Ordering{Perfect, AlternatePerfect, FromStart, FromWithin, AlternateFromStart, AlternateFromWithin}
	ByQuality             = Ordering{Perfect, AlternatePerfect, FromStart, AlternateFromStart, FromWithin, AlternateFromWithin}
	AlternatesLast        = Ordering{Perfect, FromStart, FromWithin, AlternatePerfect, AlternateFromStart, AlternateFromWithin}
	OnlyPerfectAlternates = Ordering{Perfect, AlternatePerfect, FromStart, FromWithin}
	NoAlternateNames      = Ordering{Perfect, FromStart, FromWithin}
)

var orderings = map[string]Ordering{
	"recommended":             Recommended,
	"by-quality":              ByQuality,
	"alternates-last":         AlternatesLast,
	"only-perfect-alternates": OnlyPerfectAlternates,
	"no-alternate-names":      NoAlternateNames,
}

// OrderingNames lists the names ParseOrdering accepts.
func OrderingNames() []string {
	return []string{"recommended", "by-quality", "alternates-last", "only-perfect-alternates", "no-alternate-names"}
}

// ParseOrdering resolves a standard ordering by name. Empty means Recommended.
func ParseOrdering(name string) (Ordering, error) {
	if name == "" {
		return Recommended, nil
	}
	o, ok := orderings[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown ordering %q (want one of %s)", name, strings.Join(OrderingNames(), ", "))
	}
	return o, nil
}

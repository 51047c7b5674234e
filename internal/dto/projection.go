package dto

import (
	"fmt"
	"strings"
)

// Projection selects which shape a category response takes.
type Projection int

const (
	// Summary exposes id and name only.
	Summary Projection = iota
	// Detailed adds the nested tip and guideline lists.
	Detailed
)

func (p Projection) String() string {
	switch p {
	case Summary:
		return "summary"
	case Detailed:
		return "detailed"
	default:
		return fmt.Sprintf("Projection(%d)", int(p))
	}
}

// ParseProjection parses a query value; an empty value yields def.
func ParseProjection(s string, def Projection) (Projection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return def, nil
	case "summary":
		return Summary, nil
	case "detailed":
		return Detailed, nil
	default:
		return def, fmt.Errorf("unknown projection %q", s)
	}
}

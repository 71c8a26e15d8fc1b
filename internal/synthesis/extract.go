// Package synthesis derives secondary texts from the four resolved
// arcana of one matrix: extracted sub-sections, cross-domain narratives,
// the personality portrait and the professional guidance sections.
package synthesis

import (
	"strings"

	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/arcana"
)

// ExtractSection returns the text after the first colon that follows
// marker, up to the next blank line. Any shape mismatch yields "".
func ExtractSection(text, marker string) string {
	if text == "" || marker == "" {
		return ""
	}
	idx := strings.Index(text, marker)
	if idx < 0 {
		return ""
	}
	rest := text[idx+len(marker):]
	if !strings.HasSuffix(marker, ":") {
		colon := strings.Index(rest, ":")
		if colon < 0 {
			return ""
		}
		rest = rest[colon+1:]
	}
	if end := strings.Index(rest, "\n\n"); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest)
}

func structuredOr(field, text, marker string) string {
	if field != "" {
		return field
	}
	return ExtractSection(text, marker)
}

// Professions lists the matching professions from the finance text.
func Professions(d arcana.Description) string {
	return structuredOr(d.Professions, d.Finance, arcana.MarkerProfessions)
}

func IncomeSources(d arcana.Description) string {
	return structuredOr(d.IncomeSources, d.Finance, arcana.MarkerIncomeSources)
}

func HealthZones(d arcana.Description) string {
	return structuredOr(d.HealthZones, d.Health, arcana.MarkerHealthZones)
}

func HealthRootCause(d arcana.Description) string {
	return structuredOr(d.HealthRootCause, d.Health, arcana.MarkerHealthRootCause)
}

func RelationshipStyle(d arcana.Description) string {
	return structuredOr(d.RelationshipStyle, d.Relationships, arcana.MarkerRelationshipStyle)
}

func RelationshipNeeds(d arcana.Description) string {
	return structuredOr(d.RelationshipNeeds, d.Relationships, arcana.MarkerRelationshipNeeds)
}

func DestructivePatterns(d arcana.Description) string {
	return structuredOr(d.DestructivePatterns, d.Relationships, arcana.MarkerDestructivePatterns)
}

// FirstSentences keeps the first n sentences of text, split on '.'.
func FirstSentences(text string, n int) string {
	parts := strings.Split(text, ".")
	kept := make([]string, 0, n)
	for _, p := range parts {
		if len(kept) == n {
			break
		}
		if s := strings.TrimSpace(p); s != "" {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return ""
	}
	return strings.Join(kept, ". ") + "."
}

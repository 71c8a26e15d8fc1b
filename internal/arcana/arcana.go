// Package arcana holds the static knowledge base of the 22 arcana.
package arcana

import (
	"fmt"
	"strings"
)

// Count is the number of arcana in the knowledge base.
const Count = 22

// Markers label sub-sections inside the long-form texts.
const (
	MarkerHealthZones         = "⚠️ ЗОНЫ РИСКА"
	MarkerHealthRootCause     = "🔍 КОРЕНЬ ПРОБЛЕМ"
	MarkerRelationshipStyle   = "💑 СТИЛЬ В ОТНОШЕНИЯХ"
	MarkerRelationshipNeeds   = "💝 ПОТРЕБНОСТИ"
	MarkerDestructivePatterns = "💔 ДЕСТРУКТИВНЫЕ ПАТТЕРНЫ"
	MarkerIncomeSources       = "💸 ИСТОЧНИКИ ДОХОДА"
	MarkerProfessions         = "🎓 ПРОФЕССИИ"
)

// Number identifies one arcanum, 1 through 22.
type Number int

func (n Number) Valid() bool {
	return n >= 1 && n <= Count
}

// Description is the immutable knowledge base record of one arcanum.
// Health, Relationships and Finance are long-form texts with labeled
// sub-sections; the structured fields carry the same sub-sections
// directly and may be empty when an override supplied only raw text.
type Description struct {
	Number        Number `json:"number"`
	Title         string `json:"title"`
	SimpleName    string `json:"simple_name"`
	Description   string `json:"description"`
	Health        string `json:"health"`
	Relationships string `json:"relationships"`
	Finance       string `json:"finance"`

	HealthZones         string `json:"health_zones,omitempty"`
	HealthRootCause     string `json:"health_root_cause,omitempty"`
	RelationshipStyle   string `json:"relationship_style,omitempty"`
	RelationshipNeeds   string `json:"relationship_needs,omitempty"`
	DestructivePatterns string `json:"destructive_patterns,omitempty"`
	IncomeSources       string `json:"income_sources,omitempty"`
	Professions         string `json:"professions,omitempty"`
}

// Base is a loaded knowledge base. It is never mutated after construction.
type Base struct {
	descriptions [Count]Description
}

var defaultBase = build(entries)

// Default returns the built-in knowledge base.
func Default() *Base {
	return defaultBase
}

// Lookup returns the description of n. It panics when n is out of range.
func (b *Base) Lookup(n Number) Description {
	if !n.Valid() {
		panic(fmt.Sprintf("arcana: number %d out of range [1,%d]", n, Count))
	}
	return b.descriptions[n-1]
}

// Get is the non-panicking variant of Lookup.
func (b *Base) Get(n Number) (Description, bool) {
	if !n.Valid() {
		return Description{}, false
	}
	return b.descriptions[n-1], true
}

// All returns every description ordered by number.
func (b *Base) All() []Description {
	out := make([]Description, Count)
	copy(out, b.descriptions[:])
	return out
}

// Lookup resolves n against the built-in knowledge base.
func Lookup(n Number) Description {
	return defaultBase.Lookup(n)
}

// Get resolves n against the built-in knowledge base.
func Get(n Number) (Description, bool) {
	return defaultBase.Get(n)
}

// All lists the built-in knowledge base.
func All() []Description {
	return defaultBase.All()
}

func build(src [Count]entry) *Base {
	b := &Base{}
	for i, e := range src {
		b.descriptions[i] = compose(Number(i+1), e)
	}
	return b
}

func compose(n Number, e entry) Description {
	return Description{
		Number:      n,
		Title:       e.Title,
		SimpleName:  e.SimpleName,
		Description: e.Description,
		Health: joinSections(e.Health,
			labeled(MarkerHealthZones, e.HealthZones),
			labeled(MarkerHealthRootCause, e.HealthRootCause),
		),
		Relationships: joinSections(e.Relationships,
			labeled(MarkerRelationshipStyle, e.RelationshipStyle),
			labeled(MarkerRelationshipNeeds, e.RelationshipNeeds),
			labeled(MarkerDestructivePatterns, e.DestructivePatterns),
		),
		Finance: joinSections(e.Finance,
			labeled(MarkerIncomeSources, e.IncomeSources),
			labeled(MarkerProfessions, e.Professions),
		),
		HealthZones:         e.HealthZones,
		HealthRootCause:     e.HealthRootCause,
		RelationshipStyle:   e.RelationshipStyle,
		RelationshipNeeds:   e.RelationshipNeeds,
		DestructivePatterns: e.DestructivePatterns,
		IncomeSources:       e.IncomeSources,
		Professions:         e.Professions,
	}
}

func labeled(marker, value string) string {
	if value == "" {
		return ""
	}
	return marker + ": " + value
}

func joinSections(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n\n")
}

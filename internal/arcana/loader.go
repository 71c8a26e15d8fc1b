package arcana

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Override replaces selected fields of one built-in arcanum.
// Health, Relationships and Finance replace the whole long-form text;
// structured fields of a replaced text that are not given explicitly are
// left empty and get resolved from the new text by marker extraction.
type Override struct {
	Number      Number `yaml:"number"`
	Title       string `yaml:"title"`
	SimpleName  string `yaml:"simple_name"`
	Description string `yaml:"description"`

	Health          string `yaml:"health"`
	HealthZones     string `yaml:"health_zones"`
	HealthRootCause string `yaml:"health_root_cause"`

	Relationships       string `yaml:"relationships"`
	RelationshipStyle   string `yaml:"relationship_style"`
	RelationshipNeeds   string `yaml:"relationship_needs"`
	DestructivePatterns string `yaml:"destructive_patterns"`

	Finance       string `yaml:"finance"`
	IncomeSources string `yaml:"income_sources"`
	Professions   string `yaml:"professions"`
}

type overrideFile struct {
	Arcana []Override `yaml:"arcana"`
}

// LoadOverrides builds a knowledge base from the built-in entries with the
// overrides found in the YAML file at path applied on top.
func LoadOverrides(path string) (*Base, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read arcana overrides: %w", err)
	}
	return ParseOverrides(raw)
}

// ParseOverrides is LoadOverrides over an in-memory document.
func ParseOverrides(raw []byte) (*Base, error) {
	var file overrideFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse arcana overrides: %w", err)
	}

	src := entries
	forced := make(map[Number]Override, len(file.Arcana))
	for _, o := range file.Arcana {
		if !o.Number.Valid() {
			return nil, fmt.Errorf("arcana override: number %d out of range [1,%d]", o.Number, Count)
		}
		if _, dup := forced[o.Number]; dup {
			return nil, fmt.Errorf("arcana override: duplicate number %d", o.Number)
		}
		forced[o.Number] = o
		o.applyTo(&src[o.Number-1])
	}

	b := build(src)
	for n, o := range forced {
		o.replaceTexts(&b.descriptions[n-1])
	}
	return b, nil
}

func (o Override) applyTo(e *entry) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&e.Title, o.Title)
	set(&e.SimpleName, o.SimpleName)
	set(&e.Description, o.Description)
	set(&e.HealthZones, o.HealthZones)
	set(&e.HealthRootCause, o.HealthRootCause)
	set(&e.RelationshipStyle, o.RelationshipStyle)
	set(&e.RelationshipNeeds, o.RelationshipNeeds)
	set(&e.DestructivePatterns, o.DestructivePatterns)
	set(&e.IncomeSources, o.IncomeSources)
	set(&e.Professions, o.Professions)
}

func (o Override) replaceTexts(d *Description) {
	if o.Health != "" {
		d.Health = o.Health
		d.HealthZones = o.HealthZones
		d.HealthRootCause = o.HealthRootCause
	}
	if o.Relationships != "" {
		d.Relationships = o.Relationships
		d.RelationshipStyle = o.RelationshipStyle
		d.RelationshipNeeds = o.RelationshipNeeds
		d.DestructivePatterns = o.DestructivePatterns
	}
	if o.Finance != "" {
		d.Finance = o.Finance
		d.IncomeSources = o.IncomeSources
		d.Professions = o.Professions
	}
}

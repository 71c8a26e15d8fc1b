// Package report assembles the share text and the export document of a
// computed matrix.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/arcana"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/matrix"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/synthesis"
)

const (
	DefaultOrigin = "https://о-тебе.рф"
	separator     = "═══════════════════════════\n\n"
)

var shareLabels = [4]string{
	"👤 ЛИЧНАЯ ЭНЕРГИЯ",
	"🎯 ПРЕДНАЗНАЧЕНИЕ",
	"👥 СОЦИАЛЬНАЯ ЭНЕРГИЯ",
	"✨ ДУХОВНАЯ ЭНЕРГИЯ",
}

// ShareOptions tunes the share text. The zero value includes everything
// and links to DefaultOrigin.
type ShareOptions struct {
	Origin           string
	OmitProfessional bool
}

// FormatShareText renders the full plain-text report. The output depends
// only on its inputs.
func FormatShareText(r matrix.Result, set synthesis.Set, syn synthesis.All, opts ShareOptions) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🔮 МАТРИЦА СУДЬБЫ - %s\n\n", r.Name)
	fmt.Fprintf(&b, "📅 Дата рождения: %s\n\n", r.FormatBirthDate())
	b.WriteString(separator)

	for i, e := range set.Energies() {
		d := e.Description
		fmt.Fprintf(&b, "%s: %s\n\n", shareLabels[i], titleOr(d))
		fmt.Fprintf(&b, "%s\n\n", d.Description)
		fmt.Fprintf(&b, "💊 ЗДОРОВЬЕ:\n%s\n\n", d.Health)
		fmt.Fprintf(&b, "💕 ОТНОШЕНИЯ:\n%s\n\n", d.Relationships)
		fmt.Fprintf(&b, "💰 ФИНАНСЫ:\n%s\n\n", d.Finance)
		b.WriteString(separator)
	}

	writeSynthesis(&b, syn)
	writePortrait(&b, syn.Portrait)

	if !opts.OmitProfessional {
		for _, s := range syn.Professional {
			writeSection(&b, s)
		}
	}

	origin := opts.Origin
	if origin == "" {
		origin = DefaultOrigin
	}
	fmt.Fprintf(&b, "🌐 Рассчитай свою матрицу: %s", origin)
	return b.String()
}

func titleOr(d arcana.Description) string {
	if d.Title != "" {
		return d.Title
	}
	return strconv.Itoa(int(d.Number))
}

func writeSynthesis(b *strings.Builder, syn synthesis.All) {
	b.WriteString("🧩 СИНТЕЗ ЭНЕРГИЙ\n\n")

	b.WriteString("💊 ЗДОРОВЬЕ:\n")
	writeLines(b, syn.Health.Conflict, syn.Health.MainRiskText)
	writeBullets(b, syn.Health.Zones)
	writeLines(b, syn.Health.RootCause)
	writeNumbered(b, syn.Health.ActionPlan)
	b.WriteString("\n")

	b.WriteString("💰 ФИНАНСЫ:\n")
	writeLines(b, syn.Finance.Blocks, syn.Finance.Strategy)
	writeBullets(b, syn.Finance.Sources)
	writeLines(b, syn.Finance.Growth)
	writeNumbered(b, syn.Finance.ActionPlan)
	b.WriteString("\n")

	b.WriteString("💕 ОТНОШЕНИЯ:\n")
	writeLines(b, syn.Relationships.Dynamic)
	writeBullets(b, syn.Relationships.Needs)
	writeBullets(b, syn.Relationships.Risks)
	writeLines(b, syn.Relationships.Harmony)
	writeNumbered(b, syn.Relationships.ActionPlan)
	b.WriteString("\n")

	b.WriteString("💼 КАРЬЕРА:\n")
	writeLines(b, syn.Career.Calling)
	if len(syn.Career.Professions) > 0 {
		writeLines(b, "Профессии: "+strings.Join(syn.Career.Professions, ", "))
	}
	writeLines(b, syn.Career.Environment, syn.Career.Growth)
	writeNumbered(b, syn.Career.ActionPlan)
	b.WriteString("\n")

	b.WriteString(separator)
}

func writePortrait(b *strings.Builder, p synthesis.Portrait) {
	b.WriteString("🪞 КТО ВЫ НА САМОМ ДЕЛЕ\n\n")
	if p.Intro != "" {
		fmt.Fprintf(b, "%s\n\n", p.Intro)
	}
	for _, s := range p.Selves {
		if s.Label == "" && s.Caption == "" && s.Summary == "" {
			continue
		}
		writeLines(b, s.Label, s.Caption, s.Summary)
		b.WriteString("\n")
	}
	if p.Problem != "" {
		fmt.Fprintf(b, "⚠️ В чём ваша проблема:\n%s\n\n", p.Problem)
	}
	if len(p.Solution) > 0 {
		b.WriteString("✅ Как решить:\n")
		writeNumbered(b, p.Solution)
		b.WriteString("\n")
	}
	b.WriteString(separator)
}

func writeSection(b *strings.Builder, s synthesis.Section) {
	fmt.Fprintf(b, "%s\n\n", s.Title)
	for _, block := range s.Blocks {
		writeLines(b, block.Heading)
		writeLines(b, block.Lines...)
		b.WriteString("\n")
	}
	b.WriteString(separator)
}

func writeLines(b *strings.Builder, lines ...string) {
	for _, l := range lines {
		if l != "" {
			b.WriteString(l)
			b.WriteString("\n")
		}
	}
}

func writeBullets(b *strings.Builder, items []string) {
	for _, it := range items {
		fmt.Fprintf(b, "• %s\n", it)
	}
}

func writeNumbered(b *strings.Builder, steps []string) {
	for i, s := range steps {
		fmt.Fprintf(b, "%d. %s\n", i+1, s)
	}
}

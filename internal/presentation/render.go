package presentation

import (
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/access"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/arcana"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/matrix"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/synthesis"
)

type NumberCard struct {
	Section SectionID      `json:"section"`
	Role    synthesis.Role `json:"role"`
	Number  arcana.Number  `json:"number"`
	Title   string         `json:"title"`
}

// SynthesisBody is the four-domain synthesis without the portrait and
// professional sections.
type SynthesisBody struct {
	Health        synthesis.Health        `json:"health"`
	Finance       synthesis.Finance       `json:"finance"`
	Relationships synthesis.Relationships `json:"relationships"`
	Career        synthesis.Career        `json:"career"`
}

type Section struct {
	ID       SectionID   `json:"id"`
	Title    string      `json:"title"`
	Expanded bool        `json:"expanded"`
	Body     interface{} `json:"body"`
}

type Rendered struct {
	State       State               `json:"-"`
	Result      *matrix.Result      `json:"result,omitempty"`
	Numbers     []NumberCard        `json:"numbers"`
	Access      AccessState         `json:"access"`
	Entitlement *access.Entitlement `json:"entitlement,omitempty"`
	Notice      string              `json:"notice,omitempty"`
	Paywall     bool                `json:"paywall"`
	Sections    []Section           `json:"sections"`
}

const (
	titleSynthesis    = "🧩 Синтез энергий"
	titlePortrait     = "🪞 Кто вы на самом деле"
	titleProfessional = "💼 Для специалистов"
)

// Render produces the current view. The four numbers are always present
// once a result exists; detailed sections only when access is granted.
func (v *View) Render() Rendered {
	out := Rendered{
		State:    v.state,
		Numbers:  []NumberCard{},
		Access:   v.access,
		Notice:   v.notice,
		Sections: []Section{},
	}
	if v.access != AccessUnknown {
		ent := v.entitlement
		out.Entitlement = &ent
	}
	if v.state != ResultComputed {
		return out
	}

	r := v.result
	out.Result = &r
	for i, e := range v.set.Energies() {
		out.Numbers = append(out.Numbers, NumberCard{
			Section: energySections[i],
			Role:    e.Role,
			Number:  e.Description.Number,
			Title:   e.Description.Title,
		})
	}

	if v.access != AccessGranted {
		out.Paywall = true
		return out
	}

	for i, e := range v.set.Energies() {
		out.Sections = append(out.Sections, v.section(energySections[i], string(e.Role)+": "+e.Description.Title, e.Description))
	}
	out.Sections = append(out.Sections,
		v.section(SectionSynthesis, titleSynthesis, SynthesisBody{
			Health:        v.syn.Health,
			Finance:       v.syn.Finance,
			Relationships: v.syn.Relationships,
			Career:        v.syn.Career,
		}),
		v.section(SectionPortrait, titlePortrait, v.syn.Portrait),
		v.section(SectionProfessional, titleProfessional, v.syn.Professional),
	)
	return out
}

func (v *View) section(id SectionID, title string, body interface{}) Section {
	return Section{ID: id, Title: title, Expanded: v.expanded[id], Body: body}
}

// Synthesis returns the resolved descriptions and synthesized content of
// the current result.
func (v *View) Synthesis() (synthesis.Set, synthesis.All, bool) {
	return v.set, v.syn, v.state == ResultComputed
}

// Package presentation holds the result view state: which sections are
// expanded and whether the detailed interpretation is unlocked.
package presentation

import (
	"context"
	"errors"
	"time"

	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/access"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/arcana"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/matrix"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/synthesis"
)

type State int

const (
	NoResult State = iota
	ResultComputed
)

type AccessState int

const (
	AccessUnknown AccessState = iota
	AccessGranted
	AccessDenied
)

func (a AccessState) String() string {
	switch a {
	case AccessGranted:
		return "granted"
	case AccessDenied:
		return "denied"
	default:
		return "unknown"
	}
}

func (a AccessState) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

type SectionID string

const (
	SectionPersonal     SectionID = "personal"
	SectionDestiny      SectionID = "destiny"
	SectionSocial       SectionID = "social"
	SectionSpiritual    SectionID = "spiritual"
	SectionSynthesis    SectionID = "synthesis"
	SectionPortrait     SectionID = "portrait"
	SectionProfessional SectionID = "professional"
)

var energySections = [4]SectionID{SectionPersonal, SectionDestiny, SectionSocial, SectionSpiritual}

// Sections lists every section in render order.
func Sections() []SectionID {
	return []SectionID{
		SectionPersonal, SectionDestiny, SectionSocial, SectionSpiritual,
		SectionSynthesis, SectionPortrait, SectionProfessional,
	}
}

func (id SectionID) Valid() bool {
	for _, s := range Sections() {
		if s == id {
			return true
		}
	}
	return false
}

var (
	ErrNoResult       = errors.New("no result computed")
	ErrUnknownSection = errors.New("unknown section")
)

// View is not safe for concurrent use.
type View struct {
	base     *arcana.Base
	state    State
	result   matrix.Result
	set      synthesis.Set
	syn      synthesis.All
	expanded map[SectionID]bool

	access      AccessState
	entitlement access.Entitlement
	notice      string
}

func NewView(base *arcana.Base) *View {
	if base == nil {
		base = arcana.Default()
	}
	return &View{base: base, expanded: make(map[SectionID]bool)}
}

// Compute calculates a new result and collapses all sections. The access
// state is kept.
func (v *View) Compute(birth time.Time, name string) matrix.Result {
	r := matrix.Compute(birth, name)
	v.Show(r)
	return r
}

// Show displays an already computed result, for example one restored
// from history.
func (v *View) Show(r matrix.Result) {
	v.result = r
	v.set = synthesis.Resolve(v.base, r)
	v.syn = synthesis.Synthesize(v.set)
	v.state = ResultComputed
	v.expanded = make(map[SectionID]bool)
}

func (v *View) State() State {
	return v.state
}

func (v *View) Result() (matrix.Result, bool) {
	return v.result, v.state == ResultComputed
}

// Toggle flips the expanded flag of a section.
func (v *View) Toggle(id SectionID) error {
	if v.state != ResultComputed {
		return ErrNoResult
	}
	if !id.Valid() {
		return ErrUnknownSection
	}
	v.expanded[id] = !v.expanded[id]
	return nil
}

func (v *View) Expanded(id SectionID) bool {
	return v.expanded[id]
}

// ApplyAccess records the entitlement of the viewer.
func (v *View) ApplyAccess(e access.Entitlement) {
	v.entitlement = e
	v.notice = ""
	if e.HasAccess {
		v.access = AccessGranted
	} else {
		v.access = AccessDenied
	}
}

// Refresh resolves the entitlement of email through the gate. An empty
// email resets the access state to unknown.
func (v *View) Refresh(ctx context.Context, gate *access.Gate, email string) {
	if access.NormalizeEmail(email) == "" {
		v.access = AccessUnknown
		v.entitlement = access.Entitlement{}
		v.notice = ""
		return
	}
	ent, notice := gate.Resolve(ctx, email)
	v.ApplyAccess(ent)
	v.notice = notice
}

func (v *View) Access() AccessState {
	return v.access
}

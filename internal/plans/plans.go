// Package plans is the catalog of purchasable access plans.
package plans

import "time"

type Type string

const (
	Single   Type = "single"
	Month    Type = "month"
	HalfYear Type = "half_year"
	Year     Type = "year"
	Admin    Type = "admin"
)

// Plan grants either a fixed number of downloads or a period of unlimited
// access. Admin grants neither limit.
type Plan struct {
	Type      Type   `json:"type"`
	Label     string `json:"label"`
	Price     int    `json:"price"`
	Days      int    `json:"days,omitempty"`
	Downloads int    `json:"downloads,omitempty"`
	Public    bool   `json:"-"`
}

var catalog = []Plan{
	{Type: Single, Label: "Разовая расшифровка", Price: 200, Downloads: 1, Public: true},
	{Type: Month, Label: "1 месяц безлимит", Price: 1000, Days: 30, Public: true},
	{Type: HalfYear, Label: "6 месяцев безлимит", Price: 5000, Days: 180, Public: true},
	{Type: Year, Label: "12 месяцев безлимит", Price: 10000, Days: 365, Public: true},
	{Type: Admin, Label: "Администратор"},
}

// Public returns the purchasable plans in catalog order.
func Public() []Plan {
	out := make([]Plan, 0, len(catalog))
	for _, p := range catalog {
		if p.Public {
			out = append(out, p)
		}
	}
	return out
}

func Lookup(t string) (Plan, bool) {
	for _, p := range catalog {
		if string(p.Type) == t {
			return p, true
		}
	}
	return Plan{}, false
}

// Label returns the display name of a plan type, or the type itself when
// unknown.
func Label(t string) string {
	if p, ok := Lookup(t); ok {
		return p.Label
	}
	return t
}

// Apply computes the limits of a grant issued at now. Nil values mean
// unlimited.
func (p Plan) Apply(now time.Time) (expiresAt *time.Time, downloadsLeft *int) {
	if p.Days > 0 {
		exp := now.AddDate(0, 0, p.Days)
		expiresAt = &exp
	}
	if p.Downloads > 0 {
		n := p.Downloads
		downloadsLeft = &n
	}
	return expiresAt, downloadsLeft
}

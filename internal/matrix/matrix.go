// Package matrix computes the four-arcana profile from a birth date.
package matrix

import (
	"fmt"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/arcana"
)

// Result is the four-arcana profile of one subject.
type Result struct {
	Personal  arcana.Number `json:"personal"`
	Destiny   arcana.Number `json:"destiny"`
	Social    arcana.Number `json:"social"`
	Spiritual arcana.Number `json:"spiritual"`
	Name      string        `json:"name"`
	BirthDate time.Time     `json:"birth_date"`
	Email     string        `json:"email,omitempty"`
}

// Reduce replaces n with its digit sum until it is at most 22.
// Values 10..22 are kept as they are.
func Reduce(n int) int {
	if n < 0 {
		n = -n
	}
	for n > arcana.Count {
		sum := 0
		for n > 0 {
			sum += n % 10
			n /= 10
		}
		n = sum
	}
	return n
}

// Compute derives the profile from the calendar date of birth.
func Compute(birth time.Time, name string) Result {
	day := birth.Day()
	month := int(birth.Month())
	year := birth.Year()

	return Result{
		Personal:  arcana.Number(Reduce(day + month + year)),
		Destiny:   arcana.Number(Reduce(day + month)),
		Social:    arcana.Number(Reduce(month + year)),
		Spiritual: arcana.Number(Reduce(day + year)),
		Name:      name,
		BirthDate: time.Date(year, birth.Month(), day, 0, 0, 0, 0, time.UTC),
	}
}

// Numbers returns the four arcana in display order.
func (r Result) Numbers() [4]arcana.Number {
	return [4]arcana.Number{r.Personal, r.Destiny, r.Social, r.Spiritual}
}

// FormatBirthDate renders the birth date as DD.MM.YYYY.
func (r Result) FormatBirthDate() string {
	return r.BirthDate.Format(DisplayDateLayout)
}

const (
	InputDateLayout   = "2006-01-02"
	DisplayDateLayout = "02.01.2006"
)

// ParseBirthDate accepts YYYY-MM-DD and DD.MM.YYYY.
func ParseBirthDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, &ValidationError{Field: "birth_date", Reason: "is required"}
	}
	for _, layout := range []string{InputDateLayout, DisplayDateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &ValidationError{Field: "birth_date", Reason: fmt.Sprintf("%q is not a date", s)}
}

package matrix

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/arcana"
)

// ValidationError reports a field that failed boundary validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Reason
}

// IsValidation reports whether err is a *ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

type rawResult struct {
	Personal  *int    `json:"personal"`
	Destiny   *int    `json:"destiny"`
	Social    *int    `json:"social"`
	Spiritual *int    `json:"spiritual"`
	Name      *string `json:"name"`
	BirthDate string  `json:"birth_date"`
	Email     string  `json:"email"`
}

// ParseResult builds a Result from untrusted JSON. Every number must be
// present and within [1,22], the name must be present, and when a birth
// date is given the numbers must be the ones it produces.
func ParseResult(raw []byte) (Result, error) {
	var in rawResult
	if err := json.Unmarshal(raw, &in); err != nil {
		return Result{}, &ValidationError{Field: "result", Reason: "is not a JSON object"}
	}

	var r Result
	fields := []struct {
		name string
		src  *int
		dst  *arcana.Number
	}{
		{"personal", in.Personal, &r.Personal},
		{"destiny", in.Destiny, &r.Destiny},
		{"social", in.Social, &r.Social},
		{"spiritual", in.Spiritual, &r.Spiritual},
	}
	for _, f := range fields {
		if f.src == nil {
			return Result{}, &ValidationError{Field: f.name, Reason: "is required"}
		}
		n := arcana.Number(*f.src)
		if !n.Valid() {
			return Result{}, &ValidationError{Field: f.name, Reason: fmt.Sprintf("%d is out of range [1,%d]", *f.src, arcana.Count)}
		}
		*f.dst = n
	}

	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return Result{}, &ValidationError{Field: "name", Reason: "is required"}
	}
	r.Name = strings.TrimSpace(*in.Name)
	r.Email = strings.TrimSpace(in.Email)

	if in.BirthDate != "" {
		birth, err := parseAnyDate(in.BirthDate)
		if err != nil {
			return Result{}, err
		}
		if expected := Compute(birth, r.Name); expected.Numbers() != r.Numbers() {
			return Result{}, &ValidationError{Field: "birth_date", Reason: "does not match the arcana numbers"}
		}
		r.BirthDate = time.Date(birth.Year(), birth.Month(), birth.Day(), 0, 0, 0, 0, time.UTC)
	}

	return r, nil
}

func parseAnyDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return ParseBirthDate(s)
}

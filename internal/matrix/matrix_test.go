package matrix

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/arcana"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestReduce(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{1, 1},
		{9, 9},
		{10, 10},
		{20, 20},
		{22, 22},
		{23, 5},
		{24, 6},
		{1995, 6},
		{2010, 3},
		{2005, 7},
		{1999, 10},
		{9999, 9},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Reduce(tc.in), "Reduce(%d)", tc.in)
	}
}

// Values between 10 and 22 are final and never collapse to one digit.
func TestReduceStopsAtTwentyTwo(t *testing.T) {
	for n := 10; n <= 22; n++ {
		assert.Equal(t, n, Reduce(n))
	}
}

// A single digit-sum pass is not enough: 1999 sums to 28, then 10.
func TestReduceLoopsUntilInRange(t *testing.T) {
	singlePass := 1 + 9 + 9 + 9
	require.Greater(t, singlePass, 22)
	assert.Equal(t, 10, Reduce(1999))
	assert.Equal(t, 3, Reduce(15+5+1990))
}

func TestCompute(t *testing.T) {
	r := Compute(date(1990, time.May, 15), "Анна")

	assert.Equal(t, arcana.Number(3), r.Personal)
	assert.Equal(t, arcana.Number(20), r.Destiny)
	assert.Equal(t, arcana.Number(6), r.Social)
	assert.Equal(t, arcana.Number(7), r.Spiritual)
	assert.Equal(t, "Анна", r.Name)
	assert.Equal(t, "15.05.1990", r.FormatBirthDate())
}

func TestComputeIsDeterministic(t *testing.T) {
	birth := time.Date(1984, time.December, 31, 23, 59, 0, 0, time.FixedZone("MSK", 3*3600))
	assert.Equal(t, Compute(birth, "x"), Compute(birth, "x"))
}

func TestComputeAlwaysInRange(t *testing.T) {
	for d := date(1900, time.January, 1); d.Year() < 2101; d = d.AddDate(0, 0, 1) {
		r := Compute(d, "")
		for _, n := range r.Numbers() {
			if !n.Valid() {
				t.Fatalf("%s produced %d", d.Format(InputDateLayout), n)
			}
		}
	}
}

func TestParseBirthDate(t *testing.T) {
	got, err := ParseBirthDate("1990-05-15")
	require.NoError(t, err)
	assert.Equal(t, date(1990, time.May, 15), got)

	got, err = ParseBirthDate("15.05.1990")
	require.NoError(t, err)
	assert.Equal(t, date(1990, time.May, 15), got)

	_, err = ParseBirthDate("")
	assert.True(t, IsValidation(err))

	_, err = ParseBirthDate("31.02.1990")
	assert.True(t, IsValidation(err))
}

func TestParseResult(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		r, err := ParseResult([]byte(`{"personal":3,"destiny":20,"social":6,"spiritual":7,"name":" Анна ","birth_date":"1990-05-15"}`))
		require.NoError(t, err)
		assert.Equal(t, "Анна", r.Name)
		assert.Equal(t, [4]arcana.Number{3, 20, 6, 7}, r.Numbers())
		assert.Equal(t, date(1990, time.May, 15), r.BirthDate)
	})

	t.Run("accepts its own JSON encoding", func(t *testing.T) {
		_, err := ParseResult([]byte(`{"personal":3,"destiny":20,"social":6,"spiritual":7,"name":"A","birth_date":"1990-05-15T00:00:00Z"}`))
		require.NoError(t, err)
	})

	t.Run("without birth date", func(t *testing.T) {
		r, err := ParseResult([]byte(`{"personal":1,"destiny":2,"social":3,"spiritual":4,"name":"A"}`))
		require.NoError(t, err)
		assert.True(t, r.BirthDate.IsZero())
	})

	invalid := []struct {
		name  string
		raw   string
		field string
	}{
		{"not json", `[1,2]`, "result"},
		{"missing personal", `{"destiny":2,"social":3,"spiritual":4,"name":"A"}`, "personal"},
		{"zero", `{"personal":0,"destiny":2,"social":3,"spiritual":4,"name":"A"}`, "personal"},
		{"too large", `{"personal":1,"destiny":2,"social":23,"spiritual":4,"name":"A"}`, "social"},
		{"missing name", `{"personal":1,"destiny":2,"social":3,"spiritual":4}`, "name"},
		{"blank name", `{"personal":1,"destiny":2,"social":3,"spiritual":4,"name":"  "}`, "name"},
		{"mismatched birth date", `{"personal":1,"destiny":2,"social":3,"spiritual":4,"name":"A","birth_date":"1990-05-15"}`, "birth_date"},
		{"bad birth date", `{"personal":1,"destiny":2,"social":3,"spiritual":4,"name":"A","birth_date":"soon"}`, "birth_date"},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseResult([]byte(tc.raw))
			var v *ValidationError
			require.ErrorAs(t, err, &v)
			assert.Equal(t, tc.field, v.Field)
		})
	}
}

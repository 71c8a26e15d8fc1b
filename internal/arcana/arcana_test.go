package arcana

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCoversEveryNumber(t *testing.T) {
	for n := Number(1); n <= Count; n++ {
		d := Lookup(n)
		assert.Equal(t, n, d.Number)
		assert.NotEmpty(t, d.Title, "title of %d", n)
		assert.NotEmpty(t, d.SimpleName, "simple name of %d", n)
		assert.NotEmpty(t, d.Description, "description of %d", n)
		assert.Contains(t, d.Finance, MarkerProfessions+": "+d.Professions)
		assert.Contains(t, d.Health, MarkerHealthZones+": "+d.HealthZones)
		assert.Contains(t, d.Relationships, MarkerDestructivePatterns+": "+d.DestructivePatterns)
	}
}

func TestLookupKnownTitles(t *testing.T) {
	assert.Equal(t, "Маг", Lookup(1).Title)
	assert.Equal(t, "Император", Lookup(4).Title)
	assert.Equal(t, "Суд", Lookup(20).Title)
	assert.Equal(t, "Шут", Lookup(22).Title)
}

func TestLookupPanicsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { Lookup(0) })
	assert.Panics(t, func() { Lookup(23) })
}

func TestGet(t *testing.T) {
	d, ok := Get(7)
	require.True(t, ok)
	assert.Equal(t, "Колесница", d.Title)

	_, ok = Get(-1)
	assert.False(t, ok)
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	require.Len(t, all, Count)
	all[0].Title = "changed"
	assert.Equal(t, "Маг", Lookup(1).Title)
}

func TestLongFormSectionsAreParagraphSeparated(t *testing.T) {
	d := Lookup(3)
	parts := strings.Split(d.Finance, "\n\n")
	require.Len(t, parts, 3)
	assert.True(t, strings.HasPrefix(parts[1], MarkerIncomeSources))
	assert.True(t, strings.HasPrefix(parts[2], MarkerProfessions))
}

func TestParseOverrides(t *testing.T) {
	t.Run("structured field override recomposes text", func(t *testing.T) {
		b, err := ParseOverrides([]byte(`
arcana:
  - number: 1
    title: Волшебник
    professions: режиссер, архитектор
`))
		require.NoError(t, err)

		d := b.Lookup(1)
		assert.Equal(t, "Волшебник", d.Title)
		assert.Equal(t, "режиссер, архитектор", d.Professions)
		assert.Contains(t, d.Finance, MarkerProfessions+": режиссер, архитектор")
		assert.Equal(t, Lookup(2), b.Lookup(2))
	})

	t.Run("raw text override clears implicit structured fields", func(t *testing.T) {
		b, err := ParseOverrides([]byte(`
arcana:
  - number: 5
    finance: "Деньги через слово.\n\n🎓 ПРОФЕССИИ: лектор, автор"
`))
		require.NoError(t, err)

		d := b.Lookup(5)
		assert.Equal(t, "", d.Professions)
		assert.Equal(t, "", d.IncomeSources)
		assert.Contains(t, d.Finance, "лектор, автор")
		assert.Equal(t, Lookup(5).Health, d.Health)
	})

	t.Run("rejects out of range number", func(t *testing.T) {
		_, err := ParseOverrides([]byte("arcana:\n  - number: 23\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "out of range")
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		_, err := ParseOverrides([]byte("arcana:\n  - number: 2\n  - number: 2\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("does not mutate default base", func(t *testing.T) {
		_, err := ParseOverrides([]byte("arcana:\n  - number: 1\n    title: Другое\n"))
		require.NoError(t, err)
		assert.Equal(t, "Маг", Lookup(1).Title)
	})
}

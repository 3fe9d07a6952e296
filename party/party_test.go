package party

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fixtureTable() map[string]Metadata {
	return map[string]Metadata{
		"ก้าวไกล": {
			Color: "#F47932", NameEn: "Move Forward", NameTh: "ก้าวไกล",
			Leader: "พิธา ลิ้มเจริญรัตน์", Slogan: "s", SloganTh: "ส",
			Logo: "/logos/moveforward.png",
		},
	}
}

func TestResolveKnown(t *testing.T) {
	r := NewResolver(fixtureTable())
	m := r.Resolve("ก้าวไกล")
	assert.Equal(t, "Move Forward", m.NameEn)
	assert.Equal(t, "#F47932", m.Color)
}

func TestResolveTrimsWhitespace(t *testing.T) {
	r := NewResolver(fixtureTable())
	m := r.Resolve("  ก้าวไกล ")
	assert.Equal(t, "Move Forward", m.NameEn)
}

func TestResolveEmptyName(t *testing.T) {
	r := NewResolver(fixtureTable())
	for _, raw := range []string{"", "   "} {
		m := r.Resolve(raw)
		assert.Equal(t, Unknown(), m)
		assert.Equal(t, "#6B7280", m.Color)
		assert.Equal(t, "-", m.Leader)
		assert.Empty(t, m.Slogan)
		assert.Empty(t, m.Logo)
	}
}

func TestResolveUnknownKeepsRawName(t *testing.T) {
	r := NewResolver(fixtureTable())
	m := r.Resolve("พรรคอิสระ")
	assert.Equal(t, "พรรคอิสระ", m.NameEn)
	assert.Equal(t, "พรรคอิสระ", m.NameTh)
	assert.Equal(t, "#6B7280", m.Color)
	assert.Equal(t, "-", m.Leader)
	assert.Equal(t, "-", m.Slogan)
	assert.Empty(t, m.Logo)
}

func TestUnknownPartiesStayDistinct(t *testing.T) {
	// Two unrecognized names must not collapse into one shared record.
	r := NewResolver(fixtureTable())
	a := r.Resolve("พรรคเล็กหนึ่ง")
	b := r.Resolve("พรรคเล็กสอง")
	assert.NotEqual(t, a.NameEn, b.NameEn)
	assert.NotEqual(t, a.NameTh, b.NameTh)
	assert.Equal(t, a.Color, b.Color)
}

func TestDefaultTableEntries(t *testing.T) {
	table := DefaultTable()
	assert.Greater(t, len(table), 30)
	for name, m := range table {
		assert.Equal(t, name, m.NameTh, "table key must match NameTh for %s", name)
		assert.NotEmpty(t, m.Color, name)
		assert.NotEmpty(t, m.NameEn, name)
		assert.NotEmpty(t, m.Leader, name)
	}
}

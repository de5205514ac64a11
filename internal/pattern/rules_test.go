package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropose(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		match    bool
	}{
		{"part page", "1_1.jpg", "1_001.jpg", true},
		{"part page two digits", "3_42.png", "3_042.png", true},
		{"part prefix stays unpadded", "12_7.tif", "12_007.tif", true},
		{"table of contents", "0_inhoudsopgave.jpg", "", false},
		{"year number", "GBV 1950-1.png", "GBV 1950-001.png", true},
		{"year number two digits", "VB 1974-10.png", "VB 1974-010.png", true},
		{"generic name number", "something-1.png", "something-001.png", true},
		{"generic keeps last dash group", "a-1-2.png", "a-1-002.png", true},
		{"already padded", "1_001.jpg", "1_001.jpg", true},
		{"exactly width", "1_100.jpg", "1_100.jpg", true},
		{"wider than width", "1_1000.jpg", "1_1000.jpg", true},
		{"leading zeros beyond width kept", "1_0001.jpg", "1_0001.jpg", true},
		{"extension case kept", "1_5.JPG", "1_005.JPG", true},
		{"no extension", "1_1", "", false},
		{"no number", "cover.jpg", "", false},
		{"empty", "", "", false},
		{"partial match rejected", "x1_1.jpg", "", false},
		{"trailing text rejected", "1_1.jpg.bak~", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Propose(tt.input)
			assert.Equal(t, tt.match, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMatchRulePriority(t *testing.T) {
	m := New(DefaultWidth)

	p, ok := m.Match("1_1.jpg")
	require.True(t, ok)
	assert.Equal(t, RulePartPage, p.Rule)

	p, ok = m.Match("GBV 1950-1.png")
	require.True(t, ok)
	assert.Equal(t, RuleNameYearNumber, p.Rule)

	// Five digits before the dash is not a year.
	p, ok = m.Match("GBV 19501-1.png")
	require.True(t, ok)
	assert.Equal(t, RuleNameNumber, p.Rule)
	assert.Equal(t, "GBV 19501-001.png", p.Name)

	p, ok = m.Match("something-1.png")
	require.True(t, ok)
	assert.Equal(t, RuleNameNumber, p.Rule)
}

func TestYearRuleAgreesWithFallback(t *testing.T) {
	fallback := NewWithRules(DefaultRules()[2:], DefaultWidth)
	for _, name := range []string{"GBV 1950-1.png", "VB 1974-10.png", "Jaarboek 2001-123.jpg"} {
		year, ok := New(DefaultWidth).Propose(name)
		require.True(t, ok)
		generic, ok := fallback.Propose(name)
		require.True(t, ok)
		assert.Equal(t, generic, year, name)
	}
}

func TestProposeIsIdempotent(t *testing.T) {
	for _, name := range []string{"1_1.jpg", "GBV 1950-1.png", "something-7.gif", "2_99.tiff"} {
		once, ok := Propose(name)
		require.True(t, ok)
		twice, ok := Propose(once)
		require.True(t, ok)
		assert.Equal(t, once, twice, name)
	}
}

func TestCustomWidth(t *testing.T) {
	m := New(4)
	assert.Equal(t, 4, m.Width())

	got, ok := m.Propose("1_12.jpg")
	require.True(t, ok)
	assert.Equal(t, "1_0012.jpg", got)

	assert.Equal(t, DefaultWidth, New(0).Width())
}

func TestPad(t *testing.T) {
	assert.Equal(t, "001", Pad("1", 3))
	assert.Equal(t, "010", Pad("10", 3))
	assert.Equal(t, "100", Pad("100", 3))
	assert.Equal(t, "1000", Pad("1000", 3))
	assert.Equal(t, "7", Pad("7", 1))
}

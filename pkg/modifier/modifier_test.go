package modifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/exilemarket/item-price-scanner/pkg/types"
)

func newTestParser(t *testing.T) *Parser {
	t.Helper()
	p, err := NewParser(0)
	require.NoError(t, err)
	return p
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want domain.Modifier
	}{
		{
			name: "single number",
			text: "+12% to Fire Resistance",
			want: domain.Modifier{Template: "+X% to Fire Resistance", Magnitude: 12},
		},
		{
			name: "fractional number",
			text: "1.5% of Physical Attack Damage Leeched as Life",
			want: domain.Modifier{Template: "X% of Physical Attack Damage Leeched as Life", Magnitude: 1.5},
		},
		{
			name: "two numbers averaged",
			text: "Adds 4 to 9 Physical Damage",
			want: domain.Modifier{Template: "Adds X to Y Physical Damage", Magnitude: 6.5},
		},
		{
			name: "no numbers presence sentinel",
			text: "Hits can't be Evaded",
			want: domain.Modifier{Template: "Hits can't be Evaded", Magnitude: 1},
		},
		{
			name: "three numbers keeps first two",
			text: "Adds 10 to 20 Fire Damage per 25 Strength",
			want: domain.Modifier{Template: "Adds X to Y Fire Damage per 25 Strength", Magnitude: 15},
		},
		{
			name: "repeated digits substitute in order",
			text: "Adds 1 to 10 Cold Damage",
			want: domain.Modifier{Template: "Adds X to Y Cold Damage", Magnitude: 5.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := newTestParser(t)
			assert.Equal(t, tt.want, p.Parse(tt.text))
		})
	}
}

func TestParseCached(t *testing.T) {
	t.Parallel()

	p := newTestParser(t)
	first := p.Parse("+25 to maximum Life")
	second := p.Parse("+25 to maximum Life")
	assert.Equal(t, first, second)
}

func TestParseAll(t *testing.T) {
	t.Parallel()

	p := newTestParser(t)

	got := p.ParseAll([]string{"+30 to Strength", "Cannot be Frozen"})
	require.Len(t, got, 2)
	assert.Equal(t, "+X to Strength", got[0].Template)
	assert.Equal(t, 30.0, got[0].Magnitude)
	assert.Equal(t, PresenceMagnitude, got[1].Magnitude)

	assert.Nil(t, p.ParseAll(nil))
}

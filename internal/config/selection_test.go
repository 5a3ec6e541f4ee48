package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSelection(t *testing.T) {
	for _, in := range []string{"", "  ", "all", "ALL"} {
		assert.True(t, ParseSelection(in).IsAll(), "%q", in)
	}

	sel := ParseSelection(" 50_FHH_2403 ")
	assert.Equal(t, SelectOne, sel.Kind())
	v, ok := sel.Value()
	assert.True(t, ok)
	assert.Equal(t, "50_FHH_2403", v)
}

func TestSelection_ZeroValueIsAll(t *testing.T) {
	var sel Selection
	assert.True(t, sel.IsAll())
	assert.Equal(t, All(), sel)

	_, ok := sel.Value()
	assert.False(t, ok)
}

func TestSelection_String(t *testing.T) {
	assert.Equal(t, "all", All().String())
	assert.Equal(t, "off", One("off").String())
	assert.Equal(t, One("60"), ParseSelection(One("60").String()))
}

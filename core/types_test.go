package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/planarcolor/core"
)

// TestColor_Valid ensures NoColor never collides with a palette index.
func TestColor_Valid(t *testing.T) {
	assert.False(t, core.NoColor.Valid())
	assert.Equal(t, "-", core.NoColor.String())
	for c := core.Color(0); c < 4; c++ {
		assert.True(t, c.Valid())
		assert.NotEqual(t, core.NoColor, c)
	}
	assert.Equal(t, "3", core.Color(3).String())
}

// TestEdge_SharesEndpoint covers the endpoint helpers used by the builder.
func TestEdge_SharesEndpoint(t *testing.T) {
	e := core.Edge{U: 1, V: 2}
	assert.True(t, e.Has(1))
	assert.True(t, e.Has(2))
	assert.False(t, e.Has(3))
	assert.True(t, e.SharesEndpoint(core.Edge{U: 2, V: 5}))
	assert.True(t, e.SharesEndpoint(core.Edge{U: 0, V: 1}))
	assert.False(t, e.SharesEndpoint(core.Edge{U: 3, V: 4}))
}

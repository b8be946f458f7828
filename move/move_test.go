package move_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sasakirione/pokesim/move"
	"github.com/sasakirione/pokesim/ptype"
)

func TestIsDamaging(t *testing.T) {
	thunderbolt := move.Move{Name: "Thunderbolt", Type: ptype.Electric, Category: move.Special, Power: 90}
	assert.True(t, thunderbolt.IsDamaging())

	thunderWave := move.Move{Name: "Thunder Wave", Type: ptype.Electric, Category: move.Status}
	assert.False(t, thunderWave.IsDamaging())

	// A physical move with zero power still cannot deal damage.
	splashy := move.Move{Name: "Splash", Type: ptype.Water, Category: move.Physical, Power: 0}
	assert.False(t, splashy.IsDamaging())
}

func TestParseCategory_RoundTrip(t *testing.T) {
	for _, c := range []move.Category{move.Physical, move.Special, move.Status} {
		parsed, err := move.ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}

	_, err := move.ParseCategory("Mystic")
	assert.Error(t, err)
}

package priority_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sasakirione/pokesim/move"
	"github.com/sasakirione/pokesim/priority"
)

func TestFixedPriority(t *testing.T) {
	for _, name := range []string{"Focus Punch", "Beak Blast", "Trap Shell"} {
		p, ok := priority.FixedPriority(name)
		assert.True(t, ok, name)
		assert.Equal(t, -3, p, name)
	}

	_, ok := priority.FixedPriority("Quick Attack")
	assert.False(t, ok)
}

func TestCalledMovePriority(t *testing.T) {
	metronome := move.Move{Name: "Metronome", Category: move.Status, Priority: 0}
	called := move.Move{Name: "Extreme Speed", Category: move.Physical, Power: 80, Priority: 2}

	assert.Equal(t, 0, priority.CalledMovePriority(metronome, called))

	quickCaller := move.Move{Name: "Me First", Category: move.Status, Priority: 1}
	assert.Equal(t, 1, priority.CalledMovePriority(quickCaller, called))
}

func TestFleePriority(t *testing.T) {
	selected := move.Move{Name: "Quick Attack", Priority: 1}

	// Generation 2 flees at the selected move's priority.
	assert.Equal(t, 1, priority.FleePriority(2, selected))

	// Everywhere else fleeing is pinned below all moves.
	assert.Equal(t, -7, priority.FleePriority(1, selected))
	assert.Equal(t, -7, priority.FleePriority(3, selected))
	assert.Equal(t, -7, priority.FleePriority(9, selected))
}

func TestMegaSpeedSource(t *testing.T) {
	assert.Equal(t, priority.PreMega, priority.MegaSpeedSource(6))
	assert.Equal(t, priority.PostMega, priority.MegaSpeedSource(7))
	assert.Equal(t, priority.PostMega, priority.MegaSpeedSource(9))
}

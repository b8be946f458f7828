package creature_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sasakirione/pokesim/battleevent"
	"github.com/sasakirione/pokesim/creature"
	"github.com/sasakirione/pokesim/move"
	"github.com/sasakirione/pokesim/nature"
	"github.com/sasakirione/pokesim/ptype"
	"github.com/sasakirione/pokesim/simerr"
	"github.com/sasakirione/pokesim/stats"
)

func tackle() move.Move {
	return move.Move{Name: "Tackle", Type: ptype.Normal, Category: move.Physical, Power: 40, Accuracy: 100}
}

func surf() move.Move {
	return move.Move{Name: "Surf", Type: ptype.Water, Category: move.Special, Power: 90, Accuracy: 100}
}

func newWaterCreature(t *testing.T) creature.Creature {
	t.Helper()

	c, err := creature.New(creature.Config{
		Name:         "Vaporeon",
		Types:        []ptype.Type{ptype.Water},
		TerastalType: ptype.Steel,
		Base:         stats.Base{HP: 100, Attack: 100, Defense: 100, SpAttack: 100, SpDefense: 100, Speed: 100},
		Nature:       nature.Hardy,
		Moves:        []move.Move{surf(), tackle()},
	})
	require.NoError(t, err)
	return c
}

func TestNew_Defaults(t *testing.T) {
	c := newWaterCreature(t)

	assert.Equal(t, stats.DefaultLevel, c.Level)
	assert.Equal(t, 175, c.MaxHP)
	assert.Equal(t, c.MaxHP, c.CurrentHP)
	assert.Equal(t, stats.PerfectIVs(), c.IVs)
	assert.NotEmpty(t, c.GetID())
	assert.Equal(t, "creature", c.GetType())
	assert.True(t, c.IsAlive())
}

func TestNew_Validation(t *testing.T) {
	base := creature.Config{
		Name:  "Test",
		Types: []ptype.Type{ptype.Normal},
		Base:  stats.Base{HP: 50},
		Moves: []move.Move{tackle()},
	}

	noName := base
	noName.Name = ""
	_, err := creature.New(noName)
	assert.Equal(t, simerr.CodeInvalidArgument, simerr.GetCode(err))

	badLevel := base
	badLevel.Level = 101
	_, err = creature.New(badLevel)
	assert.Equal(t, simerr.CodeInvalidArgument, simerr.GetCode(err))

	noTypes := base
	noTypes.Types = nil
	_, err = creature.New(noTypes)
	assert.Equal(t, simerr.CodeInvalidArgument, simerr.GetCode(err))

	noMoves := base
	noMoves.Moves = nil
	_, err = creature.New(noMoves)
	assert.Equal(t, simerr.CodeInvalidArgument, simerr.GetCode(err))

	tooManyMoves := base
	tooManyMoves.Moves = []move.Move{tackle(), tackle(), tackle(), tackle(), tackle()}
	_, err = creature.New(tooManyMoves)
	assert.Equal(t, simerr.CodeInvalidArgument, simerr.GetCode(err))

	badIVs := base
	badIVs.IVs = &stats.IVs{Attack: 40}
	_, err = creature.New(badIVs)
	assert.Equal(t, simerr.CodeInvalidArgument, simerr.GetCode(err))

	overEVs := base
	overEVs.EVs = stats.EVs{HP: 252, Attack: 252, Speed: 252}
	overEVs.CapEVTotal = true
	_, err = creature.New(overEVs)
	assert.Equal(t, simerr.CodeInvalidArgument, simerr.GetCode(err))
}

func TestTakeDamage_Saturates(t *testing.T) {
	c := newWaterCreature(t)

	hit := c.TakeDamage(40)
	assert.Equal(t, c.MaxHP-40, hit.CurrentHP)
	// The input is unchanged.
	assert.Equal(t, c.MaxHP, c.CurrentHP)

	dead := hit.TakeDamage(9999)
	assert.Equal(t, 0, dead.CurrentHP)
	assert.False(t, dead.IsAlive())
}

func TestHeal_CapsAtMax(t *testing.T) {
	c := newWaterCreature(t).TakeDamage(60)

	healed := c.Heal(20)
	assert.Equal(t, c.CurrentHP+20, healed.CurrentHP)

	full := c.Heal(9999)
	assert.Equal(t, full.MaxHP, full.CurrentHP)
}

func TestApplyStatusEvent(t *testing.T) {
	c := newWaterCreature(t)

	c = c.ApplyStatusEvent(battleevent.StageUp{Stat: stats.KindAttack, Step: 2})
	assert.Equal(t, stats.Stage(2), c.Stages.Attack)

	c = c.ApplyStatusEvent(battleevent.StageUp{Stat: stats.KindAttack, Step: 6})
	assert.Equal(t, stats.Stage(6), c.Stages.Attack)

	c = c.ApplyStatusEvent(battleevent.StageDown{Stat: stats.KindSpeed, Step: 8})
	assert.Equal(t, stats.Stage(-6), c.Stages.Speed)

	// HP-stage events are no-ops.
	before := c
	c = c.ApplyStatusEvent(battleevent.StageUp{Stat: stats.KindHP, Step: 1})
	assert.Equal(t, before.Stages, c.Stages)
}

func TestApplyTypeEvent(t *testing.T) {
	c := newWaterCreature(t)

	changed := c.ApplyTypeEvent(battleevent.TypeChange{Type: ptype.Ghost})
	assert.Equal(t, []ptype.Type{ptype.Ghost}, changed.EffectiveTypes())
	// Originals are untouched.
	assert.Equal(t, []ptype.Type{ptype.Water}, changed.Types.Originals)

	added := c.ApplyTypeEvent(battleevent.TypeAdd{Type: ptype.Flying})
	assert.Equal(t, []ptype.Type{ptype.Water, ptype.Flying}, added.EffectiveTypes())

	// Adding a type already present does not duplicate it.
	again := added.ApplyTypeEvent(battleevent.TypeAdd{Type: ptype.Flying})
	assert.Equal(t, []ptype.Type{ptype.Water, ptype.Flying}, again.EffectiveTypes())

	removed := added.ApplyTypeEvent(battleevent.TypeRemove{Type: ptype.Water})
	assert.Equal(t, []ptype.Type{ptype.Flying}, removed.EffectiveTypes())

	// Filtering out the last type leaves the None sentinel.
	empty := removed.ApplyTypeEvent(battleevent.TypeRemove{Type: ptype.Flying})
	assert.Equal(t, []ptype.Type{ptype.None}, empty.EffectiveTypes())
}

func TestTerastal_Guards(t *testing.T) {
	c := newWaterCreature(t)

	active := c.ActivateTerastal()
	assert.True(t, active.Types.TerastalActive)

	// Activation is idempotent.
	assert.Equal(t, active, active.ActivateTerastal())

	// Deactivation after inactive is identity.
	assert.Equal(t, c, c.DeactivateTerastal())

	// Once active, type events are ignored.
	unchanged := active.ApplyTypeEvent(battleevent.TypeChange{Type: ptype.Ghost})
	assert.Equal(t, active, unchanged)
}

func TestActivateTerastal_RequiresCrystalType(t *testing.T) {
	c, err := creature.New(creature.Config{
		Name:  "Plain",
		Types: []ptype.Type{ptype.Normal},
		Base:  stats.Base{HP: 50},
		Moves: []move.Move{tackle()},
	})
	require.NoError(t, err)

	assert.Equal(t, c, c.ActivateTerastal())
}

func TestOnReturn(t *testing.T) {
	c := newWaterCreature(t)
	c = c.ApplyStatusEvent(battleevent.StageUp{Stat: stats.KindAttack, Step: 2})
	c = c.ApplyStatusEvent(battleevent.StageDown{Stat: stats.KindSpeed, Step: 1})
	c = c.ApplyTypeEvent(battleevent.TypeChange{Type: ptype.Ghost})
	c = c.ActivateTerastal()

	returned := c.OnReturn()

	assert.True(t, returned.Stages.IsNeutral())
	assert.Empty(t, returned.Types.Temporary)
	// Terastal state persists across the bench.
	assert.True(t, returned.Types.TerastalActive)

	// OnReturn is idempotent.
	assert.Equal(t, returned, returned.OnReturn())
}

func TestOnReturn_ZeroesAnyStageSequence(t *testing.T) {
	c := newWaterCreature(t)
	sequence := []battleevent.StatusEvent{
		battleevent.StageUp{Stat: stats.KindAttack, Step: 3},
		battleevent.StageDown{Stat: stats.KindDefense, Step: 2},
		battleevent.StageUp{Stat: stats.KindSpeed, Step: 1},
		battleevent.StageDown{Stat: stats.KindSpAttack, Step: 6},
	}

	for _, ev := range sequence {
		c = c.ApplyStatusEvent(ev)
	}

	assert.True(t, c.OnReturn().Stages.IsNeutral())
}

func TestDefenseTypes_Terastal(t *testing.T) {
	c := newWaterCreature(t)

	assert.Equal(t, []ptype.Type{ptype.Water}, c.DefenseTypes())

	active := c.ActivateTerastal()
	assert.Equal(t, []ptype.Type{ptype.Steel}, active.DefenseTypes())
}

func TestDefenseTypes_StellarKeepsOriginals(t *testing.T) {
	c, err := creature.New(creature.Config{
		Name:         "Prism",
		Types:        []ptype.Type{ptype.Fire, ptype.Flying},
		TerastalType: ptype.Stellar,
		Base:         stats.Base{HP: 80},
		Moves:        []move.Move{tackle()},
	})
	require.NoError(t, err)

	active := c.ActivateTerastal()
	assert.Equal(t, []ptype.Type{ptype.Fire, ptype.Flying}, active.DefenseTypes())
}

func TestEffectiveness_TarShot(t *testing.T) {
	c, err := creature.New(creature.Config{
		Name:        "Tarred",
		Types:       []ptype.Type{ptype.Grass},
		TarShotType: ptype.Fire,
		Base:        stats.Base{HP: 80},
		Moves:       []move.Move{tackle()},
	})
	require.NoError(t, err)

	// Fire vs Grass is 2.0, doubled by the tag.
	mult, err := c.Effectiveness(ptype.Fire)
	require.NoError(t, err)
	assert.Equal(t, 4.0, mult)

	// Non-matching attacks are unaffected.
	mult, err = c.Effectiveness(ptype.Water)
	require.NoError(t, err)
	assert.Equal(t, 0.5, mult)
}

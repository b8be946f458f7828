// Package creature provides the immutable combat-ready unit. Every
// state-transforming operation returns a new value; the input is
// observable as unchanged afterward.
package creature

import (
	"github.com/google/uuid"

	"github.com/sasakirione/pokesim/core"
	"github.com/sasakirione/pokesim/item"
	"github.com/sasakirione/pokesim/move"
	"github.com/sasakirione/pokesim/nature"
	"github.com/sasakirione/pokesim/ptype"
	"github.com/sasakirione/pokesim/simerr"
	"github.com/sasakirione/pokesim/stats"
)

// Level bounds.
const (
	LevelMin = 1
	LevelMax = 100
)

// Move list bounds.
const (
	MovesMin = 1
	MovesMax = 4
)

// TypeState is a creature's immutable type bundle: species types, an
// optional temporary override, the terastal state, and the special
// damage-tag type.
type TypeState struct {
	// Originals are the species types.
	Originals []ptype.Type
	// Temporary overrides the originals while non-empty.
	Temporary []ptype.Type
	// Terastal is the crystal type; None when the creature has none.
	Terastal ptype.Type
	// TerastalActive marks an activated terastal transformation.
	TerastalActive bool
	// TarShot is the damage-tag type; a matching incoming attack type
	// doubles the combined effectiveness. None when unset.
	TarShot ptype.Type
}

// Creature is the combat-ready unit.
type Creature struct {
	id   string
	Name string

	Level  int
	Types  TypeState
	Base   stats.Base
	IVs    stats.IVs
	EVs    stats.EVs
	Nature nature.Nature
	Stages stats.Stages

	MaxHP     int
	CurrentHP int

	Moves   []move.Move
	Item    item.Effect
	Ability item.Effect
}

// Compile-time check that Creature implements core.Entity.
var _ core.Entity = Creature{}

// Config holds everything needed to build a creature.
type Config struct {
	Name         string
	Level        int // defaults to stats.DefaultLevel
	Types        []ptype.Type
	TerastalType ptype.Type
	TarShotType  ptype.Type
	Base         stats.Base
	IVs          *stats.IVs // defaults to PerfectIVs
	EVs          stats.EVs
	CapEVTotal   bool // "normal" mode: effort total capped at 510
	Nature       nature.Nature
	Moves        []move.Move
	Item         item.Effect
	Ability      item.Effect
}

// New builds a creature from configuration at full HP.
func New(cfg Config) (Creature, error) {
	if cfg.Name == "" {
		return Creature{}, simerr.New(simerr.CodeInvalidArgument, "creature: name is required")
	}

	level := cfg.Level
	if level == 0 {
		level = stats.DefaultLevel
	}
	if level < LevelMin || level > LevelMax {
		return Creature{}, simerr.Newf(simerr.CodeInvalidArgument,
			"creature: level %d outside [%d,%d]", level, LevelMin, LevelMax)
	}

	if len(cfg.Types) == 0 {
		return Creature{}, simerr.Newf(simerr.CodeInvalidArgument,
			"creature: %s needs at least one type", cfg.Name)
	}

	if len(cfg.Moves) < MovesMin || len(cfg.Moves) > MovesMax {
		return Creature{}, simerr.Newf(simerr.CodeInvalidArgument,
			"creature: %s needs %d to %d moves, got %d", cfg.Name, MovesMin, MovesMax, len(cfg.Moves))
	}

	ivs := stats.PerfectIVs()
	if cfg.IVs != nil {
		ivs = *cfg.IVs
	}
	if err := ivs.Validate(); err != nil {
		return Creature{}, simerr.Wrapf(err, "creature: %s", cfg.Name)
	}
	if err := cfg.EVs.Validate(cfg.CapEVTotal); err != nil {
		return Creature{}, simerr.Wrapf(err, "creature: %s", cfg.Name)
	}

	held := cfg.Item
	if held == nil {
		held = item.None
	}
	ability := cfg.Ability
	if ability == nil {
		ability = item.None
	}

	maxHP := stats.HP(cfg.Base.HP, ivs.HP, cfg.EVs.HP, level)

	c := Creature{
		id:   uuid.NewString(),
		Name: cfg.Name,
		Types: TypeState{
			Originals: append([]ptype.Type(nil), cfg.Types...),
			Terastal:  cfg.TerastalType,
			TarShot:   cfg.TarShotType,
		},
		Level:     level,
		Base:      cfg.Base,
		IVs:       ivs,
		EVs:       cfg.EVs,
		Nature:    cfg.Nature,
		MaxHP:     maxHP,
		CurrentHP: maxHP,
		Moves:     append([]move.Move(nil), cfg.Moves...),
		Item:      held,
		Ability:   ability,
	}
	return c, nil
}

// GetID implements core.Entity. The ID is stable across the new records
// a battle produces from this creature.
func (c Creature) GetID() string { return c.id }

// GetType implements core.Entity.
func (c Creature) GetType() string { return core.EntityTypeCreature }

// IsAlive reports whether the creature can still fight.
func (c Creature) IsAlive() bool { return c.CurrentHP > 0 }

// TakeDamage returns a creature with d subtracted from its current HP,
// saturating at zero.
func (c Creature) TakeDamage(d int) Creature {
	out := c
	if d >= out.CurrentHP {
		out.CurrentHP = 0
	} else {
		out.CurrentHP -= d
	}
	return out
}

// Heal returns a creature with h added to its current HP, capped at max.
func (c Creature) Heal(h int) Creature {
	out := c
	out.CurrentHP += h
	if out.CurrentHP > out.MaxHP {
		out.CurrentHP = out.MaxHP
	}
	return out
}

// OnReturn produces the bench state: temporary types cleared and all
// stages zeroed. Terastal state persists.
func (c Creature) OnReturn() Creature {
	out := c
	out.Types.Temporary = nil
	out.Stages = stats.Stages{}
	return out
}

// OnTurnStart runs the item and ability turn-start hooks.
func (c Creature) OnTurnStart() {
	c.Item.OnTurnStart()
	c.Ability.OnTurnStart()
}

// OnTurnEnd runs the item and ability turn-end hooks.
func (c Creature) OnTurnEnd() {
	c.Item.OnTurnEnd()
	c.Ability.OnTurnEnd()
}

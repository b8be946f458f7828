package item

import (
	"github.com/sasakirione/pokesim/battleevent"
	"github.com/sasakirione/pokesim/ptype"
	"github.com/sasakirione/pokesim/stats"
)

// StatBoost raises one stat by a percentage, the way Choice items and
// speed-doubling abilities do.
type StatBoost struct {
	Base

	// EffectName is the display name of the item or ability.
	EffectName string

	// Stat is the stat the boost applies to.
	Stat stats.Kind

	// Percent is the boost in percent; 50 means a 1.5x stat.
	Percent int
}

// NewStatBoost creates a stat-boosting effect.
func NewStatBoost(name string, kind stats.Kind, percent int) StatBoost {
	return StatBoost{EffectName: name, Stat: kind, Percent: percent}
}

// Name returns the effect's display name.
func (s StatBoost) Name() string { return s.EffectName }

// ModifyStat scales the matching stat by (100+Percent)/100 in integer
// arithmetic; other stats pass through.
func (s StatBoost) ModifyStat(kind stats.Kind, value int) int {
	if kind != s.Stat {
		return value
	}
	return value * (100 + s.Percent) / 100
}

// TypeBoost raises the attack index of moves of one type by a percentage,
// the way type-enhancing held items do.
type TypeBoost struct {
	Base

	// EffectName is the display name of the item or ability.
	EffectName string

	// MoveType is the move type the boost applies to.
	MoveType ptype.Type

	// Percent is the boost in percent; 20 means a 1.2x attack index.
	Percent int
}

// NewTypeBoost creates a type-boosting effect.
func NewTypeBoost(name string, moveType ptype.Type, percent int) TypeBoost {
	return TypeBoost{EffectName: name, MoveType: moveType, Percent: percent}
}

// Name returns the effect's display name.
func (t TypeBoost) Name() string { return t.EffectName }

// ModifyOutgoingDamage scales the attack index of matching-type moves by
// (100+Percent)/100; other moves pass through.
func (t TypeBoost) ModifyOutgoingDamage(in battleevent.DamageInput) battleevent.DamageInput {
	if in.MoveType != t.MoveType {
		return in
	}

	out := in
	out.AttackIndex = in.AttackIndex * (100 + t.Percent) / 100
	return out
}

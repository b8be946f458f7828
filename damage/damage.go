// Package damage provides the damage pipeline: the full formula for a
// damaging move, the defender-side resolution from a precomputed attack
// index, STAB, and the engine's rounding rule.
package damage

import (
	"math"

	"github.com/sasakirione/pokesim/move"
)

// RoundHalfDown rounds to the nearest integer, with exact .5 fractions
// rounding down. This is the engine's fixed tie-break policy everywhere a
// fractional damage value becomes an integer.
func RoundHalfDown(x float64) int {
	return int(math.Ceil(x - 0.5))
}

// CritMultiplier returns the critical-hit damage multiplier for the given
// generation: 1.5 from generation 6 on, 2.0 before.
func CritMultiplier(generation int) float64 {
	if generation >= 1 && generation <= 5 {
		return 2.0
	}
	return 1.5
}

// Input feeds the full damage formula for one damaging move.
type Input struct {
	// Level is the attacker's level.
	Level int
	// Power is the move's base power.
	Power int
	// Category is the move's category; Status moves never deal damage.
	Category move.Category
	// Attack is the attacker's effective attacking stat.
	Attack int
	// Defense is the defender's effective defending stat.
	Defense int
	// STAB is the same-type attack bonus multiplier.
	STAB float64
	// Effectiveness is the combined type-chart multiplier.
	Effectiveness float64
	// RandomFactor is the random factor in [85,100].
	RandomFactor int
	// Modifier is the combined item and ability multiplier; zero means 1.0.
	Modifier float64
	// Critical marks a critical hit.
	Critical bool
	// Generation selects the critical-hit multiplier.
	Generation int
}

// Calculate runs the full damage formula:
//
//	base = ((2*level/5 + 2) * power * attack / defense) / 50 + 2
//
// multiplied by STAB, effectiveness, the random factor over 100, the
// modifier, and the critical multiplier, rounded half-down and clamped to
// at least 1. Status moves, zero-power moves and zero effectiveness all
// deal 0.
func Calculate(in Input) int {
	if in.Category == move.Status || in.Power == 0 || in.Effectiveness == 0 {
		return 0
	}

	base := float64(2*in.Level/5+2)*float64(in.Power)*float64(in.Attack)/float64(in.Defense)/50 + 2

	return finish(base, in.STAB, in.Effectiveness, in.RandomFactor, in.Modifier, in.Critical, in.Generation)
}

// ResolveInput feeds the defender-side resolution of a damaging move whose
// attack index was already computed on the attacker's side. The attack
// index folds in level, power, attacking stat, STAB and the attacker's
// outgoing modifiers.
type ResolveInput struct {
	// AttackIndex is the attacker-side numerator.
	AttackIndex int
	// Defense is the defender's effective defending stat.
	Defense int
	// Effectiveness is the combined type-chart multiplier.
	Effectiveness float64
	// RandomFactor is the random factor in [85,100].
	RandomFactor int
	// Modifier is the combined incoming item and ability multiplier;
	// zero means 1.0.
	Modifier float64
	// Critical marks a critical hit.
	Critical bool
	// Generation selects the critical-hit multiplier.
	Generation int
}

// Resolve finishes the damage formula from an attack index:
//
//	base = attack_index / defense / 50 + 2
//
// multiplied by effectiveness, the random factor over 100, the modifier,
// and the critical multiplier, rounded half-down and clamped to at least 1.
// Zero effectiveness or a zero attack index deal 0.
func Resolve(in ResolveInput) int {
	if in.AttackIndex == 0 || in.Effectiveness == 0 {
		return 0
	}

	base := float64(in.AttackIndex)/float64(in.Defense)/50 + 2

	return finish(base, 1.0, in.Effectiveness, in.RandomFactor, in.Modifier, in.Critical, in.Generation)
}

func finish(base, stab, effectiveness float64, randomFactor int, modifier float64, critical bool, generation int) int {
	if stab == 0 {
		stab = 1.0
	}
	if modifier == 0 {
		modifier = 1.0
	}

	total := base * stab * effectiveness * float64(randomFactor) / 100 * modifier
	if critical {
		total *= CritMultiplier(generation)
	}

	result := RoundHalfDown(total)
	if result < 1 {
		return 1
	}
	return result
}

package priority

import (
	"github.com/sasakirione/pokesim/move"
)

// EffectKind enumerates the special timing effects that can replace an
// actor's priority for the turn.
type EffectKind int

// The special timing effects.
const (
	// GoFirst ("Osakini Douzo") makes the target act first.
	GoFirst EffectKind = iota
	// GoLast ("Saki Okuri") makes the target act last.
	GoLast
	// Encore replays the originally selected move's priority.
	Encore
	// TrapShell pins the priority to the charge-up value.
	TrapShell
	// Round acts first among everything but GoFirst.
	Round
	// Instruct preserves the base priority.
	Instruct
)

// SpecialEffect is one active timing effect, targeting an actor by
// creature name. Effects are applied in list order; each replaces the
// priority outright.
type SpecialEffect struct {
	Kind   EffectKind
	Target string

	// OriginalPriority is the priority of the originally selected move;
	// only Encore reads it.
	OriginalPriority int
}

// apply replaces the current priority per the effect's semantics.
func (s SpecialEffect) apply(current int) int {
	switch s.Kind {
	case GoFirst:
		return AlwaysFirst
	case GoLast:
		return AlwaysLast
	case Encore:
		return s.OriginalPriority
	case TrapShell:
		return chargeUpPriority
	case Round:
		return AlwaysFirstButOne
	case Instruct:
		return current
	default:
		return current
	}
}

// chargeUpPriority is the fixed priority of moves that spend the turn
// charging before striking.
const chargeUpPriority = -3

// fixedPriorityMoves pins named moves to a priority regardless of their
// declared value.
var fixedPriorityMoves = map[string]int{
	"Focus Punch": chargeUpPriority,
	"Beak Blast":  chargeUpPriority,
	"Trap Shell":  chargeUpPriority,
}

// FixedPriority returns the pinned priority for moves whose canonical
// name mandates one.
func FixedPriority(name string) (int, bool) {
	p, ok := fixedPriorityMoves[name]
	return p, ok
}

// CalledMovePriority resolves the priority when one move calls another,
// the way Metronome-like movers do: the caller's priority wins, never the
// callee's.
func CalledMovePriority(caller, callee move.Move) int {
	_ = callee
	return caller.Priority
}

// FleePriority returns the priority of a wild-battle flee attempt.
// Generation 2 used the selected move's priority; every other generation
// pins fleeing below all moves.
func FleePriority(generation int, selected move.Move) int {
	if generation == 2 {
		return selected.Priority
	}
	return -7
}

// SpeedSource says which speed snapshot orders a mega-evolving actor.
type SpeedSource int

// Mega-evolution speed snapshots.
const (
	// PreMega orders by the speed before mega-evolving.
	PreMega SpeedSource = iota
	// PostMega orders by the speed after mega-evolving.
	PostMega
)

// MegaSpeedSource returns the snapshot the given generation orders
// mega-evolving actors by. No catalog move currently triggers a mega
// evolution; the seam is kept for rule completeness.
func MegaSpeedSource(generation int) SpeedSource {
	if generation == 6 {
		return PreMega
	}
	return PostMega
}

package damage

import (
	"github.com/sasakirione/pokesim/ptype"
)

// STABInput bundles the attacker's type state for the STAB decision.
type STABInput struct {
	// OriginalTypes are the attacker's species types.
	OriginalTypes []ptype.Type
	// EffectiveTypes are the attacker's current types, including any
	// temporary overrides.
	EffectiveTypes []ptype.Type
	// TerastalActive marks an active terastal transformation.
	TerastalActive bool
	// TerastalType is the attacker's crystal type.
	TerastalType ptype.Type
	// MoveType is the type of the move being used.
	MoveType ptype.Type
}

// STAB returns the same-type attack bonus multiplier: 2.0 when the active
// terastal type matches both the move and an original type, 1.5 for a
// plain terastal or ordinary type match, 1.0 otherwise. Normal-type moves
// never receive STAB in this engine.
func STAB(in STABInput) float64 {
	if in.MoveType == ptype.Normal {
		return 1.0
	}

	if in.TerastalActive && in.MoveType == in.TerastalType {
		if ptype.Contains(in.OriginalTypes, in.MoveType) {
			return 2.0
		}
		return 1.5
	}

	if ptype.Contains(in.EffectiveTypes, in.MoveType) {
		return 1.5
	}

	return 1.0
}

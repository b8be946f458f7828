// Package item provides the shared capability set for held items and
// abilities. Both plug the same hooks into the damage and stat pipelines;
// the engine never distinguishes them beyond the slot they occupy.
package item

import (
	"github.com/sasakirione/pokesim/battleevent"
	"github.com/sasakirione/pokesim/stats"
)

// Effect is the capability set a held item or an ability exposes.
// Every method defaults to identity; concrete effects override the hooks
// they care about by embedding Base.
type Effect interface {
	// Name returns the effect's display name.
	Name() string

	// ModifyOutgoingDamage transforms the attack index on the attacker's
	// side before the defender resolves damage.
	ModifyOutgoingDamage(in battleevent.DamageInput) battleevent.DamageInput

	// ModifyIncomingDamage transforms the attack index on the defender's
	// side before the damage formula runs.
	ModifyIncomingDamage(in battleevent.DamageInput) battleevent.DamageInput

	// AfterDamage transforms the damage result after it is computed.
	AfterDamage(result battleevent.DamageResult) battleevent.DamageResult

	// OnTurnStart runs at the start of each turn.
	OnTurnStart()

	// OnTurnEnd runs at the end of each turn.
	OnTurnEnd()

	// ModifyStat transforms a stat value after its stage has been applied.
	ModifyStat(kind stats.Kind, value int) int
}

// Compile-time check that the provided effects satisfy Effect.
var (
	_ Effect = Base{}
	_ Effect = StatBoost{}
	_ Effect = TypeBoost{}
)

// Base is the identity implementation of Effect. Domain effects embed it
// and override only the hooks they need.
type Base struct{}

// Name returns the empty name.
func (Base) Name() string { return "" }

// ModifyOutgoingDamage returns the input unchanged.
func (Base) ModifyOutgoingDamage(in battleevent.DamageInput) battleevent.DamageInput { return in }

// ModifyIncomingDamage returns the input unchanged.
func (Base) ModifyIncomingDamage(in battleevent.DamageInput) battleevent.DamageInput { return in }

// AfterDamage returns the result unchanged.
func (Base) AfterDamage(result battleevent.DamageResult) battleevent.DamageResult { return result }

// OnTurnStart does nothing.
func (Base) OnTurnStart() {}

// OnTurnEnd does nothing.
func (Base) OnTurnEnd() {}

// ModifyStat returns the value unchanged.
func (Base) ModifyStat(_ stats.Kind, value int) int { return value }

// None is the sentinel effect for an empty item or ability slot.
var None Effect = Base{}

// Package battleevent provides the closed event families the engine
// exchanges between parties, creatures and the turn state machine. Each
// family is a sealed interface: the variants in this package are the only
// implementations, and consumers switch over them exhaustively.
package battleevent

import (
	"github.com/sasakirione/pokesim/field"
	"github.com/sasakirione/pokesim/move"
	"github.com/sasakirione/pokesim/ptype"
	"github.com/sasakirione/pokesim/stats"
)

// UserEvent is a raw per-turn input from a party's input provider.
type UserEvent interface {
	isUserEvent()
}

// SelectMove selects the move at the given index of the active creature's
// move list.
type SelectMove struct {
	Index int
}

// SwitchTo requests a switch to the bench slot at the given index.
type SwitchTo struct {
	Index int
}

// GiveUp forfeits the battle.
type GiveUp struct{}

func (SelectMove) isUserEvent() {}
func (SwitchTo) isUserEvent()   {}
func (GiveUp) isUserEvent()     {}

// ActionEvent is a user event resolved against the acting creature.
type ActionEvent interface {
	isActionEvent()
}

// MoveDamage is a damaging move with its precomputed attack index, the
// attacker-side numerator of the damage formula.
type MoveDamage struct {
	Move        move.Move
	AttackIndex int
}

// MoveStatus is a non-damaging move.
type MoveStatus struct {
	Move move.Move
}

// SwitchAction replaces the active creature with the bench slot at the
// given index.
type SwitchAction struct {
	Index int
}

func (MoveDamage) isActionEvent()   {}
func (MoveStatus) isActionEvent()   {}
func (SwitchAction) isActionEvent() {}

// Event is the union of the in-battle side effects a move or hook can
// produce: stage changes, type changes and weather changes.
type Event interface {
	isEvent()
}

// StatusEvent changes a stat stage.
type StatusEvent interface {
	Event
	isStatusEvent()
}

// StageUp raises the given stat's stage by step.
type StageUp struct {
	Stat stats.Kind
	Step int
}

// StageDown lowers the given stat's stage by step.
type StageDown struct {
	Stat stats.Kind
	Step int
}

func (StageUp) isEvent()         {}
func (StageUp) isStatusEvent()   {}
func (StageDown) isEvent()       {}
func (StageDown) isStatusEvent() {}

// TypeEvent changes a creature's temporary types.
type TypeEvent interface {
	Event
	isTypeEvent()
}

// TypeChange replaces the temporary types with exactly the given type.
type TypeChange struct {
	Type ptype.Type
}

// TypeAdd unions the given type into the temporary types.
type TypeAdd struct {
	Type ptype.Type
}

// TypeRemove filters the given type out of the temporary types.
type TypeRemove struct {
	Type ptype.Type
}

func (TypeChange) isEvent()     {}
func (TypeChange) isTypeEvent() {}
func (TypeAdd) isEvent()        {}
func (TypeAdd) isTypeEvent()    {}
func (TypeRemove) isEvent()     {}
func (TypeRemove) isTypeEvent() {}

// FieldEvent changes the shared field state.
type FieldEvent interface {
	Event
	isFieldEvent()
}

// ChangeWeather sets the field's weather.
type ChangeWeather struct {
	Weather field.Weather
}

func (ChangeWeather) isEvent()      {}
func (ChangeWeather) isFieldEvent() {}

// DamageResult is the defender's answer to a damaging move: whether it
// survived, the damage dealt, and any events the attacker's side must
// apply afterwards.
type DamageResult interface {
	isDamageResult()

	// AfterEvents returns the events to apply to the attacker's party.
	AfterEvents() []Event

	// Dealt returns the damage dealt.
	Dealt() int
}

// Alive means the defender survived the hit.
type Alive struct {
	Events []Event
	Damage int
}

// Dead means the defender fainted.
type Dead struct {
	Events []Event
	Damage int
}

func (Alive) isDamageResult() {}
func (Dead) isDamageResult()  {}

// AfterEvents returns the events to apply to the attacker's party.
func (a Alive) AfterEvents() []Event { return a.Events }

// Dealt returns the damage dealt.
func (a Alive) Dealt() int { return a.Damage }

// AfterEvents returns the events to apply to the attacker's party.
func (d Dead) AfterEvents() []Event { return d.Events }

// Dealt returns the damage dealt.
func (d Dead) Dealt() int { return d.Damage }

// DamageInput is the damage-pipeline payload item and ability hooks
// transform: the move's identity plus the attack index in flight.
type DamageInput struct {
	MoveName    string
	MoveType    ptype.Type
	Category    move.Category
	AttackIndex int
}

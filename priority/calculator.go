// Package priority orders the declared actions of a turn by effective
// priority, with generation-dependent rules and special-effect overrides.
package priority

import (
	"math"
	"sort"

	"github.com/sasakirione/pokesim/battleevent"
)

// SwitchPriority is the effective priority of a switch action.
const SwitchPriority = 6

// Sentinel priorities used by special effects.
const (
	// AlwaysFirst beats every ordinary priority.
	AlwaysFirst = math.MaxInt32
	// AlwaysFirstButOne loses only to AlwaysFirst.
	AlwaysFirstButOne = math.MaxInt32 - 1
	// AlwaysLast loses to every ordinary priority.
	AlwaysLast = math.MinInt32
)

// Entry is one party's declared action for the turn, with the acting
// creature's name and final speed for tie-breaking.
type Entry struct {
	// PartyIndex identifies the declaring party.
	PartyIndex int
	// ActorName is the acting creature's display name.
	ActorName string
	// Action is the resolved action event.
	Action battleevent.ActionEvent
	// Speed is the actor's final speed.
	Speed int
}

// Context carries the per-turn state the calculator consults.
type Context struct {
	// Generation selects which rule set applies. Zero means the newest
	// generation.
	Generation int

	// TurnStartPriorities overrides move priorities by name with their
	// value at turn start; consulted for generations up to 7.
	TurnStartPriorities map[string]int

	// CurrentPriorities overrides move priorities by name with their
	// current value; consulted from generation 8 on.
	CurrentPriorities map[string]int

	// SpecialEffects are applied in order; each may replace an actor's
	// priority outright.
	SpecialEffects []SpecialEffect
}

// Calculator orders actions.
type Calculator struct {
	ctx Context
}

// NewCalculator creates a calculator for one turn's context.
func NewCalculator(ctx Context) *Calculator {
	return &Calculator{ctx: ctx}
}

// EffectivePriority computes the entry's priority: the base priority of
// its action, then every matching special effect applied in order.
func (c *Calculator) EffectivePriority(e Entry) int {
	p := c.basePriority(e.Action)

	for _, effect := range c.ctx.SpecialEffects {
		if effect.Target == e.ActorName {
			p = effect.apply(p)
		}
	}
	return p
}

// basePriority resolves the action's priority before special effects.
// A move that will fail this turn still keeps its declared priority, so
// first-turn-only moves order normally on the turns they fizzle.
func (c *Calculator) basePriority(action battleevent.ActionEvent) int {
	switch a := action.(type) {
	case battleevent.SwitchAction:
		return SwitchPriority
	case battleevent.MoveDamage:
		return c.movePriority(a.Move.Name, a.Move.Priority)
	case battleevent.MoveStatus:
		return c.movePriority(a.Move.Name, a.Move.Priority)
	default:
		return 0
	}
}

// movePriority applies the fixed-priority move table and the
// generation-dependent override maps.
func (c *Calculator) movePriority(name string, declared int) int {
	if p, ok := FixedPriority(name); ok {
		return p
	}

	if c.ctx.Generation >= 1 && c.ctx.Generation <= 7 {
		if p, ok := c.ctx.TurnStartPriorities[name]; ok {
			return p
		}
		return declared
	}

	if p, ok := c.ctx.CurrentPriorities[name]; ok {
		return p
	}
	return declared
}

// Order returns the entries in execution order: descending effective
// priority, ties broken by higher speed, remaining ties in input order.
func (c *Calculator) Order(entries []Entry) []Entry {
	ordered := make([]Entry, len(entries))
	copy(ordered, entries)

	sort.SliceStable(ordered, func(i, j int) bool {
		pi, pj := c.EffectivePriority(ordered[i]), c.EffectivePriority(ordered[j])
		if pi != pj {
			return pi > pj
		}
		return ordered[i].Speed > ordered[j].Speed
	})

	return ordered
}

// Package party provides a side of the battle: an ordered bench of
// creatures, the active slot, and the input seam the turn machine awaits
// user events on.
package party

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sasakirione/pokesim/battleevent"
	"github.com/sasakirione/pokesim/core"
	"github.com/sasakirione/pokesim/creature"
	"github.com/sasakirione/pokesim/logging"
	"github.com/sasakirione/pokesim/simerr"
)

// InputProvider yields one user event per turn. The turn machine awaits
// it at the start of every turn; tests bind scripted providers.
type InputProvider func(ctx context.Context) (battleevent.UserEvent, error)

// Party is one side of a battle.
type Party struct {
	id    string
	owner string

	creatures []creature.Creature
	active    int

	input InputProvider
	log   logging.Logger
}

// Compile-time check that Party implements core.Entity.
var _ core.Entity = (*Party)(nil)

// Config holds everything needed to build a party.
type Config struct {
	// Owner labels the party in logs.
	Owner string
	// Creatures is the ordered non-empty bench; slot 0 starts active.
	Creatures []creature.Creature
	// Input is the party's user-event provider.
	Input InputProvider
	// Logger receives the party's log lines; nil discards them.
	Logger logging.Logger
}

// New builds a party from configuration.
func New(cfg Config) (*Party, error) {
	if cfg.Owner == "" {
		return nil, simerr.New(simerr.CodeInvalidArgument, "party: owner is required")
	}
	if len(cfg.Creatures) == 0 {
		return nil, simerr.Newf(simerr.CodeInvalidArgument, "party: %s needs at least one creature", cfg.Owner)
	}
	if cfg.Input == nil {
		return nil, simerr.Newf(simerr.CodeInvalidArgument, "party: %s needs an input provider", cfg.Owner)
	}

	log := cfg.Logger
	if log == nil {
		log = logging.Noop{}
	}

	return &Party{
		id:        uuid.NewString(),
		owner:     cfg.Owner,
		creatures: append([]creature.Creature(nil), cfg.Creatures...),
		input:     cfg.Input,
		log:       log,
	}, nil
}

// GetID implements core.Entity.
func (p *Party) GetID() string { return p.id }

// GetType implements core.Entity.
func (p *Party) GetType() string { return core.EntityTypeParty }

// Owner returns the party's label.
func (p *Party) Owner() string { return p.owner }

// Active returns the active creature's current state.
func (p *Party) Active() creature.Creature { return p.creatures[p.active] }

// ActiveIndex returns the active slot.
func (p *Party) ActiveIndex() int { return p.active }

// Creatures returns a copy of the bench in order.
func (p *Party) Creatures() []creature.Creature {
	out := make([]creature.Creature, len(p.creatures))
	copy(out, p.creatures)
	return out
}

// SetActive writes a new state for the active creature, the way the
// damage pipeline hands back the defender after a hit.
func (p *Party) SetActive(c creature.Creature) {
	p.creatures[p.active] = c
}

// GetAction awaits the party's input provider for this turn's user event.
func (p *Party) GetAction(ctx context.Context) (battleevent.UserEvent, error) {
	return p.input(ctx)
}

// ActionFor converts a user event into an action event against the
// active creature.
func (p *Party) ActionFor(ev battleevent.UserEvent) (battleevent.ActionEvent, error) {
	return p.Active().ActionOf(ev)
}

// ApplyEvents applies status and type events to the active creature.
// Field events are outside the party's reach and returned to the caller.
func (p *Party) ApplyEvents(events []battleevent.Event) []battleevent.FieldEvent {
	var fieldEvents []battleevent.FieldEvent

	active := p.Active()
	for _, ev := range events {
		switch e := ev.(type) {
		case battleevent.StatusEvent:
			active = active.ApplyStatusEvent(e)
		case battleevent.TypeEvent:
			active = active.ApplyTypeEvent(e)
		case battleevent.FieldEvent:
			fieldEvents = append(fieldEvents, e)
		}
	}
	p.SetActive(active)

	return fieldEvents
}

// HandleSwitch validates and performs a voluntary switch. An invalid
// target is logged and ignored, leaving the turn a no-op for this party.
func (p *Party) HandleSwitch(action battleevent.SwitchAction) {
	if err := p.validateSwitch(action.Index); err != nil {
		p.log.Log(fmt.Sprintf("%s: %v", p.owner, err))
		return
	}

	p.SetActive(p.Active().OnReturn())
	p.active = action.Index
	p.log.Log(fmt.Sprintf("%s sent out %s!", p.owner, p.Active().Name))
}

// validateSwitch checks the target slot is in bounds, different from the
// active slot, and holds a living creature.
func (p *Party) validateSwitch(index int) error {
	if index < 0 || index >= len(p.creatures) {
		return simerr.Newf(simerr.CodeInputInvalid,
			"switch target %d out of range", index,
		)
	}
	if index == p.active {
		return simerr.Newf(simerr.CodeInputInvalid,
			"switch target %d is already active", index,
		)
	}
	if !p.creatures[index].IsAlive() {
		return simerr.Newf(simerr.CodeInputInvalid,
			"switch target %s has fainted", p.creatures[index].Name,
		)
	}
	return nil
}

// SwitchToNextAlive scans forward from the slot after the active one for
// a living creature, with no wraparound. It reports whether a replacement
// was found.
func (p *Party) SwitchToNextAlive() bool {
	for i := p.active + 1; i < len(p.creatures); i++ {
		if p.creatures[i].IsAlive() {
			p.active = i
			p.log.Log(fmt.Sprintf("%s sent out %s!", p.owner, p.Active().Name))
			return true
		}
	}
	return false
}

// IsTeamDefeated reports whether no creature is alive.
func (p *Party) IsTeamDefeated() bool {
	for _, c := range p.creatures {
		if c.IsAlive() {
			return false
		}
	}
	return true
}

// OnTurnStart runs the active creature's turn-start hooks.
func (p *Party) OnTurnStart() {
	p.Active().OnTurnStart()
}

// OnTurnEnd runs the active creature's turn-end hooks.
func (p *Party) OnTurnEnd() {
	p.Active().OnTurnEnd()
}

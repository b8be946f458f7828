// Package turn provides the turn state machine driving one battle:
// decision, ordering, first action, second action, end of turn.
package turn

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sasakirione/pokesim/battleevent"
	"github.com/sasakirione/pokesim/core"
	"github.com/sasakirione/pokesim/field"
	"github.com/sasakirione/pokesim/logging"
	"github.com/sasakirione/pokesim/party"
	"github.com/sasakirione/pokesim/priority"
	"github.com/sasakirione/pokesim/random"
	"github.com/sasakirione/pokesim/simerr"
)

// State identifies where in the turn the machine is.
type State int

// The turn states.
const (
	StateTurnStart State = iota
	StateTurnStep1
	StateFirstMove
	StateSecondMove
	StateSecondMoveSkip
	StateTurnEnd
)

// noWinner marks a battle still in progress.
const noWinner = -1

// Battle owns two parties and one field and drives turns until one side
// has no combat-capable creature left.
type Battle struct {
	id string

	parties [2]*party.Party
	field   field.Field

	generation int
	random     random.Source
	calcCtx    priority.Context
	log        logging.Logger

	state  State
	turn   int
	winner int
}

// Compile-time check that Battle implements core.Entity.
var _ core.Entity = (*Battle)(nil)

// Config holds everything needed to start a battle.
type Config struct {
	// PartyA and PartyB are the two sides, in registration order.
	PartyA *party.Party
	PartyB *party.Party

	// Generation selects the rule set; zero means the newest.
	Generation int

	// Random supplies the damage random factor; nil uses crypto/rand.
	Random random.Source

	// Priority carries the turn-order override maps and special effects.
	Priority priority.Context

	// Logger receives the battle log; nil discards it.
	Logger logging.Logger
}

// NewBattle creates a battle from configuration.
func NewBattle(cfg Config) (*Battle, error) {
	if cfg.PartyA == nil || cfg.PartyB == nil {
		return nil, simerr.New(simerr.CodeInvalidArgument, "turn: a battle needs two parties")
	}

	src := cfg.Random
	if src == nil {
		src = random.DefaultSource
	}

	log := cfg.Logger
	if log == nil {
		log = logging.Noop{}
	}

	calcCtx := cfg.Priority
	if calcCtx.Generation == 0 {
		calcCtx.Generation = cfg.Generation
	}

	return &Battle{
		id:         uuid.NewString(),
		parties:    [2]*party.Party{cfg.PartyA, cfg.PartyB},
		field:      field.New(),
		generation: cfg.Generation,
		random:     src,
		calcCtx:    calcCtx,
		log:        log,
		winner:     noWinner,
	}, nil
}

// GetID implements core.Entity.
func (b *Battle) GetID() string { return b.id }

// GetType implements core.Entity.
func (b *Battle) GetType() string { return core.EntityTypeBattle }

// Turn returns the number of the turn currently running, starting at 1.
func (b *Battle) Turn() int { return b.turn }

// State returns the machine's current state.
func (b *Battle) State() State { return b.state }

// Field returns the current field state.
func (b *Battle) Field() field.Field { return b.field }

// Winner returns the winning party, or nil while the battle runs.
func (b *Battle) Winner() *party.Party {
	if b.winner == noWinner {
		return nil
	}
	return b.parties[b.winner]
}

// Run drives turns until the battle finishes.
func (b *Battle) Run(ctx context.Context) error {
	for {
		finished, err := b.RunTurn(ctx)
		if err != nil {
			return err
		}
		if finished {
			if w := b.Winner(); w != nil {
				b.log.LogBlankThen(fmt.Sprintf("%s wins!", w.Owner()))
			}
			return nil
		}
	}
}

// RunTurn executes one full turn and reports whether the battle is over.
func (b *Battle) RunTurn(ctx context.Context) (bool, error) {
	b.turn++
	b.state = StateTurnStart
	b.log.LogBlankThen(fmt.Sprintf("Turn %d", b.turn))

	events, gaveUp, err := b.turnStart(ctx)
	if err != nil {
		return false, err
	}
	if gaveUp {
		b.state = StateTurnEnd
		return true, nil
	}

	b.state = StateTurnStep1
	ordered, err := b.turnStep1(events)
	if err != nil {
		return false, err
	}

	finished := false
	for i, entry := range ordered {
		switch i {
		case 0:
			b.state = StateFirstMove
		default:
			if finished {
				b.state = StateSecondMoveSkip
				continue
			}
			b.state = StateSecondMove
		}

		done, err := b.executeAction(entry)
		if err != nil {
			return false, err
		}
		finished = finished || done
	}

	b.state = StateTurnEnd
	b.turnEnd()

	return finished, nil
}

// turnStart awaits one user event per party. A GiveUp short-circuits the
// turn, declaring the other side the winner.
func (b *Battle) turnStart(ctx context.Context) ([2]battleevent.UserEvent, bool, error) {
	var events [2]battleevent.UserEvent

	for i, p := range b.parties {
		ev, err := p.GetAction(ctx)
		if err != nil {
			return events, false, simerr.Wrapf(err, "turn: awaiting %s's action", p.Owner())
		}

		if _, ok := ev.(battleevent.GiveUp); ok {
			other := 1 - i
			b.log.Log(fmt.Sprintf("%s gave up!", p.Owner()))
			b.winner = other
			return events, true, nil
		}
		events[i] = ev
	}

	return events, false, nil
}

// turnStep1 fires the turn-start hooks, converts user events to action
// events, and orders them. Invalid inputs are logged and drop the actor's
// action for the turn; unmapped events are fatal.
func (b *Battle) turnStep1(events [2]battleevent.UserEvent) ([]priority.Entry, error) {
	for _, p := range b.parties {
		p.OnTurnStart()
	}

	entries := make([]priority.Entry, 0, len(b.parties))
	for i, p := range b.parties {
		action, err := p.ActionFor(events[i])
		if err != nil {
			if simerr.IsCode(err, simerr.CodeInputInvalid) {
				b.log.Log(fmt.Sprintf("%s: %v", p.Owner(), err))
				continue
			}
			return nil, err
		}

		entries = append(entries, priority.Entry{
			PartyIndex: i,
			ActorName:  p.Active().Name,
			Action:     action,
			Speed:      p.Active().FinalSpeed(),
		})
	}

	calc := priority.NewCalculator(b.calcCtx)
	return calc.Order(entries), nil
}

// turnEnd fires the end-of-turn hooks in party-registration order, then
// advances the field.
func (b *Battle) turnEnd() {
	for _, p := range b.parties {
		p.OnTurnEnd()
	}
	b.field = b.field.OnTurnEnd()
}

// applyFieldEvents folds field events produced during an action into the
// battle's field state.
func (b *Battle) applyFieldEvents(events []battleevent.FieldEvent) {
	for _, ev := range events {
		if change, ok := ev.(battleevent.ChangeWeather); ok {
			b.field = b.field.WithWeather(change.Weather)
			b.log.Log(fmt.Sprintf("The weather became %s!", change.Weather))
		}
	}
}

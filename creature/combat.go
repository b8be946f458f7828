package creature

import (
	"github.com/sasakirione/pokesim/battleevent"
	"github.com/sasakirione/pokesim/damage"
	"github.com/sasakirione/pokesim/move"
	"github.com/sasakirione/pokesim/random"
	"github.com/sasakirione/pokesim/simerr"
	"github.com/sasakirione/pokesim/stats"
)

// RealStat computes the creature's real value for the given stat, before
// stages, items and abilities.
func (c Creature) RealStat(kind stats.Kind) int {
	switch kind {
	case stats.KindHP:
		return c.MaxHP
	case stats.KindAttack:
		return stats.Stat(c.Base.Attack, c.IVs.Attack, c.EVs.Attack, c.Level, c.Nature.Modifier(kind))
	case stats.KindDefense:
		return stats.Stat(c.Base.Defense, c.IVs.Defense, c.EVs.Defense, c.Level, c.Nature.Modifier(kind))
	case stats.KindSpAttack:
		return stats.Stat(c.Base.SpAttack, c.IVs.SpAttack, c.EVs.SpAttack, c.Level, c.Nature.Modifier(kind))
	case stats.KindSpDefense:
		return stats.Stat(c.Base.SpDefense, c.IVs.SpDefense, c.EVs.SpDefense, c.Level, c.Nature.Modifier(kind))
	case stats.KindSpeed:
		return stats.Stat(c.Base.Speed, c.IVs.Speed, c.EVs.Speed, c.Level, c.Nature.Modifier(kind))
	default:
		return 0
	}
}

// EffectiveStat returns the real stat with its stage applied. With direct
// set the stage is skipped, which critical hits use to ignore the
// defender's raised defense or the attacker's lowered attack.
func (c Creature) EffectiveStat(kind stats.Kind, direct bool) int {
	return stats.ApplyStage(c.RealStat(kind), c.Stages.Get(kind), direct)
}

// FinalSpeed is the speed used for turn ordering: the staged real speed
// run through the item and ability stat hooks.
func (c Creature) FinalSpeed() int {
	speed := c.EffectiveStat(stats.KindSpeed, false)
	speed = c.Item.ModifyStat(stats.KindSpeed, speed)
	speed = c.Ability.ModifyStat(stats.KindSpeed, speed)
	return speed
}

// attackStatFor picks the attacking stat for a move's category.
func (c Creature) attackStatFor(category move.Category) int {
	kind := stats.KindAttack
	if category == move.Special {
		kind = stats.KindSpAttack
	}

	value := c.EffectiveStat(kind, false)
	value = c.Item.ModifyStat(kind, value)
	value = c.Ability.ModifyStat(kind, value)
	return value
}

// defenseStatFor picks the defending stat for a move's category.
func (c Creature) defenseStatFor(category move.Category) int {
	kind := stats.KindDefense
	if category == move.Special {
		kind = stats.KindSpDefense
	}

	value := c.EffectiveStat(kind, false)
	value = c.Item.ModifyStat(kind, value)
	value = c.Ability.ModifyStat(kind, value)
	return value
}

// AttackIndex computes the attacker-side numerator of the damage formula
// for the given move: floor(level*0.4+2) * power * attacking stat * STAB,
// rounded half-down.
func (c Creature) AttackIndex(m move.Move) int {
	stab := damage.STAB(damage.STABInput{
		OriginalTypes:  c.Types.Originals,
		EffectiveTypes: c.EffectiveTypes(),
		TerastalActive: c.Types.TerastalActive,
		TerastalType:   c.Types.Terastal,
		MoveType:       m.Type,
	})

	raw := float64(2*c.Level/5+2) * float64(m.Power) * float64(c.attackStatFor(m.Category)) * stab
	return damage.RoundHalfDown(raw)
}

// ActionOf maps a per-turn user event to an action event. A bad move
// index fails with CodeInputInvalid; an event the engine does not map
// here fails with CodeUnsupportedEvent.
func (c Creature) ActionOf(ev battleevent.UserEvent) (battleevent.ActionEvent, error) {
	switch e := ev.(type) {
	case battleevent.SelectMove:
		if e.Index < 0 || e.Index >= len(c.Moves) {
			return nil, simerr.Newf(simerr.CodeInputInvalid,
				"%s has no move at index %d", c.Name, e.Index)
		}

		m := c.Moves[e.Index]
		if !m.IsDamaging() {
			return battleevent.MoveStatus{Move: m}, nil
		}

		in := battleevent.DamageInput{
			MoveName:    m.Name,
			MoveType:    m.Type,
			Category:    m.Category,
			AttackIndex: c.AttackIndex(m),
		}
		in = c.Item.ModifyOutgoingDamage(in)
		in = c.Ability.ModifyOutgoingDamage(in)

		return battleevent.MoveDamage{Move: m, AttackIndex: in.AttackIndex}, nil

	case battleevent.SwitchTo:
		return battleevent.SwitchAction{Index: e.Index}, nil

	default:
		return nil, simerr.Newf(simerr.CodeUnsupportedEvent,
			"creature: no action mapping for user event %T", ev)
	}
}

// CalculateDamage resolves an incoming damaging move on the defender's
// side: effectiveness against the defense types, the incoming item and
// ability hooks, the defending stat, the random factor, and the damage
// formula. It returns the defender after the hit and the result the
// attacker's side must apply.
func (c Creature) CalculateDamage(
	in battleevent.DamageInput,
	src random.Source,
	generation int,
) (Creature, battleevent.DamageResult, error) {
	effectiveness, err := c.Effectiveness(in.MoveType)
	if err != nil {
		return c, nil, err
	}

	in = c.Item.ModifyIncomingDamage(in)
	in = c.Ability.ModifyIncomingDamage(in)

	factor, err := src.RollRandomFactor()
	if err != nil {
		return c, nil, err
	}

	dealt := damage.Resolve(damage.ResolveInput{
		AttackIndex:   in.AttackIndex,
		Defense:       c.defenseStatFor(in.Category),
		Effectiveness: effectiveness,
		RandomFactor:  factor,
		Generation:    generation,
	})

	after := c.TakeDamage(dealt)

	var result battleevent.DamageResult
	if after.IsAlive() {
		result = battleevent.Alive{Damage: dealt}
	} else {
		result = battleevent.Dead{Damage: dealt}
	}

	result = c.Item.AfterDamage(result)
	result = c.Ability.AfterDamage(result)

	return after, result, nil
}

package turn

import (
	"fmt"

	"github.com/sasakirione/pokesim/battleevent"
	"github.com/sasakirione/pokesim/priority"
)

// executeAction runs one ordered action and reports whether it finished
// the battle.
func (b *Battle) executeAction(entry priority.Entry) (bool, error) {
	actingParty := b.parties[entry.PartyIndex]

	switch action := entry.Action.(type) {
	case battleevent.SwitchAction:
		actingParty.HandleSwitch(action)
		return false, nil
	case battleevent.MoveStatus:
		b.log.Log(fmt.Sprintf("%s used %s!", entry.ActorName, action.Move.Name))
		return false, nil
	case battleevent.MoveDamage:
		return b.executeAttack(entry.PartyIndex, entry.ActorName, action)
	default:
		return false, nil
	}
}

// executeAttack resolves a damaging move: the defender computes the
// damage and its own next state, the result's events flow back to the
// attacker's party, and a faint forces the defender's party to switch.
// The battle finishes when no replacement remains.
func (b *Battle) executeAttack(attackerIndex int, actorName string, action battleevent.MoveDamage) (bool, error) {
	attackerParty := b.parties[attackerIndex]
	defenderIndex := 1 - attackerIndex
	defenderParty := b.parties[defenderIndex]

	defender := defenderParty.Active()
	newDefender, result, err := defender.CalculateDamage(battleevent.DamageInput{
		MoveName:    action.Move.Name,
		MoveType:    action.Move.Type,
		Category:    action.Move.Category,
		AttackIndex: action.AttackIndex,
	}, b.random, b.generation)
	if err != nil {
		return false, err
	}

	defenderParty.SetActive(newDefender)

	fieldEvents := attackerParty.ApplyEvents(result.AfterEvents())
	b.applyFieldEvents(fieldEvents)

	b.log.Log(fmt.Sprintf("%s used %s!", actorName, action.Move.Name))
	b.log.Log(fmt.Sprintf("It dealt %d damage to %s!", result.Dealt(), newDefender.Name))

	if _, dead := result.(battleevent.Dead); dead {
		b.log.Log(fmt.Sprintf("%s fainted!", newDefender.Name))

		if !defenderParty.SwitchToNextAlive() {
			b.winner = attackerIndex
			return true, nil
		}
	}

	return false, nil
}

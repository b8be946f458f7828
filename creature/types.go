package creature

import (
	"github.com/sasakirione/pokesim/battleevent"
	"github.com/sasakirione/pokesim/ptype"
)

// EffectiveTypes returns the types STAB is judged against: the temporary
// override while one is set, the species types otherwise.
func (c Creature) EffectiveTypes() []ptype.Type {
	if len(c.Types.Temporary) > 0 {
		return c.Types.Temporary
	}
	return c.Types.Originals
}

// DefenseTypes returns the types incoming attacks are charted against.
// An active terastal replaces them with the crystal type, except Stellar,
// which keeps compatibility on the species types.
func (c Creature) DefenseTypes() []ptype.Type {
	if c.Types.TerastalActive && c.Types.Terastal != ptype.None {
		if c.Types.Terastal == ptype.Stellar {
			return c.Types.Originals
		}
		return []ptype.Type{c.Types.Terastal}
	}
	return c.EffectiveTypes()
}

// ApplyStatusEvent returns a creature with the stage change applied,
// clamped to the stage bounds. HP-stage events are no-ops.
func (c Creature) ApplyStatusEvent(e battleevent.StatusEvent) Creature {
	out := c
	switch ev := e.(type) {
	case battleevent.StageUp:
		out.Stages = c.Stages.With(ev.Stat, ev.Step)
	case battleevent.StageDown:
		out.Stages = c.Stages.With(ev.Stat, -ev.Step)
	}
	return out
}

// ApplyTypeEvent returns a creature with the type change applied. Once
// terastal is active, type events are ignored.
func (c Creature) ApplyTypeEvent(e battleevent.TypeEvent) Creature {
	if c.Types.TerastalActive {
		return c
	}

	out := c
	switch ev := e.(type) {
	case battleevent.TypeChange:
		out.Types.Temporary = []ptype.Type{ev.Type}
	case battleevent.TypeAdd:
		current := c.workingTemporary()
		if !ptype.Contains(current, ev.Type) {
			current = append(current, ev.Type)
		}
		out.Types.Temporary = current
	case battleevent.TypeRemove:
		current := c.workingTemporary()
		filtered := make([]ptype.Type, 0, len(current))
		for _, t := range current {
			if t != ev.Type {
				filtered = append(filtered, t)
			}
		}
		if len(filtered) == 0 {
			filtered = []ptype.Type{ptype.None}
		}
		out.Types.Temporary = filtered
	}
	return out
}

// workingTemporary returns a mutable copy of the temporary types, cloning
// the originals first when no override is set yet.
func (c Creature) workingTemporary() []ptype.Type {
	if len(c.Types.Temporary) > 0 {
		return append([]ptype.Type(nil), c.Types.Temporary...)
	}
	return append([]ptype.Type(nil), c.Types.Originals...)
}

// ActivateTerastal returns a creature with terastal active. Activation is
// guarded: it only happens when a crystal type is set.
func (c Creature) ActivateTerastal() Creature {
	if c.Types.Terastal == ptype.None {
		return c
	}
	out := c
	out.Types.TerastalActive = true
	return out
}

// DeactivateTerastal returns a creature with terastal inactive.
func (c Creature) DeactivateTerastal() Creature {
	out := c
	out.Types.TerastalActive = false
	return out
}

// Effectiveness returns the combined type-chart multiplier of the given
// attack type against this creature: the product over its defense types,
// doubled when the attack matches the damage-tag type.
func (c Creature) Effectiveness(attack ptype.Type) (float64, error) {
	mult, err := ptype.Combined(attack, c.DefenseTypes())
	if err != nil {
		return 0, err
	}

	if c.Types.TarShot != ptype.None && c.Types.TarShot == attack {
		mult *= 2
	}
	return mult, nil
}

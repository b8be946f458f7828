// Package loader provides creature templates and the providers that
// resolve them: an in-process default catalog and an HTTP catalog with
// memoized lookups.
package loader

import (
	"github.com/sasakirione/pokesim/creature"
	"github.com/sasakirione/pokesim/move"
	"github.com/sasakirione/pokesim/nature"
	"github.com/sasakirione/pokesim/ptype"
	"github.com/sasakirione/pokesim/simerr"
	"github.com/sasakirione/pokesim/stats"
)

// StatSpread carries six stat values in template form.
type StatSpread struct {
	HP        int `json:"hp"`
	Attack    int `json:"attack"`
	Defense   int `json:"defense"`
	SpAttack  int `json:"sp_attack"`
	SpDefense int `json:"sp_defense"`
	Speed     int `json:"speed"`
}

// MoveTemplate is one move entry of a template.
type MoveTemplate struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Category string `json:"category"`
	Power    int    `json:"power"`
	Accuracy int    `json:"accuracy"`
	Priority int    `json:"priority"`
}

// Template is the loadable description of a creature.
type Template struct {
	Name         string     `json:"name"`
	Types        []string   `json:"types"`
	TerastalType string     `json:"terastal_type,omitempty"`
	BaseStats    StatSpread `json:"base_stats"`
	EffortValues StatSpread `json:"effort_values"`

	// IndividualValues defaults to all 31 when absent.
	IndividualValues *StatSpread `json:"individual_values,omitempty"`

	Nature string         `json:"nature,omitempty"`
	Moves  []MoveTemplate `json:"moves"`

	// Level defaults to 50 when absent.
	Level int `json:"level,omitempty"`
}

// Provider resolves creature templates by id.
type Provider interface {
	// ConfigByID returns the template for the id, if any.
	ConfigByID(id string) (*Template, bool)

	// Has reports whether the id resolves to a template.
	Has(id string) bool
}

// Build converts the template into a battle-ready creature.
func (t *Template) Build() (creature.Creature, error) {
	types := make([]ptype.Type, 0, len(t.Types))
	for _, name := range t.Types {
		typ, err := ptype.Parse(name)
		if err != nil {
			return creature.Creature{}, simerr.Wrapf(err, "loader: template %s", t.Name)
		}
		types = append(types, typ)
	}

	tera := ptype.None
	if t.TerastalType != "" {
		parsed, err := ptype.Parse(t.TerastalType)
		if err != nil {
			return creature.Creature{}, simerr.Wrapf(err, "loader: template %s", t.Name)
		}
		tera = parsed
	}

	nat := nature.Hardy
	if t.Nature != "" {
		parsed, err := nature.Parse(t.Nature)
		if err != nil {
			return creature.Creature{}, simerr.Wrapf(err, "loader: template %s", t.Name)
		}
		nat = parsed
	}

	moves := make([]move.Move, 0, len(t.Moves))
	for _, mt := range t.Moves {
		typ, err := ptype.Parse(mt.Type)
		if err != nil {
			return creature.Creature{}, simerr.Wrapf(err, "loader: template %s move %s", t.Name, mt.Name)
		}
		category, err := move.ParseCategory(mt.Category)
		if err != nil {
			return creature.Creature{}, simerr.Wrapf(err, "loader: template %s move %s", t.Name, mt.Name)
		}
		moves = append(moves, move.Move{
			Name:     mt.Name,
			Type:     typ,
			Category: category,
			Power:    mt.Power,
			Accuracy: mt.Accuracy,
			Priority: mt.Priority,
		})
	}

	var ivs *stats.IVs
	if t.IndividualValues != nil {
		ivs = &stats.IVs{
			HP:        t.IndividualValues.HP,
			Attack:    t.IndividualValues.Attack,
			Defense:   t.IndividualValues.Defense,
			SpAttack:  t.IndividualValues.SpAttack,
			SpDefense: t.IndividualValues.SpDefense,
			Speed:     t.IndividualValues.Speed,
		}
	}

	return creature.New(creature.Config{
		Name:         t.Name,
		Level:        t.Level,
		Types:        types,
		TerastalType: tera,
		Base: stats.Base{
			HP:        t.BaseStats.HP,
			Attack:    t.BaseStats.Attack,
			Defense:   t.BaseStats.Defense,
			SpAttack:  t.BaseStats.SpAttack,
			SpDefense: t.BaseStats.SpDefense,
			Speed:     t.BaseStats.Speed,
		},
		IVs: ivs,
		EVs: stats.EVs{
			HP:        t.EffortValues.HP,
			Attack:    t.EffortValues.Attack,
			Defense:   t.EffortValues.Defense,
			SpAttack:  t.EffortValues.SpAttack,
			SpDefense: t.EffortValues.SpDefense,
			Speed:     t.EffortValues.Speed,
		},
		CapEVTotal: true,
		Nature:     nat,
		Moves:      moves,
	})
}

// Load resolves an id through the provider and builds the creature.
// A miss surfaces as CodeTemplateUnavailable; the engine never
// instantiates a creature from unknown data.
func Load(p Provider, id string) (creature.Creature, error) {
	tpl, ok := p.ConfigByID(id)
	if !ok {
		return creature.Creature{}, simerr.Newf(simerr.CodeTemplateUnavailable,
			"loader: no such creature %q", id)
	}
	return tpl.Build()
}

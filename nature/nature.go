// Package nature provides the 25 natures and their stat modifiers.
// Each nature boosts one non-HP stat by 10% and hinders another by 10%,
// or is one of the five neutral variants.
package nature

import (
	"github.com/sasakirione/pokesim/simerr"
	"github.com/sasakirione/pokesim/stats"
)

// Nature is one of the 25 tagged nature values.
type Nature int

// The full nature roster.
const (
	Hardy Nature = iota
	Lonely
	Brave
	Adamant
	Naughty
	Bold
	Docile
	Relaxed
	Impish
	Lax
	Timid
	Hasty
	Serious
	Jolly
	Naive
	Modest
	Mild
	Quiet
	Bashful
	Rash
	Calm
	Gentle
	Sassy
	Careful
	Quirky
)

// effect describes which stat a nature boosts and which it hinders.
// Neutral natures have no entry.
type effect struct {
	up   stats.Kind
	down stats.Kind
}

var effects = map[Nature]effect{
	Lonely:  {stats.KindAttack, stats.KindDefense},
	Brave:   {stats.KindAttack, stats.KindSpeed},
	Adamant: {stats.KindAttack, stats.KindSpAttack},
	Naughty: {stats.KindAttack, stats.KindSpDefense},
	Bold:    {stats.KindDefense, stats.KindAttack},
	Relaxed: {stats.KindDefense, stats.KindSpeed},
	Impish:  {stats.KindDefense, stats.KindSpAttack},
	Lax:     {stats.KindDefense, stats.KindSpDefense},
	Timid:   {stats.KindSpeed, stats.KindAttack},
	Hasty:   {stats.KindSpeed, stats.KindDefense},
	Jolly:   {stats.KindSpeed, stats.KindSpAttack},
	Naive:   {stats.KindSpeed, stats.KindSpDefense},
	Modest:  {stats.KindSpAttack, stats.KindAttack},
	Mild:    {stats.KindSpAttack, stats.KindDefense},
	Quiet:   {stats.KindSpAttack, stats.KindSpeed},
	Rash:    {stats.KindSpAttack, stats.KindSpDefense},
	Calm:    {stats.KindSpDefense, stats.KindAttack},
	Gentle:  {stats.KindSpDefense, stats.KindDefense},
	Sassy:   {stats.KindSpDefense, stats.KindSpeed},
	Careful: {stats.KindSpDefense, stats.KindSpAttack},
}

var names = map[Nature]string{
	Hardy:   "Hardy",
	Lonely:  "Lonely",
	Brave:   "Brave",
	Adamant: "Adamant",
	Naughty: "Naughty",
	Bold:    "Bold",
	Docile:  "Docile",
	Relaxed: "Relaxed",
	Impish:  "Impish",
	Lax:     "Lax",
	Timid:   "Timid",
	Hasty:   "Hasty",
	Serious: "Serious",
	Jolly:   "Jolly",
	Naive:   "Naive",
	Modest:  "Modest",
	Mild:    "Mild",
	Quiet:   "Quiet",
	Bashful: "Bashful",
	Rash:    "Rash",
	Calm:    "Calm",
	Gentle:  "Gentle",
	Sassy:   "Sassy",
	Careful: "Careful",
	Quirky:  "Quirky",
}

// String returns the nature's display name.
func (n Nature) String() string {
	if name, ok := names[n]; ok {
		return name
	}
	return "Unknown"
}

// Parse maps a display name back to its Nature.
func Parse(name string) (Nature, error) {
	for n, candidate := range names {
		if candidate == name {
			return n, nil
		}
	}
	return Hardy, simerr.Newf(simerr.CodeInvalidArgument, "nature: unknown nature name %q", name)
}

// Modifier returns the factor the nature applies to the given stat:
// 1.1 for the boosted stat, 0.9 for the hindered one, 1.0 otherwise.
// HP is never affected.
func (n Nature) Modifier(kind stats.Kind) float64 {
	eff, ok := effects[n]
	if !ok || kind == stats.KindHP {
		return 1.0
	}

	switch kind {
	case eff.up:
		return 1.1
	case eff.down:
		return 0.9
	default:
		return 1.0
	}
}

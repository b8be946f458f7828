// Package stats provides the stat value model: base stats, individual
// values, effort values, stage modifiers, and the stat formulas built on
// them.
package stats

import (
	"github.com/sasakirione/pokesim/simerr"
)

// Kind identifies one of the six stats.
type Kind int

// The six stats. HP has no stage modifier.
const (
	KindHP Kind = iota
	KindAttack
	KindDefense
	KindSpAttack
	KindSpDefense
	KindSpeed
)

var kindNames = map[Kind]string{
	KindHP:        "HP",
	KindAttack:    "A",
	KindDefense:   "B",
	KindSpAttack:  "C",
	KindSpDefense: "D",
	KindSpeed:     "S",
}

// String returns the short stat label.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "?"
}

// Base holds a species' six base stat values.
type Base struct {
	HP        int
	Attack    int
	Defense   int
	SpAttack  int
	SpDefense int
	Speed     int
}

// Individual value bounds.
const (
	IVMin = 0
	IVMax = 31
)

// Effort value bounds.
const (
	EVMin      = 0
	EVMax      = 252
	EVTotalMax = 510
)

// IVs holds per-stat individual values, each in [IVMin, IVMax].
type IVs struct {
	HP        int
	Attack    int
	Defense   int
	SpAttack  int
	SpDefense int
	Speed     int
}

// PerfectIVs returns individual values maxed in every stat.
func PerfectIVs() IVs {
	return IVs{
		HP:        IVMax,
		Attack:    IVMax,
		Defense:   IVMax,
		SpAttack:  IVMax,
		SpDefense: IVMax,
		Speed:     IVMax,
	}
}

// Validate checks every individual value is in range.
func (iv IVs) Validate() error {
	for _, entry := range []struct {
		kind  Kind
		value int
	}{
		{KindHP, iv.HP},
		{KindAttack, iv.Attack},
		{KindDefense, iv.Defense},
		{KindSpAttack, iv.SpAttack},
		{KindSpDefense, iv.SpDefense},
		{KindSpeed, iv.Speed},
	} {
		if entry.value < IVMin || entry.value > IVMax {
			return simerr.Newf(simerr.CodeInvalidArgument,
				"stats: individual value %d for %s outside [%d,%d]",
				entry.value, entry.kind, IVMin, IVMax)
		}
	}
	return nil
}

// EVs holds per-stat effort values, each in [EVMin, EVMax].
type EVs struct {
	HP        int
	Attack    int
	Defense   int
	SpAttack  int
	SpDefense int
	Speed     int
}

// Total returns the sum of all effort values.
func (ev EVs) Total() int {
	return ev.HP + ev.Attack + ev.Defense + ev.SpAttack + ev.SpDefense + ev.Speed
}

// Validate checks every effort value is in range. With capTotal set
// ("normal" mode) the sum must also stay within EVTotalMax.
func (ev EVs) Validate(capTotal bool) error {
	for _, entry := range []struct {
		kind  Kind
		value int
	}{
		{KindHP, ev.HP},
		{KindAttack, ev.Attack},
		{KindDefense, ev.Defense},
		{KindSpAttack, ev.SpAttack},
		{KindSpDefense, ev.SpDefense},
		{KindSpeed, ev.Speed},
	} {
		if entry.value < EVMin || entry.value > EVMax {
			return simerr.Newf(simerr.CodeInvalidArgument,
				"stats: effort value %d for %s outside [%d,%d]",
				entry.value, entry.kind, EVMin, EVMax)
		}
	}

	if capTotal && ev.Total() > EVTotalMax {
		return simerr.Newf(simerr.CodeInvalidArgument,
			"stats: effort total %d exceeds %d", ev.Total(), EVTotalMax)
	}
	return nil
}

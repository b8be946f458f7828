// Package ptype provides the creature type enum and the effectiveness
// chart between an attacking type and a defending type.
package ptype

import (
	"github.com/sasakirione/pokesim/simerr"
)

// Type is one creature or move type.
type Type int

// The full type roster: the 18 chart types plus the None sentinel, the
// terastal-only Stellar type, and the reserved "???" placeholder that the
// chart refuses to answer for.
const (
	None Type = iota
	Normal
	Fire
	Water
	Electric
	Grass
	Ice
	Fighting
	Poison
	Ground
	Flying
	Psychic
	Bug
	Rock
	Ghost
	Dragon
	Dark
	Steel
	Fairy
	Stellar
	Reserved
)

var typeNames = map[Type]string{
	None:     "None",
	Normal:   "Normal",
	Fire:     "Fire",
	Water:    "Water",
	Electric: "Electric",
	Grass:    "Grass",
	Ice:      "Ice",
	Fighting: "Fighting",
	Poison:   "Poison",
	Ground:   "Ground",
	Flying:   "Flying",
	Psychic:  "Psychic",
	Bug:      "Bug",
	Rock:     "Rock",
	Ghost:    "Ghost",
	Dragon:   "Dragon",
	Dark:     "Dark",
	Steel:    "Steel",
	Fairy:    "Fairy",
	Stellar:  "Stellar",
	Reserved: "???",
}

// String returns the display name of the type.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Parse maps a display name back to its Type.
// Unknown names return None and a CodeInvalidArgument error.
func Parse(name string) (Type, error) {
	for t, n := range typeNames {
		if n == name {
			return t, nil
		}
	}
	return None, simerr.Newf(simerr.CodeInvalidArgument, "ptype: unknown type name %q", name)
}

// Contains reports whether ts includes t.
func Contains(ts []Type, t Type) bool {
	for _, candidate := range ts {
		if candidate == t {
			return true
		}
	}
	return false
}

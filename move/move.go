// Package move provides the move value type.
package move

import (
	"github.com/sasakirione/pokesim/ptype"
	"github.com/sasakirione/pokesim/simerr"
)

// Category classifies how a move deals with the defender.
type Category int

// Move categories. Status moves have zero power and never deal damage.
const (
	Physical Category = iota
	Special
	Status
)

// String returns the category's display name.
func (c Category) String() string {
	switch c {
	case Physical:
		return "Physical"
	case Special:
		return "Special"
	case Status:
		return "Status"
	default:
		return "Unknown"
	}
}

// ParseCategory maps a display name back to its Category.
func ParseCategory(name string) (Category, error) {
	switch name {
	case "Physical":
		return Physical, nil
	case "Special":
		return Special, nil
	case "Status":
		return Status, nil
	default:
		return Status, simerr.Newf(simerr.CodeInvalidArgument, "move: unknown category %q", name)
	}
}

// Move is one entry of a creature's move list.
// Accuracy is carried but currently informational only.
type Move struct {
	Name     string
	Type     ptype.Type
	Category Category
	Power    int
	Accuracy int
	Priority int
}

// IsDamaging reports whether the move can deal damage at all.
func (m Move) IsDamaging() bool {
	return m.Category != Status && m.Power > 0
}

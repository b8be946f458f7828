package stats

// Stage modifier bounds.
const (
	StageMin = -6
	StageMax = 6
)

// Stage is a per-stat modifier in [StageMin, StageMax].
type Stage int

// Clamp returns the stage bounded to [StageMin, StageMax].
func (s Stage) Clamp() Stage {
	if s < StageMin {
		return StageMin
	}
	if s > StageMax {
		return StageMax
	}
	return s
}

// Multiplier returns the multiplicative factor for the stage:
// (2+stage)/2 for non-negative stages, 2/(2-stage) for negative ones.
func (s Stage) Multiplier() float64 {
	num, den := s.Fraction()
	return float64(num) / float64(den)
}

// Fraction returns the stage factor as an integer ratio, for exact stat
// arithmetic.
func (s Stage) Fraction() (num, den int) {
	if s >= 0 {
		return int(2 + s), 2
	}
	return 2, int(2 - s)
}

// Stages holds the current stage modifiers of the five non-HP stats.
// The zero value is the neutral state.
type Stages struct {
	Attack    Stage
	Defense   Stage
	SpAttack  Stage
	SpDefense Stage
	Speed     Stage
}

// Get returns the stage for the given stat. HP has no stage and is
// always zero.
func (st Stages) Get(kind Kind) Stage {
	switch kind {
	case KindAttack:
		return st.Attack
	case KindDefense:
		return st.Defense
	case KindSpAttack:
		return st.SpAttack
	case KindSpDefense:
		return st.SpDefense
	case KindSpeed:
		return st.Speed
	default:
		return 0
	}
}

// With returns a copy with the given stat's stage shifted by step and
// clamped. HP-stage changes are no-ops.
func (st Stages) With(kind Kind, step int) Stages {
	out := st
	switch kind {
	case KindAttack:
		out.Attack = (st.Attack + Stage(step)).Clamp()
	case KindDefense:
		out.Defense = (st.Defense + Stage(step)).Clamp()
	case KindSpAttack:
		out.SpAttack = (st.SpAttack + Stage(step)).Clamp()
	case KindSpDefense:
		out.SpDefense = (st.SpDefense + Stage(step)).Clamp()
	case KindSpeed:
		out.Speed = (st.Speed + Stage(step)).Clamp()
	}
	return out
}

// IsNeutral reports whether every stage is zero.
func (st Stages) IsNeutral() bool {
	return st == Stages{}
}

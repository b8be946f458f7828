package stats

// DefaultLevel is the level stat formulas assume when no level is given.
const DefaultLevel = 50

// HP computes the real HP stat:
// floor(((2*base + iv + floor(ev/4)) * level / 100) + level + 10).
func HP(base, iv, ev, level int) int {
	return (2*base+iv+ev/4)*level/100 + level + 10
}

// Stat computes a real non-HP stat:
// floor(((2*base + iv + floor(ev/4)) * level / 100 + 5) * natureMod).
func Stat(base, iv, ev, level int, natureMod float64) int {
	raw := (2*base+iv+ev/4)*level/100 + 5
	return int(float64(raw) * natureMod)
}

// ApplyStage applies a stage modifier to a real stat value. With direct
// set the stage is skipped; critical hits use this to ignore the
// defender's raised defense or the attacker's lowered attack.
func ApplyStage(value int, stage Stage, direct bool) int {
	if direct {
		return value
	}

	num, den := stage.Fraction()
	return value * num / den
}

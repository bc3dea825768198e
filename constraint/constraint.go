// Package constraint models the six-axis limit set that encodes an
// articulated joint on a link: three translational and three rotational
// axes, each with an independent min/max range and enable flags.
//
// The builder (Build) turns an abstract joint type into a Set, the
// classifier (Classify, DeriveAxisLimits) recovers the joint type and its
// free axis from an existing Set. For every well-defined joint type the
// two are structural inverses of each other.
package constraint

// Axis indices within a Limits3 record.
const (
	AxisX = iota
	AxisY
	AxisZ
)

// AxisLimit restricts motion on a single axis. The zero value is an
// unconstrained axis: no flags set, no range.
type AxisLimit struct {
	UseMin bool
	UseMax bool
	Min    float64
	Max    float64
}

// Locked reports whether the axis permits no motion at all: both bounds
// enabled and equal (a degenerate range).
func (l AxisLimit) Locked() bool {
	return l.UseMin && l.UseMax && l.Min == l.Max
}

// Limited reports whether the axis carries an active restriction,
// regardless of its width.
func (l AxisLimit) Limited() bool {
	return l.UseMin && l.UseMax
}

// NonZero reports whether either bound is away from zero.
func (l AxisLimit) NonZero() bool {
	return l.Min != 0 || l.Max != 0
}

// Limits3 holds the per-axis limits of one domain (translation or
// rotation), indexed by AxisX, AxisY, AxisZ.
type Limits3 [3]AxisLimit

// Set is the full constraint record attached to a link. Loc or Rot is nil
// when no constraint of that domain exists; a floating joint has neither.
// The distinction between "absent" and "fully free" matters: the
// classifier falls back to Floating only when Loc is absent entirely.
type Set struct {
	Loc *Limits3
	Rot *Limits3
}

func locked() AxisLimit {
	return AxisLimit{UseMin: true, UseMax: true}
}

func ranged(lower, upper float64) AxisLimit {
	return AxisLimit{UseMin: true, UseMax: true, Min: lower, Max: upper}
}

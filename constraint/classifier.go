package constraint

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrUnderDefined reports a constraint set whose free-axis count does not
// match the expectation for its candidate joint type. The configuration is
// ambiguous and must not be defaulted to a guessed type.
var ErrUnderDefined = errors.New("constraint: under-defined joint")

// Classify infers the joint type from an existing constraint set.
//
// The second result marks, per rotational axis, whether that axis carries
// an active nonzero limit; it is nil when the set has no rotation record.
//
// Locked translational axes are counted first; rotational constraints
// break ties only among fully location-locked sets. Floating is the
// fallback only when no translational constraint record exists at all,
// not merely when every axis is free.
func Classify(s Set) (JointType, *[3]bool) {
	var crot *[3]bool
	if s.Rot != nil {
		crot = &[3]bool{
			s.Rot[AxisX].Limited() && s.Rot[AxisX].NonZero(),
			s.Rot[AxisY].Limited() && s.Rot[AxisY].NonZero(),
			s.Rot[AxisZ].Limited() && s.Rot[AxisZ].NonZero(),
		}
	}
	if s.Loc == nil {
		return Floating, crot
	}

	ncloc := 0
	for _, l := range s.Loc {
		if l.UseMin && l.Min == l.Max {
			ncloc++
		}
	}
	ncrot := 0
	if s.Rot != nil {
		for _, l := range s.Rot {
			if l.Limited() {
				ncrot++
			}
		}
	}

	jt := Floating
	switch ncloc {
	case 3:
		// fixed, revolute or continuous
		if s.Rot != nil && ncrot == 3 {
			if crot[AxisX] || crot[AxisY] || crot[AxisZ] {
				jt = Revolute
			} else {
				jt = Fixed
			}
		} else if s.Rot != nil && ncrot == 2 {
			jt = Continuous
		}
	case 2:
		jt = Prismatic
	case 1:
		jt = Planar
	}
	return jt, crot
}

// DeriveAxisLimits classifies the set and additionally resolves the free
// motion axis and its numeric limits.
//
// For revolute, continuous and prismatic joints the motion axis is the
// child bone's local Y direction, supplied by the caller as boneAxis; it
// is returned normalized. For planar joints the axis is the one-hot unit
// vector of the single locked translational axis (the plane normal) and
// the limits are the min/max pairs of the two remaining axes, four values
// in axis-index order. Fixed and floating joints have neither axis nor
// limits.
//
// Prismatic and planar candidates whose locked-axis count does not match
// expectation fail with ErrUnderDefined.
func DeriveAxisLimits(s Set, boneAxis mgl64.Vec3) (JointType, *mgl64.Vec3, []float64, error) {
	jt, crot := Classify(s)
	if jt == Floating || jt == Fixed {
		return jt, nil, nil, nil
	}

	if (jt == Revolute || jt == Continuous) && crot != nil {
		axis := boneAxis.Normalize()
		var limits []float64
		switch {
		case crot[AxisX]:
			limits = []float64{s.Rot[AxisX].Min, s.Rot[AxisX].Max}
		case crot[AxisY]:
			limits = []float64{s.Rot[AxisY].Min, s.Rot[AxisY].Max}
		case crot[AxisZ]:
			limits = []float64{s.Rot[AxisZ].Min, s.Rot[AxisZ].Max}
		}
		// a continuous joint has no active nonzero limit: axis only
		return jt, &axis, limits, nil
	}

	if s.Loc == nil {
		return jt, nil, nil, ErrUnderDefined
	}
	// note the stricter lock test here: both enable flags must be set,
	// so a half-enabled axis counts as locked for Classify but free here
	lockedLoc := [3]bool{
		s.Loc[AxisX].Locked(),
		s.Loc[AxisY].Locked(),
		s.Loc[AxisZ].Locked(),
	}
	nlocked := 0
	for _, b := range lockedLoc {
		if b {
			nlocked++
		}
	}

	switch jt {
	case Prismatic:
		if nlocked != 2 {
			return jt, nil, nil, ErrUnderDefined
		}
		axis := boneAxis.Normalize()
		for i := range lockedLoc {
			if !lockedLoc[i] {
				return jt, &axis, []float64{s.Loc[i].Min, s.Loc[i].Max}, nil
			}
		}
	case Planar:
		if nlocked != 1 {
			return jt, nil, nil, ErrUnderDefined
		}
		var axis mgl64.Vec3
		var limits []float64
		for i := range lockedLoc {
			if lockedLoc[i] {
				axis[i] = 1
			} else {
				limits = append(limits, s.Loc[i].Min, s.Loc[i].Max)
			}
		}
		return jt, &axis, limits, nil
	}
	return jt, nil, nil, ErrUnderDefined
}

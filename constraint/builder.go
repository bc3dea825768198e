package constraint

// Build produces the six-axis constraint set implementing the kinematic
// restriction of the given joint type. lower and upper bound the single
// free axis of Revolute (rotation about Y) and Prismatic (translation
// along Y) joints; they are ignored for every other type.
//
// The canonical joint axis is the child frame's local Y axis by
// convention. Callers wanting a different physical axis orient the child
// frame accordingly rather than selecting a different constrained axis.
//
// Unrecognized joint types produce an empty set, matching Floating.
func Build(jointType JointType, lower, upper float64) Set {
	switch jointType {
	case Revolute:
		return setRevolute(lower, upper)
	case Continuous:
		return setContinuous()
	case Prismatic:
		return setPrismatic(lower, upper)
	case Fixed:
		return setFixed()
	case Planar:
		return setPlanar()
	default:
		// floating and unknown: unrestricted 6-DOF, no constraint records
		return Set{}
	}
}

// setRevolute locks translation entirely and rotation about X and Z,
// leaving Y as the hinge axis with the given range.
func setRevolute(lower, upper float64) Set {
	return Set{
		Loc: &Limits3{locked(), locked(), locked()},
		Rot: &Limits3{locked(), ranged(lower, upper), locked()},
	}
}

// setContinuous is a revolute joint without bounds: the Y rotation axis is
// left entirely unconstrained, not merely given a wide range.
func setContinuous() Set {
	return Set{
		Loc: &Limits3{locked(), locked(), locked()},
		Rot: &Limits3{AxisX: locked(), AxisZ: locked()},
	}
}

// setPrismatic locks rotation entirely and translation along X and Z,
// leaving Y as the slide axis. A zero-width range (lower == upper) would
// be indistinguishable from a locked axis under inspection, so the enable
// flags are cleared instead of writing a degenerate range; the classifier
// then reads the slide limits back as (0, 0).
func setPrismatic(lower, upper float64) Set {
	slide := AxisLimit{}
	if lower != upper {
		slide = ranged(lower, upper)
	}
	return Set{
		Loc: &Limits3{AxisX: locked(), AxisY: slide, AxisZ: locked()},
		Rot: &Limits3{locked(), locked(), locked()},
	}
}

// setFixed locks all six axes.
func setFixed() Set {
	return Set{
		Loc: &Limits3{locked(), locked(), locked()},
		Rot: &Limits3{locked(), locked(), locked()},
	}
}

// setPlanar locks rotation entirely and only the Y translation axis,
// confining motion to the X-Z plane.
func setPlanar() Set {
	return Set{
		Loc: &Limits3{AxisY: locked()},
		Rot: &Limits3{locked(), locked(), locked()},
	}
}

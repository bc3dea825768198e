package constraint

import "strings"

// JointType identifies the kinematic relationship between a link and its
// parent, following the URDF/SDF taxonomy. The underlying string is the
// value persisted in the "joint/type" metadata key.
type JointType string

const (
	Revolute   JointType = "revolute"   // hinge with limits
	Continuous JointType = "continuous" // unbounded hinge
	Prismatic  JointType = "prismatic"  // slide with limits
	Fixed      JointType = "fixed"      // zero degrees of freedom
	Floating   JointType = "floating"   // unrestricted 6-DOF
	Planar     JointType = "planar"     // motion confined to a plane
)

// KnownJointTypes lists the recognized types in taxonomy order.
var KnownJointTypes = []JointType{Revolute, Continuous, Prismatic, Fixed, Floating, Planar}

// Known reports whether t is one of the recognized joint types.
// Unrecognized types behave like Floating but are flagged in diagnostics.
func (t JointType) Known() bool {
	switch t {
	case Revolute, Continuous, Prismatic, Fixed, Floating, Planar:
		return true
	}
	return false
}

func (t JointType) String() string {
	return string(t)
}

// ParseJointType normalizes s to a JointType, reporting whether it is a
// recognized type. The value is returned lowercased either way so that it
// can still be persisted verbatim for unknown types.
func ParseJointType(s string) (JointType, bool) {
	t := JointType(strings.ToLower(strings.TrimSpace(s)))
	return t, t.Known()
}

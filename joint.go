// Package linkage maps abstract articulated joints (revolute, continuous,
// prismatic, fixed, floating, planar) onto six-axis constraint sets
// attached to link entities, and recovers joint type, axis, limits and
// kinematic state back from them.
//
// BuildJoint is the sole entry point for materializing a joint definition
// onto a link; ReadJointType and ReadJointState are its inverses. The
// translation itself lives in the constraint and pose subpackages, both of
// which are pure and host-free.
package linkage

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/motionkit/linkage/constraint"
	"github.com/motionkit/linkage/pose"
)

// Sentinel limit bounds used when a joint spec carries no lower/upper
// values. Deliberately near zero but not exactly zero, so downstream
// consumers never compare against a degenerate zero-width range.
const (
	DefaultLowerLimit = -1e-5
	DefaultUpperLimit = 1e-5
)

// JointLimits bounds the motion of a driven joint. Fields are pointers so
// an absent value can be told apart from zero: absent lower/upper default
// to the sentinel pair with a warning, absent effort/velocity are each
// reported individually.
type JointLimits struct {
	Lower    *float64 `json:"lower,omitempty" yaml:"lower,omitempty"`
	Upper    *float64 `json:"upper,omitempty" yaml:"upper,omitempty"`
	Effort   *float64 `json:"effort,omitempty" yaml:"effort,omitempty"`
	Velocity *float64 `json:"velocity,omitempty" yaml:"velocity,omitempty"`
}

// Dynamics holds spring/damper coefficients. They are applied only to
// revolute and prismatic joints and only when at least one is nonzero.
type Dynamics struct {
	SpringStiffness float64 `json:"spring_stiffness,omitempty" yaml:"spring_stiffness,omitempty"`
	SpringDamping   float64 `json:"spring_damping,omitempty" yaml:"spring_damping,omitempty"`
}

// Approximation is a named empirical curve with coefficients, estimating
// maximum effort or speed as a function of joint state. It is persisted as
// metadata and never evaluated by this package.
type Approximation struct {
	Function     string    `json:"function" yaml:"function"`
	Coefficients []float64 `json:"coefficients" yaml:"coefficients"`
}

// Valid reports whether both sub-fields are present. Malformed
// approximations are dropped entirely, never partially stored.
func (a Approximation) Valid() bool {
	return a.Function != "" && len(a.Coefficients) > 0
}

// JointSpec is the abstract joint definition handed to BuildJoint. Child
// names the link the joint attaches to when the caller resolves links
// through a Scene; BuildJoint itself always takes a resolved Link.
type JointSpec struct {
	Name                   string                       `json:"name" yaml:"name"`
	Type                   constraint.JointType         `json:"type" yaml:"type"`
	Child                  string                       `json:"child,omitempty" yaml:"child,omitempty"`
	Axis                   *mgl64.Vec3                  `json:"axis,omitempty" yaml:"axis,omitempty"`
	Limits                 *JointLimits                 `json:"limits,omitempty" yaml:"limits,omitempty"`
	Dynamics               *Dynamics                    `json:"dynamics,omitempty" yaml:"dynamics,omitempty"`
	MaxEffortApproximation *Approximation               `json:"maxeffort_approximation,omitempty" yaml:"maxeffort_approximation,omitempty"`
	MaxSpeedApproximation  *Approximation               `json:"maxspeed_approximation,omitempty" yaml:"maxspeed_approximation,omitempty"`
	ExtraProps             map[string]map[string]string `json:"extra_props,omitempty" yaml:"extra_props,omitempty"`
}

// BuildJoint materializes a joint definition onto a link: constraint set,
// dynamics, type tag, limits, approximations, visualization hint and
// custom properties, in that fixed order. Recoverable findings are
// accumulated as diagnostics; a failure in one stage never prevents later
// stages from running. The two fatal cases, a zero-length axis here and
// child resolution in Scene, abort before anything is written.
func BuildJoint(spec JointSpec, link Link) (Diagnostics, error) {
	var diags Diagnostics

	if spec.Axis != nil && spec.Axis.Len() == 0 {
		return nil, fmt.Errorf("joint %q: %w", spec.Name, ErrZeroLengthAxis)
	}

	// keep the proper joint name when it differs from the link name
	if spec.Name != "" && spec.Name != link.Name() {
		link.SetProperty(KeyJointName, spec.Name)
	}

	if spec.Axis != nil {
		link.SetBoneAxis(spec.Axis.Normalize())
	}

	lower, upper := applyLimits(spec, link, &diags)
	setJointConstraints(spec, link, lower, upper, &diags)

	for tag, props := range spec.ExtraProps {
		for key, value := range props {
			link.SetProperty(CustomPropertyKey(tag, key), value)
		}
	}

	logger.Debug("assigned joint information",
		zap.String("joint", spec.Name),
		zap.String("link", link.Name()),
		zap.String("type", spec.Type.String()))
	return diags, nil
}

// applyLimits writes effort/velocity metadata and resolves the lower/upper
// bounds, defaulting absent bounds to the sentinel pair.
func applyLimits(spec JointSpec, link Link, diags *Diagnostics) (lower, upper float64) {
	if spec.Limits == nil {
		diags.warnf("limits", "joint %s: limits missing, lower/upper defaulted to [%g, %g]",
			spec.Name, DefaultLowerLimit, DefaultUpperLimit)
		return DefaultLowerLimit, DefaultUpperLimit
	}

	if spec.Limits.Effort != nil {
		link.SetProperty(KeyMaxEffort, *spec.Limits.Effort)
	} else {
		diags.errorf("limits.effort", "joint %s: limits incomplete, missing effort", spec.Name)
	}
	if spec.Limits.Velocity != nil {
		link.SetProperty(KeyMaxSpeed, *spec.Limits.Velocity)
	} else {
		diags.errorf("limits.velocity", "joint %s: limits incomplete, missing velocity", spec.Name)
	}

	if spec.Limits.Lower != nil && spec.Limits.Upper != nil {
		return *spec.Limits.Lower, *spec.Limits.Upper
	}
	diags.warnf("limits", "joint %s: limits lower/upper missing, defaulted to [%g, %g]",
		spec.Name, DefaultLowerLimit, DefaultUpperLimit)
	return DefaultLowerLimit, DefaultUpperLimit
}

// setJointConstraints replaces the link's constraint set according to the
// joint type and records dynamics, type tag, approximations and the
// visualization hint.
func setJointConstraints(spec JointSpec, link Link, lower, upper float64, diags *Diagnostics) {
	jt := spec.Type

	if (jt == constraint.Revolute || jt == constraint.Prismatic) && spec.Dynamics != nil &&
		(spec.Dynamics.SpringStiffness != 0 || spec.Dynamics.SpringDamping != 0) {
		applyDynamics(spec.Name, *spec.Dynamics, link)
	}

	if !jt.Known() {
		diags.warnf("type", "joint %s: unknown joint type %q, behaviour like floating", spec.Name, jt)
	}
	link.SetConstraints(constraint.Build(jt, lower, upper))
	link.SetProperty(KeyJointType, jt.String())

	// approximation curves only make sense on driven joints
	if jt == constraint.Revolute || jt == constraint.Continuous || jt == constraint.Prismatic {
		applyApproximation(spec.Name, "max effort", spec.MaxEffortApproximation,
			link, KeyMaxEffortApproximation, KeyMaxEffortCoefficients, diags)
		applyApproximation(spec.Name, "max speed", spec.MaxSpeedApproximation,
			link, KeyMaxSpeedApproximation, KeyMaxSpeedCoefficients, diags)
	}

	if hinter, ok := link.(ShapeHinter); ok {
		hinter.SetShapeHint("joint/" + jt.String())
	}
}

// applyDynamics records the spring/damper metadata and, when the link
// supports it, creates the physical resource. The metadata stays
// authoritative even if the resource cannot be created.
func applyDynamics(joint string, dyn Dynamics, link Link) {
	if applier, ok := link.(SpringApplier); ok {
		if err := applier.ApplySpring(dyn.SpringStiffness, dyn.SpringDamping); err != nil {
			logger.Error("could not create spring resource, only recording metadata",
				zap.String("joint", joint), zap.Error(err))
		}
	} else {
		logger.Error("link cannot host a spring resource, only recording metadata",
			zap.String("joint", joint))
	}

	link.SetProperty(KeySpringStiffness, dyn.SpringStiffness)
	link.SetProperty(KeySpringDamping, dyn.SpringDamping)
	link.SetProperty(keySpringConstAxis1, dyn.SpringStiffness)
	link.SetProperty(keyDampingConstAxis1, dyn.SpringDamping)
}

// applyApproximation validates one effort/speed approximation and writes
// its function id and coefficient sequence. Malformed input is reported
// and nothing is written for that kind.
func applyApproximation(joint, kind string, approx *Approximation, link Link, fnKey, coefKey string, diags *Diagnostics) {
	if approx == nil {
		return
	}
	if !approx.Valid() {
		diags.errorf(fnKey, "joint %s: approximation for %s ill-defined, needs function and coefficients", joint, kind)
		return
	}
	link.SetProperty(fnKey, approx.Function)
	link.SetProperty(coefKey, append([]float64(nil), approx.Coefficients...))
}

// ReadJointType recovers the joint type of a link from its constraint set,
// together with the motion axis and numeric limits where the type has
// them. Under-defined sets fail with constraint.ErrUnderDefined; the
// caller never receives a guessed type.
func ReadJointType(link Link) (constraint.JointType, *mgl64.Vec3, []float64, error) {
	jt, axis, limits, err := constraint.DeriveAxisLimits(link.Constraints(), link.BoneAxis())
	if err != nil {
		return jt, nil, nil, fmt.Errorf("link %q: %w", link.Name(), err)
	}
	return jt, axis, limits, nil
}

// ReadJointState derives the instantaneous kinematic state of the joint
// from the link's current pose. It is kinematic, not semantic: it succeeds
// even when the constraint set has no recognizable joint type.
func ReadJointState(link Link) pose.State {
	return pose.Derive(link.Pose())
}

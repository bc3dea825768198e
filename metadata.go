package linkage

// Metadata keys persisted on a link. The exact names and nesting are a
// compatibility surface consumed by existing persisted models and
// exporters; they must not change.
const (
	KeyJointType = "joint/type"
	KeyJointName = "joint/name"
	KeyMaxEffort = "joint/maxEffort"
	KeyMaxSpeed  = "joint/maxSpeed"

	KeySpringStiffness = "joint/dynamics/springStiffness"
	KeySpringDamping   = "joint/dynamics/springDamping"

	KeyMaxEffortApproximation = "joint/maxeffort_approximation"
	KeyMaxEffortCoefficients  = "joint/maxeffort_coefficients"
	KeyMaxSpeedApproximation  = "joint/maxspeed_approximation"
	KeyMaxSpeedCoefficients   = "joint/maxspeed_coefficients"

	// legacy mirrors of the spring keys, still read by older exporters
	keySpringConstAxis1  = "joint/dynamics/spring_const_constraint_axis1"
	keyDampingConstAxis1 = "joint/dynamics/damping_const_constraint_axis1"
)

// CustomPropertyKey builds the namespaced metadata key for a
// caller-supplied property: joint/<tag>/<subkey>.
func CustomPropertyKey(tag, subkey string) string {
	return "joint/" + tag + "/" + subkey
}

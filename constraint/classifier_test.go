package constraint

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestClassify_RoundTrip(t *testing.T) {
	// the classifier is the structural inverse of the builder for every
	// well-defined type with a non-degenerate range
	tests := []struct {
		jt           JointType
		lower, upper float64
	}{
		{Fixed, 0, 0},
		{Revolute, -1.57, 1.57},
		{Continuous, 0, 0},
		{Prismatic, -0.2, 0.4},
		{Planar, 0, 0},
		{Floating, 0, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.jt), func(t *testing.T) {
			got, _ := Classify(Build(tt.jt, tt.lower, tt.upper))
			if got != tt.jt {
				t.Errorf("Classify(Build(%s)) = %s, want %s", tt.jt, got, tt.jt)
			}
		})
	}
}

func TestClassify_RevoluteVsFixed(t *testing.T) {
	// three rotational limits with all-zero ranges is fixed, any nonzero
	// range makes it revolute
	jt, crot := Classify(Build(Fixed, 0, 0))
	if jt != Fixed {
		t.Errorf("got %s, want fixed", jt)
	}
	if crot == nil || *crot != [3]bool{} {
		t.Errorf("crot = %v, want all false", crot)
	}

	jt, crot = Classify(Build(Revolute, -0.5, 0.5))
	if jt != Revolute {
		t.Errorf("got %s, want revolute", jt)
	}
	if crot == nil || !crot[AxisY] || crot[AxisX] || crot[AxisZ] {
		t.Errorf("crot = %v, want Y only", crot)
	}
}

func TestClassify_FloatingFallback(t *testing.T) {
	// floating requires the location record to be absent entirely
	jt, crot := Classify(Set{})
	if jt != Floating || crot != nil {
		t.Errorf("Classify(empty) = %s, %v; want floating, nil", jt, crot)
	}

	// a present but fully free location record also falls through to
	// floating: no decision row matches a zero locked-axis count
	jt, _ = Classify(Set{Loc: &Limits3{}})
	if jt != Floating {
		t.Errorf("Classify(free loc) = %s, want floating", jt)
	}
}

func TestDeriveAxisLimits_Revolute(t *testing.T) {
	bone := mgl64.Vec3{0, 0, 2}
	jt, axis, limits, err := DeriveAxisLimits(Build(Revolute, -1.57, 1.57), bone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if jt != Revolute {
		t.Errorf("type = %s, want revolute", jt)
	}
	if axis == nil || axis.Sub(mgl64.Vec3{0, 0, 1}).Len() > 1e-12 {
		t.Errorf("axis = %v, want normalized bone axis {0,0,1}", axis)
	}
	if len(limits) != 2 || limits[0] != -1.57 || limits[1] != 1.57 {
		t.Errorf("limits = %v, want [-1.57 1.57]", limits)
	}
}

func TestDeriveAxisLimits_Continuous(t *testing.T) {
	jt, axis, limits, err := DeriveAxisLimits(Build(Continuous, 0, 0), mgl64.Vec3{0, 1, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if jt != Continuous || axis == nil {
		t.Errorf("got %s, axis %v; want continuous with axis", jt, axis)
	}
	if limits != nil {
		t.Errorf("limits = %v, want none for unbounded hinge", limits)
	}
}

func TestDeriveAxisLimits_Prismatic(t *testing.T) {
	jt, axis, limits, err := DeriveAxisLimits(Build(Prismatic, -0.2, 0.4), mgl64.Vec3{0, 3, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if jt != Prismatic || axis == nil {
		t.Fatalf("got %s, axis %v; want prismatic with axis", jt, axis)
	}
	if axis.Sub(mgl64.Vec3{0, 1, 0}).Len() > 1e-12 {
		t.Errorf("axis = %v, want {0,1,0}", axis)
	}
	if len(limits) != 2 || limits[0] != -0.2 || limits[1] != 0.4 {
		t.Errorf("limits = %v, want [-0.2 0.4]", limits)
	}
}

func TestDeriveAxisLimits_PrismaticZeroWidth(t *testing.T) {
	// documented asymmetry: the builder disables the slide axis for a
	// zero-width range, so the set still classifies as prismatic but the
	// recovered limits are the degenerate (0, 0), not the original pair
	jt, axis, limits, err := DeriveAxisLimits(Build(Prismatic, 5, 5), mgl64.Vec3{0, 1, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if jt != Prismatic || axis == nil {
		t.Fatalf("got %s, axis %v; want prismatic with axis", jt, axis)
	}
	if len(limits) != 2 || limits[0] != 0 || limits[1] != 0 {
		t.Errorf("limits = %v, want degenerate [0 0]", limits)
	}
}

func TestDeriveAxisLimits_Planar(t *testing.T) {
	jt, axis, limits, err := DeriveAxisLimits(Build(Planar, 0, 0), mgl64.Vec3{0, 1, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if jt != Planar {
		t.Fatalf("type = %s, want planar", jt)
	}
	// the axis is the one-hot vector of the locked translation, the plane
	// normal
	if axis == nil || *axis != (mgl64.Vec3{0, 1, 0}) {
		t.Errorf("axis = %v, want {0,1,0}", axis)
	}
	if len(limits) != 4 {
		t.Fatalf("limits = %v, want the two min/max pairs of the free axes", limits)
	}
	for i, v := range limits {
		if v != 0 {
			t.Errorf("limits[%d] = %v, want 0", i, v)
		}
	}
}

func TestDeriveAxisLimits_FixedAndFloating(t *testing.T) {
	for _, jt := range []JointType{Fixed, Floating} {
		got, axis, limits, err := DeriveAxisLimits(Build(jt, 0, 0), mgl64.Vec3{0, 1, 0})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", jt, err)
		}
		if got != jt || axis != nil || limits != nil {
			t.Errorf("%s: got (%s, %v, %v), want no axis or limits", jt, got, axis, limits)
		}
	}
}

func TestDeriveAxisLimits_UnderDefined(t *testing.T) {
	// half-enabled axes count as locked for classification but as free for
	// axis resolution, producing an ambiguous prismatic candidate
	halfLocked := AxisLimit{UseMin: true}
	s := Set{
		Loc: &Limits3{halfLocked, AxisLimit{}, halfLocked},
		Rot: &Limits3{locked(), locked(), locked()},
	}
	jt, _ := Classify(s)
	if jt != Prismatic {
		t.Fatalf("Classify = %s, want prismatic candidate", jt)
	}

	_, _, _, err := DeriveAxisLimits(s, mgl64.Vec3{0, 1, 0})
	if !errors.Is(err, ErrUnderDefined) {
		t.Errorf("err = %v, want ErrUnderDefined", err)
	}

	// same for an ambiguous planar candidate
	s = Set{
		Loc: &Limits3{AxisY: halfLocked},
		Rot: &Limits3{locked(), locked(), locked()},
	}
	jt, _ = Classify(s)
	if jt != Planar {
		t.Fatalf("Classify = %s, want planar candidate", jt)
	}
	_, _, _, err = DeriveAxisLimits(s, mgl64.Vec3{0, 1, 0})
	if !errors.Is(err, ErrUnderDefined) {
		t.Errorf("err = %v, want ErrUnderDefined", err)
	}
}

func TestDeriveAxisLimits_NormalizesBoneAxis(t *testing.T) {
	bone := mgl64.Vec3{1, 1, 0}
	_, axis, _, err := DeriveAxisLimits(Build(Revolute, -1, 1), bone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(axis.Len()-1) > 1e-12 {
		t.Errorf("axis length = %v, want 1", axis.Len())
	}
}

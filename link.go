package linkage

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/motionkit/linkage/constraint"
	"github.com/motionkit/linkage/pose"
)

// Link is the narrow handle onto a host scene entity representing a rigid
// body segment. It is the only place this package touches host state:
// a pose transform, a wholesale-replaceable constraint set, the bone axis
// direction, and arbitrary key/value metadata.
type Link interface {
	Name() string
	Pose() pose.Transform
	Constraints() constraint.Set
	// SetConstraints replaces the link's constraint set wholesale; old
	// constraints are discarded, never merged.
	SetConstraints(constraint.Set)
	BoneAxis() mgl64.Vec3
	SetBoneAxis(mgl64.Vec3)
	SetProperty(key string, value any)
	Property(key string) (any, bool)
}

// SpringApplier is an optional Link capability: hosts that can create a
// physical spring/damper resource implement it. Failure to apply the
// resource is logged but never blocks the metadata write; the metadata is
// authoritative.
type SpringApplier interface {
	ApplySpring(stiffness, damping float64) error
}

// ShapeHinter is an optional Link capability receiving an opaque
// visualization hint for the joint type.
type ShapeHinter interface {
	SetShapeHint(hint string)
}

// MemoryLink is a self-contained Link implementation, used by Scene and as
// a stand-in for a host entity in tests and tooling.
type MemoryLink struct {
	id        uuid.UUID
	name      string
	transform pose.Transform
	set       constraint.Set
	boneAxis  mgl64.Vec3
	props     map[string]any
	shapeHint string
}

// NewMemoryLink creates a link with an identity pose and the bone axis
// pointing along local Y.
func NewMemoryLink(name string) *MemoryLink {
	return &MemoryLink{
		id:        uuid.New(),
		name:      name,
		transform: pose.New(),
		boneAxis:  mgl64.Vec3{0, 1, 0},
		props:     make(map[string]any),
	}
}

// ID is the unique identity of the link, independent of its (possibly
// duplicated) name.
func (l *MemoryLink) ID() uuid.UUID { return l.id }

func (l *MemoryLink) Name() string { return l.name }

func (l *MemoryLink) Pose() pose.Transform { return l.transform }

func (l *MemoryLink) SetPose(t pose.Transform) { l.transform = t }

func (l *MemoryLink) Constraints() constraint.Set { return l.set }

func (l *MemoryLink) SetConstraints(s constraint.Set) { l.set = s }

func (l *MemoryLink) BoneAxis() mgl64.Vec3 { return l.boneAxis }

func (l *MemoryLink) SetBoneAxis(axis mgl64.Vec3) { l.boneAxis = axis }

func (l *MemoryLink) SetProperty(key string, value any) { l.props[key] = value }

func (l *MemoryLink) Property(key string) (any, bool) {
	v, ok := l.props[key]
	return v, ok
}

// SetShapeHint records the visualization hint; MemoryLink has nothing to
// render, it only keeps the pass-through value.
func (l *MemoryLink) SetShapeHint(hint string) { l.shapeHint = hint }

func (l *MemoryLink) ShapeHint() string { return l.shapeHint }

package linkage

import "fmt"

const DEFAULT_WORKERS = 1

// Scene is a registry of links addressable by name. It stands in for the
// host scene graph when resolving a joint's child reference; names are not
// required to be unique, which is why resolution can fail.
type Scene struct {
	Links   []*MemoryLink
	Workers int
}

// AddLink adds a link to the scene
func (s *Scene) AddLink(link *MemoryLink) {
	s.Links = append(s.Links, link)
}

// RemoveLink removes a link from the scene
func (s *Scene) RemoveLink(link *MemoryLink) {
	k := -1
	for i, l := range s.Links {
		if l == link {
			k = i
			break
		}
	}

	if k != -1 {
		s.Links = append(s.Links[:k], s.Links[k+1:]...)
	}
}

// Link resolves a link by name. Zero or multiple matches fail with
// ErrAmbiguousChild; the caller must not guess.
func (s *Scene) Link(name string) (*MemoryLink, error) {
	var found *MemoryLink
	matches := 0
	for _, l := range s.Links {
		if l.Name() == name {
			found = l
			matches++
		}
	}
	if matches != 1 {
		return nil, fmt.Errorf("link %q: %d matches: %w", name, matches, ErrAmbiguousChild)
	}
	return found, nil
}

// BuildJoint resolves the spec's child link in the scene and applies the
// joint to it. Resolution failure is fatal and nothing is written.
func (s *Scene) BuildJoint(spec JointSpec) (Diagnostics, error) {
	link, err := s.Link(spec.Child)
	if err != nil {
		return nil, fmt.Errorf("joint %q: %w", spec.Name, err)
	}
	return BuildJoint(spec, link)
}

// BuildResult is the outcome of applying one joint of a model.
type BuildResult struct {
	Joint string
	Diags Diagnostics
	Err   error
}

// BuildModel applies every joint of the model and returns one result per
// joint, in model order. Joints are fanned out over s.Workers goroutines;
// the apply itself is pure per link, so this is safe as long as the model
// names a distinct child per joint, which well-formed models do.
func (s *Scene) BuildModel(m Model) []BuildResult {
	workers := max(DEFAULT_WORKERS, s.Workers)
	results := make([]BuildResult, len(m.Joints))

	indices := make([]int, len(m.Joints))
	for i := range indices {
		indices[i] = i
	}
	task(workers, indices, func(i int) {
		diags, err := s.BuildJoint(m.Joints[i])
		results[i] = BuildResult{Joint: m.Joints[i].Name, Diags: diags, Err: err}
	})
	return results
}

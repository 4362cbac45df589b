package qem

import "fmt"

// Violation describes one invariant broken by a mesh, found by
// Validate. It implements error so tests can fail with t.Error(v)
// directly, following sksmith-conway/conway/validation.go's
// ValidateComplete pattern of returning what is wrong rather than
// panicking.
type Violation struct {
	Rule   string
	Detail string
}

func (v Violation) Error() string {
	return fmt.Sprintf("%s: %s", v.Rule, v.Detail)
}

// Validate walks every structural invariant from the data model
// (§3/§8) and returns every violation found. A nil/empty result means
// the mesh is structurally sound: every live face references three
// distinct live vertices, every live edge references two distinct live
// vertices, and no two live edges represent the same undirected pair.
func Validate(mesh *Mesh) []Violation {
	var violations []Violation

	for i, f := range mesh.Faces {
		if f.Deleted {
			continue
		}
		if f.A == f.B || f.B == f.C || f.A == f.C {
			violations = append(violations, Violation{
				Rule:   "face-distinct-indices",
				Detail: fmt.Sprintf("face %d has a repeated vertex index (%d,%d,%d)", i, f.A, f.B, f.C),
			})
			continue
		}
		for _, idx := range [3]int{f.A, f.B, f.C} {
			if !liveVertex(mesh, idx) {
				violations = append(violations, Violation{
					Rule:   "face-live-vertex",
					Detail: fmt.Sprintf("face %d references non-live vertex %d", i, idx),
				})
			}
		}
	}

	seen := make(map[[2]int]int)
	for i, e := range mesh.Edges {
		if e.Deleted {
			continue
		}
		if e.V1 == e.V2 {
			violations = append(violations, Violation{
				Rule:   "edge-distinct-endpoints",
				Detail: fmt.Sprintf("edge %d is a self-loop on vertex %d", i, e.V1),
			})
			continue
		}
		for _, idx := range [2]int{e.V1, e.V2} {
			if !liveVertex(mesh, idx) {
				violations = append(violations, Violation{
					Rule:   "edge-live-vertex",
					Detail: fmt.Sprintf("edge %d references non-live vertex %d", i, idx),
				})
			}
		}

		lo, hi := orderedPair(e.V1, e.V2)
		key := [2]int{lo, hi}
		if prior, exists := seen[key]; exists {
			violations = append(violations, Violation{
				Rule:   "edge-no-duplicates",
				Detail: fmt.Sprintf("edges %d and %d both represent (%d,%d)", prior, i, lo, hi),
			})
			continue
		}
		seen[key] = i
	}

	return violations
}

func liveVertex(mesh *Mesh, idx int) bool {
	return idx >= 0 && idx < len(mesh.Vertices) && !mesh.Vertices[idx].Deleted
}

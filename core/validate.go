// Package core: full-mesh consistency audit.

package core

import "fmt"

// validateLimit bounds every cycle walk during validation so a broken
// link that no longer closes cannot hang the audit.
const validateLimit = 1 << 20

// Validate audits the whole mesh against the cycle invariants: disk,
// radial and face cycles close, prev/next are mutual inverses on every
// node, edges have distinct endpoints, loops reference an edge that
// contains their vertex, face corner counts agree with VertCount, and
// every cross-reference points at an entity this mesh owns.
//
// Returns nil when sound, or an error wrapping ErrCorrupt naming the
// first violation found. Intended for tests and operator authors;
// regular mutation keeps the invariants without ever calling this.
// Complexity: O(edges·deg + loops + faces·size), deg being the largest
// vertex degree (each edge is searched for in both endpoints' disks).
func (m *Mesh) Validate() error {
	vset := make(map[*Vertex]struct{}, len(m.vertices))
	for _, v := range m.vertices {
		vset[v] = struct{}{}
	}
	eset := make(map[*Edge]struct{}, len(m.edges))
	for _, e := range m.edges {
		eset[e] = struct{}{}
	}
	lset := make(map[*Loop]struct{}, len(m.loops))
	for _, l := range m.loops {
		lset[l] = struct{}{}
	}
	fset := make(map[*Face]struct{}, len(m.faces))
	for _, f := range m.faces {
		fset[f] = struct{}{}
	}

	for _, e := range m.edges {
		if e.Vert1 == e.Vert2 {
			return fmt.Errorf("%w: edge with identical endpoints", ErrCorrupt)
		}
		if _, ok := vset[e.Vert1]; !ok {
			return fmt.Errorf("%w: edge endpoint 1 not in mesh", ErrCorrupt)
		}
		if _, ok := vset[e.Vert2]; !ok {
			return fmt.Errorf("%w: edge endpoint 2 not in mesh", ErrCorrupt)
		}
	}

	// Disk cycles: closure, mutual inverses, membership, and reachability
	// of every incident edge from v.Edge.
	for _, v := range m.vertices {
		if v.Edge == nil {
			continue
		}
		if _, ok := eset[v.Edge]; !ok {
			return fmt.Errorf("%w: vertex anchor edge not in mesh", ErrCorrupt)
		}
		e := v.Edge
		steps := 0
		for {
			if !e.ContainsVertex(v) {
				return fmt.Errorf("%w: disk cycle holds an edge missing its vertex", ErrCorrupt)
			}
			next := e.Next(v)
			if next == nil || next.Prev(v) != e {
				return fmt.Errorf("%w: disk links are not mutual inverses", ErrCorrupt)
			}
			if _, ok := eset[next]; !ok {
				return fmt.Errorf("%w: disk cycle holds an edge not in mesh", ErrCorrupt)
			}
			e = next
			steps++
			if e == v.Edge {
				break
			}
			if steps > validateLimit {
				return fmt.Errorf("%w: disk cycle does not close", ErrCorrupt)
			}
		}
	}

	// Every edge must be reachable inside both endpoints' disks.
	for _, e := range m.edges {
		for _, v := range []*Vertex{e.Vert1, e.Vert2} {
			if v.Edge == nil {
				return fmt.Errorf("%w: endpoint of a live edge is isolated", ErrCorrupt)
			}
			found := false
			it := v.Edge
			steps := 0
			for {
				if it == e {
					found = true
					break
				}
				it = it.Next(v)
				steps++
				if it == v.Edge || steps > validateLimit {
					break
				}
			}
			if !found {
				return fmt.Errorf("%w: edge unreachable from its endpoint's disk", ErrCorrupt)
			}
		}
	}

	// Radial cycles.
	for _, e := range m.edges {
		if e.Loop == nil {
			continue
		}
		l := e.Loop
		steps := 0
		for {
			if _, ok := lset[l]; !ok {
				return fmt.Errorf("%w: radial cycle holds a loop not in mesh", ErrCorrupt)
			}
			if l.Edge != e {
				return fmt.Errorf("%w: radial cycle holds a loop of another edge", ErrCorrupt)
			}
			if l.RadialNext == nil || l.RadialNext.RadialPrev != l {
				return fmt.Errorf("%w: radial links are not mutual inverses", ErrCorrupt)
			}
			l = l.RadialNext
			steps++
			if l == e.Loop {
				break
			}
			if steps > validateLimit {
				return fmt.Errorf("%w: radial cycle does not close", ErrCorrupt)
			}
		}
	}

	// Loops: entity membership and edge/vertex agreement.
	for _, l := range m.loops {
		if _, ok := vset[l.Vert]; !ok {
			return fmt.Errorf("%w: loop vertex not in mesh", ErrCorrupt)
		}
		if _, ok := eset[l.Edge]; !ok {
			return fmt.Errorf("%w: loop edge not in mesh", ErrCorrupt)
		}
		if _, ok := fset[l.Face]; !ok {
			return fmt.Errorf("%w: loop face not in mesh", ErrCorrupt)
		}
		if !l.Edge.ContainsVertex(l.Vert) {
			return fmt.Errorf("%w: loop vertex is not an endpoint of its edge", ErrCorrupt)
		}
	}

	// Face cycles: closure in exactly VertCount steps, mutual inverses,
	// and corner chaining (consecutive corners share the corner's edge).
	for _, f := range m.faces {
		if f.Loop == nil {
			return fmt.Errorf("%w: face without loops", ErrCorrupt)
		}
		l := f.Loop
		steps := 0
		for {
			if l.Face != f {
				return fmt.Errorf("%w: face cycle holds a loop of another face", ErrCorrupt)
			}
			if l.Next == nil || l.Next.Prev != l {
				return fmt.Errorf("%w: face links are not mutual inverses", ErrCorrupt)
			}
			if f.VertCount >= 3 && l.Next.Vert != l.Edge.OtherVertex(l.Vert) {
				return fmt.Errorf("%w: consecutive corners do not share the corner edge", ErrCorrupt)
			}
			l = l.Next
			steps++
			if l == f.Loop {
				break
			}
			if steps > validateLimit {
				return fmt.Errorf("%w: face cycle does not close", ErrCorrupt)
			}
		}
		if steps != f.VertCount {
			return fmt.Errorf("%w: face cycle length %d disagrees with corner count %d", ErrCorrupt, steps, f.VertCount)
		}
	}

	return nil
}

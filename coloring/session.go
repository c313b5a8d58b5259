// SPDX-License-Identifier: MIT
// Package: hillcolor/coloring
//
// session.go - Session: the two-phase evaluate/commit protocol.
//
// Contract:
//   • TryMove never mutates the authoritative colouring. It recolours one
//     slot of a scratch mirror, counts conflicts and restores the slot.
//   • Commit applies a Candidate only if nothing was committed since it was
//     evaluated (version check). After Commit the cached conflict count and
//     the conflicted-vertex multiset reflect the new colouring.
//   • A Session is owned by one goroutine; it is not safe for concurrent use.
//
// Complexity:
//   • TryMove: O(E). Commit: O(1). Conflicted: O(V + E) once per version.

package coloring

import (
	"fmt"
)

const (
	methodNewSession = "NewSession"
	methodTryMove    = "TryMove"
	methodCommit     = "Commit"
)

// Candidate is an evaluated, not yet committed move: recolour Vertex to
// Color, yielding Conflicts monochromatic edges.
type Candidate struct {
	Vertex    int
	Color     int
	Conflicts int

	owner   *Session
	version uint64
}

// Session holds the mutable state of one search.
type Session struct {
	p *Problem

	cur     Coloring // authoritative colouring
	scratch Coloring // mirror of cur, differs only inside tryMove

	conflicts  int
	conflicted []int
	fresh      bool // conflicted matches cur

	version     uint64
	iter        int
	moves       int
	evaluations int
	trajectory  []int
	record      bool
}

// NewSession starts a session on p from a copy of initial.
//
// Errors:
//   - ErrInvalidParameter: p == nil.
//   - ErrInvalidColoring: initial fails p.Validate.
func NewSession(p *Problem, initial Coloring) (*Session, error) {
	if p == nil {
		return nil, fmt.Errorf("%s: nil problem: %w", methodNewSession, ErrInvalidParameter)
	}
	if err := p.Validate(initial); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewSession, err)
	}

	s := &Session{
		p:       p,
		cur:     initial.Clone(),
		scratch: initial.Clone(),
	}
	s.conflicts = p.ConflictCount(s.cur)

	return s, nil
}

// Problem returns the problem the session runs on.
func (s *Session) Problem() *Problem { return s.p }

// Coloring returns a copy of the current colouring.
func (s *Session) Coloring() Coloring { return s.cur.Clone() }

// ColorOf returns the current colour of v. v must be in 0..N-1.
func (s *Session) ColorOf(v int) int { return s.cur[v] }

// Conflicts returns the conflict count of the current colouring.
func (s *Session) Conflicts() int { return s.conflicts }

// Iteration returns the number of loop passes started so far.
func (s *Session) Iteration() int { return s.iter }

// Moves returns the number of committed candidates.
func (s *Session) Moves() int { return s.moves }

// Evaluations returns the number of candidate evaluations.
func (s *Session) Evaluations() int { return s.evaluations }

// Trajectory returns a copy of the recorded per-iteration conflict counts,
// or nil when recording is off.
func (s *Session) Trajectory() []int {
	if !s.record {
		return nil
	}
	out := make([]int, len(s.trajectory))
	copy(out, s.trajectory)

	return out
}

// Conflicted returns the conflicted-vertex multiset of the current
// colouring. The slice is shared with the session until the next Commit;
// callers must not modify it.
func (s *Session) Conflicted() []int {
	if !s.fresh {
		s.conflicted = s.p.ConflictedVertices(s.cur)
		s.fresh = true
	}

	return s.conflicted
}

// TryMove evaluates recolouring v to color without committing it.
//
// Errors:
//   - ErrInvalidParameter: v outside 0..N-1 or color outside [0,k).
func (s *Session) TryMove(v, color int) (Candidate, error) {
	if v < 0 || v >= s.p.n {
		return Candidate{}, fmt.Errorf("%s: vertex %d outside [0,%d): %w", methodTryMove, v, s.p.n, ErrInvalidParameter)
	}
	if color < 0 || color >= s.p.k {
		return Candidate{}, fmt.Errorf("%s: colour %d outside [0,%d): %w", methodTryMove, color, s.p.k, ErrInvalidParameter)
	}

	return s.tryMove(v, color), nil
}

// tryMove is TryMove without range checks, for in-package strategies whose
// vertices come from the multiset and colours from [0,k).
func (s *Session) tryMove(v, color int) Candidate {
	s.scratch[v] = color
	cnt := s.p.ConflictCount(s.scratch)
	s.scratch[v] = s.cur[v]
	s.evaluations++

	return Candidate{Vertex: v, Color: color, Conflicts: cnt, owner: s, version: s.version}
}

// Commit applies c to the authoritative colouring.
//
// Errors:
//   - ErrStaleCandidate: another candidate was committed after c was evaluated,
//     or c did not come from this session's TryMove.
func (s *Session) Commit(c Candidate) error {
	if c.owner != s || c.version != s.version {
		return fmt.Errorf("%s: candidate (%d→%d) at version %d, session at %d: %w",
			methodCommit, c.Vertex, c.Color, c.version, s.version, ErrStaleCandidate)
	}

	s.cur[c.Vertex] = c.Color
	s.scratch[c.Vertex] = c.Color
	s.conflicts = c.Conflicts
	s.fresh = false
	s.version++
	s.moves++

	return nil
}

// beginIteration counts one loop pass and records the current conflicts.
func (s *Session) beginIteration() {
	s.iter++
	if s.record {
		s.trajectory = append(s.trajectory, s.conflicts)
	}
}

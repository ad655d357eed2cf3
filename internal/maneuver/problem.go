package maneuver

import (
	"errors"
	"fmt"
	"sort"
)

// Problem is the immutable instance of the maneuver scheduling problem.
//
// Switches are indexed 1..N. Teams are indexed 0..M, where team 0 is the
// dummy team holding every remotely controllable switch.
type Problem struct {
	N int
	M int

	technology []Technology // len N+1, index 0 unused
	p          []float64    // len N+1, p[0] == 0
	s          [][][]float64 // [N+1][N+1][M+1]

	predecessors [][]int // len N+1, sorted ascending, index 0 unused
	successors   [][]int // len N+1, sorted ascending, index 0 unused
	precedence   [][]bool
}

// NewProblem builds a Problem from raw instance data and computes the
// transitive closure of the precedence graph once, at construction time.
// predecessors must be indexed 1..n (predecessors[0] is ignored) and contain
// only direct predecessors.
func NewProblem(n, m int, technology []Technology, p []float64, s [][][]float64, predecessors [][]int) (*Problem, error) {
	if n < 0 || m < 0 {
		return nil, fmt.Errorf("maneuver: n and m must be >= 0 (got n=%d, m=%d)", n, m)
	}
	if len(technology) != n+1 {
		return nil, fmt.Errorf("maneuver: technology must have length n+1=%d (got %d)", n+1, len(technology))
	}
	if len(p) != n+1 {
		return nil, fmt.Errorf("maneuver: p must have length n+1=%d (got %d)", n+1, len(p))
	}
	if len(s) != n+1 {
		return nil, fmt.Errorf("maneuver: s must have length n+1=%d (got %d)", n+1, len(s))
	}
	for i := range s {
		if len(s[i]) != n+1 {
			return nil, fmt.Errorf("maneuver: s[%d] must have length n+1=%d (got %d)", i, n+1, len(s[i]))
		}
		for j := range s[i] {
			if len(s[i][j]) != m+1 {
				return nil, fmt.Errorf("maneuver: s[%d][%d] must have length m+1=%d (got %d)", i, j, m+1, len(s[i][j]))
			}
		}
	}
	if len(predecessors) != n+1 {
		return nil, fmt.Errorf("maneuver: predecessors must have length n+1=%d (got %d)", n+1, len(predecessors))
	}

	prob := &Problem{
		N:            n,
		M:            m,
		technology:   technology,
		p:            p,
		s:            s,
		predecessors: make([][]int, n+1),
		successors:   make([][]int, n+1),
	}
	prob.p[0] = 0

	for j := 1; j <= n; j++ {
		preds := append([]int(nil), predecessors[j]...)
		sort.Ints(preds)
		prob.predecessors[j] = preds
	}
	for j := 1; j <= n; j++ {
		for _, i := range prob.predecessors[j] {
			prob.successors[i] = append(prob.successors[i], j)
		}
	}
	for i := range prob.successors {
		sort.Ints(prob.successors[i])
	}

	if err := prob.computeClosure(); err != nil {
		return nil, err
	}
	return prob, nil
}

// computeClosure fills in the transitive closure of the direct precedence
// relation: precedence[i][j] is true iff i precedes j directly or
// indirectly. It is computed once, by expanding each switch's predecessor
// set backwards, exactly as the original instance loader does.
func (prob *Problem) computeClosure() error {
	n := prob.N
	prob.precedence = make([][]bool, n+1)
	for i := range prob.precedence {
		prob.precedence[i] = make([]bool, n+1)
	}

	processed := make([]bool, n+1)
	for j := 1; j <= n; j++ {
		for i := range processed {
			processed[i] = false
		}
		pending := append([]int(nil), prob.predecessors[j]...)

		for len(pending) > 0 {
			i := pending[len(pending)-1]
			pending = pending[:len(pending)-1]

			if prob.precedence[i][j] {
				continue
			}
			prob.precedence[i][j] = true
			processed[i] = true

			for _, k := range prob.predecessors[i] {
				if !processed[k] {
					pending = append(pending, k)
				}
			}
		}
	}

	for j := 1; j <= n; j++ {
		if prob.precedence[j][j] {
			return errors.New("maneuver: precedence graph contains a cycle")
		}
	}
	return nil
}

// Technology returns the technology of switch i (1..N).
func (prob *Problem) Technology(i int) Technology { return prob.technology[i] }

// P returns the processing time of switch i (0..N); P(0) is always 0.
func (prob *Problem) P(i int) float64 { return prob.p[i] }

// S returns the travel time for team l moving from the location of i to j.
func (prob *Problem) S(i, j, l int) float64 { return prob.s[i][j][l] }

// Predecessors returns the direct predecessors of j, sorted ascending.
func (prob *Problem) Predecessors(j int) []int { return prob.predecessors[j] }

// Successors returns the direct successors of i, sorted ascending.
func (prob *Problem) Successors(i int) []int { return prob.successors[i] }

// Precedes reports whether i precedes j, directly or transitively.
func (prob *Problem) Precedes(i, j int) bool { return prob.precedence[i][j] }

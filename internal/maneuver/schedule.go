package maneuver

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// Schedule is a solution: m+1 lanes, lane 0 holding remote operations and
// lanes 1..m holding the operations assigned to each manual team, in
// execution order.
type Schedule [][]int

// NewEmptySchedule returns a schedule with m+1 empty lanes.
func NewEmptySchedule(m int) Schedule {
	s := make(Schedule, m+1)
	for l := range s {
		s[l] = []int{}
	}
	return s
}

// Clone returns a deep copy; every neighborhood move operates on a clone so
// the source entry is never mutated.
func (s Schedule) Clone() Schedule {
	clone := make(Schedule, len(s))
	for l, lane := range s {
		clone[l] = append(make([]int, 0, len(lane)), lane...)
	}
	return clone
}

// Evaluation pairs the makespan with the sum of completion times. A
// makespan of +Inf signals infeasibility.
type Evaluation struct {
	Makespan       float64
	SumCompletions float64
}

// Infeasible is the sentinel evaluation returned when a schedule cannot be
// simulated to completion.
var Infeasible = Evaluation{Makespan: math.Inf(1), SumCompletions: math.Inf(1)}

func (e Evaluation) IsFeasible() bool { return !math.IsInf(e.Makespan, 1) }

// Entry couples a schedule with its evaluation, threaded through
// neighborhoods, local search and ILS.
type Entry struct {
	Schedule   Schedule
	Evaluation Evaluation
}

// Clone returns an entry whose schedule is a deep copy of the receiver's.
func (e Entry) Clone() Entry {
	return Entry{Schedule: e.Schedule.Clone(), Evaluation: e.Evaluation}
}

// PrintSolution writes the schedule in the pinned "REMOTE : [...]" /
// "TEAM l : [...]" format.
func PrintSolution(w io.Writer, s Schedule) {
	fmt.Fprint(w, "REMOTE : [")
	writeLane(w, s[0])
	fmt.Fprintln(w, "]")

	for l := 1; l < len(s); l++ {
		fmt.Fprintf(w, "TEAM %d : [", l)
		writeLane(w, s[l])
		fmt.Fprintln(w, "]")
	}
}

func writeLane(w io.Writer, lane []int) {
	var b strings.Builder
	for _, id := range lane {
		fmt.Fprintf(&b, "%d, ", id)
	}
	io.WriteString(w, b.String())
}

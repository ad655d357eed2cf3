package ts

import "fmt"

// Neighborhood selects which move family the tabu search explores.
type Neighborhood string

const (
	NeighborhoodReassignment Neighborhood = "reassignment"
	NeighborhoodDirectSwap   Neighborhood = "directswap"
)

type Config struct {
	Iterations       int
	IterationsPerJob int

	TabuTenure     int
	TabuTenureRand int

	NeighborsPerIter int

	Neighborhood Neighborhood
}

func DefaultConfig() Config {
	return Config{
		Iterations:       0,
		IterationsPerJob: 250,

		TabuTenure:     7,
		TabuTenureRand: 3,

		NeighborsPerIter: 90,
		Neighborhood:     NeighborhoodReassignment,
	}
}

func (c Config) Validate() error {
	if c.Iterations <= 0 && c.IterationsPerJob <= 0 {
		return fmt.Errorf("ts: either Iterations > 0 or IterationsPerJob > 0 must be set")
	}
	if c.TabuTenure <= 0 {
		return fmt.Errorf("ts: TabuTenure must be > 0 (got %d)", c.TabuTenure)
	}
	if c.TabuTenureRand < 0 {
		return fmt.Errorf("ts: TabuTenureRand must be >= 0 (got %d)", c.TabuTenureRand)
	}
	if c.NeighborsPerIter <= 0 {
		return fmt.Errorf("ts: NeighborsPerIter must be > 0 (got %d)", c.NeighborsPerIter)
	}
	switch c.Neighborhood {
	case NeighborhoodReassignment, NeighborhoodDirectSwap:
	default:
		return fmt.Errorf("ts: unknown neighborhood %q", c.Neighborhood)
	}
	return nil
}

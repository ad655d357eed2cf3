package sa

import "fmt"

// Neighborhood selects which move family perturbs the current solution
// at each temperature step.
type Neighborhood string

const (
	NeighborhoodSwap   Neighborhood = "swap"
	NeighborhoodInsert Neighborhood = "insert"
)

type Config struct {
	Iterations       int
	IterationsPerJob int

	InitialTemp float64
	FinalTemp   float64
	Alpha       float64

	Neighborhood Neighborhood
}

func DefaultConfig() Config {
	return Config{
		Iterations:       0,
		IterationsPerJob: 2500,

		InitialTemp: 2000.0,
		FinalTemp:   0.5,
		Alpha:       0.995,

		Neighborhood: NeighborhoodSwap,
	}
}

func (c Config) Validate() error {
	if c.Iterations <= 0 && c.IterationsPerJob <= 0 {
		return fmt.Errorf("sa: either Iterations > 0 or IterationsPerJob > 0 must be set")
	}
	if c.InitialTemp <= 0 {
		return fmt.Errorf("sa: InitialTemp must be > 0 (got %f)", c.InitialTemp)
	}
	if c.FinalTemp <= 0 {
		return fmt.Errorf("sa: FinalTemp must be > 0 (got %f)", c.FinalTemp)
	}
	if c.FinalTemp >= c.InitialTemp {
		return fmt.Errorf("sa: FinalTemp must be < InitialTemp (got %f >= %f)", c.FinalTemp, c.InitialTemp)
	}
	if c.Alpha <= 0 || c.Alpha >= 1 {
		return fmt.Errorf("sa: Alpha must lie in (0,1) (got %f)", c.Alpha)
	}
	switch c.Neighborhood {
	case NeighborhoodSwap, NeighborhoodInsert:
	default:
		return fmt.Errorf("sa: unknown neighborhood %q", c.Neighborhood)
	}
	return nil
}

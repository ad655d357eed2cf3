package aco

import "fmt"

type Config struct {
	Iterations       int
	IterationsPerJob int

	Ants int

	Alpha float64
	Beta  float64

	Rho float64

	Q float64

	Tau0 float64

	CandidateK int
}

func DefaultConfig() Config {
	return Config{
		Iterations:       0,
		IterationsPerJob: 120,

		Ants: 35,

		Alpha: 1.0,
		Beta:  2.0,

		Rho: 0.20,
		Q:   1000.0,

		Tau0: 1.0,

		CandidateK: 0,
	}
}

func (c Config) Validate() error {
	if c.Iterations <= 0 && c.IterationsPerJob <= 0 {
		return fmt.Errorf("aco: either Iterations > 0 or IterationsPerJob > 0 must be set")
	}
	if c.Ants <= 0 {
		return fmt.Errorf("aco: Ants must be > 0 (got %d)", c.Ants)
	}
	if c.Alpha < 0 {
		return fmt.Errorf("aco: Alpha must be >= 0 (got %f)", c.Alpha)
	}
	if c.Beta < 0 {
		return fmt.Errorf("aco: Beta must be >= 0 (got %f)", c.Beta)
	}
	if c.Rho <= 0 || c.Rho >= 1 {
		return fmt.Errorf("aco: Rho must lie in (0,1) (got %f)", c.Rho)
	}
	if c.Q <= 0 {
		return fmt.Errorf("aco: Q must be > 0 (got %f)", c.Q)
	}
	if c.Tau0 <= 0 {
		return fmt.Errorf("aco: Tau0 must be > 0 (got %f)", c.Tau0)
	}
	if c.CandidateK < 0 {
		return fmt.Errorf("aco: CandidateK must be >= 0 (got %d)", c.CandidateK)
	}
	return nil
}

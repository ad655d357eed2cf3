package maneuver

import "math/rand"

// GenerateRandom builds a synthetic instance for benchmarking and testing,
// the maneuver-scheduling analogue of the teacher repository's
// RandomInstance: remoteFrac controls the fraction of switches that are
// remotely controllable, precedenceDensity controls how densely the
// (acyclic, by construction: edges only go from a lower to a higher index)
// precedence graph is populated, and travel/processing times are drawn
// uniformly from [1, 99], matching the range the teacher's benchmark uses
// for processing times.
func GenerateRandom(n, m int, remoteFrac, precedenceDensity float64, rng *rand.Rand) *Problem {
	if rng == nil {
		panic("maneuver: random number generator not initialized (nil)")
	}
	if n <= 0 || m < 0 {
		panic("maneuver: invalid instance size")
	}
	if remoteFrac < 0 || remoteFrac > 1 || precedenceDensity < 0 || precedenceDensity > 1 {
		panic("maneuver: invalid generator probabilities")
	}

	technology := make([]Technology, n+1)
	p := make([]float64, n+1)
	for i := 1; i <= n; i++ {
		if rng.Float64() < remoteFrac {
			technology[i] = Remote
		} else {
			technology[i] = Manual
		}
		p[i] = float64(1 + rng.Intn(99))
	}

	predecessors := make([][]int, n+1)
	for j := 2; j <= n; j++ {
		for i := 1; i < j; i++ {
			if rng.Float64() < precedenceDensity {
				predecessors[j] = append(predecessors[j], i)
			}
		}
	}

	s := make([][][]float64, n+1)
	for i := range s {
		s[i] = make([][]float64, n+1)
		for j := range s[i] {
			s[i][j] = make([]float64, m+1)
			for l := 1; l <= m; l++ {
				s[i][j][l] = float64(1 + rng.Intn(99))
			}
		}
	}

	prob, err := NewProblem(n, m, technology, p, s, predecessors)
	if err != nil {
		panic(err)
	}
	return prob
}

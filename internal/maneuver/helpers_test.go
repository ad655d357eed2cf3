package maneuver

import (
	"io"
	"math/rand"
	"strings"
)

func deterministicRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func bytesReader(s string) io.Reader {
	return strings.NewReader(s)
}

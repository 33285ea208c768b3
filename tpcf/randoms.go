package tpcf

import (
	"math/rand"

	"github.com/astriden/twopoint/paircount"
)

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// UniformCatalog generates n points distributed uniformly over the box.
// Determinism policy: the same seed yields the same catalog; seed==0
// selects a fixed default seed, never a time-based source.
func UniformCatalog(n int, box paircount.Box, seed int64) (x, y, z []float64, err error) {
	if box.LX <= 0 || box.LY <= 0 || box.LZ <= 0 {
		return nil, nil, nil, ErrBadBox
	}
	if seed == 0 {
		seed = defaultRNGSeed
	}
	rng := rand.New(rand.NewSource(seed))

	x = make([]float64, n)
	y = make([]float64, n)
	z = make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = rng.Float64() * box.LX
		y[i] = rng.Float64() * box.LY
		z[i] = rng.Float64() * box.LZ
	}

	return x, y, z, nil
}

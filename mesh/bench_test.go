package mesh_test

import (
	"math/rand"
	"testing"

	"github.com/astriden/twopoint/mesh"
	"github.com/astriden/twopoint/paircount"
)

// benchmarkBuild measures mesh construction for n uniform points.
func benchmarkBuild(b *testing.B, n int) {
	rng := rand.New(rand.NewSource(1))
	x := make([]float64, n)
	y := make([]float64, n)
	z := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = rng.Float64() * 100
		y[i] = rng.Float64() * 100
		z[i] = rng.Float64() * 100
	}
	box := paircount.Box{LX: 100, LY: 100, LZ: 100, Periodic: true}
	opts := mesh.DefaultOptions(5)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mesh.Build(x, y, z, box, opts); err != nil {
			b.Fatalf("build failed: %v", err)
		}
	}
}

// BenchmarkBuild_10k benchmarks sorting 10 000 points.
func BenchmarkBuild_10k(b *testing.B) { benchmarkBuild(b, 10_000) }

// BenchmarkBuild_100k benchmarks sorting 100 000 points.
func BenchmarkBuild_100k(b *testing.B) { benchmarkBuild(b, 100_000) }

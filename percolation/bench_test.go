package percolation_test

import (
	"testing"

	"github.com/katalvlaran/percolate/percolation"
	"github.com/katalvlaran/percolate/random"
)

// BenchmarkOpenUntilPercolates measures one full trial on a 200×200 grid.
func BenchmarkOpenUntilPercolates(b *testing.B) {
	const n = 200
	src := random.New(42)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, err := percolation.New(n)
		if err != nil {
			b.Fatalf("New failed: %v", err)
		}
		for !m.Percolates() {
			_ = m.Open(src.UniformInt(1, n+1), src.UniformInt(1, n+1))
		}
	}
}

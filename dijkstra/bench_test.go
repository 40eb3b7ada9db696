package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/graphrank/builder"
	"github.com/katalvlaran/graphrank/dijkstra"
)

func benchmarkScore(b *testing.B, n int, p float64) {
	g, err := builder.BuildGraph(0, n, []builder.BuilderOption{
		builder.WithSeed(1),
		builder.WithWeightFn(builder.UniformWeightFn(1, 100)),
	}, builder.RandomSparse(p))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.Score(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkScore_Sparse100(b *testing.B) { benchmarkScore(b, 100, 0.05) }
func BenchmarkScore_Dense100(b *testing.B) { benchmarkScore(b, 100, 0.9) }
func BenchmarkScore_Sparse1000(b *testing.B) { benchmarkScore(b, 1000, 0.01) }

package dispatch_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/katalvlaran/graphrank/builder"
	"github.com/katalvlaran/graphrank/dijkstra"
	"github.com/katalvlaran/graphrank/internal/dispatch"
	"github.com/katalvlaran/graphrank/ranking"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run feeds input to a fresh dispatcher and returns its output.
func run(t *testing.T, input string, opts ...dispatch.Option) (string, *dispatch.Dispatcher, error) {
	t.Helper()
	var out bytes.Buffer
	d := dispatch.New(strings.NewReader(input), &out, opts...)
	err := d.Run(context.Background())

	return out.String(), d, err
}

func TestRun_TriangleScenario(t *testing.T) {
	out, d, err := run(t, "3 1\nAggiungiGrafo\n0,4,1\n0,0,0\n0,1,0\nTopK\n")
	require.NoError(t, err)

	assert.Equal(t, "0\n", out)
	assert.Equal(t, 3, d.Order())
	assert.Equal(t, dispatch.Stats{Submitted: 1, Admitted: 1, Reports: 1}, d.Stats())

	w, ok := d.Ranking().Worst()
	require.True(t, ok)
	assert.Equal(t, uint64(3), w.Score)
}

func TestRun_LeaderboardOrder(t *testing.T) {
	input := strings.Join([]string{
		"2,2",
		"TopK",
		"AggiungiGrafo", "0,10", "0,0", // score 10, id 0
		"AggiungiGrafo", "0,20", "0,0", // score 20, id 1
		"AggiungiGrafo", "0,30", "0,0", // score 30, id 2 (dropped)
		"TopK",
		"AggiungiGrafo", "0,5", "0,0", // score 5, id 3 (evicts 20)
		"TopK",
		"AggiungiGrafo", "0,10", "0,0", // score 10, id 4 (ties worst, dropped)
		"TopK",
		"",
	}, "\n")

	out, d, err := run(t, input)
	require.NoError(t, err)
	assert.Equal(t, "\n0 1\n3 0\n3 0\n", out)
	assert.Equal(t, dispatch.Stats{Submitted: 5, Admitted: 3, Reports: 4}, d.Stats())
}

func TestRun_ToleratesLayout(t *testing.T) {
	// CRLF line endings, blank lines, spaces instead of commas, no final newline.
	input := "2 1\r\n\r\nAggiungiGrafo\r\n0 7\r\n0 0\r\n\nTopK"
	out, _, err := run(t, input)
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func TestRun_ZeroCapacity(t *testing.T) {
	out, d, err := run(t, "1 0\nAggiungiGrafo\n0\nTopK\nTopK\n")
	require.NoError(t, err)
	assert.Equal(t, "\n\n", out)
	assert.Equal(t, 0, d.Stats().Admitted)
}

func TestRun_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", dispatch.ErrBadHeader},
		{"missing capacity", "3", dispatch.ErrBadHeader},
		{"zero vertices", "0 2\n", dispatch.ErrBadHeader},
		{"bad header token", "x 2\n", dispatch.ErrMalformedNumber},
		{"negative weight", "2 1\nAggiungiGrafo\n0,-1\n0,0\n", dispatch.ErrMalformedNumber},
		{"truncated", "2 1\nAggiungiGrafo\n0,1\n", dispatch.ErrTruncatedMatrix},
		{"truncated before command", "2 1\nAggiungiGrafo\n0,1\n0\nTopK\n", dispatch.ErrTruncatedMatrix},
		{"unknown command", "2 1\nRemoveGraph\n", dispatch.ErrUnknownCommand},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := run(t, tc.input)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRun_HugeTotalDoesNotWin(t *testing.T) {
	in := "3 1\n" +
		"AggiungiGrafo\n0,9223372036854775808,9223372036854775808\n0,0,0\n0,0,0\n" +
		"AggiungiGrafo\n0,1,1\n0,0,0\n0,0,0\n" +
		"TopK\n"
	out, _, err := run(t, in)
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestRun_OutputBeforeErrorIsKept(t *testing.T) {
	out, _, err := run(t, "1 1\nAggiungiGrafo\n0\nTopK\nBogus\n")
	assert.ErrorIs(t, err, dispatch.ErrUnknownCommand)
	assert.Contains(t, err.Error(), "line 5")
	assert.Equal(t, "0\n", out)
}

func TestRun_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	d := dispatch.New(strings.NewReader("1 1\nTopK\n"), &out)
	err := d.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestRun_LogsSubmissions(t *testing.T) {
	var logs bytes.Buffer
	logger := zerolog.New(&logs).Level(zerolog.DebugLevel)

	_, _, err := run(t, "1 1\nAggiungiGrafo\n0\n", dispatch.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, logs.String(), `"graph_id":0`)
	assert.Contains(t, logs.String(), `"admitted":true`)
}

func TestEncoder_RoundTrip(t *testing.T) {
	const (
		n      = 12
		k      = 4
		graphs = 30
	)
	var stream bytes.Buffer
	enc := dispatch.NewEncoder(&stream)
	require.NoError(t, enc.Header(n, k))

	ref := ranking.New(k)
	for id := 0; id < graphs; id++ {
		g, err := builder.BuildGraph(id, n, []builder.BuilderOption{
			builder.WithSeed(int64(id)),
			builder.WithWeightFn(builder.UniformWeightFn(1, 30)),
		}, builder.RandomSparse(0.2))
		require.NoError(t, err)
		score, err := dijkstra.Score(g)
		require.NoError(t, err)
		ref.Offer(score, id)

		m, err := builder.BuildMatrix(n, []builder.BuilderOption{
			builder.WithSeed(int64(id)),
			builder.WithWeightFn(builder.UniformWeightFn(1, 30)),
		}, builder.RandomSparse(0.2))
		require.NoError(t, err)
		require.NoError(t, enc.Submit(m))
	}
	require.NoError(t, enc.Report())
	require.NoError(t, enc.Flush())

	out, d, err := run(t, stream.String())
	require.NoError(t, err)
	assert.Equal(t, ref.Format()+"\n", out)
	assert.Equal(t, graphs, d.Stats().Submitted)
}

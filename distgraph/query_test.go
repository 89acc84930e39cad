package distgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stnet/distgraph"
)

func TestIsDistanceLessThan_Triangle(t *testing.T) {
	g, a, _, c := triangle(t)
	require.NoError(t, g.FullPropagate())
	before := potentials(t, g, g.Nodes())

	tests := []struct {
		name     string
		src, dst distgraph.NodeID
		bound    distgraph.Time
		want     bool
	}{
		{"just above shortest path", a, c, 9, true},
		{"equal to shortest path", a, c, Len8, false},
		{"far above", a, c, 100, true},
		{"no path", c, a, 1, false},
		{"no path large bound", c, a, 1000, false},
		{"same node positive bound", a, a, 1, true},
		{"same node zero bound", a, a, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := g.IsDistanceLessThan(tc.src, tc.dst, tc.bound)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	// The trial search never touches potentials.
	assert.Equal(t, before, potentials(t, g, g.Nodes()))
}

func TestIsDistanceLessThan_ZeroLengthPath(t *testing.T) {
	g := distgraph.NewGraph()
	a, b, c := g.CreateNode(), g.CreateNode(), g.CreateNode()
	mustAdd(t, g, a, b, Len0)
	mustAdd(t, g, b, c, Len0)
	mustAdd(t, g, a, c, Len5)
	require.NoError(t, g.FullPropagate())

	ok, err := g.IsDistanceLessThan(a, c, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = g.IsDistanceLessThan(c, a, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsDistanceLessThan_BoundOneFallsBackToBestFirst(t *testing.T) {
	// A→B(-3), B→C(2): distance −1 < 1 without any zero-length edge.
	g := distgraph.NewGraph()
	a, b, c := g.CreateNode(), g.CreateNode(), g.CreateNode()
	mustAdd(t, g, a, b, -Len3)
	mustAdd(t, g, b, c, 2)
	require.NoError(t, g.FullPropagate())

	ok, err := g.IsDistanceLessThan(a, c, 1)
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestIsDistanceLessThan_MarkingApproximation pins the documented
// approximation: X is first queued through the direct S→X edge, so the
// better value arriving later through Y is not followed and the trial search misses
// the S→Y→X→T path of length 10.
func TestIsDistanceLessThan_MarkingApproximation(t *testing.T) {
	g := distgraph.NewGraph()
	s, x, y, tt := g.CreateNode(), g.CreateNode(), g.CreateNode(), g.CreateNode()
	mustAdd(t, g, s, x, Len10)
	mustAdd(t, g, s, y, Len0)
	mustAdd(t, g, y, x, Len0)
	mustAdd(t, g, x, tt, Len10)
	require.NoError(t, g.FullPropagate())

	d, err := g.ShortestPath(s, tt)
	require.NoError(t, err)
	require.Equal(t, Len10, d)

	ok, err := g.IsDistanceLessThan(s, tt, 15)
	require.NoError(t, err)
	assert.False(t, ok, "the trial search can miss a path")

	// With more slack the first value already suffices.
	ok, err = g.IsDistanceLessThan(s, tt, 21)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsDistanceLessThan_Errors(t *testing.T) {
	g, a, b, _ := triangle(t)

	_, err := g.IsDistanceLessThan(a, b, distgraph.MaxLength+1)
	assert.ErrorIs(t, err, distgraph.ErrOutOfBounds)

	other := distgraph.NewGraph().CreateNode()
	_, err = g.IsDistanceLessThan(a, other, 1)
	assert.ErrorIs(t, err, distgraph.ErrInvalidHandle)
}

// TestIsDistanceLessThan_SoundOnRandomNetworks checks that a true answer is
// always backed by an actual shortest distance below the bound.
func TestIsDistanceLessThan_SoundOnRandomNetworks(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		nw := randomConsistent(t, seed, 8, 20)
		require.NoError(t, nw.g.FullPropagate())
		for _, src := range nw.nodes {
			for _, dst := range nw.nodes {
				bound := distgraph.Time(nw.rng.Intn(60) - 20)
				ok, err := nw.g.IsDistanceLessThan(src, dst, bound)
				require.NoError(t, err)
				d, err := nw.g.ShortestPath(src, dst)
				require.NoError(t, err)
				if ok {
					assert.Less(t, int64(d), int64(bound), "seed %d", seed)
				}
			}
		}
	}
}

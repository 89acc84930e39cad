package distgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chain builds 0→1→…→n-1 with unit lengths and a shortcut 0→n-1 of length n.
func chain(t *testing.T, n int) (*Graph, []NodeID) {
	t.Helper()
	g := NewGraph()
	ids := make([]NodeID, n)
	for i := range ids {
		ids[i] = g.CreateNode()
	}
	for i := 0; i+1 < n; i++ {
		_, err := g.AddEdgeSpec(ids[i], ids[i+1], 1)
		require.NoError(t, err)
	}
	_, err := g.AddEdgeSpec(ids[0], ids[n-1], Time(n))
	require.NoError(t, err)

	return g, ids
}

func TestGenerationRollover(t *testing.T) {
	g, ids := chain(t, 5)
	g.epochLimit = 3

	for round := 0; round < 10; round++ {
		require.NoError(t, g.FullPropagate())
		for i, src := range ids {
			require.NoError(t, g.DistancesFrom(src))
			for j, dst := range ids {
				d := g.Distance(dst)
				if j < i {
					assert.True(t, d.IsInf(), "round %d: %d→%d", round, i, j)
					continue
				}
				assert.Equal(t, Time(j-i), d, "round %d: %d→%d", round, i, j)
			}
		}
		require.LessOrEqual(t, g.generation, g.epochLimit)
	}
}

func TestMarkRollover(t *testing.T) {
	g, ids := chain(t, 4)
	g.epochLimit = 2
	require.NoError(t, g.FullPropagate())

	for round := 0; round < 10; round++ {
		ok, err := g.IsDistanceLessThan(ids[0], ids[3], 4)
		require.NoError(t, err)
		assert.True(t, ok, "round %d", round)

		ok, err = g.IsDistanceLessThan(ids[0], ids[3], 3)
		require.NoError(t, err)
		assert.False(t, ok, "round %d", round)

		require.LessOrEqual(t, g.markGlobal, g.epochLimit)
	}
}

func TestRolloverClearsStamps(t *testing.T) {
	g, ids := chain(t, 3)
	g.epochLimit = 1

	require.NoError(t, g.DistancesFrom(ids[0]))
	require.Equal(t, Time(2), g.Distance(ids[2]))

	// The next search wraps the counter; a node it does not reach must not
	// look stamped by the new epoch.
	require.NoError(t, g.DistancesFrom(ids[2]))
	assert.Equal(t, uint64(1), g.generation)
	assert.True(t, g.Distance(ids[0]).IsInf())
	for i := range g.nodes {
		if int32(i) != ids[2].slot {
			assert.NotEqual(t, g.generation, g.nodes[i].generation)
		}
	}
}

func TestAppendSlotDoubles(t *testing.T) {
	var list []int32
	caps := []int{}
	for i := int32(0); i < 9; i++ {
		list = appendSlot(list, i)
		caps = append(caps, cap(list))
	}
	assert.Equal(t, []int{1, 2, 4, 4, 8, 8, 8, 8, 16}, caps)

	list, ok := removeSlot(list, 4)
	require.True(t, ok)
	assert.Equal(t, []int32{0, 1, 2, 3, 5, 6, 7, 8}, list)

	_, ok = removeSlot(list, 42)
	assert.False(t, ok)
}

// File: epochs.go
// Role: Generation and mark counters that invalidate per-node scratch state
//       in O(1), with rollover handling.

package distgraph

// nextGeneration starts a new propagation epoch and returns it. Every node's
// generation-scoped state (distance, depth, predecessor) becomes invalid at
// once. On overflow all per-node stamps are rewritten to 0 first.
func (g *Graph) nextGeneration() uint64 {
	if g.generation >= g.epochLimit {
		for i := range g.nodes {
			g.nodes[i].generation = 0
		}
		g.generation = 0
		g.logger.Debug("distgraph: generation counter rolled over", "nodes", len(g.nodes))
	}
	g.generation++

	return g.generation
}

// unmarkAll clears every mark in O(1) amortized.
func (g *Graph) unmarkAll() {
	if g.markGlobal >= g.epochLimit {
		for i := range g.nodes {
			g.nodes[i].mark = 0
		}
		g.markGlobal = 0
		g.logger.Debug("distgraph: mark counter rolled over", "nodes", len(g.nodes))
	}
	g.markGlobal++
}

func (g *Graph) mark(slot int32) { g.nodes[slot].mark = g.markGlobal }

func (g *Graph) isMarked(slot int32) bool { return g.nodes[slot].mark == g.markGlobal }

// touch stamps n with the current generation on first contact, caching the
// potential before any update of this run in distance.
func (g *Graph) touch(n *node) {
	if n.generation == g.generation {
		return
	}
	n.generation = g.generation
	n.distance = n.potential
	n.depth = 0
	n.predecessor = noEdge
}

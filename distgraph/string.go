// File: string.go
// Role: Plain-text edge dump used by tests and stnctl dump.

package distgraph

import (
	"strconv"
	"strings"
)

// String dumps every live edge as a "from to length" line, in edge slot
// order. Endpoints are node slot indexes.
func (g *Graph) String() string {
	var b strings.Builder
	for i := range g.edges {
		e := &g.edges[i]
		if !e.live {
			continue
		}
		b.WriteString(strconv.Itoa(int(e.from)))
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(int(e.to)))
		b.WriteByte(' ')
		b.WriteString(e.length.String())
		b.WriteByte('\n')
	}

	return b.String()
}

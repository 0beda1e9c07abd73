package layering

import (
	"fmt"
	"strings"

	"github.com/strand-ml/strand/internal/hypergraph"
)

// Render returns a layer-by-layer textual rendering of a decomposition for
// diagnostics. The output is not a durable format and may change.
//
// Each line shows one layer with its edges in order, for example:
//
//	L0: sum#3(0, 1 -> 4)  id#7(2 -> 5)
func Render(g *hypergraph.Hypergraph, layers [][]hypergraph.EdgeID) string {
	var b strings.Builder
	fmt.Fprintf(&b, "inputs: %s\n", joinVertices(g.Inputs()))
	for i, layer := range layers {
		fmt.Fprintf(&b, "L%d:", i)
		for _, id := range layer {
			e := g.Edge(id)
			label := e.Label
			if label == "" {
				label = "?"
			}
			fmt.Fprintf(&b, " %s#%d(%s -> %s)", label, id,
				joinVertices(e.Sources), joinVertices(e.Targets))
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "outputs: %s\n", joinVertices(g.Outputs()))
	return b.String()
}

func joinVertices(ids []hypergraph.VertexID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ", ")
}

package valueobject

// NodeKind distinguishes the candidate node from signal nodes in a graph.
type NodeKind string

const (
	NodeKindEntity NodeKind = "entity"
	NodeKindSignal NodeKind = "signal"
)

// Color returns the display colour the graph renderer uses for the kind.
func (k NodeKind) Color() string {
	switch k {
	case NodeKindEntity:
		return "#60a5fa"
	case NodeKindSignal:
		return "#facc15"
	default:
		return "#9ca3af"
	}
}

func (k NodeKind) String() string { return string(k) }

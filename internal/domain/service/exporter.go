package service

import (
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/bibbank/signalgraph/internal/domain/model"
	"github.com/bibbank/signalgraph/internal/domain/valueobject"
)

const csvHeader = "Candidate ID,Flags"

// RenderOptions configures the SVG snapshot.
type RenderOptions struct {
	Width  int
	Height int
	// Radius is the distance from the entity node to each signal node.
	Radius float64
}

// DefaultRenderOptions returns the canvas used by the report export.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Width: 800, Height: 600, Radius: 200}
}

// Exporter serializes evaluations for download.
type Exporter struct {
	options RenderOptions
}

// NewExporter creates an Exporter. A nil opts means DefaultRenderOptions.
func NewExporter(opts *RenderOptions) *Exporter {
	if opts == nil {
		defaults := DefaultRenderOptions()
		opts = &defaults
	}
	return &Exporter{options: *opts}
}

// Export renders e in the given format.
func (x *Exporter) Export(e model.Evaluation, format valueobject.ExportFormat) ([]byte, error) {
	switch {
	case format.Equal(valueobject.ExportFormatCSV):
		return []byte(CSV(e.CandidateID, e.SignalIDs)), nil
	case format.Equal(valueobject.ExportFormatSVG):
		return []byte(x.SVG(e)), nil
	case format.Equal(valueobject.ExportFormatDOT):
		return []byte(DOT(e)), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %q", format.String())
	}
}

// CSV returns the two-row flag sheet for a candidate. Values are joined
// verbatim: no quoting, no trailing newline.
func CSV(candidateID string, signalIDs []string) string {
	row := append([]string{candidateID}, signalIDs...)
	return csvHeader + "\n" + strings.Join(row, ",")
}

// SVG draws the evaluation graph as a star around the candidate, with the
// score and tier in the caption.
func (x *Exporter) SVG(e model.Evaluation) string {
	var sb strings.Builder

	w, h := x.options.Width, x.options.Height
	cx, cy := w/2, h/2

	sb.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d">`, w, h))
	sb.WriteString("\n")
	sb.WriteString(`<style>
    .link { stroke: #999; stroke-opacity: 0.6; fill: none; }
    .label { font-family: Arial, sans-serif; font-size: 12px; fill: #333; }
  </style>
`)

	var entity model.GraphNode
	signals := make([]model.GraphNode, 0, len(e.Graph.Nodes))
	for _, n := range e.Graph.Nodes {
		if n.Kind == valueobject.NodeKindEntity {
			entity = n
			continue
		}
		signals = append(signals, n)
	}

	weights := make(map[string]int, len(e.Graph.Edges))
	for _, edge := range e.Graph.Edges {
		weights[edge.To] = edge.Weight
	}

	for i, n := range signals {
		angle := float64(i) * (2 * math.Pi / float64(len(signals)))
		sx := cx + int(x.options.Radius*math.Cos(angle))
		sy := cy + int(x.options.Radius*math.Sin(angle))

		sb.WriteString(fmt.Sprintf(`  <line class="link" x1="%d" y1="%d" x2="%d" y2="%d" stroke-width="%d"/>`,
			cx, cy, sx, sy, weights[n.ID]))
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf(`  <circle cx="%d" cy="%d" r="16" fill="%s" stroke="#333"/>`, sx, sy, n.Kind.Color()))
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf(`  <text class="label" x="%d" y="%d" text-anchor="middle">%s</text>`,
			sx, sy+30, html.EscapeString(n.Label)))
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf(`  <circle cx="%d" cy="%d" r="28" fill="%s" stroke="#333" stroke-width="2"/>`,
		cx, cy, valueobject.NodeKindEntity.Color()))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(`  <text class="label" x="%d" y="%d" text-anchor="middle" dy=".3em">%s</text>`,
		cx, cy, html.EscapeString(entity.Label)))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf(`  <text class="label" x="20" y="30">Risk Score: %d (%s)</text>`, e.Score, e.Tier.String()))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(`  <text class="label" x="20" y="50">%s</text>`, html.EscapeString(e.Tier.Feedback())))
	sb.WriteString("\n")

	sb.WriteString("</svg>")
	return sb.String()
}

// DOT renders the evaluation graph in Graphviz syntax.
func DOT(e model.Evaluation) string {
	var sb strings.Builder

	sb.WriteString("digraph SignalGraph {\n")
	sb.WriteString("    rankdir=LR;\n")
	sb.WriteString("    node [shape=ellipse, style=filled];\n")
	sb.WriteString(fmt.Sprintf("    label=\"score %d, %s\";\n", e.Score, e.Tier.String()))
	sb.WriteString("\n")

	for _, n := range e.Graph.Nodes {
		sb.WriteString(fmt.Sprintf("    %s [label=%s, fillcolor=\"%s\"];\n",
			quoteDOT(n.ID), quoteDOT(n.Label), n.Kind.Color()))
	}

	sb.WriteString("\n")

	for _, edge := range e.Graph.Edges {
		sb.WriteString(fmt.Sprintf("    %s -> %s [penwidth=%d, label=\"%d\"];\n",
			quoteDOT(edge.From), quoteDOT(edge.To), edge.Weight, edge.Weight))
	}

	sb.WriteString("}\n")
	return sb.String()
}

func quoteDOT(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

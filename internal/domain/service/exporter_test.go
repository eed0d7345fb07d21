package service_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/signalgraph/internal/domain/model"
	"github.com/bibbank/signalgraph/internal/domain/service"
	"github.com/bibbank/signalgraph/internal/domain/valueobject"
)

func TestCSV(t *testing.T) {
	t.Run("two rows without trailing newline", func(t *testing.T) {
		assert.Equal(t, "Candidate ID,Flags\nX,a,b", service.CSV("X", []string{"a", "b"}))
	})

	t.Run("empty selection", func(t *testing.T) {
		assert.Equal(t, "Candidate ID,Flags\nX", service.CSV("X", nil))
	})

	t.Run("commas are not escaped", func(t *testing.T) {
		assert.Equal(t, "Candidate ID,Flags\nA,B,c", service.CSV("A,B", []string{"c"}))
	})
}

func TestExporter_CSVUsesRegistryOrder(t *testing.T) {
	evaluator := service.NewRiskEvaluator(nil)
	sel, err := model.NewSelectionSet("X", "pattern_reform", "criminal_felony_old")
	require.NoError(t, err)

	out, err := service.NewExporter(nil).Export(evaluator.Evaluate(sel), valueobject.ExportFormatCSV)
	require.NoError(t, err)

	assert.Equal(t, "Candidate ID,Flags\nX,criminal_felony_old,pattern_reform", string(out))
}

func TestExporter_SVG(t *testing.T) {
	evaluator := service.NewRiskEvaluator(nil)
	sel, err := model.NewSelectionSet("Cand<1>", "ssn_mismatch", "does_not_exist")
	require.NoError(t, err)

	out, err := service.NewExporter(nil).Export(evaluator.Evaluate(sel), valueobject.ExportFormatSVG)
	require.NoError(t, err)
	svg := string(out)

	assert.True(t, strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`))
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
	assert.Contains(t, svg, "Cand&lt;1&gt;")
	assert.Contains(t, svg, "SSN Mismatch")
	assert.Contains(t, svg, "does_not_exist")
	assert.Contains(t, svg, "Risk Score: 7 (MODERATE)")
	assert.Contains(t, svg, "Moderate risk: Review context.")
	assert.Equal(t, 2, strings.Count(svg, "<line "))
	assert.Equal(t, 2, strings.Count(svg, `fill="#facc15"`))
	assert.Equal(t, 1, strings.Count(svg, `fill="#60a5fa"`))
}

func TestExporter_SVGEmptySelection(t *testing.T) {
	evaluator := service.NewRiskEvaluator(nil)
	sel, err := model.NewSelectionSet("Candidate_001")
	require.NoError(t, err)

	svg := service.NewExporter(&service.RenderOptions{Width: 400, Height: 300, Radius: 100}).SVG(evaluator.Evaluate(sel))

	assert.Contains(t, svg, `viewBox="0 0 400 300"`)
	assert.NotContains(t, svg, "<line ")
	assert.Contains(t, svg, "Risk Score: 0 (LOW)")
}

func TestExporter_DOT(t *testing.T) {
	evaluator := service.NewRiskEvaluator(nil)
	sel, err := model.NewSelectionSet(`Cand "A"`, "pattern_reform", "alias_mismatch")
	require.NoError(t, err)

	out, err := service.NewExporter(nil).Export(evaluator.Evaluate(sel), valueobject.ExportFormatDOT)
	require.NoError(t, err)
	dot := string(out)

	assert.True(t, strings.HasPrefix(dot, "digraph SignalGraph {\n"))
	assert.Contains(t, dot, `"Cand \"A\"" [label="Cand \"A\"", fillcolor="#60a5fa"];`)
	assert.Contains(t, dot, `"alias_mismatch" [label="Alias Mismatch", fillcolor="#facc15"];`)
	assert.Contains(t, dot, `"Cand \"A\"" -> "pattern_reform" [penwidth=5, label="5"];`)
	assert.Contains(t, dot, `label="score 0, LOW";`)
}

func TestExporter_UnsupportedFormat(t *testing.T) {
	_, err := service.NewExporter(nil).Export(model.Evaluation{}, valueobject.ExportFormat{})
	require.Error(t, err)
}

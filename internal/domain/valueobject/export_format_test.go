package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/signalgraph/internal/domain/valueobject"
)

func TestNewExportFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected valueobject.ExportFormat
		wantErr  bool
	}{
		{"csv", valueobject.ExportFormatCSV, false},
		{"CSV", valueobject.ExportFormatCSV, false},
		{" svg ", valueobject.ExportFormatSVG, false},
		{"dot", valueobject.ExportFormatDOT, false},
		{"pdf", valueobject.ExportFormat{}, true},
		{"", valueobject.ExportFormat{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f, err := valueobject.NewExportFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, f.IsZero())
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(f))
		})
	}
}

func TestExportFormat_FileName(t *testing.T) {
	assert.Equal(t, "Candidate_001_profile.csv", valueobject.ExportFormatCSV.FileName("Candidate_001"))
	assert.Equal(t, "Candidate_001_report.svg", valueobject.ExportFormatSVG.FileName("Candidate_001"))
	assert.Equal(t, "Candidate_001_report.dot", valueobject.ExportFormatDOT.FileName("Candidate_001"))
}

func TestExportFormat_ContentType(t *testing.T) {
	assert.Equal(t, "text/csv;charset=utf-8", valueobject.ExportFormatCSV.ContentType())
	assert.Equal(t, "image/svg+xml", valueobject.ExportFormatSVG.ContentType())
	assert.Equal(t, "text/vnd.graphviz", valueobject.ExportFormatDOT.ContentType())
	assert.Equal(t, "application/octet-stream", valueobject.ExportFormat{}.ContentType())
}

package valueobject

import (
	"fmt"
	"strings"
)

// ExportFormat is the file format of an exported evaluation.
type ExportFormat struct {
	value string
}

const (
	exportFormatCSV = "csv"
	exportFormatSVG = "svg"
	exportFormatDOT = "dot"
)

var (
	ExportFormatCSV = ExportFormat{value: exportFormatCSV}
	ExportFormatSVG = ExportFormat{value: exportFormatSVG}
	ExportFormatDOT = ExportFormat{value: exportFormatDOT}
)

var validExportFormats = map[string]ExportFormat{
	exportFormatCSV: ExportFormatCSV,
	exportFormatSVG: ExportFormatSVG,
	exportFormatDOT: ExportFormatDOT,
}

// NewExportFormat parses a format name, case-insensitively.
func NewExportFormat(s string) (ExportFormat, error) {
	f, ok := validExportFormats[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return ExportFormat{}, fmt.Errorf("invalid export format: %q", s)
	}
	return f, nil
}

// String returns the string representation of the ExportFormat.
func (f ExportFormat) String() string {
	return f.value
}

// ContentType returns the MIME type served for the format.
func (f ExportFormat) ContentType() string {
	switch f.value {
	case exportFormatCSV:
		return "text/csv;charset=utf-8"
	case exportFormatSVG:
		return "image/svg+xml"
	case exportFormatDOT:
		return "text/vnd.graphviz"
	default:
		return "application/octet-stream"
	}
}

// FileName returns the download name for candidateID's export.
// CSV exports are profiles; graph snapshots are reports.
func (f ExportFormat) FileName(candidateID string) string {
	if f.value == exportFormatCSV {
		return candidateID + "_profile.csv"
	}
	return candidateID + "_report." + f.value
}

// IsZero returns true if the ExportFormat has not been set.
func (f ExportFormat) IsZero() bool {
	return f.value == ""
}

// Equal returns true if two ExportFormat values are equal.
func (f ExportFormat) Equal(other ExportFormat) bool {
	return f.value == other.value
}

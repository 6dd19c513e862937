package templates

import (
	"strings"

	"github.com/csg33k/perf-report/internal/domain"
)

// labelForFormat is the select label for an export format, e.g. "Word (.docx)".
func labelForFormat(f domain.Format) string {
	switch f.Name {
	case domain.FormatDOCX.Name:
		return "Word (" + f.Extension + ")"
	case domain.FormatPDF.Name:
		return "PDF (" + f.Extension + ")"
	default:
		return strings.ToUpper(f.Name)
	}
}

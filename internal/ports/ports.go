package ports

import (
	"context"
	"io"

	"github.com/csg33k/perf-report/internal/domain"
)

// DocumentRenderer defines the export port. Implementations build the whole
// document before writing; on error nothing reaches w.
type DocumentRenderer interface {
	// Render writes the report for c laid out with variant v.
	// A malformed c yields *domain.InvalidContentError.
	Render(ctx context.Context, c *domain.ReportContent, v domain.Variant, w io.Writer) error

	// Format describes the file the renderer produces.
	Format() domain.Format
}

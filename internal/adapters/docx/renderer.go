// Package docx renders the report as a WordprocessingML (.docx) package.
//
// The layout tree from package layout is converted to document.xml and
// zipped together with fixed style, settings and relationship parts. The
// output is deterministic: no timestamps, no generated ids.
package docx

import (
	"context"
	"fmt"
	"io"

	"github.com/csg33k/perf-report/internal/domain"
	"github.com/csg33k/perf-report/internal/layout"
)

// Renderer produces .docx packages. The zero value is ready to use and safe
// for concurrent renders.
type Renderer struct{}

func New() *Renderer { return &Renderer{} }

func (r *Renderer) Format() domain.Format { return domain.FormatDOCX }

// Render lays out c with variant v and writes the complete package to w.
// Nothing is written unless the whole package was built.
func (r *Renderer) Render(ctx context.Context, c *domain.ReportContent, v domain.Variant, w io.Writer) error {
	b, err := r.Bytes(c, v)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// Bytes returns the package for c and v.
func (r *Renderer) Bytes(c *domain.ReportContent, v domain.Variant) ([]byte, error) {
	doc, err := layout.Build(c, v)
	if err != nil {
		return nil, err
	}
	wdoc, err := convertDocument(doc)
	if err != nil {
		return nil, err
	}
	docXML, err := marshalPart(wdoc)
	if err != nil {
		return nil, fmt.Errorf("docx: marshal document: %w", err)
	}
	return writePackage(staticParts(docXML))
}

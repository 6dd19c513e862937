package docx

import (
	"fmt"
	"strings"

	"github.com/csg33k/perf-report/internal/layout"
)

// Style ids declared in styles.xml.
const (
	styleHeading1  = "Heading1"
	styleHeading2  = "Heading2"
	styleHeading3  = "Heading3"
	styleListItem  = "ListParagraph"
	styleTableGrid = "TableGrid"
)

// A4 portrait, 2 cm side margins: 17 cm of text width.
var pageSection = wSectPr{
	PgSz:  wPgSz{W: 11906, H: 16838},
	PgMar: wPgMar{Top: 1134, Right: 1134, Bottom: 1134, Left: 1134, Header: 709, Footer: 709},
}

func convertDocument(d *layout.Document) (*wDocument, error) {
	blocks, err := convertBlocks(d.Blocks)
	if err != nil {
		return nil, err
	}
	return &wDocument{
		XmlnsW: nsW,
		Body:   wBody{Blocks: blocks, SectPr: pageSection},
	}, nil
}

func convertBlocks(in []layout.Block) ([]any, error) {
	out := make([]any, 0, len(in))
	for _, b := range in {
		switch v := b.(type) {
		case *layout.Heading:
			out = append(out, convertHeading(v))
		case *layout.Paragraph:
			out = append(out, convertParagraph(v))
		case *layout.Grid:
			t, err := convertGrid(v)
			if err != nil {
				return nil, err
			}
			out = append(out, t)
		default:
			return nil, fmt.Errorf("docx: unsupported block %T", b)
		}
	}
	return out, nil
}

func convertHeading(h *layout.Heading) *wParagraph {
	style := styleHeading3
	switch h.Level {
	case 1:
		style = styleHeading1
	case 2:
		style = styleHeading2
	}
	return &wParagraph{
		PPr:  &wPPr{Style: &wVal{Val: style}},
		Runs: []wRun{newRun(h.Text, false)},
	}
}

func convertParagraph(p *layout.Paragraph) *wParagraph {
	wp := &wParagraph{}
	var ppr wPPr
	if p.Style == layout.StyleListItem {
		ppr.Style = &wVal{Val: styleListItem}
	}
	switch p.Align {
	case layout.AlignCenter:
		ppr.Jc = &wVal{Val: "center"}
	case layout.AlignRight:
		ppr.Jc = &wVal{Val: "right"}
	}
	if ppr != (wPPr{}) {
		wp.PPr = &ppr
	}
	for _, r := range p.Runs {
		wp.Runs = append(wp.Runs, newRun(r.Text, r.Bold))
	}
	return wp
}

func newRun(text string, bold bool) wRun {
	r := wRun{Text: wText{Value: text}}
	if text != strings.TrimSpace(text) {
		r.Text.Space = "preserve"
	}
	if bold {
		r.RPr = &wRPr{B: &wOnOff{}}
	}
	return r
}

func convertGrid(g *layout.Grid) (*wTable, error) {
	t := &wTable{
		TblPr: wTblPr{
			Width:   wWidth{W: int(g.Width()), Type: "dxa"},
			Borders: convertBorders(g.Borders, true),
			Layout:  wTblLayout{Type: "fixed"},
			// Zero default padding; cells that want padding set it.
			CellMar: &wMargins{
				Left:  &wWidth{W: 0, Type: "dxa"},
				Right: &wWidth{W: 0, Type: "dxa"},
			},
		},
	}
	if g.Borders.InsideH.Kind == layout.BorderSingle {
		t.TblPr.Style = &wVal{Val: styleTableGrid}
	}
	for _, w := range g.Widths {
		t.Grid.Cols = append(t.Grid.Cols, wWidthOnly{W: int(w)})
	}
	for i, row := range g.Rows {
		if len(row) != len(g.Widths) {
			return nil, fmt.Errorf("docx: grid row %d has %d cells, want %d", i, len(row), len(g.Widths))
		}
		var tr wTableRow
		for j, cell := range row {
			tc, err := convertCell(cell, g.Widths[j])
			if err != nil {
				return nil, err
			}
			tr.Cells = append(tr.Cells, tc)
		}
		t.Rows = append(t.Rows, tr)
	}
	return t, nil
}

func convertCell(c *layout.Cell, width layout.Length) (wTableCell, error) {
	blocks, err := convertBlocks(c.Blocks)
	if err != nil {
		return wTableCell{}, err
	}
	// A cell must end with a paragraph, including after a nested table.
	if len(blocks) == 0 {
		blocks = append(blocks, &wParagraph{})
	} else if _, ok := blocks[len(blocks)-1].(*wParagraph); !ok {
		blocks = append(blocks, &wParagraph{})
	}

	tc := wTableCell{
		TcPr: wTcPr{
			Width:   wWidth{W: int(width), Type: "dxa"},
			Borders: convertBorders(c.Borders, false),
		},
		Blocks: blocks,
	}
	if m := c.Margins; m != nil {
		tc.TcPr.Margins = &wMargins{
			Top:    &wWidth{W: int(m.Top), Type: "dxa"},
			Left:   &wWidth{W: int(m.Left), Type: "dxa"},
			Bottom: &wWidth{W: int(m.Bottom), Type: "dxa"},
			Right:  &wWidth{W: int(m.Right), Type: "dxa"},
		}
	}
	switch c.VAlign {
	case layout.VAlignCenter:
		tc.TcPr.VAlign = &wVal{Val: "center"}
	case layout.VAlignBottom:
		tc.TcPr.VAlign = &wVal{Val: "bottom"}
	}
	return tc, nil
}

func convertBorders(b layout.Borders, inside bool) *wBorders {
	if b.IsZero() {
		return nil
	}
	out := &wBorders{
		Top:    convertBorder(b.Top),
		Left:   convertBorder(b.Left),
		Bottom: convertBorder(b.Bottom),
		Right:  convertBorder(b.Right),
	}
	if inside {
		out.InsideH = convertBorder(b.InsideH)
		out.InsideV = convertBorder(b.InsideV)
	}
	return out
}

func convertBorder(s layout.BorderStyle) *wBorder {
	switch s.Kind {
	case layout.BorderNone:
		return &wBorder{Val: "nil"}
	case layout.BorderSingle:
		return &wBorder{Val: "single", Sz: s.Size, Color: s.Color}
	default:
		return nil
	}
}

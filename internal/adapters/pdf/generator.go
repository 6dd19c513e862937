// Package pdf draws the report layout tree as a PDF preview.
// Headings and paragraphs wrap to the available width; grids are drawn cell
// by cell with per-edge borders, cell padding and vertical alignment. Rows
// of top-level grids break across pages; nested grids stay within their row.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/csg33k/perf-report/internal/domain"
	"github.com/csg33k/perf-report/internal/layout"
)

const (
	pageMargin = 20.0 // mm, matches the 17 cm text width of the layouts
	lineH      = 5.0
	paraGap    = 1.2
	listIndent = 2.0
	fontFamily = "report"
)

// fixedDate stamps creation and modification so output is reproducible.
var fixedDate = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Generator renders PDFs. It is safe for concurrent use; each render owns its
// own fpdf instance.
type Generator struct {
	font []byte // UTF-8 TrueType font; nil selects core Helvetica
}

// New returns a Generator. font is the content of a TrueType font covering
// the report's scripts; pass nil to fall back to Helvetica, which draws
// cp1252 text and substitutes a dot for anything else.
func New(font []byte) *Generator {
	return &Generator{font: font}
}

// HasUnicodeFont reports whether the generator can draw Hangul.
func (g *Generator) HasUnicodeFont() bool { return len(g.font) > 0 }

func (g *Generator) Format() domain.Format { return domain.FormatPDF }

// Render lays out c with variant v and writes the finished PDF to w.
// Nothing is written on error.
func (g *Generator) Render(ctx context.Context, c *domain.ReportContent, v domain.Variant, w io.Writer) error {
	doc, err := layout.Build(c, v)
	if err != nil {
		return err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, pageMargin)
	pdf.SetCreationDate(fixedDate)
	pdf.SetModificationDate(fixedDate)
	pdf.SetCatalogSort(true)

	p := &painter{pdf: pdf, family: "Helvetica", tr: pdf.UnicodeTranslatorFromDescriptor("")}
	if g.HasUnicodeFont() {
		pdf.AddUTF8FontFromBytes(fontFamily, "", g.font)
		pdf.AddUTF8FontFromBytes(fontFamily, "B", g.font)
		p.family = fontFamily
		p.tr = func(s string) string { return s }
	}
	pdf.SetTitle(c.Title(), true)
	pdf.AddPage()

	p.drawDocument(doc)
	if pdf.Err() {
		return fmt.Errorf("pdf: %w", pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return fmt.Errorf("pdf: output: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	return err
}

// ── Painter ───────────────────────────────────────────────────────────────

type textStyle struct {
	size  float64 // pt
	bold  bool
	lineH float64 // mm
	after float64 // mm
}

var (
	styleBody     = textStyle{size: 9.5, lineH: lineH, after: paraGap}
	styleHeading1 = textStyle{size: 15, bold: true, lineH: 8, after: 4}
	styleHeading2 = textStyle{size: 12, bold: true, lineH: 6.5, after: 2}
	styleHeading3 = textStyle{size: 10.5, bold: true, lineH: 5.5, after: 1.5}
)

type painter struct {
	pdf    *fpdf.Fpdf
	family string
	tr     func(string) string
}

func (p *painter) bottom() float64 {
	_, pageH := p.pdf.GetPageSize()
	return pageH - pageMargin
}

func (p *painter) drawDocument(d *layout.Document) {
	left, top, right, _ := p.pdf.GetMargins()
	pageW, _ := p.pdf.GetPageSize()
	width := pageW - left - right
	y := top

	for _, b := range d.Blocks {
		if g, ok := b.(*layout.Grid); ok {
			y = p.drawGrid(g, left, y, width, true)
			continue
		}
		h := p.blockHeight(b, width)
		if y+h > p.bottom() && y > top {
			p.pdf.AddPage()
			y = top
		}
		p.drawBlock(b, left, y, width)
		y += h
	}
}

func (p *painter) setStyle(s textStyle) {
	style := ""
	if s.bold {
		style = "B"
	}
	p.pdf.SetFont(p.family, style, s.size)
}

func headingStyle(level int) textStyle {
	switch level {
	case 1:
		return styleHeading1
	case 2:
		return styleHeading2
	default:
		return styleHeading3
	}
}

// paragraphForm reduces a block to its text, style, indent and alignment.
func paragraphForm(b layout.Block) (text string, s textStyle, indent float64, align string) {
	align = "L"
	switch v := b.(type) {
	case *layout.Heading:
		return v.Text, headingStyle(v.Level), 0, align
	case *layout.Paragraph:
		s = styleBody
		// Mixed runs are drawn in the body weight; whole-bold paragraphs stay bold.
		s.bold = len(v.Runs) > 0
		for _, r := range v.Runs {
			s.bold = s.bold && r.Bold
		}
		if v.Style == layout.StyleListItem {
			indent = listIndent
		}
		switch v.Align {
		case layout.AlignCenter:
			align = "C"
		case layout.AlignRight:
			align = "R"
		}
		return v.Text(), s, indent, align
	}
	return "", styleBody, 0, align
}

// lines wraps text to width in the current style. Lines stay UTF-8; widths
// are measured on the translated form so core fonts see single bytes.
func (p *painter) lines(text string, s textStyle, width float64) []string {
	p.setStyle(s)
	avail := width - 2*p.pdf.GetCellMargin()
	var out []string
	for _, para := range strings.Split(drawable(text), "\n") {
		out = append(out, p.wrap(para, avail)...)
	}
	return out
}

// wrap breaks one paragraph greedily, preferring the last space that fits and
// splitting inside a word only when the word alone is too wide.
func (p *painter) wrap(text string, avail float64) []string {
	rs := []rune(text)
	if len(rs) == 0 {
		return []string{""}
	}
	var out []string
	start, lastSpace := 0, -1
	for i := 0; i < len(rs); i++ {
		if rs[i] == ' ' {
			lastSpace = i
		}
		if i == start || p.width(rs[start:i+1]) <= avail {
			continue
		}
		if lastSpace > start {
			out = append(out, string(rs[start:lastSpace]))
			start = lastSpace + 1
		} else {
			out = append(out, string(rs[start:i]))
			start = i
		}
		i, lastSpace = start-1, -1
	}
	if start < len(rs) {
		out = append(out, string(rs[start:]))
	}
	return out
}

func (p *painter) width(rs []rune) float64 {
	return p.pdf.GetStringWidth(p.tr(string(rs)))
}

// drawable replaces runes outside the basic multilingual plane with a filled
// circle, since fpdf's width tables stop at U+FFFF. The feedback markers are
// the usual case; their tone survives as the paragraph colour.
func drawable(text string) string {
	return strings.Map(func(r rune) rune {
		if r > 0xFFFF {
			return '●'
		}
		return r
	}, text)
}

// toneColor picks the text colour for a paragraph led by a feedback marker.
func toneColor(text string) (int, int, int) {
	switch (domain.Remark{Text: text}).Tone() {
	case domain.TonePositive:
		return 44, 110, 73
	case domain.ToneNegative:
		return 192, 57, 43
	}
	return 0, 0, 0
}

func (p *painter) blockHeight(b layout.Block, width float64) float64 {
	if g, ok := b.(*layout.Grid); ok {
		var h float64
		widths := scaleWidths(g, width)
		for r := range g.Rows {
			h += p.rowHeight(g, r, widths)
		}
		return h
	}
	text, s, indent, _ := paragraphForm(b)
	return float64(len(p.lines(text, s, width-indent)))*s.lineH + s.after
}

func (p *painter) drawBlock(b layout.Block, x, y, width float64) {
	if g, ok := b.(*layout.Grid); ok {
		p.drawGrid(g, x, y, width, false)
		return
	}
	text, s, indent, align := paragraphForm(b)
	p.pdf.SetTextColor(toneColor(text))
	for i, line := range p.lines(text, s, width-indent) {
		p.setStyle(s)
		p.pdf.SetXY(x+indent, y+float64(i)*s.lineH)
		p.pdf.CellFormat(width-indent, s.lineH, p.tr(line), "", 0, align, false, 0, "")
	}
	p.pdf.SetTextColor(0, 0, 0)
}

// ── Grids ─────────────────────────────────────────────────────────────────

// scaleWidths converts column widths to mm, shrinking them proportionally
// when the grid is wider than the space available.
func scaleWidths(g *layout.Grid, avail float64) []float64 {
	total := g.Width().Millimetres()
	scale := 1.0
	if total > avail && total > 0 {
		scale = avail / total
	}
	out := make([]float64, len(g.Widths))
	for i, w := range g.Widths {
		out[i] = w.Millimetres() * scale
	}
	return out
}

func margins(c *layout.Cell) (top, bottom, left, right float64) {
	if c.Margins == nil {
		return 0.8, 0.8, 1.5, 1.5
	}
	m := c.Margins
	return m.Top.Millimetres(), m.Bottom.Millimetres(), m.Left.Millimetres(), m.Right.Millimetres()
}

func (p *painter) cellContentHeight(c *layout.Cell, width float64) float64 {
	var h float64
	for _, b := range c.Blocks {
		h += p.blockHeight(b, width)
	}
	return h
}

func (p *painter) rowHeight(g *layout.Grid, r int, widths []float64) float64 {
	h := lineH
	for c, cell := range g.Rows[r] {
		mt, mb, ml, mr := margins(cell)
		if ch := mt + mb + p.cellContentHeight(cell, widths[c]-ml-mr); ch > h {
			h = ch
		}
	}
	return h
}

// drawGrid draws g at (x, y) and returns the y below it. breakRows lets rows
// move to a new page when they do not fit.
func (p *painter) drawGrid(g *layout.Grid, x, y, avail float64, breakRows bool) float64 {
	widths := scaleWidths(g, avail)
	_, top, _, _ := p.pdf.GetMargins()

	for r := range g.Rows {
		rowH := p.rowHeight(g, r, widths)
		if breakRows && y+rowH > p.bottom() && y > top {
			p.pdf.AddPage()
			y = top
		}
		cx := x
		for c, cell := range g.Rows[r] {
			mt, mb, ml, mr := margins(cell)
			inner := widths[c] - ml - mr
			cy := y + mt
			switch cell.VAlign {
			case layout.VAlignCenter:
				cy += (rowH - mt - mb - p.cellContentHeight(cell, inner)) / 2
			case layout.VAlignBottom:
				cy = y + rowH - mb - p.cellContentHeight(cell, inner)
			}
			for _, b := range cell.Blocks {
				p.drawBlock(b, cx+ml, cy, inner)
				cy += p.blockHeight(b, inner)
			}
			p.drawCellBorders(g, r, c, cx, y, widths[c], rowH)
			cx += widths[c]
		}
		y += rowH
	}
	return y
}

func (p *painter) drawCellBorders(g *layout.Grid, r, c int, x, y, w, h float64) {
	edges := []struct {
		edge           layout.Edge
		x1, y1, x2, y2 float64
	}{
		{layout.EdgeTop, x, y, x + w, y},
		{layout.EdgeBottom, x, y + h, x + w, y + h},
		{layout.EdgeLeft, x, y, x, y + h},
		{layout.EdgeRight, x + w, y, x + w, y + h},
	}
	for _, e := range edges {
		s := g.EdgeBorder(r, c, e.edge)
		if s.Kind != layout.BorderSingle {
			continue
		}
		cr, cg, cb := hexColor(s.Color)
		p.pdf.SetDrawColor(cr, cg, cb)
		// Size is in eighths of a point.
		p.pdf.SetLineWidth(float64(s.Size) / 8 * 25.4 / 72)
		p.pdf.Line(e.x1, e.y1, e.x2, e.y2)
	}
}

// hexColor parses RRGGBB, returning black for anything else.
func hexColor(s string) (int, int, int) {
	if len(s) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}

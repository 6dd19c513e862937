// Package layout builds a library-neutral document tree for the report.
//
// A Document is a sequence of Blocks: headings, paragraphs and grids.
// Grids are the only structural primitive; the two-column "label + content"
// look is a grid used as a layout device, with nested grids and paragraphs
// inside its cells. Backends (docx, pdf) serialise or draw the tree and never
// feed anything back into it.
package layout

import "math"

// Length is a physical measurement in twips (1/20 pt, 1/1440 in).
type Length int

// Cm converts centimetres to a Length.
func Cm(cm float64) Length { return Length(math.Round(cm * 1440 / 2.54)) }

// Millimetres returns l in mm.
func (l Length) Millimetres() float64 { return float64(l) * 25.4 / 1440 }

// Align is horizontal paragraph alignment.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// VAlign is vertical alignment of a cell's content.
type VAlign int

const (
	VAlignTop VAlign = iota
	VAlignCenter
	VAlignBottom
)

// ParagraphStyle names the paragraph style a backend should apply.
type ParagraphStyle int

const (
	StyleNormal ParagraphStyle = iota
	// StyleListItem marks one item of a bulleted/remark list.
	StyleListItem
)

// Block is an element of a document body or cell.
type Block interface {
	block()
}

// Heading is a section heading. Level 1 is the document title.
type Heading struct {
	Level int
	Text  string
}

// Run is a span of text with uniform formatting.
type Run struct {
	Text string
	Bold bool
}

// Paragraph is a sequence of runs.
type Paragraph struct {
	Runs  []Run
	Align Align
	Style ParagraphStyle
}

// Text returns the concatenated run text.
func (p *Paragraph) Text() string {
	var s string
	for _, r := range p.Runs {
		s += r.Text
	}
	return s
}

// Bold appends a bold run.
func (p *Paragraph) Bold(text string) *Paragraph {
	p.Runs = append(p.Runs, Run{Text: text, Bold: true})
	return p
}

// Plain appends an unformatted run.
func (p *Paragraph) Plain(text string) *Paragraph {
	p.Runs = append(p.Runs, Run{Text: text})
	return p
}

// Centered sets centre alignment.
func (p *Paragraph) Centered() *Paragraph {
	p.Align = AlignCenter
	return p
}

func (*Heading) block()   {}
func (*Paragraph) block() {}
func (*Grid) block()      {}

// container is the shared body of Document and Cell.
type container struct {
	Blocks []Block
}

// AddParagraph appends a paragraph holding text (no run when text is empty).
func (c *container) AddParagraph(text string) *Paragraph {
	p := &Paragraph{}
	if text != "" {
		p.Runs = []Run{{Text: text}}
	}
	c.Blocks = append(c.Blocks, p)
	return p
}

// AddListItem appends a list-styled paragraph.
func (c *container) AddListItem(text string) *Paragraph {
	p := c.AddParagraph(text)
	p.Style = StyleListItem
	return p
}

// AddGrid appends a rows × len(widths) grid.
func (c *container) AddGrid(rows int, widths ...Length) *Grid {
	g := NewGrid(rows, widths...)
	c.Blocks = append(c.Blocks, g)
	return g
}

// Document is the root of a rendered report.
type Document struct {
	container
}

// AddHeading appends a heading.
func (d *Document) AddHeading(level int, text string) *Heading {
	h := &Heading{Level: level, Text: text}
	d.Blocks = append(d.Blocks, h)
	return h
}

// Walk visits every block depth-first in document order, descending into
// grid cells row by row.
func Walk(blocks []Block, fn func(Block)) {
	for _, b := range blocks {
		fn(b)
		if g, ok := b.(*Grid); ok {
			for _, row := range g.Rows {
				for _, cell := range row {
					Walk(cell.Blocks, fn)
				}
			}
		}
	}
}

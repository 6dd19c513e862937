package layout

import (
	"fmt"

	"github.com/csg33k/perf-report/internal/domain"
)

// Section and block labels shared by the dashboard and every layout.
const (
	DistributionLabel = "등급 배분"
	MethodLabel       = "배분 방식: "
	ProcessLabel      = "Process: "
	GradeLabel        = "등급별 분포 현황"
	VOELabel          = "구성원 VOE"
	IssuesLabel       = "평가 운영상의 Issue"
)

// ContentKind is what a section's content cell holds.
type ContentKind int

const (
	KindTable ContentKind = iota
	KindList
)

// Section is one label + content group of the report.
type Section struct {
	Label string
	Kind  ContentKind
	Table domain.GradeTable // KindTable
	Items []string          // KindList
}

// Sections returns the three report sections in their fixed order: grade
// table, feedback, issues.
func Sections(c *domain.ReportContent) []Section {
	return []Section{
		{Label: GradeLabel, Kind: KindTable, Table: c.GradeTable()},
		{Label: VOELabel, Kind: KindList, Items: c.VOETexts()},
		{Label: IssuesLabel, Kind: KindList, Items: c.Issues()},
	}
}

// Page geometry shared by every layout (A4 with 2 cm side margins).
var (
	contentWidth = Cm(17)
	labelWidth   = Cm(4)
	bodyWidth    = Cm(13)
)

// Build validates c and lays it out with variant v. No partial document is
// returned on error.
func Build(c *domain.ReportContent, v domain.Variant) (*Document, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	d := &Document{}
	d.AddHeading(1, c.Title())

	switch v {
	case domain.VariantPlain:
		buildPlain(d, c)
	case domain.VariantBoxedGrid:
		buildBoxedGrid(d, c)
	case domain.VariantHeadingList:
		buildHeadingList(d, c)
	default:
		return nil, fmt.Errorf("unknown layout %q", v)
	}
	return d, nil
}

func buildPlain(d *Document, c *domain.ReportContent) {
	d.AddHeading(2, DistributionLabel)
	d.AddParagraph("• " + MethodLabel + c.DistributionMethod())
	d.AddParagraph("• " + ProcessLabel + c.ProcessFlow())

	for _, s := range Sections(c) {
		d.AddHeading(2, s.Label)
		switch s.Kind {
		case KindTable:
			addGradeGrid(&d.container, s.Table, contentWidth)
		case KindList:
			for _, item := range s.Items {
				d.AddListItem(item)
			}
		}
	}
}

func buildHeadingList(d *Document, c *domain.ReportContent) {
	d.AddHeading(2, DistributionLabel)
	d.AddListItem("").Bold(MethodLabel).Plain(c.DistributionMethod())
	d.AddListItem("").Bold(ProcessLabel).Plain(c.ProcessFlow())

	for _, s := range Sections(c) {
		d.AddParagraph("")
		d.AddHeading(2, s.Label)
		switch s.Kind {
		case KindTable:
			addGradeGrid(&d.container, s.Table, contentWidth)
		case KindList:
			for _, item := range s.Items {
				d.AddListItem(item)
			}
		}
	}
}

// buildBoxedGrid emulates a two-column page: a full-width bordered block for
// the distribution text, then a 3×2 layout grid whose left column carries
// boxed section titles and whose right column carries the section content.
func buildBoxedGrid(d *Document, c *domain.ReportContent) {
	d.AddParagraph("")

	box := d.AddGrid(1, contentWidth)
	box.SetBorder(EdgesOuter, Thin)
	cell := box.Cell(0, 0)
	cell.SetMargins(Cm(0.15), Cm(0.15), Cm(0.25), Cm(0.25))
	cell.AddParagraph("").Bold(DistributionLabel)
	cell.AddParagraph("• " + MethodLabel + c.DistributionMethod())
	cell.AddParagraph("• " + ProcessLabel + c.ProcessFlow())
	d.AddParagraph("")

	sections := Sections(c)
	grid := d.AddGrid(len(sections), labelWidth, bodyWidth)
	// The layout grid itself draws nothing; separation comes from the boxed
	// cells, so no edge doubles up against the page margin.
	grid.SetBorder(EdgesAll, NoBorder)

	for i, s := range sections {
		label := grid.Cell(i, 0)
		label.SetVerticalAlign(VAlignCenter)
		label.SetMargins(Cm(0.1), Cm(0.1), 0, Cm(0.2))
		titleBox := label.AddGrid(1, labelWidth-Cm(0.2))
		titleBox.Cell(0, 0).
			SetBorder(EdgesOuter, Thin).
			SetVerticalAlign(VAlignCenter).
			SetMargins(Cm(0.15), Cm(0.15), Cm(0.1), Cm(0.1)).
			AddParagraph(s.Label).Centered()

		body := grid.Cell(i, 1)
		body.SetBorder(EdgesOuter, Thin)
		body.SetMargins(Cm(0.15), Cm(0.15), Cm(0.2), Cm(0.2))
		switch s.Kind {
		case KindTable:
			addGradeGrid(&body.container, s.Table, bodyWidth-Cm(0.4))
		case KindList:
			for _, item := range s.Items {
				body.AddListItem(item)
			}
		}
	}
}

// addGradeGrid appends the grade data grid: a header row of corner + grades,
// then one row per job level. The label column takes a third of the width.
// gradeCellPad is Word's default horizontal table cell padding, 108 twips.
const gradeCellPad = Length(108)

func addGradeGrid(c *container, t domain.GradeTable, width Length) *Grid {
	cols := t.Columns()
	first := width / 3
	rest := (width - first) / Length(cols-1)
	widths := make([]Length, cols)
	widths[0] = first
	for i := 1; i < cols; i++ {
		widths[i] = rest
	}

	g := c.AddGrid(0, widths...)
	g.SetBorder(EdgesAll, Hairline)

	hdr := g.AddRow()
	for j, text := range t.Header() {
		hdr[j].AddParagraph("").Bold(text).Centered()
	}
	for _, r := range t.Rows {
		row := g.AddRow()
		row[0].AddParagraph(r.Label)
		for j, v := range r.Cells {
			row[j+1].AddParagraph(v).Centered()
		}
	}
	for _, row := range g.Rows {
		for _, cell := range row {
			cell.SetMargins(0, 0, gradeCellPad, gradeCellPad)
		}
	}
	return g
}

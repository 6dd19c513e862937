package domain

import (
	"fmt"
	"strings"
)

// ExportBaseName is the file name stem of every exported report.
const ExportBaseName = "성과관리_운영현황_보고서"

// Tone classifies a feedback remark by its leading marker.
type Tone int

const (
	ToneNeutral Tone = iota
	TonePositive
	ToneNegative
)

const (
	PositiveMarker = "🟢"
	NegativeMarker = "🔴"
)

func (t Tone) String() string {
	switch t {
	case TonePositive:
		return "positive"
	case ToneNegative:
		return "negative"
	default:
		return "neutral"
	}
}

// Remark is a single feedback line. Text keeps its marker verbatim.
type Remark struct {
	Text string
}

// Tone reports the tag carried by the remark's leading marker.
func (r Remark) Tone() Tone {
	s := strings.TrimSpace(r.Text)
	switch {
	case strings.HasPrefix(s, PositiveMarker):
		return TonePositive
	case strings.HasPrefix(s, NegativeMarker):
		return ToneNegative
	default:
		return ToneNeutral
	}
}

// GradeRow is one job-level row of the grade-distribution table.
type GradeRow struct {
	Label string   // e.g. "책임(인원비중: 50%)"
	Cells []string // one percentage string per grade, in grade order
}

// GradeTable holds rating-grade percentages keyed by job level.
// Rows are job levels, columns are grades.
type GradeTable struct {
	Corner string   // header of the row-label column, e.g. "직급"
	Grades []string // e.g. S, A, B, C, D
	Rows   []GradeRow
}

// Header returns the header row: the corner label followed by every grade.
func (t GradeTable) Header() []string {
	out := make([]string, 0, len(t.Grades)+1)
	out = append(out, t.Corner)
	return append(out, t.Grades...)
}

// Columns is the column count including the row-label column.
func (t GradeTable) Columns() int { return len(t.Grades) + 1 }

func (t GradeTable) clone() GradeTable {
	out := GradeTable{
		Corner: t.Corner,
		Grades: append([]string(nil), t.Grades...),
		Rows:   make([]GradeRow, len(t.Rows)),
	}
	for i, r := range t.Rows {
		out.Rows[i] = GradeRow{Label: r.Label, Cells: append([]string(nil), r.Cells...)}
	}
	return out
}

// Fields carries the values a ReportContent is constructed from.
type Fields struct {
	Title              string
	DistributionMethod string
	ProcessFlow        string
	GradeTable         GradeTable
	VOERemarks         []Remark
	Issues             []string
}

// ReportContent is the fixed content of the report. It is read-only once
// constructed: accessors hand out copies, so one value can be shared by the
// dashboard and any number of concurrent renders.
type ReportContent struct {
	title              string
	distributionMethod string
	processFlow        string
	gradeTable         GradeTable
	voeRemarks         []Remark
	issues             []string
}

// NewReportContent copies f into a new ReportContent. It never fails;
// structural problems are reported by Validate.
func NewReportContent(f Fields) *ReportContent {
	return &ReportContent{
		title:              f.Title,
		distributionMethod: f.DistributionMethod,
		processFlow:        f.ProcessFlow,
		gradeTable:         f.GradeTable.clone(),
		voeRemarks:         append([]Remark(nil), f.VOERemarks...),
		issues:             append([]string(nil), f.Issues...),
	}
}

func (c *ReportContent) Title() string              { return c.title }
func (c *ReportContent) DistributionMethod() string { return c.distributionMethod }
func (c *ReportContent) ProcessFlow() string        { return c.processFlow }
func (c *ReportContent) GradeTable() GradeTable     { return c.gradeTable.clone() }
func (c *ReportContent) VOERemarks() []Remark       { return append([]Remark(nil), c.voeRemarks...) }
func (c *ReportContent) Issues() []string           { return append([]string(nil), c.issues...) }

// VOETexts returns the feedback remarks as plain strings.
func (c *ReportContent) VOETexts() []string {
	out := make([]string, len(c.voeRemarks))
	for i, r := range c.voeRemarks {
		out[i] = r.Text
	}
	return out
}

// Fields returns a copy of the values c was built from, for derived content.
func (c *ReportContent) Fields() Fields {
	return Fields{
		Title:              c.title,
		DistributionMethod: c.distributionMethod,
		ProcessFlow:        c.processFlow,
		GradeTable:         c.gradeTable.clone(),
		VOERemarks:         c.VOERemarks(),
		Issues:             c.Issues(),
	}
}

// Validate checks the grade table. The corner and grade labels must be set,
// every row must have exactly one cell per grade and every cell must hold
// text. Zero rows is valid.
func (c *ReportContent) Validate() error {
	t := c.gradeTable
	if strings.TrimSpace(t.Corner) == "" {
		return &InvalidContentError{Field: "gradeTable.corner", Reason: "empty corner label"}
	}
	if len(t.Grades) == 0 {
		return &InvalidContentError{Field: "gradeTable.grades", Reason: "no grade columns"}
	}
	for i, g := range t.Grades {
		if strings.TrimSpace(g) == "" {
			return &InvalidContentError{Field: fmt.Sprintf("gradeTable.grades[%d]", i), Reason: "empty grade label"}
		}
	}
	for i, r := range t.Rows {
		if strings.TrimSpace(r.Label) == "" {
			return &InvalidContentError{Field: fmt.Sprintf("gradeTable.rows[%d]", i), Reason: "empty row label"}
		}
		if len(r.Cells) != len(t.Grades) {
			return &InvalidContentError{
				Field:  fmt.Sprintf("gradeTable.rows[%d]", i),
				Reason: fmt.Sprintf("row %q has %d cells, header has %d grades", r.Label, len(r.Cells), len(t.Grades)),
			}
		}
		for j, cell := range r.Cells {
			if strings.TrimSpace(cell) == "" {
				return &InvalidContentError{
					Field:  fmt.Sprintf("gradeTable.rows[%d].cells[%d]", i, j),
					Reason: "empty cell",
				}
			}
		}
	}
	return nil
}

// InvalidContentError reports a malformed ReportContent. Rendering aborts
// without producing output when it is returned.
type InvalidContentError struct {
	Field  string
	Reason string
}

func (e *InvalidContentError) Error() string {
	return fmt.Sprintf("invalid report content: %s: %s", e.Field, e.Reason)
}

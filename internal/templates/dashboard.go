package templates

import (
	"github.com/a-h/templ"

	"github.com/csg33k/perf-report/internal/domain"
	"github.com/csg33k/perf-report/internal/layout"
)

// Option is one entry of a select in the export form.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

type remarkView struct {
	Text string
	Tone string
}

type sectionView struct {
	Label   string
	IsTable bool
	Table   domain.GradeTable
	Items   []string
	Remarks []remarkView
}

type dashboardData struct {
	Title        string
	DistLabel    string
	MethodLabel  string
	ProcessLabel string
	Method       string
	Process      string
	Sections     []sectionView
	Layouts      []Option
	Formats      []Option
}

// Dashboard renders the single report page. formats lists the export
// formats the server can currently serve.
func Dashboard(c *domain.ReportContent, defaultLayout domain.Variant, formats []domain.Format) templ.Component {
	data := dashboardData{
		Title:        c.Title(),
		DistLabel:    layout.DistributionLabel,
		MethodLabel:  layout.MethodLabel,
		ProcessLabel: layout.ProcessLabel,
		Method:       c.DistributionMethod(),
		Process:      c.ProcessFlow(),
		Layouts:      layoutOptions(defaultLayout),
		Formats:      formatOptions(formats),
	}
	remarks := c.VOERemarks()
	for _, s := range layout.Sections(c) {
		v := sectionView{Label: s.Label, IsTable: s.Kind == layout.KindTable, Table: s.Table}
		if s.Label == layout.VOELabel {
			for _, r := range remarks {
				v.Remarks = append(v.Remarks, remarkView{Text: r.Text, Tone: r.Tone().String()})
			}
		} else {
			v.Items = s.Items
		}
		data.Sections = append(data.Sections, v)
	}
	return dashboardPage(data)
}

func layoutOptions(def domain.Variant) []Option {
	var out []Option
	for _, v := range domain.Variants() {
		out = append(out, Option{Value: string(v), Label: v.Label(), Selected: v == def})
	}
	return out
}

func formatOptions(formats []domain.Format) []Option {
	var out []Option
	for i, f := range formats {
		out = append(out, Option{Value: f.Name, Label: labelForFormat(f), Selected: i == 0})
	}
	return out
}

package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csg33k/perf-report/internal/domain"
)

func sampleContent() *domain.ReportContent {
	return domain.NewReportContent(domain.Fields{
		Title:              "<Report> & status",
		DistributionMethod: "절대평가",
		ProcessFlow:        "propose -> review",
		GradeTable: domain.GradeTable{
			Corner: "직급",
			Grades: []string{"S", "A", "B"},
			Rows: []domain.GradeRow{
				{Label: "책임", Cells: []string{"10%", "60%", "30%"}},
				{Label: "Total", Cells: []string{"10%", "60%", "30%"}},
			},
		},
		VOERemarks: []domain.Remark{{Text: domain.PositiveMarker + " good"}, {Text: "plain"}},
		Issues:     []string{"- one", "- two"},
	})
}

func render(t *testing.T, c *domain.ReportContent, formats ...domain.Format) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Dashboard(c, domain.VariantHeadingList, formats).Render(context.Background(), &buf))
	return buf.String()
}

func TestDashboard_EscapesContent(t *testing.T) {
	page := render(t, sampleContent(), domain.FormatDOCX)
	assert.True(t, strings.HasPrefix(page, "<!doctype html>"))
	assert.Contains(t, page, "&lt;Report&gt; &amp; status")
	assert.NotContains(t, page, "<Report>")
}

func TestDashboard_GradeTable(t *testing.T) {
	page := render(t, sampleContent(), domain.FormatDOCX)
	assert.Contains(t, page, "<thead><tr><th>직급</th><th>S</th><th>A</th><th>B</th></tr></thead>")
	assert.Contains(t, page, "<tr><td>책임</td><td>10%</td><td>60%</td><td>30%</td></tr>")
	assert.Equal(t, 2, strings.Count(page, "<tr><td>"))
}

func TestDashboard_RemarksAndIssues(t *testing.T) {
	page := render(t, sampleContent(), domain.FormatDOCX)
	assert.Contains(t, page, `<p class="line" data-tone="positive">`+domain.PositiveMarker+` good</p>`)
	assert.Contains(t, page, `<p class="line" data-tone="neutral">plain</p>`)
	assert.Contains(t, page, `<p class="line">- one</p><p class="line">- two</p>`)
}

func TestDashboard_ExportForm(t *testing.T) {
	page := render(t, sampleContent(), domain.FormatDOCX, domain.FormatPDF)
	assert.Contains(t, page, `<option value="heading-list" selected>블록</option>`)
	assert.Contains(t, page, `<option value="plain">기본</option>`)
	assert.Contains(t, page, `<option value="docx" selected>Word (.docx)</option>`)
	assert.Contains(t, page, `<option value="pdf">PDF (.pdf)</option>`)
	assert.Equal(t, 1, strings.Count(page, "<form "))
}

func TestDashboard_EmptyLists(t *testing.T) {
	f := sampleContent().Fields()
	f.VOERemarks, f.Issues = nil, nil
	page := render(t, domain.NewReportContent(f))
	assert.Contains(t, page, `<div class="label-box">구성원 VOE</div><div></div>`)
	assert.NotContains(t, page, "<option value=\"docx\"")
}

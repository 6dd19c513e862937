package pdf_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csg33k/perf-report/internal/adapters/pdf"
	"github.com/csg33k/perf-report/internal/content"
	"github.com/csg33k/perf-report/internal/domain"
)

// latinContent keeps to latin-1 so the core-font fallback can draw it.
func latinContent() domain.Fields {
	return domain.Fields{
		Title:              "Performance management status",
		DistributionMethod: "Absolute rating",
		ProcessFlow:        "Lead proposes -> committee review -> feedback -> appeal -> final",
		GradeTable: domain.GradeTable{
			Corner: "Level",
			Grades: []string{"S", "A", "B", "C", "D"},
			Rows: []domain.GradeRow{
				{Label: "Principal (50%)", Cells: []string{"10%", "20%", "50%", "15%", "5%"}},
				{Label: "Senior (30%)", Cells: []string{"10%", "20%", "50%", "15%", "5%"}},
				{Label: "Staff (20%)", Cells: []string{"10%", "20%", "50%", "15%", "5%"}},
				{Label: "Total", Cells: []string{"10%", "20%", "50%", "15%", "5%"}},
			},
		},
		VOERemarks: []domain.Remark{
			{Text: "+ Less distortion by tenure since the switch"},
			{Text: "- Ratings feel lenient; B is expected by default"},
		},
		Issues: []string{
			"- Evaluation and compensation are not separated by pay band",
			"- Peer review lacks acceptance",
		},
	}
}

func TestGenerate_AllVariants(t *testing.T) {
	c := domain.NewReportContent(latinContent())
	g := pdf.New(nil)
	assert.False(t, g.HasUnicodeFont())
	assert.Equal(t, domain.FormatPDF, g.Format())

	for _, v := range domain.Variants() {
		t.Run(string(v), func(t *testing.T) {
			var first, second bytes.Buffer
			require.NoError(t, g.Render(context.Background(), c, v, &first))
			require.NoError(t, g.Render(context.Background(), c, v, &second))

			assert.True(t, bytes.HasPrefix(first.Bytes(), []byte("%PDF-")))
			assert.True(t, bytes.Equal(first.Bytes(), second.Bytes()), "re-render differs")
		})
	}
}

// The bundled report mixes Hangul, bullets and emoji markers, none of which
// Helvetica covers.
func TestGenerate_DefaultContentCoreFont(t *testing.T) {
	g := pdf.New(nil)
	for _, v := range domain.Variants() {
		t.Run(string(v), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, g.Render(context.Background(), content.MustDefault(), v, &buf))
			assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
		})
	}
}

func TestGenerate_UnicodeFont(t *testing.T) {
	font, err := os.ReadFile("testdata/DejaVuSansCondensed.ttf")
	require.NoError(t, err)
	g := pdf.New(font)
	require.True(t, g.HasUnicodeFont())

	for _, v := range domain.Variants() {
		t.Run(string(v), func(t *testing.T) {
			var first, second bytes.Buffer
			require.NoError(t, g.Render(context.Background(), content.MustDefault(), v, &first))
			require.NoError(t, g.Render(context.Background(), content.MustDefault(), v, &second))

			assert.True(t, bytes.HasPrefix(first.Bytes(), []byte("%PDF-")))
			assert.True(t, bytes.Equal(first.Bytes(), second.Bytes()), "re-render differs")
		})
	}
}

func TestGenerate_LongUnbrokenWord(t *testing.T) {
	f := latinContent()
	long := ""
	for i := 0; i < 40; i++ {
		long += "ÄÖÜabcdef"
	}
	f.Issues = append(f.Issues, long, "\u2022 bullet with a trailing line\nand a second one")
	var buf bytes.Buffer
	require.NoError(t, pdf.New(nil).Render(context.Background(), domain.NewReportContent(f), domain.VariantHeadingList, &buf))
	assert.NotZero(t, buf.Len())
}

func TestGenerate_LongListBreaksPages(t *testing.T) {
	f := latinContent()
	for i := 0; i < 120; i++ {
		f.Issues = append(f.Issues, "- an additional issue line that is long enough to wrap once or twice across the content column of the grid")
	}
	var buf bytes.Buffer
	require.NoError(t, pdf.New(nil).Render(context.Background(), domain.NewReportContent(f), domain.VariantPlain, &buf))
	pages := bytes.Count(buf.Bytes(), []byte("/Type /Page")) - bytes.Count(buf.Bytes(), []byte("/Type /Pages"))
	assert.Greater(t, pages, 1)
}

func TestGenerate_EmptyList(t *testing.T) {
	f := latinContent()
	f.VOERemarks = nil
	var buf bytes.Buffer
	require.NoError(t, pdf.New(nil).Render(context.Background(), domain.NewReportContent(f), domain.VariantBoxedGrid, &buf))
	assert.NotZero(t, buf.Len())
}

func TestGenerate_RaggedTable(t *testing.T) {
	f := latinContent()
	f.GradeTable.Rows[0].Cells = f.GradeTable.Rows[0].Cells[:2]
	var buf bytes.Buffer
	err := pdf.New(nil).Render(context.Background(), domain.NewReportContent(f), domain.VariantBoxedGrid, &buf)
	var ice *domain.InvalidContentError
	require.True(t, errors.As(err, &ice))
	assert.Equal(t, 0, buf.Len())
}

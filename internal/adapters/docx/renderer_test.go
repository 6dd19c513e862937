package docx_test

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csg33k/perf-report/internal/adapters/docx"
	"github.com/csg33k/perf-report/internal/content"
	"github.com/csg33k/perf-report/internal/domain"
)

// ---------------------------------------------------------------------------
// Decoding helpers: a minimal reader for the parts of document.xml under test.
// Tags use local names so they match regardless of the w: prefix.
// ---------------------------------------------------------------------------

type xBlock struct {
	XMLName xml.Name
	PPr     *struct {
		Style *struct {
			Val string `xml:"val,attr"`
		} `xml:"pStyle"`
	} `xml:"pPr"`
	Texts []string `xml:"r>t"`
	Rows  []xRow   `xml:"tr"`
}

type xRow struct {
	Cells []xCell `xml:"tc"`
}

type xWidth struct {
	W int `xml:"w,attr"`
}

type xCell struct {
	TcPr struct {
		Mar *struct {
			Left  xWidth `xml:"left"`
			Right xWidth `xml:"right"`
		} `xml:"tcMar"`
	} `xml:"tcPr"`
	Blocks []xBlock `xml:",any"`
}

type xDocument struct {
	Body struct {
		Blocks []xBlock `xml:",any"`
	} `xml:"body"`
}

func (b xBlock) isTable() bool     { return b.XMLName.Local == "tbl" }
func (b xBlock) isParagraph() bool { return b.XMLName.Local == "p" }
func (b xBlock) text() string      { return strings.Join(b.Texts, "") }
func (b xBlock) style() string {
	if b.PPr == nil || b.PPr.Style == nil {
		return ""
	}
	return b.PPr.Style.Val
}

func render(t *testing.T, c *domain.ReportContent, v domain.Variant) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, docx.New().Render(context.Background(), c, v, &buf))
	return buf.Bytes()
}

func readPart(t *testing.T, pkg []byte, name string) []byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(pkg), int64(len(pkg)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			require.NoError(t, err)
			defer rc.Close()
			data, err := io.ReadAll(rc)
			require.NoError(t, err)
			return data
		}
	}
	t.Fatalf("part %s not found", name)
	return nil
}

func decode(t *testing.T, pkg []byte) xDocument {
	t.Helper()
	var d xDocument
	require.NoError(t, xml.Unmarshal(readPart(t, pkg, "word/document.xml"), &d))
	return d
}

// flatten lists paragraphs in document order, descending into tables.
func flatten(blocks []xBlock) []xBlock {
	var out []xBlock
	for _, b := range blocks {
		if b.isParagraph() {
			out = append(out, b)
			continue
		}
		for _, r := range b.Rows {
			for _, c := range r.Cells {
				out = append(out, flatten(c.Blocks)...)
			}
		}
	}
	return out
}

// findTable returns the first table, depth-first, whose first cell reads corner.
func findTable(blocks []xBlock, corner string) *xBlock {
	for i := range blocks {
		b := &blocks[i]
		if !b.isTable() {
			continue
		}
		if len(b.Rows) > 0 && len(b.Rows[0].Cells) > 0 {
			ps := flatten(b.Rows[0].Cells[0].Blocks)
			if len(ps) > 0 && ps[0].text() == corner {
				return b
			}
		}
		for _, r := range b.Rows {
			for _, c := range r.Cells {
				if t := findTable(c.Blocks, corner); t != nil {
					return t
				}
			}
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestRender_PackageParts(t *testing.T) {
	pkg := render(t, content.MustDefault(), domain.VariantBoxedGrid)
	zr, err := zip.NewReader(bytes.NewReader(pkg), int64(len(pkg)))
	require.NoError(t, err)

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
		assert.True(t, f.Modified.IsZero() || f.Modified.Year() <= 1980, "%s carries a timestamp", f.Name)
	}
	assert.Equal(t, []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/document.xml",
		"word/_rels/document.xml.rels",
		"word/styles.xml",
		"word/settings.xml",
	}, names)
	assert.Contains(t, string(readPart(t, pkg, "[Content_Types].xml")), "wordprocessingml.document.main+xml")
}

func TestRender_Deterministic(t *testing.T) {
	c := content.MustDefault()
	for _, v := range domain.Variants() {
		t.Run(string(v), func(t *testing.T) {
			first := render(t, c, v)
			second := render(t, c, v)
			assert.True(t, bytes.Equal(first, second), "re-render differs")
		})
	}
}

func TestRender_VariantsDiffer(t *testing.T) {
	c := content.MustDefault()
	plain := render(t, c, domain.VariantPlain)
	boxed := render(t, c, domain.VariantBoxedGrid)
	list := render(t, c, domain.VariantHeadingList)
	assert.False(t, bytes.Equal(plain, boxed))
	assert.False(t, bytes.Equal(boxed, list))
}

func TestRender_SectionOrder(t *testing.T) {
	c := content.MustDefault()
	for _, v := range domain.Variants() {
		t.Run(string(v), func(t *testing.T) {
			var all []string
			for _, p := range flatten(decode(t, render(t, c, v)).Body.Blocks) {
				all = append(all, p.text())
			}
			joined := strings.Join(all, "\n")

			dist := strings.Index(joined, c.ProcessFlow())
			grade := strings.Index(joined, "책임(인원비중: 50%)")
			voe := strings.Index(joined, c.VOETexts()[0])
			issue := strings.Index(joined, c.Issues()[0])
			require.True(t, dist >= 0 && grade >= 0 && voe >= 0 && issue >= 0)
			assert.Less(t, dist, grade)
			assert.Less(t, grade, voe)
			assert.Less(t, voe, issue)
			assert.Equal(t, 1, strings.Count(joined, c.Title()))
		})
	}
}

func TestRender_GradeTableDimensions(t *testing.T) {
	c := content.MustDefault()
	gt := c.GradeTable()
	for _, v := range domain.Variants() {
		t.Run(string(v), func(t *testing.T) {
			d := decode(t, render(t, c, v))
			tbl := findTable(d.Body.Blocks, "직급")
			require.NotNil(t, tbl, "grade table not found")

			require.Len(t, tbl.Rows, len(gt.Rows)+1) // header + 4 data rows
			want := [][]string{gt.Header()}
			for _, r := range gt.Rows {
				want = append(want, append([]string{r.Label}, r.Cells...))
			}
			for i, row := range tbl.Rows {
				require.Len(t, row.Cells, 6)
				for j, cell := range row.Cells {
					ps := flatten(cell.Blocks)
					require.NotEmpty(t, ps)
					assert.Equal(t, want[i][j], ps[0].text(), "cell %d,%d", i, j)
				}
			}
		})
	}
}

func TestRender_GradeCellPadding(t *testing.T) {
	for _, v := range domain.Variants() {
		t.Run(string(v), func(t *testing.T) {
			tbl := findTable(decode(t, render(t, content.MustDefault(), v)).Body.Blocks, "직급")
			require.NotNil(t, tbl)
			for i, row := range tbl.Rows {
				for j, cell := range row.Cells {
					require.NotNil(t, cell.TcPr.Mar, "cell %d,%d", i, j)
					assert.Equal(t, 108, cell.TcPr.Mar.Left.W)
					assert.Equal(t, 108, cell.TcPr.Mar.Right.W)
				}
			}
		})
	}
}

func TestRender_ListItemsVerbatim(t *testing.T) {
	c := content.MustDefault()
	want := append(c.VOETexts(), c.Issues()...)
	for _, v := range domain.Variants() {
		t.Run(string(v), func(t *testing.T) {
			var items []string
			for _, p := range flatten(decode(t, render(t, c, v)).Body.Blocks) {
				if p.style() == "ListParagraph" && !strings.Contains(p.text(), ": ") {
					items = append(items, p.text())
				}
			}
			assert.Equal(t, want, items)
		})
	}
}

func TestRender_EmptyFeedbackList(t *testing.T) {
	f := content.MustDefault().Fields()
	f.VOERemarks = nil
	pkg := render(t, domain.NewReportContent(f), domain.VariantBoxedGrid)

	d := decode(t, pkg)
	var last xBlock
	for _, b := range d.Body.Blocks {
		if b.isTable() {
			last = b
		}
	}
	require.Len(t, last.Rows, 3, "layout grid")

	voeCell := last.Rows[1].Cells[1]
	ps := flatten(voeCell.Blocks)
	for _, p := range ps {
		assert.NotEqual(t, "ListParagraph", p.style())
		assert.Empty(t, p.text())
	}
	// Issues are unaffected.
	assert.Len(t, flatten(last.Rows[2].Cells[1].Blocks), 7)
}

func TestRender_RaggedTable(t *testing.T) {
	f := content.MustDefault().Fields()
	f.GradeTable.Rows[2].Cells = append(f.GradeTable.Rows[2].Cells, "XX%")

	var buf bytes.Buffer
	err := docx.New().Render(context.Background(), domain.NewReportContent(f), domain.VariantBoxedGrid, &buf)
	var ice *domain.InvalidContentError
	require.True(t, errors.As(err, &ice), "got %v", err)
	assert.Equal(t, 0, buf.Len())
}

func TestRender_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	err := docx.New().Render(ctx, content.MustDefault(), domain.VariantPlain, &buf)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, buf.Len())
}

func TestRender_BoxedGridBorders(t *testing.T) {
	doc := string(readPart(t, render(t, content.MustDefault(), domain.VariantBoxedGrid), "word/document.xml"))
	assert.Contains(t, doc, `<w:tblLayout w:type="fixed">`)
	assert.Contains(t, doc, `w:color="A6A6A6"`)
	assert.Contains(t, doc, `<w:insideH w:val="nil"`)
	assert.Contains(t, doc, `<w:gridCol w:w="2268"></w:gridCol><w:gridCol w:w="7370"></w:gridCol>`)
	assert.Contains(t, doc, `<w:vAlign w:val="center"></w:vAlign>`)
}

func TestRender_PreservesLeadingMarkers(t *testing.T) {
	doc := string(readPart(t, render(t, content.MustDefault(), domain.VariantPlain), "word/document.xml"))
	assert.Contains(t, doc, "🟢 절대평가 전환 이후")
	assert.Contains(t, doc, "🔴 평가 기준이 조직별로")
	assert.Contains(t, doc, "- 보상과 평가 분리 요구")
}

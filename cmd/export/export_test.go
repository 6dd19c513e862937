package main

import (
	"archive/zip"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csg33k/perf-report/internal/adapters/docx"
	"github.com/csg33k/perf-report/internal/config"
	"github.com/csg33k/perf-report/internal/content"
	"github.com/csg33k/perf-report/internal/domain"
)

func TestRendererFor(t *testing.T) {
	cfg := &config.Config{}

	r, err := rendererFor("docx", cfg)
	require.NoError(t, err)
	assert.Equal(t, domain.FormatDOCX, r.Format())

	_, err = rendererFor("pdf", cfg)
	assert.ErrorContains(t, err, "REPORT_PDF_FONT")

	_, err = rendererFor("odt", cfg)
	assert.Error(t, err)
}

func TestWriteVariant(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.docx")
	got, err := writeVariant(context.Background(), docx.New(), content.MustDefault(), domain.VariantHeadingList, path)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	_, err = zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
}

func TestWriteVariant_InvalidContentWritesNothing(t *testing.T) {
	f := content.MustDefault().Fields()
	f.GradeTable.Rows[0].Cells = nil
	path := filepath.Join(t.TempDir(), "report.docx")

	_, err := writeVariant(context.Background(), docx.New(), domain.NewReportContent(f), domain.VariantPlain, path)
	var ice *domain.InvalidContentError
	require.ErrorAs(t, err, &ice)
	assert.NoFileExists(t, path)
}

func TestRunExport_All(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_LEVEL", "REPORT_DEFAULT_LAYOUT", "REPORT_PDF_FONT"} {
		t.Setenv(k, "")
	}
	dir := t.TempDir()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--all", "--out", dir})
	t.Cleanup(func() {
		exportAll, exportOut = false, ""
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	for _, v := range domain.Variants() {
		assert.FileExists(t, filepath.Join(dir, domain.ExportFileName(v, domain.FormatDOCX)))
	}
	assert.Contains(t, out.String(), "_블록.docx")
}

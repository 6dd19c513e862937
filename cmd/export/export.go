package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/csg33k/perf-report/internal/adapters/docx"
	"github.com/csg33k/perf-report/internal/adapters/pdf"
	"github.com/csg33k/perf-report/internal/config"
	"github.com/csg33k/perf-report/internal/content"
	"github.com/csg33k/perf-report/internal/domain"
	"github.com/csg33k/perf-report/internal/ports"
)

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	renderer, err := rendererFor(exportFormat, cfg)
	if err != nil {
		return err
	}
	report, err := content.Default()
	if err != nil {
		return fmt.Errorf("failed to load report content: %w", err)
	}

	if exportAll {
		dir := exportOut
		if dir == "" {
			dir = "."
		}
		for _, v := range domain.Variants() {
			path, err := writeVariant(cmd.Context(), renderer, report, v, filepath.Join(dir, domain.ExportFileName(v, renderer.Format())))
			if err != nil {
				return err
			}
			cmd.Println(path)
		}
		return nil
	}

	v := cfg.Layout()
	if exportLayout != "" {
		if v, err = domain.ParseVariant(exportLayout); err != nil {
			return err
		}
	}
	out := exportOut
	if out == "" {
		out = domain.ExportFileName(v, renderer.Format())
	}
	path, err := writeVariant(cmd.Context(), renderer, report, v, out)
	if err != nil {
		return err
	}
	cmd.Println(path)
	return nil
}

func rendererFor(format string, cfg *config.Config) (ports.DocumentRenderer, error) {
	switch format {
	case domain.FormatDOCX.Name:
		return docx.New(), nil
	case domain.FormatPDF.Name:
		font, err := cfg.LoadPDFFont()
		if err != nil {
			return nil, err
		}
		if font == nil {
			return nil, errors.New("pdf export needs REPORT_PDF_FONT")
		}
		return pdf.New(font), nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// writeVariant renders fully before creating path, so a rejected report
// leaves no file behind.
func writeVariant(ctx context.Context, r ports.DocumentRenderer, c *domain.ReportContent, v domain.Variant, path string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	var buf bytes.Buffer
	if err := r.Render(ctx, c, v, &buf); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", v, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

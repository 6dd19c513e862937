package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/csg33k/perf-report/internal/adapters/docx"
	"github.com/csg33k/perf-report/internal/adapters/pdf"
	"github.com/csg33k/perf-report/internal/config"
	"github.com/csg33k/perf-report/internal/content"
	"github.com/csg33k/perf-report/internal/handlers"
	"github.com/csg33k/perf-report/internal/ports"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	slog.SetDefault(logger)

	report, err := content.Default()
	if err != nil {
		log.Fatalf("failed to load report content: %v", err)
	}

	renderers := []ports.DocumentRenderer{docx.New()}
	font, err := cfg.LoadPDFFont()
	if err != nil {
		log.Fatal(err)
	}
	if font != nil {
		renderers = append(renderers, pdf.New(font))
	} else {
		logger.Info("REPORT_PDF_FONT not set, pdf export disabled")
	}

	h := handlers.New(report, cfg.Layout(), logger, renderers...)

	log.Printf("Performance report dashboard running on http://localhost:%s", cfg.Port)
	log.Printf("Default layout: %s", cfg.Layout())
	if err := http.ListenAndServe(":"+cfg.Port, h.Routes()); err != nil {
		log.Fatal(err)
	}
}

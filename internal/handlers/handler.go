package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net/http"

	"github.com/a-h/templ"

	"github.com/csg33k/perf-report/internal/domain"
	"github.com/csg33k/perf-report/internal/ports"
	"github.com/csg33k/perf-report/internal/templates"
)

type Handler struct {
	content       *domain.ReportContent
	defaultLayout domain.Variant
	log           *slog.Logger
	renderers     map[string]ports.DocumentRenderer
	formats       []domain.Format
}

// New builds a Handler serving c. The first renderer is the default export
// format.
func New(c *domain.ReportContent, defaultLayout domain.Variant, log *slog.Logger, renderers ...ports.DocumentRenderer) *Handler {
	if log == nil {
		log = slog.Default()
	}
	h := &Handler{
		content:       c,
		defaultLayout: defaultLayout,
		log:           log,
		renderers:     make(map[string]ports.DocumentRenderer, len(renderers)),
	}
	for _, r := range renderers {
		f := r.Format()
		if _, dup := h.renderers[f.Name]; dup {
			continue
		}
		h.renderers[f.Name] = r
		h.formats = append(h.formats, f)
	}
	return h
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.index)
	mux.HandleFunc("GET /export", h.export)
	return h.requestID(mux)
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	render(w, r, templates.Dashboard(h.content, h.defaultLayout, h.formats))
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	log := loggerFrom(r.Context(), h.log)

	layout := h.defaultLayout
	if s := r.URL.Query().Get("layout"); s != "" {
		v, err := domain.ParseVariant(s)
		if err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		layout = v
	}

	renderer, err := h.renderer(r.URL.Query().Get("format"))
	if err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	format := renderer.Format()

	var buf bytes.Buffer
	if err := renderer.Render(r.Context(), h.content, layout, &buf); err != nil {
		var ice *domain.InvalidContentError
		if errors.As(err, &ice) {
			log.Error("report content rejected", "field", ice.Field, "reason", ice.Reason)
		} else {
			log.Error("export failed", "layout", layout, "format", format.Name, "err", err)
		}
		http.Error(w, err.Error(), 500)
		return
	}

	filename := domain.ExportFileName(layout, format)
	log.Info("export", "layout", layout, "format", format.Name, "bytes", buf.Len())
	w.Header().Set("Content-Type", format.MIMEType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	w.Write(buf.Bytes())
}

func (h *Handler) renderer(name string) (ports.DocumentRenderer, error) {
	if len(h.formats) == 0 {
		return nil, errors.New("no export formats configured")
	}
	if name == "" {
		name = h.formats[0].Name
	}
	r, ok := h.renderers[name]
	if !ok {
		return nil, fmt.Errorf("unsupported format %q", name)
	}
	return r, nil
}

// render writes a templ component to the response.
func render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), 500)
	}
}

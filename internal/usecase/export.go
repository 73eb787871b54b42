package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"notary-profile/internal/domain"
	"notary-profile/internal/model"
	"notary-profile/templates"
)

type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// Export formats.
const (
	FormatHTML = "html"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// Exporter turns a view state into a standalone document.
type Exporter struct {
	renderer Renderer
	logger   *slog.Logger
	attempts int
	backoff  time.Duration
}

func NewExporter(r Renderer, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{renderer: r, logger: logger, attempts: 3, backoff: time.Second}
}

func (e *Exporter) Export(ctx context.Context, s domain.ViewState, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatHTML:
		html, err := templates.RenderString(s, false)
		return []byte(html), err
	case FormatPDF:
		return e.PDF(ctx, s)
	case FormatJSON:
		return ProfileJSON(s)
	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
}

// ProfileJSON encodes the state's profile and checks it against the
// exported profile schema.
func ProfileJSON(s domain.ViewState) ([]byte, error) {
	if s.Profile == nil {
		return nil, fmt.Errorf("no profile to export (state %s)", s.Status)
	}
	b, err := json.MarshalIndent(s.Profile, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode profile: %w", err)
	}
	var doc interface{}
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	if err := model.ValidateProfile(doc); err != nil {
		return nil, err
	}
	return b, nil
}

// PDF renders the page through the configured renderer. Chrome start-up is
// flaky under load, so a bad or empty document is retried with backoff.
func (e *Exporter) PDF(ctx context.Context, s domain.ViewState) ([]byte, error) {
	if e.renderer == nil {
		return nil, fmt.Errorf("pdf export: no renderer configured")
	}
	html, err := templates.RenderString(s, false)
	if err != nil {
		return nil, err
	}

	var pdf []byte
	var renderErr error
	for i := 0; i < e.attempts; i++ {
		pdf, renderErr = e.renderer.RenderHTMLToPDF(ctx, html)
		if renderErr == nil {
			if len(pdf) > 0 && strings.HasPrefix(string(pdf), "%PDF") {
				return pdf, nil
			}
			renderErr = fmt.Errorf("invalid PDF output (len=%d)", len(pdf))
		}
		e.logger.Warn("export.render_failed", "attempt", i+1, "error", renderErr)
		if i < e.attempts-1 {
			select {
			case <-time.After(time.Duration(1<<i) * e.backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, fmt.Errorf("pdf export failed after %d attempts: %w", e.attempts, renderErr)
}

package templates

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"io"

	"notary-profile/internal/domain"
	"notary-profile/pkg/formatters"
)

//go:embed profile.html
var profileHTML string

//go:embed style.css
var styleCSS string

var profileTpl = template.Must(template.New("profile").Parse(profileHTML))

// Page is the data handed to profile.html.
type Page struct {
	State  domain.ViewState
	View   *formatters.View
	Labels map[string]string
	NoData string
	CSS    template.CSS
	// Interactive enables the refresh and contact forms; exports turn it off.
	Interactive bool
	// Notice is a one-line flash message, e.g. after a contact submission.
	Notice string
}

// NewPage builds the page data for s. The stylesheet is inlined so saved
// HTML and PDF output keep their styling.
func NewPage(s domain.ViewState, interactive bool) Page {
	p := Page{
		State:       s,
		Labels:      formatters.DefaultLabels(),
		NoData:      formatters.NoData,
		CSS:         template.CSS(styleCSS),
		Interactive: interactive,
	}
	if s.Profile != nil {
		v := formatters.BuildView(*s.Profile)
		p.View = &v
	}
	return p
}

func Render(w io.Writer, p Page) error {
	if err := profileTpl.Execute(w, p); err != nil {
		return fmt.Errorf("render profile page: %w", err)
	}
	return nil
}

// RenderString renders s as a standalone HTML document.
func RenderString(s domain.ViewState, interactive bool) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, NewPage(s, interactive)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"notary-profile/internal/domain"
	"notary-profile/pkg/formatters"
)

// RenderCard draws the view state as a bordered terminal card. It backs
// both the `show` command and the TUI body.
func RenderCard(t Theme, s domain.ViewState) string {
	var b strings.Builder
	switch {
	case s.Status == domain.StatusLoading:
		b.WriteString(t.Muted.Render("Loading profile..."))
	case s.Status == domain.StatusError:
		b.WriteString(t.Error.Render(s.Message))
	case s.Profile == nil:
		b.WriteString(t.Muted.Render(formatters.NoData))
	default:
		writeProfile(&b, t, formatters.BuildView(*s.Profile))
	}
	return t.Card.Render(b.String())
}

func writeProfile(b *strings.Builder, t Theme, v formatters.View) {
	if v.Sample {
		b.WriteString(t.Banner.Render("Sample profile: no directory record was found."))
		b.WriteString("\n")
	}
	b.WriteString(t.Title.Render(v.FullName))
	if v.Initials != "" {
		b.WriteString(" " + t.Subtitle.Render("("+v.Initials+")"))
	}
	b.WriteString("\n")
	b.WriteString(t.Section.Render(formatters.DefaultLabels()[formatters.SectionIntroduction]))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(72).Render(v.Introduction))
	b.WriteString("\n")

	for _, s := range v.Sections {
		b.WriteString(t.Section.Render(s.Title))
		b.WriteString("\n")
		if s.Empty {
			b.WriteString(t.Muted.Render(formatters.NoData))
			b.WriteString("\n")
			continue
		}
		for _, r := range s.Rows {
			fmt.Fprintf(b, "%s %s\n", t.Label.Render(r.Label+":"), r.Value)
		}
		if s.Table != nil {
			b.WriteString(t.Label.Render(strings.Join(s.Table.Header, " | ")))
			b.WriteString("\n")
			for _, row := range s.Table.Rows {
				b.WriteString(strings.Join(row, " | "))
				b.WriteString("\n")
			}
		}
		for _, c := range s.Checks {
			mark := "[ ]"
			if c.Checked {
				mark = "[x]"
			}
			fmt.Fprintf(b, "%s %s\n", mark, c.Label)
		}
		for _, l := range s.Links {
			fmt.Fprintf(b, "%s %s\n", l.Label, t.Muted.Render(l.URL))
		}
		for _, it := range s.Items {
			fmt.Fprintf(b, "- %s\n", it)
		}
		if s.Note != "" {
			b.WriteString(t.Muted.Render(s.Note))
			b.WriteString("\n")
		}
	}
}

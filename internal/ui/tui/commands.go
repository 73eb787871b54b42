package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"notary-profile/internal/domain"
)

// Refresher runs one fetch cycle; usecase.Processor satisfies it.
type Refresher interface {
	Refresh(ctx context.Context) (domain.ViewState, error)
}

func cmdRefresh(ctx context.Context, r Refresher) tea.Cmd {
	return func() tea.Msg {
		s, err := r.Refresh(ctx)
		return refreshDoneMsg{state: s, err: err}
	}
}

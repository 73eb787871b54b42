package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"notary-profile/internal/domain"
)

type model struct {
	ctx       context.Context
	theme     Theme
	refresher Refresher
	spinner   spinner.Model

	// state keeps the last applied Seq while loading so an older result
	// arriving late is ignored.
	state domain.ViewState
}

func Run(ctx context.Context, r Refresher) error {
	p := tea.NewProgram(newModel(ctx, r), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func newModel(ctx context.Context, r Refresher) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return model{
		ctx:       ctx,
		theme:     DefaultTheme(),
		refresher: r,
		spinner:   sp,
		state:     domain.ViewState{Status: domain.StatusLoading},
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, cmdRefresh(m.ctx, m.refresher))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			if m.state.Status == domain.StatusLoading {
				return m, nil
			}
			m.state = domain.ViewState{Status: domain.StatusLoading, Seq: m.state.Seq}
			return m, tea.Batch(m.spinner.Tick, cmdRefresh(m.ctx, m.refresher))
		}
	case refreshDoneMsg:
		if msg.err != nil {
			m.state = domain.ViewState{Status: domain.StatusError, Message: msg.err.Error(), Seq: m.state.Seq}
			return m, nil
		}
		if msg.state.Seq < m.state.Seq {
			return m, nil
		}
		m.state = msg.state
		return m, nil
	case spinner.TickMsg:
		if m.state.Status != domain.StatusLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	body := RenderCard(m.theme, m.state)
	if m.state.Status == domain.StatusLoading {
		body = m.spinner.View() + " " + body
	}
	help := "r retry • q quit"
	return body + "\n" + m.theme.Help.Render(help) + "\n"
}

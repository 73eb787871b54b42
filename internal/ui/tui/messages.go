package tui

import "notary-profile/internal/domain"

type refreshDoneMsg struct {
	state domain.ViewState
	err   error
}

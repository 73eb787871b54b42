package domain

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusLoading Status = "loading"
	StatusError   Status = "error"
	StatusEmpty   Status = "empty"
	StatusLoaded  Status = "loaded"
)

// ViewState is the only state the rendering layer consumes. Seq orders
// fetch cycles so a slow, older response can never replace a newer one.
type ViewState struct {
	Seq       uint64    `json:"seq"`
	CycleID   uuid.UUID `json:"cycleId"`
	Status    Status    `json:"status"`
	Message   string    `json:"message,omitempty"`
	Profile   *Profile  `json:"profile,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ContactForm is the free-text e-mail compose form. It is captured only.
type ContactForm struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Message string `json:"message" form:"message"`
}

package qrsession

import (
	"time"

	"maya-connect/internal/domain/qr"
)

type State string

const (
	StateLoading    State = "loading"
	StateDisplaying State = "displaying"
	StateError      State = "error"
	StateClosed     State = "closed"
)

// Snapshot is what observers render. Token fields are empty in StateError.
type Snapshot struct {
	SessionID  string     `json:"sessionId"`
	State      State      `json:"state"`
	Token      string     `json:"token,omitempty"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
	Image      *qr.Image  `json:"image,omitempty"`
	RefreshAt  *time.Time `json:"refreshAt,omitempty"`
	Error      string     `json:"error,omitempty"`
	Generation uint64     `json:"generation"`
}

func (s Snapshot) Displaying() bool {
	return s.State == StateDisplaying
}

func displaying(id string, gen uint64, resp qr.CodeResponse, r qr.Renderer, refreshAt time.Time) Snapshot {
	expiresAt := resp.Token.ExpiresAt()
	img := qr.ResolveImage(resp, r)
	return Snapshot{
		SessionID:  id,
		State:      StateDisplaying,
		Token:      resp.Token.Value(),
		ExpiresAt:  &expiresAt,
		Image:      &img,
		RefreshAt:  &refreshAt,
		Generation: gen,
	}
}

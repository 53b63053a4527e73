package domain

import "errors"

var ErrSessionNotFound = errors.New("session not found")

// FlashCategory classifies a user-facing message.
type FlashCategory string

const (
	FlashSuccess FlashCategory = "success"
	FlashInfo    FlashCategory = "info"
	FlashDanger  FlashCategory = "danger"
	FlashMessage FlashCategory = "message"
)

// Flash is a message shown once on the next rendered page.
type Flash struct {
	Category FlashCategory `json:"category"`
	Message  string        `json:"message"`
}

// Session is the server-side state bound to one browser.
// UserID is zero for anonymous sessions.
type Session struct {
	ID                  string  `json:"id"`
	UserID              int64   `json:"user_id"`
	Flashes             []Flash `json:"flashes,omitempty"`
	RegistrationSuccess bool    `json:"registration_success,omitempty"`
}

func (s *Session) Authenticated() bool {
	return s != nil && s.UserID != 0
}

func (s *Session) AddFlash(category FlashCategory, msg string) {
	s.Flashes = append(s.Flashes, Flash{Category: category, Message: msg})
}

// PopFlashes returns pending flashes and clears them.
func (s *Session) PopFlashes() []Flash {
	out := s.Flashes
	s.Flashes = nil
	return out
}

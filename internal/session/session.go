package session

import (
	"github.com/google/uuid"

	"github.com/SupreetAmrad/e-commerce-backend/internal/domain"
)

// State is the whole of a visitor's UI state: their cart, auth token,
// catalog snapshot and pending notices. Handlers mutate it within a single
// request and the middleware saves it back, so there is no hidden shared
// mutable state.
type State struct {
	ID       string           `json:"id"`
	Token    string           `json:"token,omitempty"`
	Cart     domain.Cart      `json:"cart"`
	Products []domain.Product `json:"products,omitempty"`
	Notices  []domain.Notice  `json:"notices,omitempty"`
}

// NewState creates an empty state with a fresh session ID.
func NewState() *State {
	return &State{ID: uuid.NewString()}
}

// PushNotice queues a notice to be shown on the next full page render.
func (s *State) PushNotice(n domain.Notice) {
	s.Notices = append(s.Notices, n)
}

// PopNotices returns the queued notices and clears the queue.
func (s *State) PopNotices() []domain.Notice {
	notices := s.Notices
	s.Notices = nil
	return notices
}

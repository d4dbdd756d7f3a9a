package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/SupreetAmrad/e-commerce-backend/internal/session"
)

const stateContextKey = "sessionState"

// Session resolves the visitor's state from the session cookie, issuing a
// fresh session when there is none, and saves the state back once the
// handler finishes. Handlers only ever mutate the state in memory.
func Session(store session.Store, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var state *session.State

		if id, err := c.Cookie(session.CookieName); err == nil && id != "" {
			state, err = store.Get(c.Request.Context(), id)
			if err != nil {
				logger.Errorf("Middleware: Failed to load session %s: %v", id, err)
				state = nil
			}
		}

		if state == nil {
			state = session.NewState()
			session.SetCookie(c.Writer, state.ID, session.CookieOptions{})
			logger.Debugf("Middleware: Issued new session %s", state.ID)
		}

		c.Set(stateContextKey, state)
		c.Next()

		if err := store.Save(c.Request.Context(), state); err != nil {
			logger.Errorf("Middleware: Failed to save session %s: %v", state.ID, err)
		}
	}
}

// State returns the session state the Session middleware resolved for this
// request.
func State(c *gin.Context) *session.State {
	state, _ := c.MustGet(stateContextKey).(*session.State)
	return state
}

package bootstrap

import (
	"context"
	"sync"

	"backoffice/internal/credential"
	"backoffice/internal/session"
	"backoffice/internal/token"
	"backoffice/internal/utils"
)

// Controller reconciles the persisted credential with the session store at
// process start. It never fails: an unreadable or expired credential means
// "not authenticated", full stop.
type Controller struct {
	Credentials credential.Store
	Sessions    *session.Store
	Validator   *token.Validator

	once sync.Once
}

// Run performs the reconciliation exactly once; later calls are no-ops.
// Serving must start only after Run returns, so the guard never sees a
// half-initialized session.
func (c *Controller) Run(ctx context.Context) {
	c.once.Do(func() {
		c.Sessions.Begin()

		tok, err := c.Credentials.Load(ctx)
		if err != nil {
			utils.LogEvent("", "bootstrap", "credential_load_failed", err.Error())
			tok = ""
		}

		if tok != "" && c.Validator.IsValid(tok) {
			c.Sessions.Succeed(tok)
			utils.LogEvent("", "bootstrap", "session_restored", "persisted credential accepted")
			return
		}

		if err := c.Credentials.Clear(ctx); err != nil {
			utils.LogEvent("", "bootstrap", "credential_clear_failed", err.Error())
		}
		c.Sessions.Fail()
		utils.LogEvent("", "bootstrap", "session_rejected", "no usable persisted credential")
	})
}

package middleware

import (
	"net/http"

	"backoffice/internal/domain"
	"backoffice/internal/session"
	"backoffice/internal/token"

	"github.com/gin-gonic/gin"
)

// Guard gates every protected route on the session store. A success state
// is not taken on faith: the held credential is re-validated per request,
// catching expiry that happened after bootstrap. While the initial check is
// still loading the request is held with a 503 instead of being bounced to
// the entry route, so a slow start never causes a flash redirect.
func Guard(sessions *session.Store, validator *token.Validator, entryRoute string) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, cred := sessions.Snapshot()
		switch {
		case status == domain.SessionLoading:
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"message":    "session check in progress",
				"request_id": GetRequestID(c),
			})
		case status == domain.SessionSuccess && validator.IsValid(cred):
			c.Next()
		default:
			c.Redirect(http.StatusSeeOther, entryRoute)
			c.Abort()
		}
	}
}

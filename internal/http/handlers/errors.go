package handlers

import (
	"net/http"

	"backoffice/internal/domain"

	"github.com/gin-gonic/gin"
)

// RespondResourceError maps a resource-call failure to an HTTP answer.
// Upstream 4xx codes are mirrored so the dashboard sees what the core API
// said; upstream 5xx and transport failures surface as 502.
func RespondResourceError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		RespondError(c, http.StatusBadRequest, err.Error(), nil)
	case domain.IsUnauthorized(err):
		RespondError(c, http.StatusUnauthorized, err.Error(), nil)
	case domain.IsNotFound(err):
		RespondError(c, http.StatusNotFound, err.Error(), nil)
	case domain.IsInternal(err):
		RespondError(c, http.StatusInternalServerError, "internal error", err)
	default:
		if up, ok := domain.AsUpstream(err); ok {
			if up.Status >= 400 && up.Status < 500 {
				RespondError(c, up.Status, "core API rejected the request", err)
				return
			}
			RespondError(c, http.StatusBadGateway, "core API failed", err)
			return
		}
		RespondError(c, http.StatusBadGateway, "core API unreachable", err)
	}
}

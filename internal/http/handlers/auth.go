package handlers

import (
	"net/http"

	"backoffice/internal/auth"
	"backoffice/internal/domain"
	"backoffice/internal/http/middleware"
	"backoffice/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes the login/logout/session surface of the gateway.
type AuthHandler struct {
	Auth *auth.Service
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /admin/api/auth/login
func (h AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Username == "" || req.Password == "" {
		RespondError(c, http.StatusBadRequest, "username and password are required", nil)
		return
	}

	payload, err := h.Auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if domain.IsUnauthorized(err) {
			RespondError(c, http.StatusUnauthorized, "invalid username or password", nil)
			return
		}
		utils.LogEvent(middleware.GetRequestID(c), "auth", "login_failed", err.Error())
		RespondResourceError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", payload)
}

// POST /admin/api/auth/logout
func (h AuthHandler) Logout(c *gin.Context) {
	if err := h.Auth.Logout(c.Request.Context()); err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to clear stored credential", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// GET /admin/api/auth/session
func (h AuthHandler) Session(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": h.Auth.Sessions.Status()})
}

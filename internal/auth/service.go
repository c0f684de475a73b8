package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"backoffice/internal/credential"
	"backoffice/internal/domain"
	"backoffice/internal/resource"
	"backoffice/internal/session"
	"backoffice/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const localTokenTTL = 24 * time.Hour

// Service owns the login and logout flows. It is the only writer of the
// persisted credential; the session store records the outcome.
type Service struct {
	API         *resource.API
	Credentials credential.Store
	Sessions    *session.Store

	// Break-glass local admin, usable when the core API auth is down.
	// Disabled unless all three fields are configured.
	AdminUsername     string
	AdminPasswordHash string
	Secret            []byte

	Now func() time.Time
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates against the core API (or the local admin account) and
// persists the returned credential. The raw auth payload is handed back for
// the caller to relay.
func (s *Service) Login(ctx context.Context, username, password string) (json.RawMessage, error) {
	s.Sessions.Begin()

	if s.isLocalAdmin(username) {
		return s.loginLocal(ctx, username, password)
	}

	body, err := s.API.Do(ctx, http.MethodPost, s.API.Endpoint("auth", "login"), nil, loginPayload{
		Username: username,
		Password: password,
	})
	if err != nil {
		s.Sessions.Fail()
		if up, ok := domain.AsUpstream(err); ok {
			utils.LogEvent("", "auth", "login_rejected", up.Error())
			return nil, domain.UnauthorizedError{Msg: "invalid username or password", Err: err}
		}
		return nil, err
	}

	var envelope struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.AccessToken == "" {
		s.Sessions.Fail()
		return nil, domain.UnauthorizedError{Msg: "login response carried no access token", Err: err}
	}

	if err := s.Credentials.Save(ctx, envelope.AccessToken); err != nil {
		s.Sessions.Fail()
		return nil, domain.InternalError{Msg: "failed to persist credential", Err: err}
	}
	s.Sessions.Succeed(envelope.AccessToken)
	return body, nil
}

// Logout clears the persisted credential and drops the session. Logged-out
// is always reached, even when the storage write fails.
func (s *Service) Logout(ctx context.Context) error {
	err := s.Credentials.Clear(ctx)
	s.Sessions.Logout()
	if err != nil {
		utils.LogEvent("", "auth", "logout_clear_failed", err.Error())
	}
	return err
}

func (s *Service) isLocalAdmin(username string) bool {
	return s.AdminUsername != "" && s.AdminPasswordHash != "" && len(s.Secret) > 0 &&
		username == s.AdminUsername
}

func (s *Service) loginLocal(ctx context.Context, username, password string) (json.RawMessage, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(s.AdminPasswordHash), []byte(password)); err != nil {
		s.Sessions.Fail()
		return nil, domain.UnauthorizedError{Msg: "invalid username or password"}
	}

	now := s.now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  username,
		"role": "admin",
		"iat":  now.Unix(),
		"exp":  now.Add(localTokenTTL).Unix(),
	})
	signed, err := tok.SignedString(s.Secret)
	if err != nil {
		s.Sessions.Fail()
		return nil, domain.InternalError{Msg: "failed to sign local token", Err: err}
	}

	if err := s.Credentials.Save(ctx, signed); err != nil {
		s.Sessions.Fail()
		return nil, domain.InternalError{Msg: "failed to persist credential", Err: err}
	}
	s.Sessions.Succeed(signed)
	utils.LogEvent("", "auth", "local_admin_login", username)

	body, err := json.Marshal(map[string]any{
		"accessToken": signed,
		"user":        map[string]any{"username": username, "role": "admin"},
	})
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to encode auth payload", Err: err}
	}
	return body, nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

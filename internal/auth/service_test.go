package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backoffice/internal/credential"
	"backoffice/internal/domain"
	"backoffice/internal/resource"
	"backoffice/internal/session"
	"backoffice/internal/token"

	"golang.org/x/crypto/bcrypt"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newService(srv *httptest.Server) (*Service, *credential.Memory) {
	store := credential.NewMemory()
	api := resource.NewAPI(srv.URL, "api/v1", credential.Provider(store))
	api.HTTPClient = srv.Client()
	return &Service{
		API:         api,
		Credentials: store,
		Sessions:    session.NewStore(),
		Now:         func() time.Time { return testNow },
	}, store
}

func TestLoginUpstreamSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/auth/login" {
			t.Errorf("unexpected call %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["username"] != "ops" || body["password"] != "secret" {
			t.Errorf("credentials not forwarded: %v", body)
		}
		w.Write([]byte(`{"accessToken":"tok-up","user":{"id":1,"username":"ops"}}`))
	}))
	defer srv.Close()

	svc, store := newService(srv)
	payload, err := svc.Login(context.Background(), "ops", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	st, cred := svc.Sessions.Snapshot()
	if st != domain.SessionSuccess || cred != "tok-up" {
		t.Fatalf("session = (%s, %q), want (success, tok-up)", st, cred)
	}
	persisted, _ := store.Load(context.Background())
	if persisted != "tok-up" {
		t.Fatalf("credential not persisted, got %q", persisted)
	}
	var env struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.Unmarshal(payload, &env); err != nil || env.AccessToken != "tok-up" {
		t.Fatalf("auth payload not relayed: %s", payload)
	}
}

func TestLoginUpstreamRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"bad credentials"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	svc, store := newService(srv)
	_, err := svc.Login(context.Background(), "ops", "wrong")
	if !domain.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if st := svc.Sessions.Status(); st != domain.SessionError {
		t.Fatalf("session status = %s, want error", st)
	}
	if persisted, _ := store.Load(context.Background()); persisted != "" {
		t.Fatalf("no credential may be persisted after a rejection")
	}
}

func TestLoginResponseWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"user":{"id":1}}`))
	}))
	defer srv.Close()

	svc, _ := newService(srv)
	_, err := svc.Login(context.Background(), "ops", "secret")
	if !domain.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if st := svc.Sessions.Status(); st != domain.SessionError {
		t.Fatalf("session status = %s, want error", st)
	}
}

func TestLocalAdminLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("local admin login must not call upstream")
	}))
	defer srv.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte("break-glass"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	svc, store := newService(srv)
	svc.AdminUsername = "root"
	svc.AdminPasswordHash = string(hash)
	svc.Secret = []byte("local-secret")

	if _, err := svc.Login(context.Background(), "root", "break-glass"); err != nil {
		t.Fatalf("login: %v", err)
	}

	persisted, _ := store.Load(context.Background())
	v := &token.Validator{Now: func() time.Time { return testNow }}
	if !v.IsValid(persisted) {
		t.Fatalf("minted local token must validate")
	}
	exp, err := v.Expiry(persisted)
	if err != nil {
		t.Fatalf("expiry: %v", err)
	}
	if want := testNow.Add(localTokenTTL); exp.Unix() != want.Unix() {
		t.Fatalf("local token expiry = %v, want %v", exp, want)
	}
}

func TestLocalAdminWrongPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("local admin login must not call upstream")
	}))
	defer srv.Close()

	hash, _ := bcrypt.GenerateFromPassword([]byte("break-glass"), bcrypt.MinCost)
	svc, _ := newService(srv)
	svc.AdminUsername = "root"
	svc.AdminPasswordHash = string(hash)
	svc.Secret = []byte("local-secret")

	if _, err := svc.Login(context.Background(), "root", "nope"); !domain.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestLogoutClearsEverything(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"accessToken":"tok-up"}`))
	}))
	defer srv.Close()

	svc, store := newService(srv)
	if _, err := svc.Login(context.Background(), "ops", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := svc.Logout(context.Background()); err != nil {
		t.Fatalf("logout: %v", err)
	}

	st, cred := svc.Sessions.Snapshot()
	if st != domain.SessionError || cred != "" {
		t.Fatalf("session after logout = (%s, %q), want (error, empty)", st, cred)
	}
	if persisted, _ := store.Load(context.Background()); persisted != "" {
		t.Fatalf("credential must be cleared on logout")
	}
}

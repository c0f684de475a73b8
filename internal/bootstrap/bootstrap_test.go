package bootstrap

import (
	"context"
	"testing"
	"time"

	"backoffice/internal/credential"
	"backoffice/internal/domain"
	"backoffice/internal/session"
	"backoffice/internal/token"

	"github.com/golang-jwt/jwt/v5"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func mintToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()})
	s, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func newController(store credential.Store) *Controller {
	return &Controller{
		Credentials: store,
		Sessions:    session.NewStore(),
		Validator:   &token.Validator{Now: func() time.Time { return testNow }},
	}
}

func TestRunRestoresValidCredential(t *testing.T) {
	store := credential.NewMemory()
	valid := mintToken(t, testNow.Add(time.Hour))
	if err := store.Save(context.Background(), valid); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	c := newController(store)
	c.Run(context.Background())

	st, cred := c.Sessions.Snapshot()
	if st != domain.SessionSuccess {
		t.Fatalf("status = %s, want success", st)
	}
	if cred != valid {
		t.Fatalf("session does not hold the persisted credential")
	}
}

func TestRunRejectsExpiredCredentialAndClearsStorage(t *testing.T) {
	store := credential.NewMemory()
	expired := mintToken(t, testNow.Add(-10*time.Second))
	if err := store.Save(context.Background(), expired); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	c := newController(store)
	c.Run(context.Background())

	if st := c.Sessions.Status(); st != domain.SessionError {
		t.Fatalf("status = %s, want error", st)
	}
	left, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if left != "" {
		t.Fatalf("storage should be empty after rejection, holds %q", left)
	}
}

func TestRunWithoutCredential(t *testing.T) {
	c := newController(credential.NewMemory())
	c.Run(context.Background())
	if st := c.Sessions.Status(); st != domain.SessionError {
		t.Fatalf("status = %s, want error", st)
	}
}

func TestRunIsOncePerProcess(t *testing.T) {
	store := credential.NewMemory()
	valid := mintToken(t, testNow.Add(time.Hour))
	store.Save(context.Background(), valid)

	c := newController(store)
	c.Run(context.Background())
	c.Sessions.Logout()
	c.Run(context.Background())

	if st := c.Sessions.Status(); st != domain.SessionError {
		t.Fatalf("second Run must not re-run the check, status = %s", st)
	}
}

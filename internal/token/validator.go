package token

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Validator checks whether a bearer credential is still usable. It is pure
// in (token, clock); Now is swappable for tests.
type Validator struct {
	Now func() time.Time
}

func NewValidator() *Validator {
	return &Validator{Now: time.Now}
}

// IsValid reports whether raw is a present, decodable credential whose
// expiry is strictly in the future. Every decode failure maps to false: an
// unreadable token is the same as no token.
func (v *Validator) IsValid(raw string) bool {
	if strings.TrimSpace(raw) == "" {
		return false
	}
	exp, err := v.Expiry(raw)
	if err != nil {
		return false
	}
	return exp.After(v.now())
}

// Expiry recovers the exp claim from raw. The signature is not verified;
// the gateway does not hold the upstream signing key, it only needs the
// embedded expiry.
func (v *Validator) Expiry(raw string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return time.Time{}, err
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, errors.New("token carries no exp claim")
	}
	return exp.Time, nil
}

func (v *Validator) now() time.Time {
	if v.Now != nil {
		return v.Now()
	}
	return time.Now()
}

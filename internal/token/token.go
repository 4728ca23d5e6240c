package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Issuer mints and verifies session tokens. Sessions are stateless: validity
// is a function of the signature and the embedded expiry alone, so there is
// no server-side revocation and a token outlives logout until it expires.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer creates an Issuer signing with secret and issuing tokens that
// expire ttl after issuance.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token embedding the identity payload verbatim, stamped with
// issued-at and expiry claims. The payload shape is not contract-checked;
// callers own keeping secrets and oversized objects out of it.
func (i *Issuer) Issue(identity map[string]any) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{}
	for k, v := range identity {
		claims[k] = v
	}
	claims["iat"] = jwt.NewNumericDate(now)
	claims["exp"] = jwt.NewNumericDate(now.Add(i.ttl))

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify parses a token string and returns its claims. Any signature,
// signing-method, or expiry failure collapses into ErrInvalidToken.
func (i *Issuer) Verify(raw string) (jwt.MapClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return i.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Email returns the identity claim an Access Guard compares against, or the
// empty string when the token carries none.
func Email(claims jwt.MapClaims) string {
	email, _ := claims["email"].(string)
	return email
}

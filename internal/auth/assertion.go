// Package auth verifies the identity assertions the presentation layer
// attaches to every forwarded request. Accounts and sessions are issued
// elsewhere; this package only checks that the asserted subject and role
// were signed with the shared key and are still fresh.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/bookhive/bookhive-backend/internal/config"
	"github.com/bookhive/bookhive-backend/internal/domain"
)

// ErrInvalidAssertion is returned for any assertion that fails
// verification: bad signature, wrong issuer, expired, or malformed claims.
var ErrInvalidAssertion = errors.New("invalid identity assertion")

// Identity is a verified caller.
type Identity struct {
	AccountID uuid.UUID
	Role      domain.UserRole
}

// assertionClaims extends standard JWT claims with the caller's role.
type assertionClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// Verifier checks and mints HS256 identity assertions.
type Verifier struct {
	secret []byte
	issuer string
	leeway time.Duration
}

// NewVerifier creates a Verifier from the auth config.
func NewVerifier(cfg config.AuthConfig) *Verifier {
	return &Verifier{
		secret: []byte(cfg.AssertionSecret),
		issuer: cfg.Issuer,
		leeway: cfg.ClockSkew,
	}
}

// Verify parses token and returns the identity it asserts. A token without
// a role claim asserts the user role.
func (v *Verifier) Verify(token string) (Identity, error) {
	if token == "" {
		return Identity{}, fmt.Errorf("%w: empty token", ErrInvalidAssertion)
	}

	parsed, err := jwt.ParseWithClaims(token, &assertionClaims{}, func(*jwt.Token) (any, error) {
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(v.leeway),
	)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrInvalidAssertion, err)
	}

	claims, ok := parsed.Claims.(*assertionClaims)
	if !ok || !parsed.Valid {
		return Identity{}, fmt.Errorf("%w: invalid claims", ErrInvalidAssertion)
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil || id == uuid.Nil {
		return Identity{}, fmt.Errorf("%w: subject %q is not an account id", ErrInvalidAssertion, claims.Subject)
	}

	role := domain.UserRole(claims.Role)
	if role == "" {
		role = domain.UserRoleUser
	}
	if !role.IsValid() {
		return Identity{}, fmt.Errorf("%w: unknown role %q", ErrInvalidAssertion, claims.Role)
	}

	return Identity{AccountID: id, Role: role}, nil
}

// Sign mints an assertion for id valid for ttl. The presentation layer
// signs its own; operators use this through `bookhive assert` to call the
// admin endpoints.
func (v *Verifier) Sign(id Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := assertionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.AccountID.String(),
			Issuer:    v.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: id.Role.String(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("sign assertion: %w", err)
	}
	return signed, nil
}

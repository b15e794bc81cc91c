// Package auth issues and verifies bearer tokens for the single configured client
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// auth errors, messages are safe to show to clients
var (
	ErrInvalidCredentials = errors.New("incorrect client credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidToken       = errors.New("invalid authentication credentials")
)

// DefaultTTL is used when credential has no token ttl
const DefaultTTL = 60 * time.Minute

// Credential is the static client pair and the signing setup
type Credential struct {
	ClientID      string
	ClientSecret  string
	SigningSecret string
	Algorithm     string
	TokenTTL      time.Duration
}

// Token is an issued access token
type Token struct {
	AccessToken string
	Subject     string
	ExpiresAt   time.Time
}

// TokenService issues and verifies signed tokens
type TokenService struct {
	cred   Credential
	method *jwt.SigningMethodHMAC
	now    func() time.Time
}

// NewTokenService makes token service for the credential. Only HMAC algorithms are accepted.
func NewTokenService(cred Credential) (*TokenService, error) {
	if cred.SigningSecret == "" {
		return nil, errors.New("signing secret is required")
	}
	if cred.Algorithm == "" {
		cred.Algorithm = jwt.SigningMethodHS256.Alg()
	}
	if cred.TokenTTL <= 0 {
		cred.TokenTTL = DefaultTTL
	}

	var method *jwt.SigningMethodHMAC
	switch cred.Algorithm {
	case jwt.SigningMethodHS256.Alg():
		method = jwt.SigningMethodHS256
	case jwt.SigningMethodHS384.Alg():
		method = jwt.SigningMethodHS384
	case jwt.SigningMethodHS512.Alg():
		method = jwt.SigningMethodHS512
	default:
		return nil, fmt.Errorf("unsupported signing algorithm %q", cred.Algorithm)
	}

	return &TokenService{cred: cred, method: method, now: time.Now}, nil
}

// Issue checks client pair and returns a token for it
func (s *TokenService) Issue(clientID, clientSecret string) (Token, error) {
	idOK := subtle.ConstantTimeCompare([]byte(clientID), []byte(s.cred.ClientID))
	secretOK := subtle.ConstantTimeCompare([]byte(clientSecret), []byte(s.cred.ClientSecret))
	if idOK&secretOK != 1 {
		return Token{}, ErrInvalidCredentials
	}

	now := s.now()
	expiresAt := now.Add(s.cred.TokenTTL)
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   clientID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString([]byte(s.cred.SigningSecret))
	if err != nil {
		return Token{}, fmt.Errorf("sign token: %w", err)
	}
	return Token{AccessToken: signed, Subject: clientID, ExpiresAt: expiresAt}, nil
}

// Verify checks signature, expiration and subject of the token and returns the subject
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	keyFunc := func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != s.method.Alg() {
			return nil, fmt.Errorf("unexpected signing method %s", t.Method.Alg())
		}
		return []byte(s.cred.SigningSecret), nil
	}

	if _, err := jwt.ParseWithClaims(tokenString, claims, keyFunc, jwt.WithValidMethods([]string{s.method.Alg()})); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !claims.VerifyExpiresAt(s.now(), true) {
		return "", fmt.Errorf("%w: token expired", ErrInvalidToken)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: no subject", ErrInvalidToken)
	}
	return claims.Subject, nil
}

// TTL returns token lifetime
func (s *TokenService) TTL() time.Duration {
	return s.cred.TokenTTL
}

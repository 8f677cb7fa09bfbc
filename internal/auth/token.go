package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tkoyuncu/itemkeeper/internal/config"
	"github.com/tkoyuncu/itemkeeper/models"
)

// ErrTokenInvalid is the single failure outcome of [TokenCodec.Verify].
// Malformed tokens, bad signatures, wrong issuers, and expired tokens all
// collapse into this error so that callers cannot distinguish the cause
// and no verification oracle is exposed.
var ErrTokenInvalid = errors.New("token is invalid or expired")

// TokenCodec issues and verifies compact, expiring bearer tokens.
//
// Tokens are JWTs signed with HMAC-SHA256. The payload carries the subject
// username, the issue timestamp, and the expiry; nothing is persisted
// server-side, so every token is independently verifiable until it expires.
// All fields are read-only after construction; the codec is safe for
// concurrent use.
type TokenCodec struct {
	// signKey is the server-held secret used to sign and verify tokens.
	signKey []byte

	// issuer is the "iss" claim embedded in every issued token and
	// validated during verification.
	issuer string

	// ttl controls how long a newly issued token remains valid.
	ttl time.Duration
}

// NewTokenCodec constructs a [TokenCodec] from the auth configuration.
func NewTokenCodec(cfg config.Auth) *TokenCodec {
	return &TokenCodec{
		signKey: []byte(cfg.TokenSignKey),
		issuer:  cfg.TokenIssuer,
		ttl:     cfg.TokenDuration,
	}
}

// Issue creates a signed token for the given subject username.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the username of the authenticated principal
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus the configured TTL
//
// Returns an error if the subject is empty or signing fails.
func (c *TokenCodec) Issue(username string) (models.Token, error) {
	if username == "" {
		return models.Token{}, errors.New("empty subject for token issuance")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    c.issuer,
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(c.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, Username: username}, nil
}

// Verify validates a raw token string and returns the subject username.
//
// Validation includes:
//   - Signature verification against the server sign key
//   - Signing-method check (only HMAC is accepted)
//   - Issuer (iss) claim check
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence
//
// Verify fails closed: every validation failure is normalised to
// [ErrTokenInvalid] so that callers do not need to (and must not) inspect
// low-level JWT errors.
func (c *TokenCodec) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.signKey, nil
	}, jwt.WithIssuer(c.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return "", ErrTokenInvalid
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", ErrTokenInvalid
	}

	return subject, nil
}

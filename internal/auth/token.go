package auth // package auth provides helpers for session token creation and validation

import (
    "errors" // sentinel error values and errors.Is matching
    "time"   // time utilities for computing expirations

    "github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// TokenTTL is the lifetime of a session token. The session cookie mirrors
// this value in its max-age so both expire together.
const TokenTTL = 24 * time.Hour

// ErrTokenInvalid is returned when a token is malformed or its signature
// does not verify against the current signing secret.
var ErrTokenInvalid = errors.New("token invalid")

// ErrTokenExpired is returned when a token carries a valid signature but
// its expiration time has passed. Callers must re-authenticate; expired
// tokens are never refreshed or retried.
var ErrTokenExpired = errors.New("token expired")

// IssueToken builds and signs an HS256 JWT for a subject.  It takes the
// signing secret and the subject (the user's email) and returns the
// serialized token.  The JWT includes standard claims: subject (sub),
// expiration (exp) set to TokenTTL from now, and issued at (iat).
func IssueToken(secret, subject string) (string, error) {
    now := time.Now().UTC()
    claims := jwt.RegisteredClaims{
        Subject:   subject,
        IssuedAt:  jwt.NewNumericDate(now),
        ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return "", err
    }
    return signed, nil
}

// ValidateToken parses a serialized token and returns its subject.  The
// signature must verify against the given secret and the token must not
// be expired.  Expiry is reported as ErrTokenExpired; every other failure
// (malformed input, altered signature, wrong algorithm) collapses into
// ErrTokenInvalid so callers never see library internals.
func ValidateToken(secret, token string) (string, error) {
    claims := &jwt.RegisteredClaims{}
    tok, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
        // Reject tokens signed with a different algorithm.
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrTokenInvalid
        }
        return []byte(secret), nil
    })
    if err != nil {
        if errors.Is(err, jwt.ErrTokenExpired) {
            return "", ErrTokenExpired
        }
        return "", ErrTokenInvalid
    }
    if !tok.Valid || claims.Subject == "" {
        return "", ErrTokenInvalid
    }
    return claims.Subject, nil
}

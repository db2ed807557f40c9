package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "errors"   // errors.Is for distinguishing token failure kinds
    "net/http" // HTTP status codes for responses

    "github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

    "github.com/iliyamo/book-library/internal/auth"    // token validation
    "github.com/iliyamo/book-library/internal/session" // session cookie name
)

// SessionAuth returns an Echo middleware that validates the session cookie
// and injects the token's subject (the user's email) into the request
// context under "email".  Unlike the lightweight /auth/check-cookie probe,
// this middleware fully verifies the token: signature against the given
// secret and expiry against the clock.  Protected routes wrap this so
// handlers can trust `c.Get("email")`.
func SessionAuth(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            // The session token travels in an HTTP-only cookie, never in
            // an Authorization header.  A missing cookie means the client
            // has no session at all.
            ck, err := c.Cookie(session.CookieName)
            if err != nil || ck.Value == "" {
                return c.JSON(http.StatusUnauthorized, echo.Map{"message": "authentication required"})
            }
            email, err := auth.ValidateToken(secret, ck.Value)
            if err != nil {
                // An expired session gets its own message so clients know
                // a fresh login (not a retry) is required.
                if errors.Is(err, auth.ErrTokenExpired) {
                    return c.JSON(http.StatusUnauthorized, echo.Map{"message": "session expired"})
                }
                return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid session"})
            }
            c.Set("email", email)
            return next(c)
        }
    }
}

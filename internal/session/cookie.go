// Package session derives browser cookie attributes for the session token.
// The cookie must work both on localhost during development and on real
// multi-domain deployments behind a reverse proxy, which is why the domain
// attribute is computed per request instead of being configured statically.
package session

import (
	"net"
	"net/http"
	"strings"

	"github.com/iliyamo/book-library/internal/auth"
)

// CookieName is the fixed name of the session cookie. The value carried
// under this name is the serialized signed token.
const CookieName = "JWT"

// Domain returns the cookie domain for a request's Host header value.
// Any port suffix is stripped first. For localhost and 127.0.0.1 the
// result is empty: browsers refuse cookies scoped to loopback literals,
// so the domain attribute is omitted and the browser falls back to the
// request's own origin. Every other hostname is returned verbatim.
func Domain(host string) string {
	h := host
	if i := strings.LastIndex(h, ":"); i != -1 {
		if hp, _, err := net.SplitHostPort(h); err == nil {
			h = hp
		}
	}
	if h == "localhost" || h == "127.0.0.1" {
		return ""
	}
	return h
}

// Build wraps a signed token into the session cookie for the given request
// host. The cookie is HTTP-only so script can never read it, uses SameSite
// Lax so cross-origin API calls fronted by a reverse proxy still submit it,
// and expires together with the token it carries. Secure is transport
// dependent and comes from configuration (false on plain-HTTP dev setups).
func Build(token, host string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Domain:   Domain(host),
		Path:     "/",
		MaxAge:   int(auth.TokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

package session

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDomain(t *testing.T) {
	t.Parallel()

	cases := []struct {
		host string
		want string
	}{
		{"localhost", ""},
		{"localhost:8080", ""},
		{"127.0.0.1", ""},
		{"127.0.0.1:8080", ""},
		{"app.example.com", "app.example.com"},
		{"app.example.com:8080", "app.example.com"},
		{"api.books.internal:443", "api.books.internal"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Domain(tc.host), "host %q", tc.host)
	}
}

func TestBuild_LocalhostOmitsDomain(t *testing.T) {
	t.Parallel()

	ck := Build("tok123", "localhost:8080", false)
	require.Equal(t, CookieName, ck.Name)
	require.Equal(t, "tok123", ck.Value)
	require.Empty(t, ck.Domain)
	require.Equal(t, "/", ck.Path)
	require.Equal(t, 86400, ck.MaxAge)
	require.True(t, ck.HttpOnly)
	require.False(t, ck.Secure)
	require.Equal(t, http.SameSiteLaxMode, ck.SameSite)
}

func TestBuild_DeployedHostSetsDomain(t *testing.T) {
	t.Parallel()

	ck := Build("tok456", "app.example.com:8080", true)
	require.Equal(t, "app.example.com", ck.Domain)
	require.True(t, ck.Secure)
	require.True(t, ck.HttpOnly)
}

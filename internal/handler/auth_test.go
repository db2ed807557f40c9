package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/book-library/internal/config"
	"github.com/iliyamo/book-library/internal/middleware"
	"github.com/iliyamo/book-library/internal/model"
	"github.com/iliyamo/book-library/internal/repository"
	"github.com/iliyamo/book-library/internal/service"
	"github.com/iliyamo/book-library/internal/session"
)

const testSecret = "handler-test-secret"

// memStore is an in-memory credential store for exercising the handlers
// end to end without MySQL.
type memStore struct {
	mu     sync.Mutex
	users  map[string]model.User
	nextID uint64
}

func (m *memStore) Exists(_ context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.users[email]
	return ok, nil
}

func (m *memStore) Create(_ context.Context, email, passwordHash string) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[email]; ok {
		return model.User{}, repository.ErrEmailExists
	}
	m.nextID++
	u := model.User{ID: m.nextID, Email: email, PasswordHash: passwordHash}
	m.users[email] = u
	return u, nil
}

func (m *memStore) GetByEmail(_ context.Context, email string) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		return model.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func newTestHandler() *AuthHandler {
	cfg := config.Config{JWTSecret: testSecret, BcryptCost: bcrypt.MinCost}
	svc := &service.AuthService{
		Secret:     testSecret,
		BcryptCost: bcrypt.MinCost,
		Users:      &memStore{users: map[string]model.User{}},
	}
	return NewAuthHandler(cfg, svc)
}

func doJSON(e *echo.Echo, method, path, body, host string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if host != "" {
		req.Host = host
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func newTestServer() *echo.Echo {
	e := echo.New()
	h := newTestHandler()
	e.POST("/auth/users", h.Register)
	e.POST("/auth/login", h.Login)
	e.GET("/auth/check-cookie", h.CheckCookie)
	e.GET("/auth/me", h.Me, middleware.SessionAuth(testSecret))
	return e
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

func TestRegister_SetsCookieAndSucceeds(t *testing.T) {
	t.Parallel()

	e := newTestServer()
	rec := doJSON(e, http.MethodPost, "/auth/users",
		`{"email":"alice@example.com","password":"Passw0rd!"}`, "localhost:8080")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "alice@example.com", body["email"])
	require.Equal(t, true, body["success"])

	ck := sessionCookie(t, rec)
	require.True(t, ck.HttpOnly)
	require.Equal(t, "/", ck.Path)
	require.Equal(t, 86400, ck.MaxAge)
	require.Empty(t, ck.Domain, "localhost must not get an explicit domain")
	require.Equal(t, http.SameSiteLaxMode, ck.SameSite)

	// The cookie carries a token whose subject is the new identity.
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(ck.Value, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", claims.Subject)
}

func TestRegister_DeployedHostGetsCookieDomain(t *testing.T) {
	t.Parallel()

	e := newTestServer()
	rec := doJSON(e, http.MethodPost, "/auth/users",
		`{"email":"dom@example.com","password":"pw"}`, "app.example.com:8080")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "app.example.com", sessionCookie(t, rec).Domain)
}

func TestRegister_DuplicateEmail_NoCookie(t *testing.T) {
	t.Parallel()

	e := newTestServer()
	rec := doJSON(e, http.MethodPost, "/auth/users",
		`{"email":"alice@example.com","password":"Passw0rd!"}`, "localhost:8080")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPost, "/auth/users",
		`{"email":"alice@example.com","password":"other"}`, "localhost:8080")
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Empty(t, rec.Result().Cookies(), "failed registration must not set a cookie")
}

func TestRegister_MissingFields(t *testing.T) {
	t.Parallel()

	e := newTestServer()
	rec := doJSON(e, http.MethodPost, "/auth/users", `{"email":"","password":""}`, "localhost")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_EndToEnd(t *testing.T) {
	t.Parallel()

	e := newTestServer()
	rec := doJSON(e, http.MethodPost, "/auth/users",
		`{"email":"alice@example.com","password":"Passw0rd!"}`, "localhost:8080")
	require.Equal(t, http.StatusOK, rec.Code)

	// Correct password: 200, message field, fresh cookie.
	rec = doJSON(e, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"Passw0rd!"}`, "localhost:8080")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "alice@example.com", body["email"])
	require.Equal(t, "Login successful", body["message"])
	require.NotNil(t, sessionCookie(t, rec))

	// Wrong password: 401, no cookie.
	rec = doJSON(e, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"wrong"}`, "localhost:8080")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Empty(t, rec.Result().Cookies())
}

func TestLogin_UnknownEmailAndWrongPassword_SameShape(t *testing.T) {
	t.Parallel()

	e := newTestServer()
	rec := doJSON(e, http.MethodPost, "/auth/users",
		`{"email":"alice@example.com","password":"Passw0rd!"}`, "localhost:8080")
	require.Equal(t, http.StatusOK, rec.Code)

	wrongPw := doJSON(e, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"wrong"}`, "localhost:8080")
	noUser := doJSON(e, http.MethodPost, "/auth/login",
		`{"email":"ghost@example.com","password":"wrong"}`, "localhost:8080")

	// Identical status and body: the endpoint leaks nothing about which
	// half of the credential failed.
	require.Equal(t, http.StatusUnauthorized, wrongPw.Code)
	require.Equal(t, wrongPw.Code, noUser.Code)
	require.JSONEq(t, wrongPw.Body.String(), noUser.Body.String())
}

func TestCheckCookie(t *testing.T) {
	t.Parallel()

	e := newTestServer()

	rec := doJSON(e, http.MethodGet, "/auth/check-cookie", "", "localhost")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodGet, "/auth/check-cookie", "", "localhost",
		&http.Cookie{Name: session.CookieName, Value: "present-but-unchecked"})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestMe_RequiresValidSession(t *testing.T) {
	t.Parallel()

	e := newTestServer()

	// No cookie at all.
	rec := doJSON(e, http.MethodGet, "/auth/me", "", "localhost")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// A real session from registration works.
	rec = doJSON(e, http.MethodPost, "/auth/users",
		`{"email":"alice@example.com","password":"pw"}`, "localhost:8080")
	require.Equal(t, http.StatusOK, rec.Code)
	ck := sessionCookie(t, rec)

	rec = doJSON(e, http.MethodGet, "/auth/me", "", "localhost", ck)
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "alice@example.com", body["email"])

	// An expired token is rejected even though check-cookie would accept it.
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "alice@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(-time.Minute)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	rec = doJSON(e, http.MethodGet, "/auth/me", "", "localhost",
		&http.Cookie{Name: session.CookieName, Value: expired})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

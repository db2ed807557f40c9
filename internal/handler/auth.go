package handler

import (
    "context"  // provides context with cancellation for DB calls
    "errors"   // sentinel error matching
    "net/http" // HTTP status codes and primitives
    "strings"  // string manipulation utilities
    "time"     // timeouts for DB calls

    "github.com/labstack/echo/v4" // Echo framework for HTTP routing

    "github.com/iliyamo/book-library/internal/config"     // app configuration
    "github.com/iliyamo/book-library/internal/repository" // sentinel store errors
    "github.com/iliyamo/book-library/internal/service"    // auth orchestration
    "github.com/iliyamo/book-library/internal/session"    // session cookie binding
)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg  config.Config
	Auth *service.AuthService
}

func NewAuthHandler(cfg config.Config, a *service.AuthService) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Auth: a}
}

// ----- DTOs -----

type credentialsReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register: create user, set the session cookie, confirm with the email.
// The cookie's domain is derived from the request's Host header so the
// same build works on localhost and on a deployed domain.
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, token, err := h.Auth.Register(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			// No cookie on failure: the caller holds no session.
			return c.JSON(http.StatusConflict, echo.Map{"message": "Email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "registration failed"})
	}

	c.SetCookie(session.Build(token, c.Request().Host, h.Cfg.CookieSecure))
	return c.JSON(http.StatusOK, echo.Map{
		"email":   u.Email,
		"success": true,
	})
}

// Login: verify credentials and set a fresh session cookie. Wrong password
// and unknown email produce the same response so the endpoint cannot be
// used to enumerate accounts.
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, token, err := h.Auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrBadCredentials) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "login failed"})
	}

	c.SetCookie(session.Build(token, c.Request().Host, h.Cfg.CookieSecure))
	return c.JSON(http.StatusOK, echo.Map{
		"email":   u.Email,
		"message": "Login successful",
	})
}

// CheckCookie reports whether a session cookie is present on the request.
// Presence by name only; the token is not validated here. Frontends call
// this before deciding whether to render the logged-in shell.
func (h *AuthHandler) CheckCookie(c echo.Context) error {
	if h.Auth.CheckSession(c.Cookies()) {
		return c.JSON(http.StatusOK, echo.Map{"message": "Cookie found"})
	}
	return c.JSON(http.StatusUnauthorized, echo.Map{"message": "No valid cookie found"})
}

// Me: simple protected endpoint returning the session's subject.
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"email": c.Get("email"),
	})
}

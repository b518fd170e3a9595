package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/peopleops/hr-system/internal/api/middleware"
	"github.com/peopleops/hr-system/internal/core/domain"
	"github.com/peopleops/hr-system/internal/pkg/token"
)

type stubAuthService struct {
	loginFn          func(ctx context.Context, username, password string) (string, *domain.User, error)
	meFn             func(ctx context.Context, userID string) (*domain.User, error)
	changePasswordFn func(ctx context.Context, userID, currentPassword, newPassword string) error
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Me(ctx context.Context, userID string) (*domain.User, error) {
	return s.meFn(ctx, userID)
}

func (s *stubAuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	return s.changePasswordFn(ctx, userID, currentPassword, newPassword)
}

func (s *stubAuthService) BootstrapAdmin(context.Context, string, string) error {
	return nil
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(_ context.Context, username, password string) (string, *domain.User, error) {
			if username != "alice" || password != "s3cret1" {
				t.Fatalf("unexpected credentials: %s %s", username, password)
			}
			return "signed-token", &domain.User{ID: "u1", Username: username, Role: domain.RoleAdmin}, nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"username":"alice","password":"s3cret1"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "signed-token" {
		t.Fatalf("token missing from response: %v", resp)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["username"] != "alice" {
		t.Fatalf("user missing from response: %v", resp)
	}
	if _, exposed := user["PasswordHash"]; exposed {
		t.Fatalf("password hash leaked in response")
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	e := newTestEcho()
	handler := NewAuthHandler(&stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) {
			t.Fatalf("service should not be called")
			return "", nil, nil
		},
	})

	body := strings.NewReader(`{"username":"alice"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Login(c)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	var httpErr *echo.HTTPError
	if !asHTTPError(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	e := newTestEcho()
	handler := NewAuthHandler(&stubAuthService{
		meFn: func(_ context.Context, userID string) (*domain.User, error) {
			if userID != "u1" {
				t.Fatalf("unexpected user id: %s", userID)
			}
			return &domain.User{ID: "u1", Username: "alice", Role: domain.RoleAdmin}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyClaims, &token.Claims{
		Role:             "admin",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"},
	})

	if err := handler.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Me_MissingClaims(t *testing.T) {
	e := newTestEcho()
	handler := NewAuthHandler(&stubAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Me(c)
	var httpErr *echo.HTTPError
	if !asHTTPError(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	e := newTestEcho()
	called := false
	handler := NewAuthHandler(&stubAuthService{
		changePasswordFn: func(_ context.Context, userID, current, next string) error {
			called = true
			if userID != "u1" || current != "oldpass1" || next != "newpass1" {
				t.Fatalf("unexpected args: %s %s %s", userID, current, next)
			}
			return nil
		},
	})

	body := strings.NewReader(`{"currentPassword":"oldpass1","newPassword":"newpass1"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/change-password", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyClaims, &token.Claims{
		Role:             "admin",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"},
	})

	if err := handler.ChangePassword(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("service not called")
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestAuthHandler_ChangePassword_ShortNewPassword(t *testing.T) {
	e := newTestEcho()
	handler := NewAuthHandler(&stubAuthService{
		changePasswordFn: func(context.Context, string, string, string) error {
			t.Fatalf("service should not be called")
			return nil
		},
	})

	body := strings.NewReader(`{"currentPassword":"oldpass1","newPassword":"short"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/change-password", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyClaims, &token.Claims{
		Role:             "admin",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"},
	})

	err := handler.ChangePassword(c)
	var httpErr *echo.HTTPError
	if !asHTTPError(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func asHTTPError(err error, target **echo.HTTPError) bool {
	he, ok := err.(*echo.HTTPError)
	if ok {
		*target = he
	}
	return ok
}

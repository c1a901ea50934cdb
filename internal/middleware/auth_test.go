package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/statusfeed/statusfeed-go/internal/crypto"
	"github.com/statusfeed/statusfeed-go/internal/model"
	"github.com/statusfeed/statusfeed-go/internal/repository"
)

const testSecret = "test-secret"

func seedUser(t *testing.T, users *repository.MemoryUserRepository) *model.User {
	t.Helper()

	user := &model.User{FirstName: "Jesse", LastName: "Pinkman", Email: "jesse@example.com", Active: true}
	if err := users.Create(context.Background(), user); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	return user
}

// identityProbe records whether a user reached the wrapped handler.
func identityProbe(gotUser **model.User, called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		if u, ok := UserFromContext(r.Context()); ok {
			*gotUser = u
		}
	})
}

func TestAuthenticateNoCookie(t *testing.T) {
	users := repository.NewMemoryUserRepository()

	var gotUser *model.User
	var called bool
	handler := Authenticate(testSecret, users)(identityProbe(&gotUser, &called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if !called {
		t.Fatal("handler not reached for cookie-less request")
	}
	if gotUser != nil {
		t.Error("expected anonymous identity without a cookie")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestAuthenticateInvalidToken(t *testing.T) {
	users := repository.NewMemoryUserRepository()

	var gotUser *model.User
	var called bool
	handler := Authenticate(testSecret, users)(identityProbe(&gotUser, &called))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "garbage"})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if called {
		t.Error("handler reached despite invalid token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestAuthenticateValidToken(t *testing.T) {
	users := repository.NewMemoryUserRepository()
	user := seedUser(t, users)

	token, err := crypto.GenerateToken(user.ID, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	var gotUser *model.User
	var called bool
	handler := Authenticate(testSecret, users)(identityProbe(&gotUser, &called))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !called {
		t.Fatal("handler not reached for valid token")
	}
	if gotUser == nil {
		t.Fatal("no user resolved for valid token")
	}
	if gotUser.ID != user.ID {
		t.Errorf("resolved user ID = %d, want %d", gotUser.ID, user.ID)
	}
}

func TestAuthenticateUnknownSubject(t *testing.T) {
	// A valid token whose subject no longer exists downgrades to anonymous
	// instead of failing.
	users := repository.NewMemoryUserRepository()

	token, err := crypto.GenerateToken(999, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	var gotUser *model.User
	var called bool
	handler := Authenticate(testSecret, users)(identityProbe(&gotUser, &called))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !called {
		t.Fatal("handler not reached for unknown subject")
	}
	if gotUser != nil {
		t.Error("expected anonymous identity for unknown subject")
	}
}

func TestRequireUserAnonymous(t *testing.T) {
	var called bool
	handler := RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if called {
		t.Error("handler reached without an authenticated user")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireUserAuthenticated(t *testing.T) {
	var called bool
	handler := RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(ContextWithUser(req.Context(), &model.User{ID: 1}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !called {
		t.Error("handler not reached for authenticated user")
	}
}

package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mgirard/hbnb/internal/domain"
	"github.com/mgirard/hbnb/internal/handler"
	"github.com/mgirard/hbnb/internal/repository/memory"
	"github.com/mgirard/hbnb/internal/service"
)

const testPassword = "password123"

type testEnv struct {
	mux    *http.ServeMux
	facade *service.Facade
	auth   *service.AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := memory.New()
	facade := service.NewFacade(store, 4)
	auth := service.NewAuthService(store.Users(), "0123456789abcdef0123456789abcdef", time.Hour)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, auth, facade)

	return &testEnv{mux: mux, facade: facade, auth: auth}
}

func (e *testEnv) createUser(t *testing.T, email string, isAdmin bool) *domain.User {
	t.Helper()
	user, err := e.facade.CreateUser(context.Background(), service.CreateUserInput{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  testPassword,
		IsAdmin:   isAdmin,
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	return user
}

func (e *testEnv) login(t *testing.T, email string) string {
	t.Helper()
	token, err := e.auth.Login(context.Background(), email, testPassword)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	return token
}

// do issues a request against the mux. A non-empty token is sent as a bearer
// token; a non-nil body is encoded as JSON.
func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	e.mux.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", rr.Body.String(), err)
	}
}

func TestHealthz(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/healthz", "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

package handler_test

import (
	"net/http"
	"testing"
)

func TestHandleLogin(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "alice@example.com", false)

	rr := env.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": testPassword,
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	decodeBody(t, rr, &resp)
	if resp.AccessToken == "" {
		t.Fatal("expected access_token in response")
	}
}

func TestHandleLogin_BadCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "alice@example.com", false)

	rr := env.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "wrongpassword",
	})
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestHandleMe(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice@example.com", false)
	token := env.login(t, "alice@example.com")

	rr := env.do(t, http.MethodGet, "/api/v1/auth/me", token, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	decodeBody(t, rr, &resp)
	if resp.ID != user.ID || resp.Email != "alice@example.com" {
		t.Fatalf("unexpected identity: %+v", resp)
	}
}

func TestRequireAuth(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "alice@example.com", false)

	tests := []struct {
		name  string
		token string
		want  int
	}{
		{"missing token", "", http.StatusUnauthorized},
		{"garbage token", "not.a.token", http.StatusUnauthorized},
		{"valid token", env.login(t, "alice@example.com"), http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := env.do(t, http.MethodGet, "/api/v1/auth/me", tt.token, nil)
			if rr.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, rr.Code)
			}
		})
	}
}

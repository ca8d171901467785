package handler_test

import (
	"net/http"
	"testing"
)

func TestUserHandler_Create(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "admin@example.com", true)
	token := env.login(t, "admin@example.com")

	rr := env.do(t, http.MethodPost, "/api/v1/users", token, map[string]any{
		"first_name": "Bob",
		"last_name":  "Jones",
		"email":      "bob@example.com",
		"password":   "password123",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	decodeBody(t, rr, &resp)
	if resp.ID == "" || resp.Email != "bob@example.com" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestUserHandler_Create_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "admin@example.com", true)
	env.createUser(t, "bob@example.com", false)
	token := env.login(t, "admin@example.com")

	rr := env.do(t, http.MethodPost, "/api/v1/users", token, map[string]any{
		"first_name": "Bob",
		"last_name":  "Jones",
		"email":      "bob@example.com",
		"password":   "password123",
	})
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rr.Code)
	}
}

func TestUserHandler_Create_NonAdmin(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "alice@example.com", false)
	token := env.login(t, "alice@example.com")

	rr := env.do(t, http.MethodPost, "/api/v1/users", token, map[string]any{
		"first_name": "Eve",
		"last_name":  "Intruder",
		"email":      "eve@example.com",
		"password":   "password123",
	})
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rr.Code)
	}
}

func TestUserHandler_Create_InvalidEmail(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "admin@example.com", true)
	token := env.login(t, "admin@example.com")

	rr := env.do(t, http.MethodPost, "/api/v1/users", token, map[string]any{
		"first_name": "Bob",
		"last_name":  "Jones",
		"email":      "not-an-email",
		"password":   "password123",
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestUserHandler_GetAndList(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice@example.com", false)

	rr := env.do(t, http.MethodGet, "/api/v1/users/"+user.ID, "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var got struct {
		Email string `json:"email"`
	}
	decodeBody(t, rr, &got)
	if got.Email != "alice@example.com" {
		t.Fatalf("expected alice@example.com, got %s", got.Email)
	}

	rr = env.do(t, http.MethodGet, "/api/v1/users", "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var list []struct {
		ID string `json:"id"`
	}
	decodeBody(t, rr, &list)
	if len(list) != 1 || list[0].ID != user.ID {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/api/v1/users/missing", "", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestUserHandler_Update(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "admin@example.com", true)
	user := env.createUser(t, "alice@example.com", false)
	token := env.login(t, "admin@example.com")

	rr := env.do(t, http.MethodPut, "/api/v1/users/"+user.ID, token, map[string]any{
		"first_name": "Alicia",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}
	decodeBody(t, rr, &resp)
	if resp.FirstName != "Alicia" || resp.LastName != "User" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestUserHandler_Update_NonAdmin(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice@example.com", false)
	token := env.login(t, "alice@example.com")

	rr := env.do(t, http.MethodPut, "/api/v1/users/"+user.ID, token, map[string]any{
		"first_name": "Alicia",
	})
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rr.Code)
	}
}

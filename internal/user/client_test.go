package user_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/quizapp/quiz-service/internal/user"
)

func TestGetByID(t *testing.T) {
	var gotAuth, gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"userId":1,"username":"jdoe","role":"USER"}`))
	}))
	defer srv.Close()

	client := user.NewClient(srv.URL, srv.Client())

	u, err := client.GetByID(context.Background(), "Bearer token", 1)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}

	if u.UserID != 1 || u.Username != "jdoe" {
		t.Errorf("Unexpected user: %+v", u)
	}
	if gotAuth != "Bearer token" {
		t.Errorf("Authorization header was not passed through: %q", gotAuth)
	}
	if gotPath != "/users" || gotQuery != "userId=1" {
		t.Errorf("Unexpected request: %s?%s", gotPath, gotQuery)
	}
}

func TestGetAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/getall" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"userId":1},{"userId":2}]`))
	}))
	defer srv.Close()

	client := user.NewClient(srv.URL, srv.Client())

	users, err := client.GetAll(context.Background(), "Bearer token")
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("Expected 2 users, got %d", len(users))
	}
}

func TestErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := user.NewClient(srv.URL, srv.Client())

	if _, err := client.GetAll(context.Background(), "Bearer bad"); err == nil {
		t.Fatal("Expected an error for a non-2xx response, got nil")
	}
}

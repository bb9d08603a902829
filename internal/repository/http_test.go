package repository

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"nextskill/internal/qerrors"
)

func TestHTTPSourceFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/courses.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(coursesJSON))
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL+"/data/", 5*time.Second)

	raw, err := src.Fetch(context.Background(), "courses")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	courses, err := DecodeCourses(raw)
	if err != nil {
		t.Fatalf("Expected courses to decode, got %v", err)
	}
	if len(courses) != 1 || courses[0].ID != "c1" {
		t.Errorf("Expected course c1, got %+v", courses)
	}

	_, err = src.Fetch(context.Background(), "categories")
	if !errors.Is(err, qerrors.ResourceNotFoundError) {
		t.Errorf("Expected ResourceNotFoundError for a 404, got %v", err)
	}
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusNotFound {
		t.Errorf("Expected a StatusError with status 404, got %v", err)
	}
}

func TestHTTPSourceDoesNotRetry(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewHTTPSource(srv.URL, time.Second).Fetch(context.Background(), "courses")

	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("Expected a 503 StatusError, got %v", err)
	}
	if errors.Is(err, qerrors.ResourceNotFoundError) {
		t.Error("Expected a 503 not to be reported as not found")
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("Expected exactly 1 request, got %d", got)
	}
}

func TestHTTPSourceInvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>oops</html>"))
	}))
	defer srv.Close()

	_, err := NewHTTPSource(srv.URL, time.Second).Fetch(context.Background(), "categories")
	if err == nil {
		t.Error("Expected a JSON parse error")
	}
}

func TestStatusError(t *testing.T) {
	err := &StatusError{
		Method:     "GET",
		URL:        "https://example.com/courses.json",
		StatusCode: 500,
		Body:       []byte("  boom  "),
	}

	expected := "http error: GET https://example.com/courses.json status=500 body=boom"
	if err.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, err.Error())
	}
}

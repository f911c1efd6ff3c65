// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mchan/voteroom/room"
)

// GetTestConfig returns a room configuration for tests. The join timeout is
// short so timeout paths resolve quickly; the inactivity window is generous
// so accepted test participants are not purged mid-test.
func GetTestConfig() room.Config {
	return room.Config{
		JoinTimeout:       200 * time.Millisecond,
		InactivityTimeout: 10 * time.Second,
		CodeMaxAttempts:   100,
	}
}

// SetupManager creates a started room manager that is cancelled when the
// test finishes.
func SetupManager(t *testing.T) *room.Manager {
	t.Helper()

	m := room.NewManager(GetTestConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx, cancel := context.WithCancel(context.Background())
	m.Start(ctx)
	t.Cleanup(cancel)
	return m
}

// CreateTestRoom creates a room on the manager.
func CreateTestRoom(t *testing.T, m *room.Manager, name string, fields []string) *room.Room {
	t.Helper()

	r, err := m.CreateRoom(name, fields)
	if err != nil {
		t.Fatalf("Failed to create test room: %v", err)
	}
	return r
}

// ForceJoin runs the whole join handshake for a test participant and returns
// the accepted token.
func ForceJoin(t *testing.T, r *room.Room, name string, fields map[string]string) string {
	t.Helper()

	results := make(chan room.JoinResult, 1)
	go func() {
		res, err := r.RequestJoin(context.Background(), name, fields)
		if err != nil {
			t.Error(err)
		}
		results <- res
	}()

	// wait for the pending request to appear, then accept it
	var token string
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if pending := r.PendingJoinRequests(); len(pending) == 1 {
			token = pending[0].Token
			break
		}
		time.Sleep(2 * time.Millisecond)
	}
	if token == "" {
		t.Fatal("join request never became pending")
	}
	if !r.HandleJoinRequest(true, token) {
		t.Fatal("failed to accept pending join request")
	}

	res := <-results
	if res.Status != room.JoinAccepted {
		t.Fatalf("expected accepted join, got %+v", res)
	}
	return res.Token
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

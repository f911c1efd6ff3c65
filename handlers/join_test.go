// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mchan/voteroom/middleware"
	"github.com/mchan/voteroom/models"
	"github.com/mchan/voteroom/room"
	"github.com/mchan/voteroom/testutil"
)

// joinInBackground fires a join request through the handler on a goroutine
// and returns a channel carrying the recorded response.
func joinInBackground(h *JoinHandler, code string, body models.JoinRoomRequest) chan *httptest.ResponseRecorder {
	done := make(chan *httptest.ResponseRecorder, 1)
	go func() {
		req := testutil.MakeRequest("POST", "/rooms/"+code+"/join", body, nil)
		req.SetPathValue("code", code)
		w := httptest.NewRecorder()
		h.RequestJoin(w, req)
		done <- w
	}()
	return done
}

func waitForPending(t *testing.T, rm *room.Room, n int) []room.JoinRequestInfo {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if pending := rm.PendingJoinRequests(); len(pending) == n {
			return pending
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("never reached %d pending join requests", n)
	return nil
}

func TestRequestJoinValidation(t *testing.T) {
	m := testutil.SetupManager(t)
	handler := NewJoinHandler(m)
	rm := testutil.CreateTestRoom(t, m, "Quiz", []string{"email"})

	tests := []struct {
		name           string
		code           string
		body           interface{}
		expectedStatus int
		wantInMessage  string
	}{
		{
			name:           "unknown room",
			code:           "999999",
			body:           models.JoinRoomRequest{Name: "alice"},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "missing name",
			code:           rm.Code(),
			body:           models.JoinRoomRequest{Fields: map[string]string{"email": "a@b.c"}},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing required field",
			code:           rm.Code(),
			body:           models.JoinRoomRequest{Name: "alice"},
			expectedStatus: http.StatusBadRequest,
			wantInMessage:  "email",
		},
		{
			name: "extra field",
			code: rm.Code(),
			body: models.JoinRoomRequest{
				Name:   "alice",
				Fields: map[string]string{"email": "a@b.c", "phone": "555"},
			},
			expectedStatus: http.StatusBadRequest,
			wantInMessage:  "phone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/rooms/"+tt.code+"/join", tt.body, nil)
			req.SetPathValue("code", tt.code)
			w := httptest.NewRecorder()

			handler.RequestJoin(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.wantInMessage != "" && !strings.Contains(w.Body.String(), tt.wantInMessage) {
				t.Errorf("Expected %q in error message, got %s", tt.wantInMessage, w.Body.String())
			}
		})
	}
}

func TestJoinAcceptFlow(t *testing.T) {
	m := testutil.SetupManager(t)
	joinHandler := NewJoinHandler(m)
	rm := testutil.CreateTestRoom(t, m, "Quiz", []string{"email"})
	adminHeaders := map[string]string{middleware.AdminTokenHeader: rm.AdminToken()}

	done := joinInBackground(joinHandler, rm.Code(), models.JoinRoomRequest{
		Name:   "alice",
		Fields: map[string]string{"email": "alice@example.com"},
	})
	pending := waitForPending(t, rm, 1)

	// the admin sees the request with its submitted fields
	listReq := testutil.MakeRequest("GET", "/rooms/"+rm.Code()+"/join-requests", nil, adminHeaders)
	listReq.SetPathValue("code", rm.Code())
	listW := httptest.NewRecorder()
	joinHandler.ListJoinRequests(listW, listReq)
	testutil.AssertStatus(t, listW, http.StatusOK)

	var list models.JoinRequestsListResponse
	testutil.AssertJSON(t, listW, &list)
	if len(list.Requests) != 1 || list.Requests[0].Name != "alice" {
		t.Fatalf("Unexpected join request list: %+v", list)
	}
	if list.Requests[0].Fields["email"] != "alice@example.com" {
		t.Errorf("Submitted fields not echoed: %+v", list.Requests[0].Fields)
	}

	// accept
	decideReq := testutil.MakeRequest("POST", "/rooms/"+rm.Code()+"/join-requests",
		models.DecideJoinRequestsRequest{Accept: []string{pending[0].Token}}, adminHeaders)
	decideReq.SetPathValue("code", rm.Code())
	decideW := httptest.NewRecorder()
	joinHandler.DecideJoinRequests(decideW, decideReq)
	testutil.AssertStatus(t, decideW, http.StatusOK)

	var decided models.DecideJoinRequestsResponse
	testutil.AssertJSON(t, decideW, &decided)
	if len(decided.Accepted) != 1 || len(decided.Failed) != 0 {
		t.Fatalf("Unexpected decision response: %+v", decided)
	}

	// the suspended join call resolves with the token
	w := <-done
	testutil.AssertStatus(t, w, http.StatusOK)
	var join models.JoinRoomResponse
	testutil.AssertJSON(t, w, &join)
	if join.ParticipantToken == "" {
		t.Fatal("Expected a participant token")
	}
	if !rm.HasParticipant(join.ParticipantToken) {
		t.Error("Accepted token not recognized as participant")
	}
}

func TestJoinRejectFlow(t *testing.T) {
	m := testutil.SetupManager(t)
	joinHandler := NewJoinHandler(m)
	rm := testutil.CreateTestRoom(t, m, "Quiz", nil)
	adminHeaders := map[string]string{middleware.AdminTokenHeader: rm.AdminToken()}

	done := joinInBackground(joinHandler, rm.Code(), models.JoinRoomRequest{Name: "bob"})
	pending := waitForPending(t, rm, 1)

	decideReq := testutil.MakeRequest("POST", "/rooms/"+rm.Code()+"/join-requests",
		models.DecideJoinRequestsRequest{Reject: []string{pending[0].Token}}, adminHeaders)
	decideReq.SetPathValue("code", rm.Code())
	decideW := httptest.NewRecorder()
	joinHandler.DecideJoinRequests(decideW, decideReq)
	testutil.AssertStatus(t, decideW, http.StatusOK)

	w := <-done
	testutil.AssertStatus(t, w, http.StatusForbidden)
}

func TestJoinTimeoutFlow(t *testing.T) {
	m := testutil.SetupManager(t)
	joinHandler := NewJoinHandler(m)
	rm := testutil.CreateTestRoom(t, m, "Quiz", nil)

	// no admin decision; the short test timeout resolves the request
	done := joinInBackground(joinHandler, rm.Code(), models.JoinRoomRequest{Name: "carol"})
	w := <-done
	testutil.AssertStatus(t, w, http.StatusForbidden)
}

func TestJoinRequestsRequireAdminToken(t *testing.T) {
	m := testutil.SetupManager(t)
	joinHandler := NewJoinHandler(m)
	rm := testutil.CreateTestRoom(t, m, "Quiz", nil)

	t.Run("list without token", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/rooms/"+rm.Code()+"/join-requests", nil, nil)
		req.SetPathValue("code", rm.Code())
		w := httptest.NewRecorder()
		joinHandler.ListJoinRequests(w, req)
		testutil.AssertStatus(t, w, http.StatusForbidden)
	})

	t.Run("decide with wrong token", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/rooms/"+rm.Code()+"/join-requests",
			models.DecideJoinRequestsRequest{Accept: []string{"tok"}},
			map[string]string{middleware.AdminTokenHeader: "wrong"})
		req.SetPathValue("code", rm.Code())
		w := httptest.NewRecorder()
		joinHandler.DecideJoinRequests(w, req)
		testutil.AssertStatus(t, w, http.StatusForbidden)
	})
}

func TestDecideJoinRequestsFailures(t *testing.T) {
	m := testutil.SetupManager(t)
	joinHandler := NewJoinHandler(m)
	rm := testutil.CreateTestRoom(t, m, "Quiz", nil)
	adminHeaders := map[string]string{middleware.AdminTokenHeader: rm.AdminToken()}

	t.Run("no decisions", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/rooms/"+rm.Code()+"/join-requests",
			models.DecideJoinRequestsRequest{}, adminHeaders)
		req.SetPathValue("code", rm.Code())
		w := httptest.NewRecorder()
		joinHandler.DecideJoinRequests(w, req)
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("unknown tokens only", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/rooms/"+rm.Code()+"/join-requests",
			models.DecideJoinRequestsRequest{Accept: []string{"ghost"}}, adminHeaders)
		req.SetPathValue("code", rm.Code())
		w := httptest.NewRecorder()
		joinHandler.DecideJoinRequests(w, req)
		testutil.AssertStatus(t, w, http.StatusBadRequest)

		var decided models.DecideJoinRequestsResponse
		testutil.AssertJSON(t, w, &decided)
		if len(decided.Failed) != 1 || decided.Failed[0] != "ghost" {
			t.Errorf("Expected ghost in failed list, got %+v", decided)
		}
	})
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mchan/voteroom/middleware"
	"github.com/mchan/voteroom/models"
	"github.com/mchan/voteroom/question"
	"github.com/mchan/voteroom/room"
	"github.com/mchan/voteroom/testutil"
)

// postQuestion creates a question through the handler and returns its
// description.
func postQuestion(t *testing.T, h *QuestionHandler, rm *room.Room, body models.QuestionRequest) question.Description {
	t.Helper()

	req := testutil.MakeRequest("POST", "/rooms/"+rm.Code()+"/question", body,
		map[string]string{middleware.AdminTokenHeader: rm.AdminToken()})
	req.SetPathValue("code", rm.Code())
	w := httptest.NewRecorder()
	h.PostQuestion(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var d question.Description
	testutil.AssertJSON(t, w, &d)
	return d
}

func TestPostQuestion(t *testing.T) {
	m := testutil.SetupManager(t)
	handler := NewQuestionHandler(m)
	rm := testutil.CreateTestRoom(t, m, "Quiz", nil)
	adminHeaders := map[string]string{middleware.AdminTokenHeader: rm.AdminToken()}

	tests := []struct {
		name           string
		headers        map[string]string
		body           models.QuestionRequest
		expectedStatus int
	}{
		{
			name:    "valid plurality question",
			headers: adminHeaders,
			body: models.QuestionRequest{
				Prompt:  "Lunch?",
				Options: []string{"pizza", "tacos"},
				Style:   "plurality",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:    "valid preferential question",
			headers: adminHeaders,
			body: models.QuestionRequest{
				Prompt:  "Rank them",
				Options: []string{"a", "b", "c"},
				Style:   "preferential",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "no options",
			headers:        adminHeaders,
			body:           models.QuestionRequest{Prompt: "Empty?", Style: "plurality"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "duplicate options",
			headers: adminHeaders,
			body: models.QuestionRequest{
				Prompt:  "Lunch?",
				Options: []string{"pizza", "pizza"},
				Style:   "plurality",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "unknown style",
			headers: adminHeaders,
			body: models.QuestionRequest{
				Prompt:  "Lunch?",
				Options: []string{"pizza"},
				Style:   "approval",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "missing admin token",
			headers: nil,
			body: models.QuestionRequest{
				Prompt:  "Lunch?",
				Options: []string{"pizza"},
				Style:   "plurality",
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/rooms/"+rm.Code()+"/question", tt.body, tt.headers)
			req.SetPathValue("code", rm.Code())
			w := httptest.NewRecorder()

			handler.PostQuestion(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusCreated {
				var d question.Description
				testutil.AssertJSON(t, w, &d)
				if d.ID == "" || d.State != question.StateOpen {
					t.Errorf("Unexpected question description: %+v", d)
				}
			}
		})
	}
}

func TestGetQuestion(t *testing.T) {
	m := testutil.SetupManager(t)
	handler := NewQuestionHandler(m)
	rm := testutil.CreateTestRoom(t, m, "Quiz", nil)

	t.Run("no active question", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/rooms/"+rm.Code()+"/question", nil, nil)
		req.SetPathValue("code", rm.Code())
		w := httptest.NewRecorder()
		handler.GetQuestion(w, req)
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})

	posted := postQuestion(t, handler, rm, models.QuestionRequest{
		Prompt:  "Lunch?",
		Options: []string{"pizza", "tacos"},
		Style:   "plurality",
	})

	t.Run("current question", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/rooms/"+rm.Code()+"/question", nil, nil)
		req.SetPathValue("code", rm.Code())
		w := httptest.NewRecorder()
		handler.GetQuestion(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)

		var d question.Description
		testutil.AssertJSON(t, w, &d)
		if d.ID != posted.ID || d.Prompt != "Lunch?" {
			t.Errorf("Unexpected question: %+v", d)
		}
	})
}

func TestDeleteQuestion(t *testing.T) {
	m := testutil.SetupManager(t)
	handler := NewQuestionHandler(m)
	rm := testutil.CreateTestRoom(t, m, "Quiz", nil)
	adminHeaders := map[string]string{middleware.AdminTokenHeader: rm.AdminToken()}

	posted := postQuestion(t, handler, rm, models.QuestionRequest{
		Prompt:  "Lunch?",
		Options: []string{"pizza"},
		Style:   "plurality",
	})

	req := testutil.MakeRequest("DELETE", "/rooms/"+rm.Code()+"/question", nil, adminHeaders)
	req.SetPathValue("code", rm.Code())
	w := httptest.NewRecorder()
	handler.DeleteQuestion(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var removed question.Description
	testutil.AssertJSON(t, w, &removed)
	if removed.ID != posted.ID {
		t.Errorf("Expected the removed question back, got %+v", removed)
	}

	// deleting again fails
	req = testutil.MakeRequest("DELETE", "/rooms/"+rm.Code()+"/question", nil, adminHeaders)
	req.SetPathValue("code", rm.Code())
	w = httptest.NewRecorder()
	handler.DeleteQuestion(w, req)
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestSetQuestionState(t *testing.T) {
	m := testutil.SetupManager(t)
	handler := NewQuestionHandler(m)
	rm := testutil.CreateTestRoom(t, m, "Quiz", nil)
	adminHeaders := map[string]string{middleware.AdminTokenHeader: rm.AdminToken()}

	posted := postQuestion(t, handler, rm, models.QuestionRequest{
		Prompt:  "Lunch?",
		Options: []string{"pizza"},
		Style:   "plurality",
	})

	setState := func(t *testing.T, questionID, state string) *httptest.ResponseRecorder {
		t.Helper()
		req := testutil.MakeRequest("POST", "/rooms/"+rm.Code()+"/question/"+questionID+"/state",
			models.SetQuestionStateRequest{State: state}, adminHeaders)
		req.SetPathValue("code", rm.Code())
		req.SetPathValue("questionID", questionID)
		w := httptest.NewRecorder()
		handler.SetQuestionState(w, req)
		return w
	}

	t.Run("close and reopen", func(t *testing.T) {
		testutil.AssertStatus(t, setState(t, posted.ID, "closed"), http.StatusOK)
		testutil.AssertStatus(t, setState(t, posted.ID, "open"), http.StatusOK)
	})

	t.Run("stale question id", func(t *testing.T) {
		testutil.AssertStatus(t, setState(t, "stale-id", "closed"), http.StatusNotFound)
	})

	t.Run("unknown state", func(t *testing.T) {
		testutil.AssertStatus(t, setState(t, posted.ID, "archived"), http.StatusBadRequest)
	})

	t.Run("finalized is terminal", func(t *testing.T) {
		testutil.AssertStatus(t, setState(t, posted.ID, "finalized"), http.StatusOK)
		testutil.AssertStatus(t, setState(t, posted.ID, "open"), http.StatusConflict)
	})
}

func TestGetResult(t *testing.T) {
	m := testutil.SetupManager(t)
	handler := NewQuestionHandler(m)
	votingHandler := NewVotingHandler(m)
	rm := testutil.CreateTestRoom(t, m, "Quiz", nil)

	posted := postQuestion(t, handler, rm, models.QuestionRequest{
		Prompt:  "Lunch?",
		Options: []string{"pizza", "tacos"},
		Style:   "plurality",
	})

	getResult := func(t *testing.T, questionID string) *httptest.ResponseRecorder {
		t.Helper()
		req := testutil.MakeRequest("GET", "/rooms/"+rm.Code()+"/question/"+questionID+"/result", nil, nil)
		req.SetPathValue("code", rm.Code())
		req.SetPathValue("questionID", questionID)
		w := httptest.NewRecorder()
		handler.GetResult(w, req)
		return w
	}

	t.Run("no votes", func(t *testing.T) {
		w := getResult(t, posted.ID)
		testutil.AssertStatus(t, w, http.StatusOK)

		var res models.ResultResponse
		testutil.AssertJSON(t, w, &res)
		if res.Type != question.ResultNoVotes {
			t.Errorf("Expected noVotes, got %+v", res)
		}
	})

	t.Run("single winner after votes", func(t *testing.T) {
		token := testutil.ForceJoin(t, rm, "alice", nil)

		voteReq := testutil.MakeRequest("POST",
			"/rooms/"+rm.Code()+"/question/"+posted.ID+"/vote",
			models.VoteRequest{Selection: "pizza"},
			map[string]string{middleware.ParticipantTokenHeader: token})
		voteReq.SetPathValue("code", rm.Code())
		voteReq.SetPathValue("questionID", posted.ID)
		voteW := httptest.NewRecorder()
		votingHandler.SubmitVote(voteW, voteReq)
		testutil.AssertStatus(t, voteW, http.StatusOK)

		w := getResult(t, posted.ID)
		testutil.AssertStatus(t, w, http.StatusOK)

		var res models.ResultResponse
		testutil.AssertJSON(t, w, &res)
		if res.Type != question.ResultSingleWinner || res.Winner != "pizza" {
			t.Errorf("Expected singleWinner pizza, got %+v", res)
		}
	})

	t.Run("stale question id", func(t *testing.T) {
		testutil.AssertStatus(t, getResult(t, "stale-id"), http.StatusNotFound)
	})
}

func TestGetVoteCount(t *testing.T) {
	m := testutil.SetupManager(t)
	handler := NewQuestionHandler(m)
	rm := testutil.CreateTestRoom(t, m, "Quiz", nil)
	adminHeaders := map[string]string{middleware.AdminTokenHeader: rm.AdminToken()}

	posted := postQuestion(t, handler, rm, models.QuestionRequest{
		Prompt:  "Lunch?",
		Options: []string{"pizza"},
		Style:   "plurality",
	})

	t.Run("requires admin token", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/rooms/"+rm.Code()+"/question/"+posted.ID+"/votes", nil, nil)
		req.SetPathValue("code", rm.Code())
		req.SetPathValue("questionID", posted.ID)
		w := httptest.NewRecorder()
		handler.GetVoteCount(w, req)
		testutil.AssertStatus(t, w, http.StatusForbidden)
	})

	t.Run("zero votes", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/rooms/"+rm.Code()+"/question/"+posted.ID+"/votes", nil, adminHeaders)
		req.SetPathValue("code", rm.Code())
		req.SetPathValue("questionID", posted.ID)
		w := httptest.NewRecorder()
		handler.GetVoteCount(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.VoteCountResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Count != 0 {
			t.Errorf("Expected count 0, got %d", resp.Count)
		}
	})
}

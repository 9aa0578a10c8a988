// Copyright (c) 2025 Baydre.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/baydre/alx-polly/models"
	"github.com/baydre/alx-polly/testutil"
)

func TestCreatePoll(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewPollHandler(conn, cfg)
	user, token := testutil.CreateTestUser(t, conn, cfg, "Alice", "alice@example.com")

	tests := []struct {
		name           string
		requestBody    models.CreatePollRequest
		token          string
		expectedStatus int
	}{
		{
			name: "valid poll",
			requestBody: models.CreatePollRequest{
				Title:   "Lunch?",
				Options: []string{"Pizza", "Sushi"},
			},
			token:          token,
			expectedStatus: http.StatusCreated,
		},
		{
			name: "no token",
			requestBody: models.CreatePollRequest{
				Title:   "Lunch?",
				Options: []string{"Pizza", "Sushi"},
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "only one option",
			requestBody: models.CreatePollRequest{
				Title:   "Lunch?",
				Options: []string{"Pizza"},
			},
			token:          token,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "blank options collapse below two",
			requestBody: models.CreatePollRequest{
				Title:   "Lunch?",
				Options: []string{"Pizza", "  ", ""},
			},
			token:          token,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing title",
			requestBody: models.CreatePollRequest{
				Options: []string{"Pizza", "Sushi"},
			},
			token:          token,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var headers map[string]string
			if tt.token != "" {
				headers = map[string]string{"X-Session-Token": tt.token}
			}
			req := testutil.MakeRequest("POST", "/polls", tt.requestBody, headers)
			w := httptest.NewRecorder()

			handler.CreatePoll(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus == http.StatusCreated {
				var poll models.Poll
				testutil.AssertJSON(t, w, &poll)
				if poll.CreatedBy != user.ID {
					t.Errorf("Expected created_by %s, got %s", user.ID, poll.CreatedBy)
				}
				if poll.Status != models.StatusActive {
					t.Errorf("Expected active status, got %s", poll.Status)
				}
				if len(poll.Options) != 2 {
					t.Errorf("Expected 2 options, got %d", len(poll.Options))
				}
			}
		})
	}
}

func TestGetPoll(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewPollHandler(conn, cfg)
	user, token := testutil.CreateTestUser(t, conn, cfg, "Alice", "alice@example.com")
	pollID, optionIDs := testutil.CreateTestPoll(t, conn, user.ID, "Lunch?", models.StatusActive, "Pizza", "Sushi")

	// Public read, no token
	req := testutil.MakeRequest("GET", "/polls/"+pollID, nil, nil)
	req.SetPathValue("id", pollID)
	w := httptest.NewRecorder()
	handler.GetPoll(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.PollDetailResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Poll.ID != pollID {
		t.Errorf("Expected poll %s, got %s", pollID, resp.Poll.ID)
	}
	if resp.UserVote != nil {
		t.Error("Expected no user_vote before voting")
	}

	// After the caller votes, the same read includes their vote
	voteHandler := NewVoteHandler(conn, cfg)
	req = testutil.MakeRequest("POST", "/polls/"+pollID+"/votes",
		models.CastVoteRequest{OptionID: optionIDs[0]},
		map[string]string{"X-Session-Token": token})
	req.SetPathValue("id", pollID)
	w = httptest.NewRecorder()
	voteHandler.CastVote(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	req = testutil.MakeRequest("GET", "/polls/"+pollID, nil, map[string]string{"X-Session-Token": token})
	req.SetPathValue("id", pollID)
	w = httptest.NewRecorder()
	handler.GetPoll(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	resp = models.PollDetailResponse{}
	testutil.AssertJSON(t, w, &resp)
	if resp.UserVote == nil {
		t.Fatal("Expected user_vote after voting")
	}
	if resp.UserVote.OptionID != optionIDs[0] {
		t.Errorf("Expected vote for option %s, got %s", optionIDs[0], resp.UserVote.OptionID)
	}

	// Unknown poll
	req = testutil.MakeRequest("GET", "/polls/missing", nil, nil)
	req.SetPathValue("id", "missing")
	w = httptest.NewRecorder()
	handler.GetPoll(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestListPolls(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewPollHandler(conn, cfg)
	alice, _ := testutil.CreateTestUser(t, conn, cfg, "Alice", "alice@example.com")
	bob, _ := testutil.CreateTestUser(t, conn, cfg, "Bob", "bob@example.com")

	testutil.CreateTestPoll(t, conn, alice.ID, "First", models.StatusActive, "A", "B")
	testutil.CreateTestPoll(t, conn, bob.ID, "Second", models.StatusDraft, "C", "D")
	testutil.CreateTestPoll(t, conn, alice.ID, "Third", models.StatusClosed, "E", "F")

	req := testutil.MakeRequest("GET", "/polls", nil, nil)
	w := httptest.NewRecorder()
	handler.ListPolls(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var polls []models.Poll
	testutil.AssertJSON(t, w, &polls)
	if len(polls) != 3 {
		t.Fatalf("Expected 3 polls, got %d", len(polls))
	}
	// Newest first
	if polls[0].Title != "Third" || polls[2].Title != "First" {
		t.Errorf("Unexpected ordering: %s, %s, %s", polls[0].Title, polls[1].Title, polls[2].Title)
	}
}

func TestListMyPolls(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewPollHandler(conn, cfg)
	alice, aliceToken := testutil.CreateTestUser(t, conn, cfg, "Alice", "alice@example.com")
	bob, _ := testutil.CreateTestUser(t, conn, cfg, "Bob", "bob@example.com")

	testutil.CreateTestPoll(t, conn, alice.ID, "Mine", models.StatusActive, "A", "B")
	testutil.CreateTestPoll(t, conn, bob.ID, "Not mine", models.StatusActive, "C", "D")

	// No token
	req := testutil.MakeRequest("GET", "/my/polls", nil, nil)
	w := httptest.NewRecorder()
	handler.ListMyPolls(w, req)
	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	// Owner sees only their own polls
	req = testutil.MakeRequest("GET", "/my/polls", nil, map[string]string{"X-Session-Token": aliceToken})
	w = httptest.NewRecorder()
	handler.ListMyPolls(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var polls []models.Poll
	testutil.AssertJSON(t, w, &polls)
	if len(polls) != 1 || polls[0].Title != "Mine" {
		t.Errorf("Expected only Alice's poll, got %+v", polls)
	}
}

func TestUpdatePoll(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewPollHandler(conn, cfg)
	alice, aliceToken := testutil.CreateTestUser(t, conn, cfg, "Alice", "alice@example.com")
	_, bobToken := testutil.CreateTestUser(t, conn, cfg, "Bob", "bob@example.com")
	pollID, _ := testutil.CreateTestPoll(t, conn, alice.ID, "Lunch?", models.StatusActive, "Pizza", "Sushi")

	newTitle := "Dinner?"
	closed := models.StatusClosed
	badStatus := "archived"

	tests := []struct {
		name           string
		pollID         string
		token          string
		requestBody    models.UpdatePollRequest
		expectedStatus int
	}{
		{
			name:           "no token",
			pollID:         pollID,
			requestBody:    models.UpdatePollRequest{Title: &newTitle},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "unknown poll returns 404 even for non-owner",
			pollID: "missing",
			token:  bobToken,
			requestBody: models.UpdatePollRequest{
				Title: &newTitle,
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "non-owner forbidden",
			pollID:         pollID,
			token:          bobToken,
			requestBody:    models.UpdatePollRequest{Title: &newTitle},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "invalid status",
			pollID:         pollID,
			token:          aliceToken,
			requestBody:    models.UpdatePollRequest{Status: &badStatus},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "owner updates title and status",
			pollID:         pollID,
			token:          aliceToken,
			requestBody:    models.UpdatePollRequest{Title: &newTitle, Status: &closed},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var headers map[string]string
			if tt.token != "" {
				headers = map[string]string{"X-Session-Token": tt.token}
			}
			req := testutil.MakeRequest("PUT", "/polls/"+tt.pollID, tt.requestBody, headers)
			req.SetPathValue("id", tt.pollID)
			w := httptest.NewRecorder()

			handler.UpdatePoll(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus == http.StatusOK {
				var poll models.Poll
				testutil.AssertJSON(t, w, &poll)
				if poll.Title != newTitle || poll.Status != models.StatusClosed {
					t.Errorf("Update not applied: %+v", poll)
				}
			}
		})
	}
}

func TestDeletePoll(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewPollHandler(conn, cfg)
	voteHandler := NewVoteHandler(conn, cfg)
	alice, aliceToken := testutil.CreateTestUser(t, conn, cfg, "Alice", "alice@example.com")
	_, bobToken := testutil.CreateTestUser(t, conn, cfg, "Bob", "bob@example.com")
	pollID, optionIDs := testutil.CreateTestPoll(t, conn, alice.ID, "Lunch?", models.StatusActive, "Pizza", "Sushi")

	// Give the poll a vote so the delete has ledger rows to remove
	req := testutil.MakeRequest("POST", "/polls/"+pollID+"/votes",
		models.CastVoteRequest{OptionID: optionIDs[0]},
		map[string]string{"X-Session-Token": bobToken})
	req.SetPathValue("id", pollID)
	w := httptest.NewRecorder()
	voteHandler.CastVote(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	// No token
	req = testutil.MakeRequest("DELETE", "/polls/"+pollID, nil, nil)
	req.SetPathValue("id", pollID)
	w = httptest.NewRecorder()
	handler.DeletePoll(w, req)
	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	// Non-owner
	req = testutil.MakeRequest("DELETE", "/polls/"+pollID, nil, map[string]string{"X-Session-Token": bobToken})
	req.SetPathValue("id", pollID)
	w = httptest.NewRecorder()
	handler.DeletePoll(w, req)
	testutil.AssertStatus(t, w, http.StatusForbidden)

	// Owner
	req = testutil.MakeRequest("DELETE", "/polls/"+pollID, nil, map[string]string{"X-Session-Token": aliceToken})
	req.SetPathValue("id", pollID)
	w = httptest.NewRecorder()
	handler.DeletePoll(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.DeletePollResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.Deleted {
		t.Error("Expected deleted: true")
	}

	// Poll, options, and votes are all gone
	for table, query := range map[string]string{
		"poll":        "SELECT COUNT(*) FROM poll WHERE id = $1",
		"poll_option": "SELECT COUNT(*) FROM poll_option WHERE poll_id = $1",
		"vote":        "SELECT COUNT(*) FROM vote WHERE poll_id = $1",
	} {
		var count int
		if err := conn.QueryRow(query, pollID).Scan(&count); err != nil {
			t.Fatalf("Failed to count %s rows: %v", table, err)
		}
		if count != 0 {
			t.Errorf("Expected 0 %s rows after delete, got %d", table, count)
		}
	}

	// Deleting again is a 404
	req = testutil.MakeRequest("DELETE", "/polls/"+pollID, nil, map[string]string{"X-Session-Token": aliceToken})
	req.SetPathValue("id", pollID)
	w = httptest.NewRecorder()
	handler.DeletePoll(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

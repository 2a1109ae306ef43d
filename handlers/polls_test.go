// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/danielhkuo/livepoll/models"
	"github.com/danielhkuo/livepoll/testutil"
)

func TestCreatePoll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewPollHandler(db, cfg)

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		checkResponse  func(t *testing.T, resp *models.Poll)
	}{
		{
			name: "valid poll creation",
			requestBody: models.CreatePollRequest{
				Question: "Best color?",
				Options: []models.CreateOptionRequest{
					{Label: "Red"},
					{Label: "Blue"},
				},
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.Poll) {
				if resp.ID == 0 {
					t.Error("Expected store-assigned poll id")
				}
				if resp.Question != "Best color?" {
					t.Errorf("Expected question 'Best color?', got '%s'", resp.Question)
				}
				if len(resp.Options) != 2 {
					t.Fatalf("Expected 2 options, got %d", len(resp.Options))
				}
				for _, opt := range resp.Options {
					if opt.ID == 0 {
						t.Error("Expected store-assigned option id")
					}
					if opt.PollID != resp.ID {
						t.Errorf("Option poll_id = %d, want %d", opt.PollID, resp.ID)
					}
					if opt.Votes != 0 {
						t.Errorf("New option has %d votes, want 0", opt.Votes)
					}
				}
			},
		},
		{
			name: "three options",
			requestBody: models.CreatePollRequest{
				Question: "Lunch?",
				Options: []models.CreateOptionRequest{
					{Label: "Pizza"}, {Label: "Sushi"}, {Label: "Tacos"},
				},
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.Poll) {
				if len(resp.Options) != 3 {
					t.Errorf("Expected 3 options, got %d", len(resp.Options))
				}
			},
		},
		{
			name: "missing question",
			requestBody: models.CreatePollRequest{
				Options: []models.CreateOptionRequest{
					{Label: "Red"}, {Label: "Blue"},
				},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "only one option",
			requestBody: models.CreatePollRequest{
				Question: "Best color?",
				Options:  []models.CreateOptionRequest{{Label: "Red"}},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "no options",
			requestBody: models.CreatePollRequest{
				Question: "Best color?",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "empty option label",
			requestBody: models.CreatePollRequest{
				Question: "Best color?",
				Options:  []models.CreateOptionRequest{{Label: "Red"}, {Label: ""}},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			requestBody:    "{not json",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/polls", tt.requestBody, nil)
			w := httptest.NewRecorder()

			handler.CreatePoll(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.checkResponse != nil {
				var resp models.Poll
				testutil.AssertJSON(t, w, &resp)
				tt.checkResponse(t, &resp)
			}
		})
	}
}

func TestCreatePoll_RejectedInputNotPersisted(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewPollHandler(db, cfg)

	bad := []models.CreatePollRequest{
		{Question: "", Options: []models.CreateOptionRequest{{Label: "A"}, {Label: "B"}}},
		{Question: "One option?", Options: []models.CreateOptionRequest{{Label: "A"}}},
	}

	for _, reqBody := range bad {
		req := testutil.MakeRequest("POST", "/polls", reqBody, nil)
		w := httptest.NewRecorder()
		handler.CreatePoll(w, req)
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	}

	var polls, options int
	if err := db.QueryRow("SELECT COUNT(*) FROM poll").Scan(&polls); err != nil {
		t.Fatalf("Failed to count polls: %v", err)
	}
	if err := db.QueryRow("SELECT COUNT(*) FROM poll_option").Scan(&options); err != nil {
		t.Fatalf("Failed to count options: %v", err)
	}
	if polls != 0 || options != 0 {
		t.Errorf("Rejected input was persisted: %d polls, %d options", polls, options)
	}
}

func TestGetPoll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewPollHandler(db, cfg)

	pollID := testutil.CreateTestPoll(t, db, "Best color?")
	redID := testutil.AddTestOption(t, db, pollID, "Red")
	blueID := testutil.AddTestOption(t, db, pollID, "Blue")

	// Give Blue some votes so counts come back non-zero
	if _, err := db.Exec("UPDATE poll_option SET votes = 3 WHERE id = $1", blueID); err != nil {
		t.Fatalf("Failed to seed votes: %v", err)
	}

	t.Run("existing poll", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/polls/"+strconv.Itoa(pollID), nil, nil)
		req.SetPathValue("id", strconv.Itoa(pollID))
		w := httptest.NewRecorder()

		handler.GetPoll(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.Poll
		testutil.AssertJSON(t, w, &resp)

		if resp.ID != pollID {
			t.Errorf("Poll id = %d, want %d", resp.ID, pollID)
		}
		if resp.Question != "Best color?" {
			t.Errorf("Question = %q, want 'Best color?'", resp.Question)
		}
		if len(resp.Options) != 2 {
			t.Fatalf("Expected 2 options, got %d", len(resp.Options))
		}

		// Options come back ordered by id
		if resp.Options[0].ID != redID || resp.Options[1].ID != blueID {
			t.Errorf("Options out of order: got ids %d, %d", resp.Options[0].ID, resp.Options[1].ID)
		}
		if resp.Options[0].Votes != 0 {
			t.Errorf("Red votes = %d, want 0", resp.Options[0].Votes)
		}
		if resp.Options[1].Votes != 3 {
			t.Errorf("Blue votes = %d, want 3", resp.Options[1].Votes)
		}
	})

	t.Run("unknown poll id", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/polls/999999", nil, nil)
		req.SetPathValue("id", "999999")
		w := httptest.NewRecorder()

		handler.GetPoll(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})

	t.Run("non-integer poll id", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/polls/abc", nil, nil)
		req.SetPathValue("id", "abc")
		w := httptest.NewRecorder()

		handler.GetPoll(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})
}

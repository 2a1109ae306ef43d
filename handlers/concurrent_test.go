// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/livepoll/models"
	"github.com/danielhkuo/livepoll/testutil"
)

// TestConcurrentVotes verifies that simultaneous votes on the same
// option are never lost: the increment happens in a single UPDATE
// statement, so N votes always produce a final count of exactly N.
func TestConcurrentVotes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewVotingHandler(db, cfg, newTestHub())

	pollID := testutil.CreateTestPoll(t, db, "Concurrent poll")
	target := testutil.AddTestOption(t, db, pollID, "Target")
	bystander := testutil.AddTestOption(t, db, pollID, "Bystander")

	numVotes := 50

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numVotes; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/polls/vote", models.VoteRequest{OptionID: target}, nil)
			w := httptest.NewRecorder()

			handler.Vote(w, req)

			if w.Code == http.StatusOK {
				successCount.Add(1)
			}
		}()
	}

	wg.Wait()

	if int(successCount.Load()) != numVotes {
		t.Errorf("Expected %d successful votes, got %d", numVotes, successCount.Load())
	}

	if got := testutil.OptionVotes(t, db, target); got != numVotes {
		t.Errorf("Final count = %d, want %d (lost updates)", got, numVotes)
	}
	if got := testutil.OptionVotes(t, db, bystander); got != 0 {
		t.Errorf("Bystander count = %d, want 0", got)
	}
}

// TestConcurrentVotesAcrossOptions splits voters over two options and
// checks each tally independently
func TestConcurrentVotesAcrossOptions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewVotingHandler(db, cfg, newTestHub())

	pollID := testutil.CreateTestPoll(t, db, "Split poll")
	optA := testutil.AddTestOption(t, db, pollID, "A")
	optB := testutil.AddTestOption(t, db, pollID, "B")

	votesA, votesB := 20, 30

	var wg sync.WaitGroup
	vote := func(optionID int) {
		defer wg.Done()
		req := testutil.MakeRequest("POST", "/polls/vote", models.VoteRequest{OptionID: optionID}, nil)
		w := httptest.NewRecorder()
		handler.Vote(w, req)
	}

	for i := 0; i < votesA; i++ {
		wg.Add(1)
		go vote(optA)
	}
	for i := 0; i < votesB; i++ {
		wg.Add(1)
		go vote(optB)
	}

	wg.Wait()

	if got := testutil.OptionVotes(t, db, optA); got != votesA {
		t.Errorf("Option A count = %d, want %d", got, votesA)
	}
	if got := testutil.OptionVotes(t, db, optB); got != votesB {
		t.Errorf("Option B count = %d, want %d", got, votesB)
	}
}

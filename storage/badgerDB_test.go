package storage

import (
	"errors"
	"testing"
	"time"

	"github.com/mindclash/debate-arena/core"
)

func newTestStore(t *testing.T) *BadgerStore {
	t.Helper()
	store, err := Open(InMemoryConfig())
	if err != nil {
		t.Fatalf("failed to open in-memory store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleDebate(id string, status core.Status, createdAt time.Time) *core.Debate {
	return &core.Debate{
		ID:           id,
		Topic:        "test topic",
		Participants: []string{"The Philosopher", "The Scientist"},
		MaxRounds:    3,
		Status:       status,
		CreatedAt:    createdAt,
	}
}

func TestSaveAndGetDebate(t *testing.T) {
	store := newTestStore(t)
	now := time.Now()

	d := sampleDebate("d1", core.StatusPending, now)
	d.Rounds = []core.Round{{
		Number: 1,
		Arguments: []core.Argument{
			{PersonalityID: "The Philosopher", RoundNumber: 1, Content: "First.", Timestamp: now},
			{PersonalityID: "The Scientist", RoundNumber: 1, Content: "Second.", Timestamp: now},
		},
	}}
	d.Votes = []core.Vote{{DebateID: "d1", PersonalityID: "The Scientist", Timestamp: now}}

	if err := store.SaveDebate(d); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := store.GetDebate("d1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Topic != d.Topic || len(got.Rounds) != 1 || len(got.Votes) != 1 {
		t.Errorf("aggregate not round-tripped: %+v", got)
	}
	if len(got.Rounds[0].Arguments) != 2 {
		t.Errorf("round arguments lost: %+v", got.Rounds[0])
	}
}

func TestGetDebateNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetDebate("missing")
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveDebateOverwrites(t *testing.T) {
	store := newTestStore(t)

	d := sampleDebate("d1", core.StatusPending, time.Now())
	if err := store.SaveDebate(d); err != nil {
		t.Fatal(err)
	}
	d.Status = core.StatusInProgress
	d.CurrentRound = 1
	if err := store.SaveDebate(d); err != nil {
		t.Fatal(err)
	}

	got, err := store.GetDebate("d1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != core.StatusInProgress || got.CurrentRound != 1 {
		t.Errorf("upsert did not replace aggregate: %+v", got)
	}
}

func TestListDebates(t *testing.T) {
	store := newTestStore(t)
	base := time.Now()

	store.SaveDebate(sampleDebate("old", core.StatusJudged, base.Add(-2*time.Hour)))
	store.SaveDebate(sampleDebate("mid", core.StatusCompleted, base.Add(-time.Hour)))
	store.SaveDebate(sampleDebate("new", core.StatusJudged, base))

	t.Run("all, newest first", func(t *testing.T) {
		debates, err := store.ListDebates("")
		if err != nil {
			t.Fatal(err)
		}
		if len(debates) != 3 {
			t.Fatalf("expected 3 debates, got %d", len(debates))
		}
		if debates[0].ID != "new" || debates[2].ID != "old" {
			t.Errorf("wrong order: %s, %s, %s", debates[0].ID, debates[1].ID, debates[2].ID)
		}
	})

	t.Run("status filter", func(t *testing.T) {
		debates, err := store.ListDebates(core.StatusJudged)
		if err != nil {
			t.Fatal(err)
		}
		if len(debates) != 2 {
			t.Fatalf("expected 2 judged debates, got %d", len(debates))
		}
		for _, d := range debates {
			if d.Status != core.StatusJudged {
				t.Errorf("filter leaked status %s", d.Status)
			}
		}
	})

	t.Run("count", func(t *testing.T) {
		n, err := store.CountDebates(core.StatusCompleted)
		if err != nil {
			t.Fatal(err)
		}
		if n != 1 {
			t.Errorf("expected 1 completed debate, got %d", n)
		}
	})
}

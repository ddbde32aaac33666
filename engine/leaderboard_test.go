package engine_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/mindclash/debate-arena/core"
	"github.com/mindclash/debate-arena/engine"
	"github.com/mindclash/debate-arena/personality"
)

func judgedDebate(id, winner string, participants []string, votes ...string) *core.Debate {
	d := &core.Debate{
		ID:           id,
		Topic:        "topic " + id,
		Participants: participants,
		Status:       core.StatusJudged,
		Judgment: &core.Judgment{
			DebateID:  id,
			Winner:    winner,
			JudgeType: core.JudgeHuman,
			Reasoning: "decided",
			Timestamp: time.Now(),
		},
	}
	round := core.Round{Number: 1}
	for _, name := range participants {
		round.Arguments = append(round.Arguments, core.Argument{
			PersonalityID: name,
			RoundNumber:   1,
			Content:       name + " makes a distinct and reasonably developed argument here.",
		})
	}
	d.Rounds = []core.Round{round}
	for _, v := range votes {
		d.Votes = append(d.Votes, core.Vote{DebateID: id, PersonalityID: v})
	}
	return d
}

func standingFor(t *testing.T, list []engine.Standing, name string) engine.Standing {
	t.Helper()
	for _, s := range list {
		if s.Personality == name {
			return s
		}
	}
	t.Fatalf("%s missing from leaderboard", name)
	return engine.Standing{}
}

func TestComputeLeaderboard(t *testing.T) {
	pair := []string{"The Philosopher", "The Scientist"}

	t.Run("empty input lists full roster with zero stats", func(t *testing.T) {
		list := engine.ComputeLeaderboard(nil)
		if len(list) != len(personality.All()) {
			t.Fatalf("expected %d standings, got %d", len(personality.All()), len(list))
		}
		for _, s := range list {
			if s.Wins != 0 || s.Debates != 0 || s.WinRate != 0 || s.Votes != 0 {
				t.Errorf("zero-debate personality has non-zero stats: %+v", s)
			}
		}
	})

	t.Run("single judged debate", func(t *testing.T) {
		debates := []*core.Debate{
			judgedDebate("d1", "The Philosopher", pair, "The Philosopher"),
		}
		list := engine.ComputeLeaderboard(debates)

		phil := standingFor(t, list, "The Philosopher")
		if phil.Wins != 1 || phil.Debates != 1 || phil.WinRate != 1.0 || phil.Votes != 1 {
			t.Errorf("winner standing wrong: %+v", phil)
		}
		if phil.AverageScore <= 0 {
			t.Errorf("winner average score not derived: %f", phil.AverageScore)
		}

		sci := standingFor(t, list, "The Scientist")
		if sci.Wins != 0 || sci.Debates != 1 || sci.WinRate != 0 {
			t.Errorf("loser standing wrong: %+v", sci)
		}

		if list[0].Personality != "The Philosopher" {
			t.Errorf("winner should rank first, got %s", list[0].Personality)
		}
		// Entered-but-winless ranks above never-entered on the second key.
		if list[1].Personality != "The Scientist" {
			t.Errorf("loser with a debate should rank second, got %s", list[1].Personality)
		}
	})

	t.Run("non-judged debates ignored", func(t *testing.T) {
		pending := judgedDebate("d2", "The Scientist", pair)
		pending.Status = core.StatusCompleted
		pending.Judgment = nil

		list := engine.ComputeLeaderboard([]*core.Debate{pending})
		for _, s := range list {
			if s.Debates != 0 {
				t.Errorf("unjudged debate counted for %s", s.Personality)
			}
		}
	})

	t.Run("win rate orders before debate count", func(t *testing.T) {
		trio := []string{"The Philosopher", "The Scientist", "The Contrarian"}
		debates := []*core.Debate{
			// Contrarian: 1 win / 2 debates (0.5). Philosopher: 1 win / 1 debate (1.0).
			judgedDebate("d1", "The Contrarian", trio),
			judgedDebate("d2", "The Scientist", []string{"The Scientist", "The Contrarian"}),
			judgedDebate("d3", "The Philosopher", []string{"The Philosopher", "The Historian"}),
		}
		list := engine.ComputeLeaderboard(debates)
		if list[0].Personality != "The Philosopher" {
			t.Errorf("perfect record should rank first, got %s", list[0].Personality)
		}
	})

	t.Run("idempotent over the same input", func(t *testing.T) {
		debates := []*core.Debate{
			judgedDebate("d1", "The Philosopher", pair, "The Philosopher", "The Scientist"),
			judgedDebate("d2", "The Scientist", pair),
		}
		first := engine.ComputeLeaderboard(debates)
		second := engine.ComputeLeaderboard(debates)
		if !reflect.DeepEqual(first, second) {
			t.Error("recomputation changed standings")
		}
	})
}

package engine_test

import (
	"strings"
	"testing"

	"github.com/mindclash/debate-arena/core"
	"github.com/mindclash/debate-arena/engine"
)

func TestScoreArguments(t *testing.T) {
	t.Run("empty input scores zero", func(t *testing.T) {
		if got := engine.ScoreArguments(nil); got != 0 {
			t.Errorf("nil arguments scored %f", got)
		}
	})

	t.Run("degraded arguments contribute nothing", func(t *testing.T) {
		args := []core.Argument{
			{Content: "A long and varied argument full of distinct words.", Degraded: true},
		}
		if got := engine.ScoreArguments(args); got != 0 {
			t.Errorf("degraded argument scored %f, want 0", got)
		}
	})

	t.Run("longer arguments score higher", func(t *testing.T) {
		short := []core.Argument{{Content: "Brief point made here quickly."}}
		long := []core.Argument{{Content: "A considerably longer argument develops multiple distinct threads of reasoning across several carefully constructed sentences."}}
		if engine.ScoreArguments(long) <= engine.ScoreArguments(short) {
			t.Error("longer argument should outscore shorter one")
		}
	})

	t.Run("lexical diversity rewarded at equal length", func(t *testing.T) {
		repetitive := []core.Argument{{Content: strings.TrimSpace(strings.Repeat("same same same same ", 3))}}
		varied := []core.Argument{{Content: "each word here differs from its neighbors quite a lot truly"}}
		// Same order of magnitude in length, diversity decides.
		if engine.ScoreArguments(varied) <= engine.ScoreArguments(repetitive) {
			t.Error("varied vocabulary should outscore repetition of similar length")
		}
	})

	t.Run("pure over its input", func(t *testing.T) {
		args := []core.Argument{
			{Content: "Determinism is the heart of any scoring function."},
			{Content: "Scores must not drift between invocations.", Degraded: false},
		}
		if engine.ScoreArguments(args) != engine.ScoreArguments(args) {
			t.Error("score changed between calls on identical input")
		}
	})
}

func TestAIWinner(t *testing.T) {
	debate := func(args map[string][]core.Argument) *core.Debate {
		d := &core.Debate{Participants: []string{"The Philosopher", "The Scientist"}}
		round := core.Round{Number: 1}
		for _, name := range d.Participants {
			round.Arguments = append(round.Arguments, args[name]...)
		}
		d.Rounds = []core.Round{round}
		return d
	}

	t.Run("highest score wins", func(t *testing.T) {
		d := debate(map[string][]core.Argument{
			"The Philosopher": {{PersonalityID: "The Philosopher", Content: "Short."}},
			"The Scientist":   {{PersonalityID: "The Scientist", Content: "A substantially more developed line of reasoning citing varied evidence and distinct concepts throughout."}},
		})
		if got := engine.AIWinner(d); got != "The Scientist" {
			t.Errorf("winner = %s, want The Scientist", got)
		}
	})

	t.Run("tie goes to earliest participant", func(t *testing.T) {
		same := "Identical argument text for both sides of this debate."
		d := debate(map[string][]core.Argument{
			"The Philosopher": {{PersonalityID: "The Philosopher", Content: same}},
			"The Scientist":   {{PersonalityID: "The Scientist", Content: same}},
		})
		if got := engine.AIWinner(d); got != "The Philosopher" {
			t.Errorf("tie broken to %s, want first participant", got)
		}
	})

	t.Run("all degraded still yields a participant", func(t *testing.T) {
		d := debate(map[string][]core.Argument{
			"The Philosopher": {{PersonalityID: "The Philosopher", Content: "Fallback.", Degraded: true}},
			"The Scientist":   {{PersonalityID: "The Scientist", Content: "Fallback.", Degraded: true}},
		})
		if got := engine.AIWinner(d); got != "The Philosopher" {
			t.Errorf("all-degraded winner = %s, want first participant", got)
		}
	})

	t.Run("no participants", func(t *testing.T) {
		if got := engine.AIWinner(&core.Debate{}); got != "" {
			t.Errorf("empty debate produced winner %q", got)
		}
	})
}

package engine

import (
	"sort"

	"github.com/mindclash/debate-arena/core"
	"github.com/mindclash/debate-arena/personality"
)

// Standing is one personality's derived record across all judged debates.
type Standing struct {
	Personality  string  `json:"personality"`
	Wins         int     `json:"wins"`
	Debates      int     `json:"debates"`
	WinRate      float64 `json:"win_rate"`
	Votes        int     `json:"votes"`
	AverageScore float64 `json:"average_score"`
}

// ComputeLeaderboard derives standings from the supplied debate set.
// Only judged debates count; every registered personality appears, with
// zero stats if it never entered a judged debate. Ranking is win rate
// descending, then debates entered descending, then name ascending, so
// the output is a deterministic total order. The function holds no state:
// recomputing from the same input always yields the same result.
func ComputeLeaderboard(debates []*core.Debate) []Standing {
	standings := make(map[string]*Standing)
	ensure := func(name string) *Standing {
		s, ok := standings[name]
		if !ok {
			s = &Standing{Personality: name}
			standings[name] = s
		}
		return s
	}

	for _, p := range personality.All() {
		ensure(p.Name)
	}

	scoreSums := make(map[string]float64)
	for _, d := range debates {
		if d.Status != core.StatusJudged || d.Judgment == nil {
			continue
		}
		for _, name := range d.Participants {
			s := ensure(name)
			s.Debates++
			scoreSums[name] += ScoreArguments(d.ArgumentsByPersonality(name))
		}
		ensure(d.Judgment.Winner).Wins++
		for _, v := range d.Votes {
			ensure(v.PersonalityID).Votes++
		}
	}

	list := make([]Standing, 0, len(standings))
	for name, s := range standings {
		if s.Debates > 0 {
			s.WinRate = float64(s.Wins) / float64(s.Debates)
			s.AverageScore = scoreSums[name] / float64(s.Debates)
		}
		list = append(list, *s)
	}

	sort.Slice(list, func(i, j int) bool {
		if list[i].WinRate != list[j].WinRate {
			return list[i].WinRate > list[j].WinRate
		}
		if list[i].Debates != list[j].Debates {
			return list[i].Debates > list[j].Debates
		}
		return list[i].Personality < list[j].Personality
	})
	return list
}

// Leaderboard computes standings from the stored judged debates.
func (e *Engine) Leaderboard() ([]Standing, error) {
	debates, err := e.store.ListDebates(core.StatusJudged)
	if err != nil {
		return nil, err
	}
	return ComputeLeaderboard(debates), nil
}

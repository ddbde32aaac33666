package engine

import (
	"github.com/mindclash/debate-arena/core"
	"github.com/mindclash/debate-arena/personality"
)

// DebateAnalytics summarizes one debate for read-only consumers.
type DebateAnalytics struct {
	DebateID               string         `json:"debate_id"`
	TotalArguments         int            `json:"total_arguments"`
	ArgumentsByRound       map[int]int    `json:"arguments_by_round"`
	ArgumentsByPersonality map[string]int `json:"arguments_by_personality"`
	TotalVotes             int            `json:"total_votes"`
	VoteDistribution       map[string]int `json:"vote_distribution"`
	DurationMinutes        float64        `json:"duration_minutes"`
}

// Analytics derives per-debate statistics from the stored aggregate.
func (e *Engine) Analytics(id string) (*DebateAnalytics, error) {
	d, err := e.store.GetDebate(id)
	if err != nil {
		return nil, err
	}

	a := &DebateAnalytics{
		DebateID:               d.ID,
		TotalArguments:         d.TotalArguments(),
		ArgumentsByRound:       make(map[int]int),
		ArgumentsByPersonality: make(map[string]int),
		TotalVotes:             len(d.Votes),
		VoteDistribution:       make(map[string]int),
	}

	for i := range d.Rounds {
		for _, arg := range d.Rounds[i].Arguments {
			a.ArgumentsByRound[arg.RoundNumber]++
			a.ArgumentsByPersonality[arg.PersonalityID]++
		}
	}
	for _, v := range d.Votes {
		a.VoteDistribution[v.PersonalityID]++
	}
	if d.IsTerminal() && d.CompletedAt != nil {
		a.DurationMinutes = d.CompletedAt.Sub(d.CreatedAt).Minutes()
	}
	return a, nil
}

// PlatformStats aggregates across every stored debate.
type PlatformStats struct {
	TotalDebates    int                 `json:"total_debates"`
	DebatesByStatus map[core.Status]int `json:"debates_by_status"`
	TotalArguments  int                 `json:"total_arguments"`
	TotalVotes      int                 `json:"total_votes"`
	Personalities   int                 `json:"personalities"`
}

// Stats computes platform-wide counters from the full debate set.
func (e *Engine) Stats() (*PlatformStats, error) {
	debates, err := e.store.ListDebates("")
	if err != nil {
		return nil, err
	}

	stats := &PlatformStats{
		TotalDebates:    len(debates),
		DebatesByStatus: make(map[core.Status]int),
		Personalities:   len(personality.All()),
	}
	for _, d := range debates {
		stats.DebatesByStatus[d.Status]++
		stats.TotalArguments += d.TotalArguments()
		stats.TotalVotes += len(d.Votes)
	}
	return stats, nil
}

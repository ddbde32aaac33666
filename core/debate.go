package core

import "time"

// Status is the lifecycle state of a debate.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusJudged     Status = "judged"
)

// JudgeType identifies who decided a debate's winner.
type JudgeType string

const (
	JudgeAI    JudgeType = "ai"
	JudgeHuman JudgeType = "human"
)

// Argument is a single personality's contribution to a round.
// Degraded marks arguments produced via fallback text instead of model output.
type Argument struct {
	PersonalityID string    `json:"personality_id"`
	RoundNumber   int       `json:"round_number"`
	Content       string    `json:"content"`
	Timestamp     time.Time `json:"timestamp"`
	Degraded      bool      `json:"degraded,omitempty"`
}

// Round is one synchronized batch of arguments, one per participant,
// in participant order. Immutable once fully populated.
type Round struct {
	Number      int        `json:"number"`
	Arguments   []Argument `json:"arguments"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt time.Time  `json:"completed_at"`
}

// Judgment is the single authoritative winner decision for a debate.
type Judgment struct {
	DebateID  string    `json:"debate_id"`
	Winner    string    `json:"winner"`
	Reasoning string    `json:"reasoning"`
	JudgeType JudgeType `json:"judge_type"`
	Timestamp time.Time `json:"timestamp"`
}

// Vote is a non-authoritative community preference signal. Voter identity
// is optional metadata; votes are never deduplicated.
type Vote struct {
	DebateID      string    `json:"debate_id"`
	PersonalityID string    `json:"personality_id"`
	VoterID       string    `json:"voter_id,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// Debate is the aggregate root: it owns its rounds, judgment and votes,
// and is always loaded and saved as a whole.
type Debate struct {
	ID           string     `json:"id"`
	Topic        string     `json:"topic"`
	CreatorID    string     `json:"creator_id,omitempty"`
	Participants []string   `json:"participants"`
	CurrentRound int        `json:"current_round"`
	MaxRounds    int        `json:"max_rounds"`
	Status       Status     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	Rounds       []Round    `json:"rounds"`
	Judgment     *Judgment  `json:"judgment,omitempty"`
	Votes        []Vote     `json:"votes,omitempty"`
}

// HasParticipant reports whether name is one of the debate's participants.
func (d *Debate) HasParticipant(name string) bool {
	for _, p := range d.Participants {
		if p == name {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the debate accepts no further round generation.
func (d *Debate) IsTerminal() bool {
	return d.Status == StatusCompleted || d.Status == StatusJudged
}

// ArgumentsByRound returns the arguments of round n, or nil if the round
// does not exist yet.
func (d *Debate) ArgumentsByRound(n int) []Argument {
	for i := range d.Rounds {
		if d.Rounds[i].Number == n {
			return d.Rounds[i].Arguments
		}
	}
	return nil
}

// ArgumentsByPersonality returns every argument name produced, across all rounds.
func (d *Debate) ArgumentsByPersonality(name string) []Argument {
	var args []Argument
	for i := range d.Rounds {
		for _, arg := range d.Rounds[i].Arguments {
			if arg.PersonalityID == name {
				args = append(args, arg)
			}
		}
	}
	return args
}

// TotalArguments counts arguments across all rounds.
func (d *Debate) TotalArguments() int {
	total := 0
	for i := range d.Rounds {
		total += len(d.Rounds[i].Arguments)
	}
	return total
}

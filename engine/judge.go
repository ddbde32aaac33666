package engine

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mindclash/debate-arena/communication"
	"github.com/mindclash/debate-arena/core"
)

// diversityWeight scales lexical diversity (0..1) against raw argument
// length (capped at 500 runes upstream) in the AI scoring heuristic.
const diversityWeight = 120

// Judge records the single authoritative winner decision for a completed
// debate and transitions it to judged. Human judgments carry the caller's
// winner and reasoning; AI judgments derive the winner from the scoring
// heuristic and generate reasoning through the gateway.
func (e *Engine) Judge(id string, judgeType core.JudgeType, winner, reasoning string) (*core.Debate, error) {
	l := e.lockDebate(id)
	l.Lock()
	defer l.Unlock()

	d, err := e.store.GetDebate(id)
	if err != nil {
		return nil, err
	}
	if d.Judgment != nil || d.Status == core.StatusJudged {
		return nil, fmt.Errorf("debate %s: %w", id, core.ErrAlreadyJudged)
	}
	if d.Status != core.StatusCompleted {
		return nil, fmt.Errorf("%w: cannot judge debate in status %s", core.ErrInvalidState, d.Status)
	}

	switch judgeType {
	case core.JudgeHuman:
		if winner == "" || strings.TrimSpace(reasoning) == "" {
			return nil, fmt.Errorf("%w: human judgment requires winner and reasoning", core.ErrValidation)
		}
		if !d.HasParticipant(winner) {
			return nil, fmt.Errorf("%q: %w", winner, core.ErrInvalidWinner)
		}
	case core.JudgeAI:
		winner = AIWinner(d)
		ctx, cancel := context.WithTimeout(context.Background(), e.roundTimeout)
		reasoning = e.gen.JudgeReasoning(ctx, d.Topic, allArguments(d), winner)
		cancel()
	default:
		return nil, fmt.Errorf("%w: unknown judge type %q", core.ErrValidation, judgeType)
	}

	d.Judgment = &core.Judgment{
		DebateID:  id,
		Winner:    winner,
		Reasoning: reasoning,
		JudgeType: judgeType,
		Timestamp: time.Now(),
	}
	d.Status = core.StatusJudged

	if err := e.store.SaveDebate(d); err != nil {
		return nil, err
	}

	log.Printf("Debate %s judged (%s), winner: %s", id, judgeType, winner)
	e.publish(communication.EventDebateJudged, id, d.Judgment)
	return d, nil
}

// Vote appends a community vote for a participant. Votes are unlimited
// and never change the debate's status.
func (e *Engine) Vote(id, choice, voterID string) (*core.Debate, error) {
	l := e.lockDebate(id)
	l.Lock()
	defer l.Unlock()

	d, err := e.store.GetDebate(id)
	if err != nil {
		return nil, err
	}
	if !d.IsTerminal() {
		return nil, fmt.Errorf("%w: cannot vote on debate in status %s", core.ErrInvalidState, d.Status)
	}
	if !d.HasParticipant(choice) {
		return nil, fmt.Errorf("%q: %w", choice, core.ErrInvalidChoice)
	}

	vote := core.Vote{
		DebateID:      id,
		PersonalityID: choice,
		VoterID:       voterID,
		Timestamp:     time.Now(),
	}
	d.Votes = append(d.Votes, vote)

	if err := e.store.SaveDebate(d); err != nil {
		return nil, err
	}

	e.publish(communication.EventVoteCast, id, vote)
	return d, nil
}

// ScoreArguments is the AI judging heuristic: each non-degraded argument
// contributes its rune length plus diversityWeight times its lexical
// diversity; degraded arguments contribute nothing. Pure over its input.
func ScoreArguments(args []core.Argument) float64 {
	var total float64
	for _, arg := range args {
		if arg.Degraded {
			continue
		}
		total += float64(utf8.RuneCountInString(arg.Content))
		total += diversityWeight * lexicalDiversity(arg.Content)
	}
	return total
}

// AIWinner picks the participant with the highest argument score; ties go
// to the earliest participant in debate order.
func AIWinner(d *core.Debate) string {
	if len(d.Participants) == 0 {
		return ""
	}

	winner := d.Participants[0]
	best := math.Inf(-1)
	for _, name := range d.Participants {
		if score := ScoreArguments(d.ArgumentsByPersonality(name)); score > best {
			best = score
			winner = name
		}
	}
	return winner
}

func lexicalDiversity(text string) float64 {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return 0
	}
	unique := make(map[string]struct{}, len(words))
	for _, w := range words {
		unique[strings.Trim(w, `.,!?;:"'`)] = struct{}{}
	}
	return float64(len(unique)) / float64(len(words))
}

func allArguments(d *core.Debate) []core.Argument {
	var args []core.Argument
	for i := range d.Rounds {
		args = append(args, d.Rounds[i].Arguments...)
	}
	return args
}

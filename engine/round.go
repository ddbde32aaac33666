package engine

import (
	"context"
	"log"
	"time"

	"github.com/mindclash/debate-arena/ai"
	"github.com/mindclash/debate-arena/core"
	"github.com/mindclash/debate-arena/personality"
)

// generateRound produces one argument per participant. Generation runs
// concurrently against the gateway under a single round deadline; each
// participant only sees prior rounds, never peers from its own round.
// Slots whose generation has not resolved when the deadline fires get
// degraded fallback arguments, so the round always completes.
func (e *Engine) generateRound(d *core.Debate, number int) core.Round {
	started := time.Now()
	dc := ai.DebateContext{
		Topic:       d.Topic,
		RoundNumber: number,
		MaxRounds:   d.MaxRounds,
		PriorRounds: append([]core.Round(nil), d.Rounds...),
	}

	ctx, cancel := context.WithTimeout(context.Background(), e.roundTimeout)
	defer cancel()

	type result struct {
		idx int
		arg core.Argument
	}
	results := make(chan result, len(d.Participants))

	for i, name := range d.Participants {
		go func(idx int, p personality.Personality) {
			results <- result{idx: idx, arg: e.gen.GenerateArgument(ctx, p, dc)}
		}(i, e.resolve(name))
	}

	args := make([]core.Argument, len(d.Participants))
	received := make([]bool, len(d.Participants))

collect:
	for range d.Participants {
		select {
		case r := <-results:
			args[r.idx] = r.arg
			received[r.idx] = true
		case <-ctx.Done():
			break collect
		}
	}

	// Stragglers are abandoned; their results, if they ever arrive, are
	// discarded with the buffered channel.
	for i, ok := range received {
		if ok {
			continue
		}
		log.Printf("Round %d argument for %s in debate %s timed out, using fallback", number, d.Participants[i], d.ID)
		args[i] = e.gen.Fallback(e.resolve(d.Participants[i]), d.Topic, number)
	}

	return core.Round{
		Number:      number,
		Arguments:   args,
		StartedAt:   started,
		CompletedAt: time.Now(),
	}
}

// resolve looks a participant up in the registry. Participants are
// validated at creation, so a miss only happens if the catalog changed
// under a stored debate; the bare name still lets fallback text work.
func (e *Engine) resolve(name string) personality.Personality {
	p, err := personality.Get(name)
	if err != nil {
		return personality.Personality{Name: name}
	}
	return p
}

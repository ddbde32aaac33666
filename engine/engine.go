package engine

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mindclash/debate-arena/ai"
	"github.com/mindclash/debate-arena/communication"
	"github.com/mindclash/debate-arena/config"
	"github.com/mindclash/debate-arena/core"
	"github.com/mindclash/debate-arena/personality"
	"github.com/mindclash/debate-arena/storage"
)

// Engine owns the debate lifecycle: creation, round progression, judging
// and voting. Every operation on one debate is serialized through a
// per-debate mutex; different debates proceed independently.
type Engine struct {
	store     storage.Store
	gen       ai.Generator
	messenger *communication.Messenger

	maxRounds    int
	roundTimeout time.Duration

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New wires an engine from its collaborators. messenger may be nil.
func New(store storage.Store, gen ai.Generator, messenger *communication.Messenger, cfg config.Config) *Engine {
	return &Engine{
		store:        store,
		gen:          gen,
		messenger:    messenger,
		maxRounds:    cfg.MaxRounds,
		roundTimeout: cfg.RoundTimeout,
		locks:        make(map[string]*sync.Mutex),
	}
}

func (e *Engine) lockDebate(id string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()

	l, ok := e.locks[id]
	if !ok {
		l = &sync.Mutex{}
		e.locks[id] = l
	}
	return l
}

func (e *Engine) publish(eventType, debateID string, payload interface{}) {
	communication.BroadcastEvent(eventType, payload)
	if err := e.messenger.PublishEvent(debateID, communication.WSEvent{Type: eventType, Payload: payload}); err != nil {
		log.Printf("NATS publish of %s for debate %s failed: %v", eventType, debateID, err)
	}
}

// Create validates the inputs and stores a pending debate with no rounds.
// An empty participant list selects the full registry roster.
func (e *Engine) Create(topic string, participants []string, creatorID string) (*core.Debate, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, fmt.Errorf("%w: topic must not be empty", core.ErrValidation)
	}

	if len(participants) == 0 {
		participants = personality.Names()
	}
	if len(participants) < 2 {
		return nil, fmt.Errorf("%w: a debate needs at least 2 participants", core.ErrValidation)
	}

	seen := make(map[string]bool, len(participants))
	for _, name := range participants {
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate participant %q", core.ErrValidation, name)
		}
		seen[name] = true
		if _, err := personality.Get(name); err != nil {
			return nil, fmt.Errorf("%w: unknown personality %q", core.ErrValidation, name)
		}
	}

	d := &core.Debate{
		ID:           uuid.New().String(),
		Topic:        topic,
		CreatorID:    creatorID,
		Participants: append([]string(nil), participants...),
		MaxRounds:    e.maxRounds,
		Status:       core.StatusPending,
		CreatedAt:    time.Now(),
	}
	if err := e.store.SaveDebate(d); err != nil {
		return nil, err
	}

	log.Printf("Created debate %s with %d participants", d.ID, len(d.Participants))
	e.publish(communication.EventDebateCreated, d.ID, d)
	return d, nil
}

// Start transitions a pending debate to in_progress and generates round 1.
func (e *Engine) Start(id string) (*core.Debate, error) {
	l := e.lockDebate(id)
	l.Lock()
	defer l.Unlock()

	d, err := e.store.GetDebate(id)
	if err != nil {
		return nil, err
	}
	if d.Status != core.StatusPending {
		return nil, fmt.Errorf("%w: cannot start debate in status %s", core.ErrInvalidState, d.Status)
	}

	d.Status = core.StatusInProgress
	round := e.generateRound(d, 1)
	d.Rounds = append(d.Rounds, round)
	d.CurrentRound = 1
	completed := e.maybeComplete(d)

	if err := e.store.SaveDebate(d); err != nil {
		return nil, err
	}

	log.Printf("Started debate %s, round 1 complete", d.ID)
	e.publish(communication.EventDebateStarted, d.ID, d)
	e.publish(communication.EventRoundCompleted, d.ID, round)
	if completed {
		e.publish(communication.EventDebateCompleted, d.ID, d)
	}
	return d, nil
}

// AdvanceRound generates the next round for an in-progress debate. When
// the new round reaches the configured cap the debate completes.
func (e *Engine) AdvanceRound(id string) (*core.Debate, error) {
	l := e.lockDebate(id)
	l.Lock()
	defer l.Unlock()

	d, err := e.store.GetDebate(id)
	if err != nil {
		return nil, err
	}
	if d.Status != core.StatusInProgress {
		return nil, fmt.Errorf("%w: cannot advance debate in status %s", core.ErrInvalidState, d.Status)
	}
	if d.CurrentRound >= d.MaxRounds {
		return nil, fmt.Errorf("debate %s at round %d: %w", d.ID, d.CurrentRound, core.ErrRoundLimit)
	}

	next := d.CurrentRound + 1
	round := e.generateRound(d, next)
	d.Rounds = append(d.Rounds, round)
	d.CurrentRound = next
	completed := e.maybeComplete(d)

	if err := e.store.SaveDebate(d); err != nil {
		return nil, err
	}

	log.Printf("Debate %s advanced to round %d", d.ID, next)
	e.publish(communication.EventRoundCompleted, d.ID, round)
	if completed {
		e.publish(communication.EventDebateCompleted, d.ID, d)
	}
	return d, nil
}

// ForceComplete ends an in-progress debate early without generating
// further rounds. At least one round must exist.
func (e *Engine) ForceComplete(id string) (*core.Debate, error) {
	l := e.lockDebate(id)
	l.Lock()
	defer l.Unlock()

	d, err := e.store.GetDebate(id)
	if err != nil {
		return nil, err
	}
	if d.Status != core.StatusInProgress || d.CurrentRound < 1 {
		return nil, fmt.Errorf("%w: cannot complete debate in status %s at round %d", core.ErrInvalidState, d.Status, d.CurrentRound)
	}

	now := time.Now()
	d.Status = core.StatusCompleted
	d.CompletedAt = &now

	if err := e.store.SaveDebate(d); err != nil {
		return nil, err
	}

	log.Printf("Debate %s force-completed at round %d", d.ID, d.CurrentRound)
	e.publish(communication.EventDebateCompleted, d.ID, d)
	return d, nil
}

// Get loads a debate aggregate by ID.
func (e *Engine) Get(id string) (*core.Debate, error) {
	return e.store.GetDebate(id)
}

// List returns one page of debates newest-first plus the total count.
// An empty status matches everything.
func (e *Engine) List(status core.Status, page, limit int) ([]*core.Debate, int, error) {
	debates, err := e.store.ListDebates(status)
	if err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	total := len(debates)
	start := (page - 1) * limit
	if start >= total {
		return []*core.Debate{}, total, nil
	}
	end := start + limit
	if end > total {
		end = total
	}
	return debates[start:end], total, nil
}

func (e *Engine) maybeComplete(d *core.Debate) bool {
	if d.Status != core.StatusInProgress || d.CurrentRound < d.MaxRounds {
		return false
	}
	now := time.Now()
	d.Status = core.StatusCompleted
	d.CompletedAt = &now
	return true
}

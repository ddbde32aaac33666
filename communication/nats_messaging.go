package communication

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// GlobalSubject carries every debate event; per-debate subjects let
// consumers follow a single debate.
const GlobalSubject = "debate.events"

// Messenger encapsulates a NATS connection. A nil Messenger is valid and
// publishes nothing, so callers need no NATS to run the arena.
type Messenger struct {
	NC *nats.Conn
}

// NewMessenger connects to NATS at the given URL.
func NewMessenger(url string) (*Messenger, error) {
	nc, err := nats.Connect(url, nats.Timeout(10*time.Second))
	if err != nil {
		return nil, err
	}
	return &Messenger{NC: nc}, nil
}

// PublishEvent sends a debate event to the global subject and to the
// debate's own subject.
func (m *Messenger) PublishEvent(debateID string, event WSEvent) error {
	if m == nil || m.NC == nil {
		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if err := m.NC.Publish(GlobalSubject, data); err != nil {
		return err
	}
	return m.NC.Publish(debateSubject(debateID), data)
}

// SubscribeDebate registers a handler for one debate's events.
func (m *Messenger) SubscribeDebate(debateID string, handler nats.MsgHandler) (*nats.Subscription, error) {
	return m.NC.Subscribe(debateSubject(debateID), handler)
}

// SubscribeGlobal registers a handler for all debate events.
func (m *Messenger) SubscribeGlobal(handler nats.MsgHandler) (*nats.Subscription, error) {
	return m.NC.Subscribe(GlobalSubject, handler)
}

// Close drains and closes the connection.
func (m *Messenger) Close() {
	if m != nil && m.NC != nil {
		m.NC.Close()
	}
}

func debateSubject(debateID string) string {
	return fmt.Sprintf("debate.%s.events", debateID)
}

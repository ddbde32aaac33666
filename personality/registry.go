package personality

import (
	"fmt"
	"sync"

	"github.com/mindclash/debate-arena/core"
)

// Personality is a fixed scripted debating identity. The SystemPrompt is
// the stylistic directive used to bias argument generation.
type Personality struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Traits       []string `json:"traits"`
	Style        string   `json:"style"`
	SystemPrompt string   `json:"system_prompt"`
}

var (
	registryMu    sync.RWMutex
	order         []string
	personalities = make(map[string]Personality)
)

func init() {
	Load(Defaults())
}

// Load replaces the catalog. Intended for process start only; the registry
// is read-only during debate operation.
func Load(list []Personality) {
	registryMu.Lock()
	defer registryMu.Unlock()

	order = order[:0]
	personalities = make(map[string]Personality, len(list))
	for _, p := range list {
		if _, exists := personalities[p.Name]; exists {
			continue
		}
		order = append(order, p.Name)
		personalities[p.Name] = p
	}
}

// All returns every registered personality in stable registration order.
func All() []Personality {
	registryMu.RLock()
	defer registryMu.RUnlock()

	list := make([]Personality, 0, len(order))
	for _, name := range order {
		list = append(list, personalities[name])
	}
	return list
}

// Get looks a personality up by name.
func Get(name string) (Personality, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	p, ok := personalities[name]
	if !ok {
		return Personality{}, fmt.Errorf("personality %q: %w", name, core.ErrNotFound)
	}
	return p, nil
}

// Names returns the registered names in stable order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	return append([]string(nil), order...)
}

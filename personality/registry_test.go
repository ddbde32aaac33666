package personality

import (
	"errors"
	"testing"

	"github.com/mindclash/debate-arena/core"
)

func TestDefaultsRegistered(t *testing.T) {
	all := All()
	if len(all) != 6 {
		t.Fatalf("expected 6 default personalities, got %d", len(all))
	}

	// Order is stable across calls.
	again := All()
	for i := range all {
		if all[i].Name != again[i].Name {
			t.Fatalf("registry order unstable at %d: %s vs %s", i, all[i].Name, again[i].Name)
		}
	}
}

func TestGet(t *testing.T) {
	p, err := Get("The Contrarian")
	if err != nil {
		t.Fatalf("expected The Contrarian: %v", err)
	}
	if p.SystemPrompt == "" {
		t.Error("personality missing its stylistic directive")
	}

	_, err = Get("The Imposter")
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown personality, got %v", err)
	}
}

func TestNamesMatchAll(t *testing.T) {
	names := Names()
	all := All()
	if len(names) != len(all) {
		t.Fatalf("Names and All disagree: %d vs %d", len(names), len(all))
	}
	for i := range names {
		if names[i] != all[i].Name {
			t.Errorf("name order mismatch at %d", i)
		}
	}
}

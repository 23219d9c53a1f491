package memory

import (
	"testing"

	"github.com/linkfeed/cli/domain"
)

func TestRoundTrip(t *testing.T) {
	store := New()

	identity := &domain.Identity{ID: "42", Email: "a@b.com"}
	if err := store.Save("tok", identity); err != nil {
		t.Fatalf("save: %v", err)
	}

	token, loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if token != "tok" {
		t.Errorf("expected token tok, got %q", token)
	}
	if loaded == nil || *loaded != *identity {
		t.Errorf("expected identity %+v, got %+v", identity, loaded)
	}

	// the store hands out copies, not aliases
	loaded.Name = "mutated"
	_, again, _ := store.Load()
	if again.Name != "" {
		t.Error("loaded identity must be a copy")
	}
}

func TestClear(t *testing.T) {
	store := New()
	if err := store.Save("tok", &domain.Identity{ID: "1"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}

	token, identity, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if token != "" || identity != nil {
		t.Errorf("expected empty store, got token=%q identity=%+v", token, identity)
	}
}

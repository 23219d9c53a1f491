package bolt

import (
	"path/filepath"
	"testing"

	"go.etcd.io/bbolt"

	"github.com/linkfeed/cli/domain"
)

func openTestStore(t *testing.T) *SessionStore {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "session.db"), nil)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := openTestStore(t)

	identity := &domain.Identity{ID: "42", Email: "a@b.com", Name: "Alice"}
	if err := store.Save("abc.def.ghi", identity); err != nil {
		t.Fatalf("save: %v", err)
	}

	token, loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if token != "abc.def.ghi" {
		t.Errorf("expected token abc.def.ghi, got %q", token)
	}
	if loaded == nil || *loaded != *identity {
		t.Errorf("expected identity %+v, got %+v", identity, loaded)
	}
}

func TestLoadEmptyStore(t *testing.T) {
	store := openTestStore(t)

	token, identity, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if token != "" || identity != nil {
		t.Errorf("expected empty pair, got token=%q identity=%+v", token, identity)
	}
}

func TestClearRemovesBothKeys(t *testing.T) {
	store := openTestStore(t)

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
		t.Errorf("expected cleared store, got token=%q identity=%+v", token, identity)
	}
}

func TestSaveNilIdentityDropsCachedRecord(t *testing.T) {
	store := openTestStore(t)

	if err := store.Save("tok", &domain.Identity{ID: "1"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save("tok2", nil); err != nil {
		t.Fatalf("save nil identity: %v", err)
	}

	token, identity, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if token != "tok2" {
		t.Errorf("expected token tok2, got %q", token)
	}
	if identity != nil {
		t.Errorf("expected no identity, got %+v", identity)
	}
}

func TestLoadTreatsCorruptIdentityAsAbsent(t *testing.T) {
	store := openTestStore(t)

	if err := store.Save("abc.def.ghi", &domain.Identity{ID: "1"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketSession)).Put([]byte(keyUser), []byte("{not json"))
	})
	if err != nil {
		t.Fatalf("corrupt identity: %v", err)
	}

	token, identity, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if token != "abc.def.ghi" {
		t.Errorf("expected token preserved, got %q", token)
	}
	if identity != nil {
		t.Errorf("expected corrupt identity treated as absent, got %+v", identity)
	}
}

package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return s
}

func TestNewCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "scenarios")
	s, err := New(dir)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("base directory not created: %v", err)
	}
	if s.IsEncrypted() {
		t.Error("fresh store should not be encrypted")
	}
	if !s.IsUnlocked() {
		t.Error("unencrypted store should be unlocked")
	}
}

func TestWriteReadRoundtrip(t *testing.T) {
	s := newTestStore(t)
	payload := []byte(`{"name":"baseline"}`)

	if err := s.Write("baseline.json", payload); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	got, err := s.Read("baseline.json")
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("roundtrip mismatch: %q", got)
	}
	if !s.Exists("baseline.json") {
		t.Error("Exists should report the written file")
	}
}

func TestRemove(t *testing.T) {
	s := newTestStore(t)
	if err := s.Write("doomed.json", []byte("{}")); err != nil {
		t.Fatal(err)
	}
	if err := s.Remove("doomed.json"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if s.Exists("doomed.json") {
		t.Error("file still present after Remove")
	}
}

func TestListFiltersAndSorts(t *testing.T) {
	s := newTestStore(t)
	for _, name := range []string{"b.json", "a.json", "notes.txt"} {
		if err := s.Write(name, []byte("{}")); err != nil {
			t.Fatal(err)
		}
	}
	// Dotfiles are store bookkeeping, never listed.
	if err := os.WriteFile(filepath.Join(s.BaseDir(), ".encrypted"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	names, err := s.List(".json")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(names) != 2 || names[0] != "a.json" || names[1] != "b.json" {
		t.Errorf("unexpected listing: %v", names)
	}
}

func TestEnableEncryption(t *testing.T) {
	s := newTestStore(t)
	payload := []byte(`{"name":"secret"}`)
	if err := s.Write("secret.json", payload); err != nil {
		t.Fatal(err)
	}

	t.Run("RejectsShortPassword", func(t *testing.T) {
		if err := s.EnableEncryption("short"); err == nil {
			t.Error("expected short-password rejection")
		}
	})

	if err := s.EnableEncryption("correct-horse"); err != nil {
		t.Fatalf("enable failed: %v", err)
	}
	if !s.IsEncrypted() {
		t.Error("store should report encrypted")
	}

	t.Run("CiphertextOnDisk", func(t *testing.T) {
		raw, err := os.ReadFile(filepath.Join(s.BaseDir(), "secret.json"))
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(string(raw), ageHeader) {
			t.Error("scenario file was not encrypted on disk")
		}
	})

	t.Run("TransparentReadWhileUnlocked", func(t *testing.T) {
		got, err := s.Read("secret.json")
		if err != nil {
			t.Fatalf("read failed: %v", err)
		}
		if string(got) != string(payload) {
			t.Errorf("decrypted content mismatch: %q", got)
		}
	})

	t.Run("AlreadyEnabled", func(t *testing.T) {
		if err := s.EnableEncryption("correct-horse"); err == nil {
			t.Error("expected error enabling twice")
		}
	})
}

func TestUnlock(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Write("plan.json", []byte(`{"a":1}`)); err != nil {
		t.Fatal(err)
	}
	if err := s.EnableEncryption("correct-horse"); err != nil {
		t.Fatal(err)
	}

	// Fresh store over the same directory, as after a restart.
	s2, err := New(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !s2.IsEncrypted() {
		t.Fatal("marker file not detected")
	}
	if s2.IsUnlocked() {
		t.Error("encrypted store should start locked")
	}

	if _, err := s2.Read("plan.json"); err == nil {
		t.Error("reading an encrypted file while locked should fail")
	}

	if err := s2.Unlock("wrong-password"); err == nil {
		t.Error("wrong password should be rejected")
	}
	if err := s2.Unlock("correct-horse"); err != nil {
		t.Fatalf("unlock failed: %v", err)
	}
	if !s2.IsUnlocked() {
		t.Error("store should be unlocked")
	}

	got, err := s2.Read("plan.json")
	if err != nil {
		t.Fatalf("read after unlock failed: %v", err)
	}
	if string(got) != `{"a":1}` {
		t.Errorf("unexpected content: %q", got)
	}

	s2.Lock()
	if s2.IsUnlocked() {
		t.Error("store should be locked again")
	}
}

func TestWriteWhileUnlockedEncrypts(t *testing.T) {
	s := newTestStore(t)
	if err := s.EnableEncryption("correct-horse"); err != nil {
		t.Fatal(err)
	}

	if err := s.Write("new.json", []byte(`{"b":2}`)); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(filepath.Join(s.BaseDir(), "new.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(raw), ageHeader) {
		t.Error("write to an unlocked encrypted store should produce ciphertext")
	}
}

func TestDisableEncryption(t *testing.T) {
	s := newTestStore(t)
	payload := []byte(`{"name":"roundtrip"}`)
	if err := s.Write("plan.json", payload); err != nil {
		t.Fatal(err)
	}
	if err := s.EnableEncryption("correct-horse"); err != nil {
		t.Fatal(err)
	}

	if err := s.DisableEncryption("wrong-password"); err == nil {
		t.Error("wrong password should be rejected")
	}

	if err := s.DisableEncryption("correct-horse"); err != nil {
		t.Fatalf("disable failed: %v", err)
	}
	if s.IsEncrypted() {
		t.Error("store should report unencrypted")
	}

	raw, err := os.ReadFile(filepath.Join(s.BaseDir(), "plan.json"))
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != string(payload) {
		t.Errorf("file not restored to plaintext: %q", raw)
	}
	if s.Exists(markerFile) || s.Exists(verifyFile) {
		t.Error("bookkeeping files should be removed")
	}
}

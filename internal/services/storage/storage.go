// Package storage provides transparent, optionally age-encrypted file
// access for the scenario directory. Encryption is opt-in: a marker file in
// the directory flags it as encrypted, and a verification file lets the
// password be checked before any scenario is touched.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"filippo.io/age"
)

const (
	// ageHeader is the prefix of age-encrypted files.
	ageHeader = "age-encryption.org"

	// markerFile indicates encryption is enabled for the directory.
	markerFile = ".encrypted"

	// verifyFile is used to validate the password.
	verifyFile = ".encryption-verify"

	// verifyMagic is the expected content of the verify file.
	verifyMagic = `{"magic":"rcmplan-encryption-verify","version":1}`
)

// Store provides file access scoped to a single base directory. Names are
// relative to that directory; encryption and decryption are transparent
// once the store is unlocked.
type Store struct {
	baseDir   string
	encrypted bool
	identity  *age.ScryptIdentity
	recipient *age.ScryptRecipient
	mu        sync.RWMutex
}

// New creates a Store for the given base directory, creating it if needed.
func New(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create scenario directory: %w", err)
	}

	s := &Store{baseDir: baseDir}
	if _, err := os.Stat(filepath.Join(baseDir, markerFile)); err == nil {
		s.encrypted = true
	}
	return s, nil
}

// BaseDir returns the base directory.
func (s *Store) BaseDir() string {
	return s.baseDir
}

// IsEncrypted returns true if the directory is encrypted.
func (s *Store) IsEncrypted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.encrypted
}

// IsUnlocked returns true when files can be read: either encryption is off,
// or a valid password has been supplied.
func (s *Store) IsUnlocked() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.encrypted || s.identity != nil
}

// Unlock validates the password against the verification file and keeps the
// derived keys for subsequent reads and writes.
func (s *Store) Unlock(password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.encrypted {
		return nil
	}

	identity, err := age.NewScryptIdentity(password)
	if err != nil {
		return fmt.Errorf("failed to create identity: %w", err)
	}

	encrypted, err := os.ReadFile(filepath.Join(s.baseDir, verifyFile))
	if err != nil {
		return fmt.Errorf("failed to read verification file: %w", err)
	}

	decrypted, err := decryptData(encrypted, identity)
	if err != nil || string(decrypted) != verifyMagic {
		return fmt.Errorf("incorrect password")
	}

	s.identity = identity
	s.recipient, _ = age.NewScryptRecipient(password)
	return nil
}

// Lock clears the encryption keys from memory.
func (s *Store) Lock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = nil
	s.recipient = nil
}

// Read returns the plaintext content of a named file, decrypting when the
// file carries the age header.
func (s *Store) Read(name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(filepath.Join(s.baseDir, name))
	if err != nil {
		return nil, err
	}

	if isAgeEncrypted(data) {
		if s.identity == nil {
			return nil, fmt.Errorf("file %s is encrypted but the store is locked", name)
		}
		return decryptData(data, s.identity)
	}
	return data, nil
}

// Write stores a named file, encrypting first when encryption is enabled
// and unlocked. Writes are atomic via a temp file rename.
func (s *Store) Write(name string, data []byte) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.encrypted && s.recipient != nil {
		encrypted, err := encryptData(data, s.recipient)
		if err != nil {
			return fmt.Errorf("failed to encrypt: %w", err)
		}
		data = encrypted
	}

	return atomicWrite(filepath.Join(s.baseDir, name), data)
}

// Remove deletes a named file.
func (s *Store) Remove(name string) error {
	return os.Remove(filepath.Join(s.baseDir, name))
}

// Exists reports whether a named file is present.
func (s *Store) Exists(name string) bool {
	_, err := os.Stat(filepath.Join(s.baseDir, name))
	return err == nil
}

// List returns the names of files with the given extension, sorted.
func (s *Store) List(ext string) ([]string, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if ext == "" || strings.EqualFold(filepath.Ext(name), ext) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// atomicWrite writes data to a file via temp file and rename.
func atomicWrite(path string, data []byte) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

// isAgeEncrypted checks if data starts with the age encryption header.
func isAgeEncrypted(data []byte) bool {
	return len(data) > len(ageHeader) && string(data[:len(ageHeader)]) == ageHeader
}

package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"filippo.io/age"
)

// EnableEncryption encrypts every scenario file in the directory with the
// given password and drops the marker and verification files.
func (s *Store) EnableEncryption(password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.encrypted {
		return fmt.Errorf("encryption is already enabled")
	}
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	recipient, err := age.NewScryptRecipient(password)
	if err != nil {
		return fmt.Errorf("failed to create recipient: %w", err)
	}
	identity, err := age.NewScryptIdentity(password)
	if err != nil {
		return fmt.Errorf("failed to create identity: %w", err)
	}

	// Verification file goes first so Unlock can always be checked.
	verifyPath := filepath.Join(s.baseDir, verifyFile)
	encrypted, err := encryptData([]byte(verifyMagic), recipient)
	if err != nil {
		return fmt.Errorf("failed to encrypt verification file: %w", err)
	}
	if err := os.WriteFile(verifyPath, encrypted, 0644); err != nil {
		return fmt.Errorf("failed to write verification file: %w", err)
	}

	names, err := s.scenarioFiles()
	if err != nil {
		os.Remove(verifyPath)
		return fmt.Errorf("failed to scan scenario files: %w", err)
	}

	for _, name := range names {
		if err := s.encryptInPlace(name, recipient); err != nil {
			s.rollback(names, identity)
			os.Remove(verifyPath)
			return fmt.Errorf("failed to encrypt %s: %w", name, err)
		}
	}

	markerPath := filepath.Join(s.baseDir, markerFile)
	if err := os.WriteFile(markerPath, []byte("encrypted"), 0644); err != nil {
		return fmt.Errorf("failed to create marker file: %w", err)
	}

	s.encrypted = true
	s.identity = identity
	s.recipient = recipient
	return nil
}

// DisableEncryption decrypts every scenario file after verifying the
// current password, then removes the marker and verification files.
func (s *Store) DisableEncryption(password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.encrypted {
		return fmt.Errorf("encryption is not enabled")
	}

	identity, err := age.NewScryptIdentity(password)
	if err != nil {
		return fmt.Errorf("failed to create identity: %w", err)
	}

	verifyPath := filepath.Join(s.baseDir, verifyFile)
	encrypted, err := os.ReadFile(verifyPath)
	if err != nil {
		return fmt.Errorf("failed to read verification file: %w", err)
	}
	decrypted, err := decryptData(encrypted, identity)
	if err != nil || string(decrypted) != verifyMagic {
		return fmt.Errorf("incorrect password")
	}

	names, err := s.scenarioFiles()
	if err != nil {
		return fmt.Errorf("failed to scan scenario files: %w", err)
	}
	for _, name := range names {
		if err := s.decryptInPlace(name, identity); err != nil {
			return fmt.Errorf("failed to decrypt %s: %w", name, err)
		}
	}

	os.Remove(filepath.Join(s.baseDir, markerFile))
	os.Remove(verifyPath)

	s.encrypted = false
	s.identity = nil
	s.recipient = nil
	return nil
}

// scenarioFiles lists the data files eligible for encryption. Only JSON
// scenario files live in the store; dotfiles are bookkeeping.
func (s *Store) scenarioFiles() ([]string, error) {
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
		if strings.EqualFold(filepath.Ext(name), ".json") {
			names = append(names, name)
		}
	}
	return names, nil
}

// encryptInPlace encrypts a single file, skipping already-encrypted ones.
func (s *Store) encryptInPlace(name string, recipient *age.ScryptRecipient) error {
	path := filepath.Join(s.baseDir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if isAgeEncrypted(data) {
		return nil
	}

	encrypted, err := encryptData(data, recipient)
	if err != nil {
		return err
	}
	return atomicWrite(path, encrypted)
}

// decryptInPlace decrypts a single file, skipping plaintext ones.
func (s *Store) decryptInPlace(name string, identity *age.ScryptIdentity) error {
	path := filepath.Join(s.baseDir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if !isAgeEncrypted(data) {
		return nil
	}

	decrypted, err := decryptData(data, identity)
	if err != nil {
		return err
	}
	return atomicWrite(path, decrypted)
}

// rollback attempts to restore plaintext for files encrypted during a
// failed migration, best effort.
func (s *Store) rollback(names []string, identity *age.ScryptIdentity) {
	for _, name := range names {
		path := filepath.Join(s.baseDir, name)
		data, err := os.ReadFile(path)
		if err != nil || !isAgeEncrypted(data) {
			continue
		}
		decrypted, err := decryptData(data, identity)
		if err != nil {
			continue
		}
		os.WriteFile(path, decrypted, 0644)
	}
}

package filestore

// Package filestore persists the session record and token mirror as plain
// files. It backs single-operator deployments and local development where
// Redis would be overkill.

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	domainsession "github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/domain/session"
	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/ports"
)

var (
	_ ports.SessionRecordStore = (*RecordStore)(nil)
	_ ports.TokenMirror        = (*TokenMirror)(nil)
)

// RecordStore stores one session record as a JSON file.
type RecordStore struct {
	path string
}

// NewRecordStore creates a file-backed record store at path.
func NewRecordStore(path string) *RecordStore {
	return &RecordStore{path: path}
}

func (s *RecordStore) Load(ctx context.Context) (*domainsession.Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var rec domainsession.Record
	if unmarshalErr := json.Unmarshal(data, &rec); unmarshalErr != nil {
		// A corrupt file is unrecoverable; treat it as absent.
		return nil, nil
	}
	return &rec, nil
}

func (s *RecordStore) Save(ctx context.Context, rec domainsession.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal session record: %w", err)
	}
	if mkErr := os.MkdirAll(filepath.Dir(s.path), 0o700); mkErr != nil {
		return fmt.Errorf("create session dir: %w", mkErr)
	}
	return writeFileAtomic(s.path, data, 0o600)
}

func (s *RecordStore) Clear(ctx context.Context) error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

// TokenMirror keeps the bearer token in its own file, for tools that only
// need the credential and not the full record.
type TokenMirror struct {
	path string
}

// NewTokenMirror creates a file-backed token mirror at path.
func NewTokenMirror(path string) *TokenMirror {
	return &TokenMirror{path: path}
}

func (m *TokenMirror) Write(ctx context.Context, token string) error {
	if mkErr := os.MkdirAll(filepath.Dir(m.path), 0o700); mkErr != nil {
		return fmt.Errorf("create token dir: %w", mkErr)
	}
	return writeFileAtomic(m.path, []byte(token), 0o600)
}

func (m *TokenMirror) Erase(ctx context.Context) error {
	if err := os.Remove(m.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}

// writeFileAtomic writes via a temp file and rename so a crash mid-write
// never leaves a truncated record.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, writeErr := tmp.Write(data); writeErr != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", writeErr)
	}
	if chmodErr := tmp.Chmod(perm); chmodErr != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp file: %w", chmodErr)
	}
	if closeErr := tmp.Close(); closeErr != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", closeErr)
	}
	if renameErr := os.Rename(tmpName, path); renameErr != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename temp file: %w", renameErr)
	}
	return nil
}

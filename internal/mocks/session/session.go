package session

// Package session contains hand-written test doubles for the session ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"sync"

	domainsession "github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/domain/session"
	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.SessionRecordStore = (*MemoryRecordStore)(nil)
	_ ports.TokenSink          = (*RecordingTokenSink)(nil)
	_ ports.TokenMirror        = (*MemoryTokenMirror)(nil)
)

// MemoryRecordStore is an in-memory SessionRecordStore. Error fields, when
// set, are returned by the corresponding method to exercise failure paths.
type MemoryRecordStore struct {
	mu  sync.Mutex
	rec *domainsession.Record

	LoadErr  error
	SaveErr  error
	ClearErr error

	SaveCalls  int
	ClearCalls int
}

func (m *MemoryRecordStore) Load(ctx context.Context) (*domainsession.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.rec == nil {
		return nil, nil
	}
	cp := *m.rec
	return &cp, nil
}

func (m *MemoryRecordStore) Save(ctx context.Context, rec domainsession.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.rec = &rec
	return nil
}

func (m *MemoryRecordStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearCalls++
	if m.ClearErr != nil {
		return m.ClearErr
	}
	m.rec = nil
	return nil
}

// Seed installs a record directly, bypassing Save bookkeeping.
func (m *MemoryRecordStore) Seed(rec domainsession.Record) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rec = &rec
}

// Current returns the stored record, or nil.
func (m *MemoryRecordStore) Current() *domainsession.Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rec == nil {
		return nil
	}
	cp := *m.rec
	return &cp
}

// RecordingTokenSink records every token pushed through SetStaticToken.
type RecordingTokenSink struct {
	mu     sync.Mutex
	tokens []string
}

func (r *RecordingTokenSink) SetStaticToken(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens = append(r.tokens, token)
}

// Tokens returns the pushed tokens in order.
func (r *RecordingTokenSink) Tokens() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.tokens))
	copy(out, r.tokens)
	return out
}

// Last returns the most recently pushed token, or "" when none.
func (r *RecordingTokenSink) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.tokens) == 0 {
		return ""
	}
	return r.tokens[len(r.tokens)-1]
}

// MemoryTokenMirror is an in-memory TokenMirror.
type MemoryTokenMirror struct {
	mu    sync.Mutex
	token string
	set   bool

	WriteErr error
	EraseErr error
}

func (m *MemoryTokenMirror) Write(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.token = token
	m.set = true
	return nil
}

func (m *MemoryTokenMirror) Erase(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.EraseErr != nil {
		return m.EraseErr
	}
	m.token = ""
	m.set = false
	return nil
}

// Token returns the mirrored token and whether one is present.
func (m *MemoryTokenMirror) Token() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, m.set
}

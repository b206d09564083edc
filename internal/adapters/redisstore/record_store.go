package redisstore

// Package redisstore provides the Redis-backed session record store for
// production use. Each operator session is keyed by its session id and
// expires with the bearer token it carries.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"

	domainsession "github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/domain/session"
	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/ports"
)

const defaultPrefix = "hometrack:session:"

var _ ports.SessionRecordStore = (*RecordStore)(nil)

// RecordStore persists one session record per session id in Redis.
type RecordStore struct {
	client     redis.UniversalClient
	key        string
	defaultTTL time.Duration
}

// NewRecordStore creates a record store bound to one session id. TTL tracks
// the token's exp claim when present, falling back to defaultTTL.
func NewRecordStore(client redis.UniversalClient, sessionID string, defaultTTL time.Duration) *RecordStore {
	return &RecordStore{
		client:     client,
		key:        defaultPrefix + sessionID,
		defaultTTL: defaultTTL,
	}
}

func (s *RecordStore) Save(ctx context.Context, rec domainsession.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal session record: %w", err)
	}

	ttl := s.defaultTTL
	if rec.Token != nil {
		if exp, ok := tokenTTL(*rec.Token); ok {
			ttl = exp
		}
	}
	if ttl <= 0 {
		return errors.New("session record is expired")
	}

	return s.client.Set(ctx, s.key, data, ttl).Err()
}

func (s *RecordStore) Load(ctx context.Context) (*domainsession.Record, error) {
	data, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var rec domainsession.Record
	if unmarshalErr := json.Unmarshal([]byte(data), &rec); unmarshalErr != nil {
		// A corrupt record is unrecoverable; treat it as absent.
		return nil, nil
	}
	return &rec, nil
}

func (s *RecordStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}

// tokenTTL extracts the remaining lifetime from the bearer token's exp claim.
// The signature is not verified here: the backend is the authority on token
// validity, this only aligns storage expiry with it.
func tokenTTL(token string) (time.Duration, bool) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return 0, false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return 0, false
	}
	return time.Until(exp.Time), true
}

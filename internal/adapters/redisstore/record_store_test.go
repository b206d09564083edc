package redisstore

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainsession "github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/domain/session"
	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/testutil"
)

// setupTestRedis creates a Redis client for testing.
// Tests will be skipped if Redis is not available.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	return testutil.SetupTestRedis(t)
}

// unsignedJWT builds a JWT-shaped token with the given exp, without a real
// signature. The store only reads the claim, never verifies.
func unsignedJWT(t *testing.T, exp time.Time) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	claims, err := json.Marshal(map[string]any{"exp": exp.Unix(), "sub": "u-1"})
	require.NoError(t, err)
	payload := base64.RawURLEncoding.EncodeToString(claims)
	return fmt.Sprintf("%s.%s.sig", header, payload)
}

func sampleRecord(token string) domainsession.Record {
	return domainsession.Record{
		Token: testutil.StringPtr(token),
		User: domainsession.RecordUser{
			UserID:    "u-1",
			Email:     testutil.StringPtr("admin@hometrack.dev"),
			Username:  testutil.StringPtr("admin"),
			IsPremium: true,
		},
	}
}

func TestRecordStore_SaveAndLoad(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewRecordStore(client, "sid-1", time.Hour)
	ctx := context.Background()

	token := unsignedJWT(t, time.Now().Add(30*time.Minute))
	require.NoError(t, store.Save(ctx, sampleRecord(token)))

	rec, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.NotNil(t, rec.Token)
	assert.Equal(t, token, *rec.Token)
	assert.Equal(t, "u-1", rec.User.UserID)
	assert.True(t, rec.User.IsPremium)
}

func TestRecordStore_LoadAbsent(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewRecordStore(client, "sid-missing", time.Hour)

	rec, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestRecordStore_Clear(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewRecordStore(client, "sid-clear", time.Hour)
	ctx := context.Background()

	token := unsignedJWT(t, time.Now().Add(30*time.Minute))
	require.NoError(t, store.Save(ctx, sampleRecord(token)))
	require.NoError(t, store.Clear(ctx))

	rec, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestRecordStore_TTLFollowsTokenExp(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewRecordStore(client, "sid-ttl", time.Hour)
	ctx := context.Background()

	token := unsignedJWT(t, time.Now().Add(10*time.Minute))
	require.NoError(t, store.Save(ctx, sampleRecord(token)))

	ttl := client.TTL(ctx, "hometrack:session:sid-ttl").Val()
	assert.Greater(t, ttl, 9*time.Minute)
	assert.LessOrEqual(t, ttl, 10*time.Minute)
}

func TestRecordStore_DefaultTTLForOpaqueToken(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewRecordStore(client, "sid-opaque", 2*time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleRecord("not-a-jwt")))

	ttl := client.TTL(ctx, "hometrack:session:sid-opaque").Val()
	assert.Greater(t, ttl, time.Hour)
	assert.LessOrEqual(t, ttl, 2*time.Hour)
}

func TestRecordStore_SaveExpiredToken(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewRecordStore(client, "sid-expired", time.Hour)

	token := unsignedJWT(t, time.Now().Add(-time.Minute))
	err := store.Save(context.Background(), sampleRecord(token))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func TestRecordStore_CorruptRecordTreatedAsAbsent(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	ctx := context.Background()
	require.NoError(t, client.Set(ctx, "hometrack:session:sid-corrupt", "{not json", time.Hour).Err())

	store := NewRecordStore(client, "sid-corrupt", time.Hour)
	rec, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestRecordStore_SessionsAreIsolated(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	ctx := context.Background()
	token := unsignedJWT(t, time.Now().Add(30*time.Minute))

	a := NewRecordStore(client, "sid-a", time.Hour)
	b := NewRecordStore(client, "sid-b", time.Hour)

	require.NoError(t, a.Save(ctx, sampleRecord(token)))

	rec, err := b.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, rec)
}

package cache

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/listquery"
)

// fakeRedis implements the string commands the cache uses. Any other
// command panics through the nil embedded interface.
type fakeRedis struct {
	redis.Cmdable

	mu     sync.Mutex
	values map[string]string
	ttls   map[string]time.Duration
	getErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch v := value.(type) {
	case []byte:
		f.values[key] = string(v)
	case string:
		f.values[key] = v
	}
	f.ttls[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Incr(ctx context.Context, key string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, _ := strconv.ParseInt(f.values[key], 10, 64)
	n++
	f.values[key] = strconv.FormatInt(n, 10)
	return redis.NewIntResult(n, nil)
}

func newTestCache(client redis.Cmdable) ListCache {
	return NewRedisCache(client, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestEntryKey(t *testing.T) {
	r := listquery.Resource{Name: "properties", SearchFields: []string{"name"}}
	a := listquery.Build(listquery.Params{"search": "villa"}, r).Key()
	b := listquery.Build(listquery.Params{"search": "villa", "page": "2"}, r).Key()

	assert.Equal(t, EntryKey("properties", 3, a), EntryKey("properties", 3, a))
	assert.NotEqual(t, EntryKey("properties", 3, a), EntryKey("properties", 3, b))
	assert.NotEqual(t, EntryKey("properties", 3, a), EntryKey("properties", 4, a), "a version bump orphans old entries")
	assert.NotEqual(t, EntryKey("properties", 3, a), EntryKey("blogs", 3, a))
	assert.Regexp(t, `^listcache:properties:v3:[0-9a-f]{16}$`, EntryKey("properties", 3, a))
}

func TestNoop(t *testing.T) {
	ctx := context.Background()
	var c ListCache = Noop{}

	assert.NoError(t, c.Set(ctx, "videos", 0, "k", []int{1}))
	var dest []int
	hit, _, err := c.Get(ctx, "videos", "k", &dest)
	assert.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, c.Invalidate(ctx, "videos"))
}

func TestRedisCache_MissThenHit(t *testing.T) {
	ctx := context.Background()
	client := newFakeRedis()
	c := newTestCache(client)

	var dest []string
	hit, version, err := c.Get(ctx, "blogs", "page=1", &dest)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, int64(0), version)

	require.NoError(t, c.Set(ctx, "blogs", version, "page=1", []string{"first-post"}))
	assert.Equal(t, time.Minute, client.ttls[EntryKey("blogs", 0, "page=1")])

	hit, version, err = c.Get(ctx, "blogs", "page=1", &dest)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, int64(0), version)
	assert.Equal(t, []string{"first-post"}, dest)
}

func TestRedisCache_InvalidateOrphansEntries(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(newFakeRedis())

	var dest []string
	_, seen, err := c.Get(ctx, "properties", "k", &dest)
	require.NoError(t, err)

	// A write lands between the reader's query and its cache write.
	require.NoError(t, c.Invalidate(ctx, "properties"))
	require.NoError(t, c.Set(ctx, "properties", seen, "k", []string{"stale"}))

	hit, version, err := c.Get(ctx, "properties", "k", &dest)
	require.NoError(t, err)
	assert.False(t, hit, "a page stored under an old version is never served")
	assert.Equal(t, int64(1), version)

	require.NoError(t, c.Set(ctx, "properties", version, "k", []string{"fresh"}))
	hit, _, err = c.Get(ctx, "properties", "k", &dest)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []string{"fresh"}, dest)

	// Other resources keep their version.
	_, version, err = c.Get(ctx, "videos", "k", &dest)
	require.NoError(t, err)
	assert.Equal(t, int64(0), version)
}

func TestRedisCache_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("version read fails", func(t *testing.T) {
		client := newFakeRedis()
		client.getErr = errors.New("connection refused")

		var dest []string
		hit, _, err := newTestCache(client).Get(ctx, "videos", "k", &dest)
		assert.Error(t, err)
		assert.False(t, hit)
	})

	t.Run("corrupt entry", func(t *testing.T) {
		client := newFakeRedis()
		client.values[EntryKey("videos", 0, "k")] = "{not json"

		var dest []string
		hit, version, err := newTestCache(client).Get(ctx, "videos", "k", &dest)
		assert.ErrorContains(t, err, "decode")
		assert.False(t, hit)
		assert.Equal(t, int64(0), version)
	})
}

package cache_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/itinerary-planner/internal/cache"
)

func newTestCache(t *testing.T) (*cache.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewCache(client, time.Hour), mr
}

type countingGenerator struct {
	calls int
	text  string
	err   error
}

func (g *countingGenerator) Generate(_ context.Context, _ string) (string, error) {
	g.calls++
	return g.text, g.err
}

const prompt = "Write a friendly 2-sentence travel description for Louvre Museum at Rue de Rivoli, 75001 Paris."

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCache_SetAndGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, prompt, "A vast museum."))

	got, ok, err := c.Get(ctx, prompt)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "A vast museum.", got)
}

func TestCache_Get_Miss(t *testing.T) {
	c, _ := newTestCache(t)

	got, ok, err := c.Get(context.Background(), "nothing cached here")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestCache_Set_EmptyText(t *testing.T) {
	c, mr := newTestCache(t)

	require.NoError(t, c.Set(context.Background(), prompt, ""))
	assert.Empty(t, mr.Keys(), "empty text must not be cached")
}

func TestCache_TTL(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, prompt, "A vast museum."))
	mr.FastForward(2 * time.Hour)

	_, ok, err := c.Get(ctx, prompt)
	require.NoError(t, err)
	assert.False(t, ok, "entry should be expired after TTL")
}

func TestCachedWriter_MissThenHit(t *testing.T) {
	c, _ := newTestCache(t)
	gen := &countingGenerator{text: "A vast museum."}
	w := cache.NewCachedWriter(c, gen, discardLogger())
	ctx := context.Background()

	first, err := w.Generate(ctx, prompt)
	require.NoError(t, err)
	second, err := w.Generate(ctx, prompt)
	require.NoError(t, err)

	assert.Equal(t, "A vast museum.", first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, gen.calls, "second call should be served from cache")
}

func TestCachedWriter_GeneratorError(t *testing.T) {
	c, mr := newTestCache(t)
	gen := &countingGenerator{err: errors.New("boom")}
	w := cache.NewCachedWriter(c, gen, discardLogger())

	_, err := w.Generate(context.Background(), prompt)
	require.Error(t, err)
	assert.Empty(t, mr.Keys(), "failures must not be cached")
}

func TestCachedWriter_RedisDown(t *testing.T) {
	c, mr := newTestCache(t)
	mr.Close()
	gen := &countingGenerator{text: "still works"}
	w := cache.NewCachedWriter(c, gen, discardLogger())

	got, err := w.Generate(context.Background(), prompt)
	require.NoError(t, err)
	assert.Equal(t, "still works", got)
}

func TestConnect_InvalidURL(t *testing.T) {
	_, err := cache.Connect(context.Background(), "not-a-url")
	require.Error(t, err)
}

func TestConnect_UnreachableServer(t *testing.T) {
	_, err := cache.Connect(context.Background(), "redis://localhost:19999")
	require.Error(t, err)
}

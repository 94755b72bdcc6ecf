package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedThing struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = Close() })
	return mr
}

func TestAside_MissThenHit(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	calls := 0
	fetch := func(dest *cachedThing) func() error {
		return func() error {
			calls++
			*dest = cachedThing{ID: 1, Name: "first"}
			return nil
		}
	}

	var first cachedThing
	require.NoError(t, Aside(ctx, PostKey(1), &first, PostTTL, fetch(&first)))
	assert.Equal(t, "first", first.Name)
	assert.Equal(t, 1, calls)
	assert.True(t, mr.Exists(PostKey(1)))

	var second cachedThing
	require.NoError(t, Aside(ctx, PostKey(1), &second, PostTTL, fetch(&second)))
	assert.Equal(t, "first", second.Name)
	assert.Equal(t, 1, calls, "second read is served from cache")
}

func TestAside_FetchErrorIsNotCached(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	var dest cachedThing
	err := Aside(ctx, PostKey(2), &dest, PostTTL, func() error { return errors.New("boom") })
	assert.Error(t, err)
	assert.False(t, mr.Exists(PostKey(2)))
}

func TestAside_CorruptEntryFallsBackToFetch(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()
	require.NoError(t, mr.Set(PostKey(3), "{not json"))

	var dest cachedThing
	err := Aside(ctx, PostKey(3), &dest, PostTTL, func() error {
		dest = cachedThing{ID: 3, Name: "fresh"}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh", dest.Name)
}

func TestAside_WithoutRedis(t *testing.T) {
	SetClient(nil)
	var dest cachedThing
	calls := 0
	for i := 0; i < 2; i++ {
		require.NoError(t, Aside(context.Background(), UserKey(1), &dest, UserTTL, func() error {
			calls++
			return nil
		}))
	}
	assert.Equal(t, 2, calls)
}

func TestInvalidate(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()
	require.NoError(t, SetJSON(ctx, UserKey(9), cachedThing{ID: 9}, UserTTL))
	require.NoError(t, SetJSON(ctx, PostKey(9), cachedThing{ID: 9}, PostTTL))

	InvalidateUser(ctx, 9)
	InvalidatePost(ctx, 9)

	assert.False(t, mr.Exists(UserKey(9)))
	assert.False(t, mr.Exists(PostKey(9)))
}

func TestInitRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	t.Cleanup(func() { _ = Close() })

	InitRedis("redis://" + mr.Addr())
	assert.NotNil(t, GetClient())

	InitRedis("")
	assert.Nil(t, GetClient())

	InitRedis("redis://%zz")
	assert.Nil(t, GetClient())
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "user:5", UserKey(5))
	assert.Equal(t, "post:7", PostKey(7))
}

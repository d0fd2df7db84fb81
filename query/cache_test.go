package query

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type post struct {
	ID     int
	UserID int
	Title  string
}

func newTestCache[T any](t *testing.T, opts ...Option) *Cache[T] {
	t.Helper()

	c, err := New[T](opts...)
	require.NoError(t, err)
	return c
}

func staticFetch[T any](calls *atomic.Int32, data []T) FetchFunc[T] {
	return func(context.Context) ([]T, error) {
		calls.Add(1)
		return data, nil
	}
}

func removePost(id int) Updater[post] {
	return func(current []post) []post {
		out := make([]post, 0, len(current))
		for _, p := range current {
			if p.ID != id {
				out = append(out, p)
			}
		}
		return out
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []Option
	}{
		{name: "zero retention", opts: []Option{WithRetention(0)}},
		{name: "negative retries", opts: []Option{WithFetchRetries(-1)}},
		{name: "nil logger", opts: []Option{WithLogger(nil)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := New[int](tt.opts...)

			require.Error(t, err)
			assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
		})
	}
}

func TestCache_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("serves fresh entries from memory", func(t *testing.T) {
		t.Parallel()

		c := newTestCache[int](t)
		var calls atomic.Int32
		fetch := staticFetch(&calls, []int{1, 2})

		first, err := c.Fetch(context.Background(), "k", fetch)
		require.NoError(t, err)
		second, err := c.Fetch(context.Background(), "k", fetch)
		require.NoError(t, err)

		assert.Equal(t, []int{1, 2}, first)
		assert.Equal(t, first, second)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("returned slices do not alias the cache", func(t *testing.T) {
		t.Parallel()

		c := newTestCache[int](t)
		var calls atomic.Int32

		data, err := c.Fetch(context.Background(), "k", staticFetch(&calls, []int{1, 2}))
		require.NoError(t, err)
		data[0] = 99

		entry, ok := c.Get("k")
		require.True(t, ok)
		assert.Equal(t, []int{1, 2}, entry.Data)
	})

	t.Run("concurrent misses coalesce into one call", func(t *testing.T) {
		t.Parallel()

		c := newTestCache[int](t)
		var calls atomic.Int32
		started := make(chan struct{})
		release := make(chan struct{})
		fetch := func(context.Context) ([]int, error) {
			if calls.Add(1) == 1 {
				close(started)
			}
			<-release
			return []int{7}, nil
		}

		var wg sync.WaitGroup
		results := make([][]int, 2)
		fetchInto := func(i int) {
			defer wg.Done()
			data, err := c.Fetch(context.Background(), "users", fetch)
			assert.NoError(t, err)
			results[i] = data
		}

		wg.Add(2)
		go fetchInto(0)
		<-started
		go fetchInto(1)

		// The first call is blocked, so a second call could only come from the
		// second caller not joining it.
		assert.Never(t, func() bool { return calls.Load() > 1 }, 50*time.Millisecond, 5*time.Millisecond)
		close(release)
		wg.Wait()

		assert.Equal(t, int32(1), calls.Load())
		assert.Equal(t, []int{7}, results[0])
		assert.Equal(t, []int{7}, results[1])
	})

	t.Run("failure keeps previous data", func(t *testing.T) {
		t.Parallel()

		c := newTestCache[int](t, WithFetchRetries(0))
		c.Set("k", []int{1, 2, 3})
		c.Invalidate("k")

		boom := errors.New(errors.CodeInternal, "boom")
		_, err := c.Fetch(context.Background(), "k", func(context.Context) ([]int, error) {
			return nil, boom
		})

		require.ErrorIs(t, err, boom)
		entry, ok := c.Get("k")
		require.True(t, ok)
		assert.Equal(t, []int{1, 2, 3}, entry.Data)
		assert.True(t, entry.Stale)
		assert.Equal(t, StatusError, entry.Status)
		assert.ErrorIs(t, entry.Err, boom)
	})

	t.Run("failure without data leaves an error entry and retries next time", func(t *testing.T) {
		t.Parallel()

		c := newTestCache[int](t, WithFetchRetries(0))
		var calls atomic.Int32
		fail := true
		fetch := func(context.Context) ([]int, error) {
			calls.Add(1)
			if fail {
				return nil, errors.New(errors.CodeInternal, "down")
			}
			return []int{1}, nil
		}

		_, err := c.Fetch(context.Background(), "k", fetch)
		require.Error(t, err)

		entry, ok := c.Get("k")
		require.True(t, ok)
		assert.False(t, entry.HasData)
		assert.Equal(t, StatusError, entry.Status)

		fail = false
		data, err := c.Fetch(context.Background(), "k", fetch)
		require.NoError(t, err)
		assert.Equal(t, []int{1}, data)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("retries retryable failures only", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name      string
			err       error
			wantCalls int32
		}{
			{
				name:      "retryable",
				err:       errors.New(errors.CodeNetwork, "reset"),
				wantCalls: 3,
			},
			{
				name:      "permanent",
				err:       errors.New(errors.CodeInvalidInput, "bad"),
				wantCalls: 1,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				c := newTestCache[int](t, WithFetchRetries(2))
				var calls atomic.Int32

				_, err := c.Fetch(context.Background(), "k", func(context.Context) ([]int, error) {
					calls.Add(1)
					return nil, tt.err
				})

				require.Error(t, err)
				assert.Equal(t, tt.wantCalls, calls.Load())
			})
		}
	})

	t.Run("retry succeeds", func(t *testing.T) {
		t.Parallel()

		c := newTestCache[int](t)
		var calls atomic.Int32

		data, err := c.Fetch(context.Background(), "k", func(context.Context) ([]int, error) {
			if calls.Add(1) == 1 {
				return nil, errors.New(errors.CodeTimeout, "slow")
			}
			return []int{5}, nil
		})

		require.NoError(t, err)
		assert.Equal(t, []int{5}, data)
		assert.Equal(t, int32(2), calls.Load())
	})
}

func TestCache_Invalidate(t *testing.T) {
	t.Parallel()

	t.Run("forces a refetch", func(t *testing.T) {
		t.Parallel()

		c := newTestCache[int](t)
		var calls atomic.Int32
		fetch := staticFetch(&calls, []int{1})

		_, err := c.Fetch(context.Background(), "k", fetch)
		require.NoError(t, err)

		c.Invalidate("k")
		entry, ok := c.Get("k")
		require.True(t, ok)
		assert.True(t, entry.Stale)
		assert.Equal(t, []int{1}, entry.Data)

		_, err = c.Fetch(context.Background(), "k", fetch)
		require.NoError(t, err)
		assert.Equal(t, int32(2), calls.Load())

		entry, _ = c.Get("k")
		assert.False(t, entry.Stale)
	})

	t.Run("does not join an in-flight fetch", func(t *testing.T) {
		t.Parallel()

		c := newTestCache[int](t)
		c.Set("k", []int{1})
		c.Invalidate("k")

		started := make(chan struct{})
		release := make(chan struct{})
		done := make(chan struct{})
		go func() {
			defer close(done)
			data, err := c.Fetch(context.Background(), "k", func(context.Context) ([]int, error) {
				close(started)
				<-release
				return []int{1, 2}, nil
			})
			assert.NoError(t, err)
			assert.Equal(t, []int{1, 2}, data)
		}()
		<-started

		c.Invalidate("k")

		var calls atomic.Int32
		data, err := c.Fetch(context.Background(), "k", staticFetch(&calls, []int{3}))
		require.NoError(t, err)
		assert.Equal(t, []int{3}, data)
		assert.Equal(t, int32(1), calls.Load())

		entry, _ := c.Get("k")
		assert.False(t, entry.Stale)

		close(release)
		<-done

		// The superseded result is written but cannot mark the entry fresh.
		entry, ok := c.Get("k")
		require.True(t, ok)
		assert.Equal(t, []int{1, 2}, entry.Data)
		assert.True(t, entry.Stale)

		data, err = c.Fetch(context.Background(), "k", staticFetch(&calls, []int{3}))
		require.NoError(t, err)
		assert.Equal(t, []int{3}, data)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("resets retention", func(t *testing.T) {
		t.Parallel()

		c := newTestCache[int](t)
		c.Set("k", []int{1})
		before := c.entries.Get("k").ExpiresAt()

		time.Sleep(5 * time.Millisecond)
		c.Invalidate("k")

		after := c.entries.Get("k").ExpiresAt()
		assert.True(t, after.After(before))
	})

	t.Run("unknown key is a no-op", func(t *testing.T) {
		t.Parallel()

		c := newTestCache[int](t)
		c.Invalidate("missing")

		_, ok := c.Get("missing")
		assert.False(t, ok)
	})

	t.Run("matching", func(t *testing.T) {
		t.Parallel()

		c := newTestCache[int](t)
		c.Set("users/1/posts", []int{1})
		c.Set("users/2/posts", []int{2})
		c.Set("posts", []int{3})

		c.InvalidateMatching(func(key string) bool { return key != "posts" })

		for key, want := range map[string]bool{"users/1/posts": true, "users/2/posts": true, "posts": false} {
			entry, ok := c.Get(key)
			require.True(t, ok, key)
			assert.Equal(t, want, entry.Stale, key)
		}
	})
}

func TestCache_Mutate(t *testing.T) {
	t.Parallel()

	snapshot := []post{
		{ID: 4, UserID: 1, Title: "four"},
		{ID: 5, UserID: 1, Title: "five"},
		{ID: 6, UserID: 2, Title: "six"},
	}

	t.Run("failed delete restores the exact snapshot", func(t *testing.T) {
		t.Parallel()

		c := newTestCache[post](t)
		c.Set("posts", snapshot)
		before, _ := c.Get("posts")

		deleteFailed := errors.New("MUTATION", "delete rejected")
		var observed []post
		result := c.Mutate(context.Background(), "posts", removePost(5), func(context.Context) error {
			entry, _ := c.Get("posts")
			observed = entry.Data
			return deleteFailed
		})

		assert.True(t, result.Reverted())
		assert.ErrorIs(t, result.Err, deleteFailed)
		assert.Len(t, observed, 2, "optimistic edit visible while the call runs")

		after, ok := c.Get("posts")
		require.True(t, ok)
		assert.Empty(t, cmp.Diff(before.Data, after.Data))
		assert.Empty(t, cmp.Diff(snapshot, result.Value))
		assert.False(t, after.Stale)
	})

	t.Run("success keeps the edit and invalidates", func(t *testing.T) {
		t.Parallel()

		c := newTestCache[post](t)
		c.Set("posts", snapshot)

		result := c.Mutate(context.Background(), "posts", removePost(5), func(context.Context) error {
			return nil
		})

		assert.Equal(t, OutcomeCommitted, result.Outcome)
		require.NoError(t, result.Err)

		entry, ok := c.Get("posts")
		require.True(t, ok)
		assert.True(t, entry.Stale)
		assert.Len(t, entry.Data, 2)
		for _, p := range entry.Data {
			assert.NotEqual(t, 5, p.ID)
		}
	})

	t.Run("fetch overlapping a successful delete stays stale", func(t *testing.T) {
		t.Parallel()

		c := newTestCache[post](t)
		c.Set("posts", snapshot)
		c.Invalidate("posts")

		started := make(chan struct{})
		release := make(chan struct{})
		done := make(chan struct{})
		go func() {
			defer close(done)
			_, err := c.Fetch(context.Background(), "posts", func(context.Context) ([]post, error) {
				close(started)
				<-release
				return snapshot, nil
			})
			assert.NoError(t, err)
		}()
		<-started

		result := c.Mutate(context.Background(), "posts", removePost(5), func(context.Context) error {
			return nil
		})
		require.NoError(t, result.Err)

		close(release)
		<-done

		entry, ok := c.Get("posts")
		require.True(t, ok)
		assert.Len(t, entry.Data, 3)
		assert.True(t, entry.Stale)

		var calls atomic.Int32
		data, err := c.Fetch(context.Background(), "posts", staticFetch(&calls, removePost(5)(snapshot)))
		require.NoError(t, err)
		assert.Equal(t, int32(1), calls.Load())
		assert.Len(t, data, 2)
	})

	t.Run("optimistic edit resets retention", func(t *testing.T) {
		t.Parallel()

		c := newTestCache[post](t)
		c.Set("posts", snapshot)
		before := c.entries.Get("posts").ExpiresAt()

		time.Sleep(5 * time.Millisecond)
		var during time.Time
		c.Mutate(context.Background(), "posts", removePost(5), func(context.Context) error {
			during = c.entries.Get("posts").ExpiresAt()
			return errors.New(errors.CodeNetwork, "offline")
		})

		assert.True(t, during.After(before))
	})

	t.Run("nil updater only invalidates on success", func(t *testing.T) {
		t.Parallel()

		c := newTestCache[post](t)
		c.Set("posts", snapshot)

		result := c.Mutate(context.Background(), "posts", nil, func(context.Context) error {
			entry, _ := c.Get("posts")
			assert.Len(t, entry.Data, 3)
			return nil
		})

		require.NoError(t, result.Err)
		entry, _ := c.Get("posts")
		assert.True(t, entry.Stale)
		assert.Len(t, entry.Data, 3)
	})

	t.Run("uncached key skips the speculative edit", func(t *testing.T) {
		t.Parallel()

		c := newTestCache[post](t)
		boom := errors.New(errors.CodeNetwork, "offline")

		result := c.Mutate(context.Background(), "posts", removePost(5), func(context.Context) error {
			return boom
		})

		assert.True(t, result.Reverted())
		assert.Nil(t, result.Value)
		_, ok := c.Get("posts")
		assert.False(t, ok)
	})

	t.Run("updater receives a copy", func(t *testing.T) {
		t.Parallel()

		c := newTestCache[post](t)
		c.Set("posts", snapshot)

		c.Mutate(context.Background(), "posts", func(current []post) []post {
			current[0].Title = "changed"
			return current
		}, func(context.Context) error {
			return errors.New(errors.CodeNetwork, "offline")
		})

		entry, _ := c.Get("posts")
		assert.Equal(t, "four", entry.Data[0].Title)
		assert.Equal(t, "four", snapshot[0].Title)
	})
}

func TestCache_UpdatedAt(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	c := newTestCache[int](t, withClock(func() time.Time { return fixed }))

	c.Set("k", []int{1})

	entry, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, fixed, entry.UpdatedAt)
	assert.Equal(t, StatusSettled, entry.Status)
	assert.Equal(t, []string{"k"}, c.Keys())
}

func TestCache_Retention(t *testing.T) {
	t.Parallel()

	c := newTestCache[int](t, WithRetention(20*time.Millisecond))
	c.Set("k", []int{1})

	assert.Eventually(t, func() bool {
		_, ok := c.Get("k")
		return !ok
	}, time.Second, 10*time.Millisecond)
}

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

func TestMemorySnapshot(t *testing.T) {
	ctx := context.Background()
	m := NewMemory[item](time.Minute)
	key := Key("materias", 7)

	_, err := m.Get(ctx, key)
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, m.Set(ctx, key, []item{{ID: 1, Nombre: "Álgebra"}}))
	got, err := m.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []item{{ID: 1, Nombre: "Álgebra"}}, got)

	got[0].Nombre = "changed"
	again, _ := m.Get(ctx, key)
	assert.Equal(t, "Álgebra", again[0].Nombre, "callers get a copy")

	require.NoError(t, m.Delete(ctx, key))
	_, err = m.Get(ctx, key)
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryExpires(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	m := NewMemory[item](time.Minute)
	m.now = func() time.Time { return now }

	require.NoError(t, m.Set(ctx, "k", []item{{ID: 1}}))
	now = now.Add(2 * time.Minute)

	_, err := m.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestFindAndUpdate(t *testing.T) {
	ctx := context.Background()
	m := NewMemory[item](time.Minute)
	require.NoError(t, m.Set(ctx, "k", []item{{ID: 1, Nombre: "a"}, {ID: 2, Nombre: "b"}}))

	it, ok, err := Find[item](ctx, m, "k", func(i item) bool { return i.ID == 2 })
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "b", it.Nombre)

	_, ok, err = Find[item](ctx, m, "k", func(i item) bool { return i.ID == 99 })
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, Update[item](ctx, m, "k", func(items []item) []item { return items[:1] }))
	got, _ := m.Get(ctx, "k")
	assert.Len(t, got, 1)

	require.NoError(t, Update[item](ctx, m, "missing", func(items []item) []item { return append(items, item{ID: 3}) }))
	_, err = m.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestRedisSnapshot(t *testing.T) {
	addr := os.Getenv("EDU_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("EDU_TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()
	rc, err := NewRedisClient(ctx, addr)
	require.NoError(t, err)
	defer rc.Close()

	c := NewRedis[item](rc, time.Minute)
	key := Key("test", time.Now().UnixNano())
	defer c.Delete(ctx, key)

	_, err = c.Get(ctx, key)
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, c.Set(ctx, key, []item{{ID: 5, Nombre: "Física"}}))
	got, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []item{{ID: 5, Nombre: "Física"}}, got)
}

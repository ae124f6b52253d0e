package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/dsctl/internal/core/ports/driven"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.values)
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("shell.path", "/bin/sh"))
	require.NoError(t, store.Set("shell.path", "/bin/bash"))

	val, ok := store.Get("shell.path")
	assert.True(t, ok)
	assert.Equal(t, "/bin/bash", val)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("limits.rate", 1.5)
	_ = store.Set("limits.burst", int64(4))
	_ = store.Set("history.enabled", true)
	_ = store.Set("shell.allow", []any{"ls", 1, "cat"})

	assert.Equal(t, 1.5, store.GetFloat("limits.rate"))
	assert.Equal(t, 4, store.GetInt("limits.burst"))
	assert.Equal(t, 4.0, store.GetFloat("limits.burst"))
	assert.True(t, store.GetBool("history.enabled"))
	assert.Equal(t, []string{"ls", "cat"}, store.GetStringSlice("shell.allow"))

	assert.Equal(t, "", store.GetString("limits.rate"))
	assert.False(t, store.GetBool("limits.rate"))
}

func TestConfigStore_SaveAndLoad_NoOp(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("shell.path", "/bin/sh")

	require.NoError(t, store.Save())
	require.NoError(t, store.Load())

	assert.Equal(t, "/bin/sh", store.GetString("shell.path"))
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_ = store.Set("limits.burst", n)
		}(i)
		go func() {
			defer wg.Done()
			_ = store.GetInt("limits.burst")
		}()
	}
	wg.Wait()

	_, ok := store.Get("limits.burst")
	assert.True(t, ok)
}

func TestConfigStore_InterfaceCompliance(t *testing.T) {
	var _ driven.ConfigStore = NewConfigStore()
}

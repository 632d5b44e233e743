package history_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/aesthetic/pkg/history"
	"github.com/dmitrymomot/aesthetic/pkg/namegen"
)

func result(name string) namegen.Result {
	return namegen.Result{ID: uuid.New(), Name: name}
}

func TestHistory_Basic(t *testing.T) {
	t.Run("newest first", func(t *testing.T) {
		h := history.New(3)
		h.Add(result("a"))
		h.Add(result("b"))
		h.Add(result("c"))

		assert.Equal(t, []string{"c", "b", "a"}, h.Names())
		assert.Equal(t, 3, h.Len())
		assert.Equal(t, 3, h.Capacity())
	})

	t.Run("get by id", func(t *testing.T) {
		h := history.New(3)
		r := result("Neon Dreams")
		h.Add(r)

		got, ok := h.Get(r.ID)
		assert.True(t, ok)
		assert.Equal(t, "Neon Dreams", got.Name)

		_, ok = h.Get(uuid.New())
		assert.False(t, ok)
	})

	t.Run("re-adding moves to front", func(t *testing.T) {
		h := history.New(3)
		r := result("a")
		h.Add(r)
		h.Add(result("b"))
		r.Name = "a2"
		h.Add(r)

		assert.Equal(t, []string{"a2", "b"}, h.Names())
		assert.Equal(t, 2, h.Len())
	})

	t.Run("list limit", func(t *testing.T) {
		h := history.New(5)
		for i := 0; i < 5; i++ {
			h.Add(result(fmt.Sprint(i)))
		}
		got := h.List(2)
		require.Len(t, got, 2)
		assert.Equal(t, "4", got[0].Name)
		assert.Equal(t, "3", got[1].Name)
		assert.Len(t, h.List(0), 5)
		assert.Len(t, h.List(50), 5)
	})
}

func TestHistory_Eviction(t *testing.T) {
	h := history.New(2)
	var evicted []string
	h.SetEvictCallback(func(r namegen.Result) { evicted = append(evicted, r.Name) })

	first := result("a")
	h.Add(first)
	h.Add(result("b"))
	h.Add(result("c"))

	assert.Equal(t, []string{"c", "b"}, h.Names())
	assert.Equal(t, []string{"a"}, evicted)
	assert.Equal(t, 3, h.Total())

	_, ok := h.Get(first.ID)
	assert.False(t, ok)
}

func TestHistory_Clear(t *testing.T) {
	h := history.New(2)
	called := false
	h.SetEvictCallback(func(namegen.Result) { called = true })
	h.Add(result("a"))
	h.Clear()

	assert.Equal(t, 0, h.Len())
	assert.Equal(t, 0, h.Total())
	assert.Empty(t, h.Names())
	assert.False(t, called)
}

func TestHistory_InvalidCapacity(t *testing.T) {
	assert.Panics(t, func() { history.New(0) })
	assert.Panics(t, func() { history.New(-1) })
}

func TestHistory_Concurrent(t *testing.T) {
	h := history.New(history.DefaultCapacity)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				h.Add(result("x"))
				_ = h.List(5)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, history.DefaultCapacity, h.Len())
	assert.Equal(t, 2000, h.Total())
}

package overlay

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertThenCompletesOnceWithModel(t *testing.T) {
	reg, _ := newTestRegistry()

	result := make(chan int)
	completed := make(chan Model, 2)

	m := InsertThen(reg, NewPlan(true, func(Context) string { return "" }), result, func(m Model, v int) {
		assert.Equal(t, 42, v)
		completed <- m
	})

	// The model exists and is tracked before the result resolves.
	require.Equal(t, 1, reg.Len())

	result <- 42
	select {
	case got := <-completed:
		assert.True(t, got == m)
	case <-time.After(time.Second):
		t.Fatal("completion callback never ran")
	}

	close(result)
	select {
	case <-completed:
		t.Fatal("completion callback ran twice")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestInsertThenClosedSourceSkipsCompletion(t *testing.T) {
	reg, _ := newTestRegistry()

	result := make(chan struct{})
	completed := make(chan struct{}, 1)

	InsertThen(reg, NewPlan(true, func(Context) string { return "" }), result, func(Model, struct{}) {
		completed <- struct{}{}
	})
	close(result)

	select {
	case <-completed:
		t.Fatal("a closed source must not complete the callback")
	case <-time.After(50 * time.Millisecond):
	}

	// The overlay stays inserted; discarding it is the caller's call.
	assert.Equal(t, 1, reg.Len())
}

func TestInsertEachInsertsPerElementInOrder(t *testing.T) {
	reg, surf := newTestRegistry()

	src := make(chan int, 8)
	for _, v := range []int{1, 2, 3, 4} {
		src <- v
	}
	close(src)

	done := InsertEach(reg, src, func(v int) *Plan {
		if v%2 != 0 {
			return nil // odd elements insert nothing
		}
		p := NewPlan(true, func(Context) string { return strconv.Itoa(v) })
		return &p
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("stream never drained")
	}

	require.Equal(t, 2, reg.Len())
	require.Len(t, surf.created, 2)

	ctx := stubContext{width: 10, height: 4}
	assert.Equal(t, "2", surf.created[0].spec.Build(ctx))
	assert.Equal(t, "4", surf.created[1].spec.Build(ctx))
}

func TestInsertEachSelectorSideEffects(t *testing.T) {
	reg, _ := newTestRegistry()

	// The selector removes the newest overlay before declining to
	// insert anything, mirroring a "replace or clear" feed.
	src := make(chan string, 4)
	src <- "show"
	src <- "clear"
	close(src)

	done := InsertEach(reg, src, func(ev string) *Plan {
		if ev == "clear" {
			if overlays := reg.Overlays(); len(overlays) > 0 {
				overlays[len(overlays)-1].Remove()
			}
			return nil
		}
		p := NewPlan(true, func(Context) string { return ev })
		return &p
	})

	<-done
	assert.Equal(t, 0, reg.Len())
}

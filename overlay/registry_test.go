package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlaysReturnsSnapshot(t *testing.T) {
	reg, _ := newTestRegistry()

	first := reg.Insert(NewPlan(true, func(Context) string { return "a" }), nil, nil)
	second := reg.Insert(NewPlan(true, func(Context) string { return "b" }), nil, nil)

	snap := reg.Overlays()
	require.Len(t, snap, 2)
	assert.True(t, snap[0] == first)
	assert.True(t, snap[1] == second)

	// Mutating the snapshot must not bypass the registry's mutation
	// discipline.
	snap[0] = nil
	snap = snap[:1]

	again := reg.Overlays()
	require.Len(t, again, 2)
	assert.True(t, again[0] == first)
	assert.True(t, again[1] == second)
}

func TestTrackedCountFollowsInsertAndRemove(t *testing.T) {
	reg, surf := newTestRegistry()
	plan := NewPlan(true, func(Context) string { return "" })

	models := make([]Model, 0, 3)
	for i := 0; i < 3; i++ {
		models = append(models, reg.Insert(plan, nil, nil))
	}
	require.Equal(t, 3, reg.Len())

	models[1].Remove()
	assert.Equal(t, 2, reg.Len())

	// Removal preserves the order of the survivors.
	snap := reg.Overlays()
	assert.True(t, snap[0] == models[0])
	assert.True(t, snap[1] == models[2])

	models[0].Remove()
	models[2].Remove()
	assert.Equal(t, 0, reg.Len())
	assert.Len(t, surf.inserts, 3)
}

// Update never changes the tracked list or touches host insertion.
func TestUpdateLeavesTrackingAlone(t *testing.T) {
	reg, surf := newTestRegistry()

	m := reg.Insert(NewPlan(false, func(Context) string { return "" }).WithUpdatable(), nil, nil)

	for i := 0; i < 5; i++ {
		m.Update()
	}

	assert.Equal(t, 1, reg.Len())
	assert.Len(t, surf.inserts, 1)
	assert.Equal(t, 5, surf.created[0].invalidated)
	assert.Equal(t, 0, surf.created[0].removed)
}

func TestInsertResolvesSiblingEntries(t *testing.T) {
	reg, surf := newTestRegistry()
	plan := NewPlan(true, func(Context) string { return "" })

	a := reg.Insert(plan, nil, nil)
	b := reg.Insert(plan, a, nil)
	reg.Insert(plan, nil, b)

	require.Len(t, surf.inserts, 3)
	assert.Nil(t, surf.inserts[0].below)
	assert.Nil(t, surf.inserts[0].above)
	assert.Same(t, a.Entry(), surf.inserts[1].below)
	assert.Nil(t, surf.inserts[1].above)
	assert.Nil(t, surf.inserts[2].below)
	assert.Same(t, b.Entry(), surf.inserts[2].above)
}

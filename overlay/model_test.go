package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoryCapabilityMatrix(t *testing.T) {
	cases := []struct {
		name                             string
		removable, updatable, insertable bool
	}{
		{"remove+update+insert", true, true, true},
		{"remove+update", true, true, false},
		{"remove+insert", true, false, true},
		{"update+insert", false, true, true},
		{"remove only", true, false, false},
		{"update only", false, true, false},
		{"insert only", false, false, true},
		{"none", false, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reg, surf := newTestRegistry()

			plan := NewPlan(tc.removable, func(Context) string { return "x" })
			if tc.updatable {
				plan = plan.WithUpdatable()
			}
			if tc.insertable {
				plan = plan.WithInsertable()
			}

			m := reg.Insert(plan, nil, nil)
			require.Len(t, surf.created, 1)
			require.Len(t, surf.inserts, 1)
			entry := surf.created[0]

			if tc.updatable {
				require.NotPanics(t, m.Update)
				assert.Equal(t, 1, entry.invalidated)
			} else {
				require.PanicsWithError(t, "overlay: model does not support update", m.Update)
				assert.Equal(t, 0, entry.invalidated)
			}

			if tc.insertable {
				require.NotPanics(t, m.Insert)
				assert.Len(t, surf.inserts, 2)
			} else {
				require.PanicsWithError(t, "overlay: model does not support insert", m.Insert)
				assert.Len(t, surf.inserts, 1)
			}

			if tc.removable {
				require.NotPanics(t, m.Remove)
				assert.Equal(t, 1, entry.removed)
			} else {
				require.PanicsWithError(t, "overlay: model does not support remove", m.Remove)
				assert.Equal(t, 0, entry.removed)
			}
		})
	}
}

// A removable-only plan yields a handle whose insert and update are
// refused, while remove detaches exactly once and empties the registry.
func TestRemoveOnlyLifecycle(t *testing.T) {
	reg, surf := newTestRegistry()

	m := reg.Insert(NewPlan(true, func(Context) string { return "toast" }), nil, nil)
	require.Equal(t, 1, reg.Len())

	require.PanicsWithError(t, "overlay: model does not support insert", m.Insert)
	require.PanicsWithError(t, "overlay: model does not support update", m.Update)

	m.Remove()
	assert.Equal(t, 0, reg.Len())
	assert.Equal(t, 1, surf.created[0].removed)
	assert.Len(t, surf.inserts, 1)
}

func TestCapabilityErrorValue(t *testing.T) {
	reg, _ := newTestRegistry()
	m := reg.Insert(NewPlan(false, func(Context) string { return "" }), nil, nil)

	defer func() {
		err, ok := recover().(*CapabilityError)
		require.True(t, ok, "panic value must be a *CapabilityError")
		assert.Equal(t, "remove", err.Op)
	}()
	m.Remove()
}

// Insert on an insertable model re-inserts at the sibling position
// recorded when the model was built.
func TestInsertReusesRecordedSiblings(t *testing.T) {
	reg, surf := newTestRegistry()

	anchor := reg.Insert(NewPlan(true, func(Context) string { return "a" }), nil, nil)
	m := reg.Insert(NewPlan(false, func(Context) string { return "b" }).WithInsertable(), anchor, nil)

	m.Insert()
	require.Len(t, surf.inserts, 3)
	assert.Same(t, surf.inserts[1].entry, surf.inserts[2].entry)
	assert.Same(t, anchor.Entry(), surf.inserts[2].below)
	assert.Nil(t, surf.inserts[2].above)

	// The re-insert tracked the model a second time; double-insert
	// bookkeeping is the caller's responsibility.
	assert.Equal(t, 3, reg.Len())
}

package immutable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/immutable"
	"github.com/dmitrymomot/immutable/pkg/validator"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		original any
		partial  map[string]any
		want     map[string]any
	}{
		{
			name:     "scalar overwrite",
			original: map[string]any{"a": 1, "b": 2},
			partial:  map[string]any{"b": 3},
			want:     map[string]any{"a": 1, "b": 3},
		},
		{
			name:     "nested objects merge",
			original: map[string]any{"o": map[string]any{"x": 1, "y": 2}},
			partial:  map[string]any{"o": map[string]any{"y": 3, "z": 4}},
			want:     map[string]any{"o": map[string]any{"x": 1, "y": 3, "z": 4}},
		},
		{
			name:     "arrays are replaced wholesale",
			original: map[string]any{"l": []any{1, 2, 3}},
			partial:  map[string]any{"l": []any{9}},
			want:     map[string]any{"l": []any{9}},
		},
		{
			name:     "missing target merges against empty",
			original: map[string]any{"a": 1},
			partial:  map[string]any{"o": map[string]any{"x": 1}},
			want:     map[string]any{"a": 1, "o": map[string]any{"x": 1}},
		},
		{
			name:     "scalar target replaced by merged object",
			original: map[string]any{"o": "text"},
			partial:  map[string]any{"o": map[string]any{"x": 1}},
			want:     map[string]any{"o": map[string]any{"x": 1}},
		},
		{
			name:     "nil original",
			original: nil,
			partial:  map[string]any{"a": 1},
			want:     map[string]any{"a": 1},
		},
		{
			name:     "nil partial",
			original: map[string]any{"a": 1},
			partial:  nil,
			want:     map[string]any{"a": 1},
		},
		{
			name:     "typed maps",
			original: map[string]int{"a": 1},
			partial:  map[string]any{"b": map[string]string{"c": "d"}},
			want:     map[string]any{"a": 1, "b": map[string]any{"c": "d"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, immutable.Merge(tt.original, tt.partial))
		})
	}
}

func TestMerge_Pure(t *testing.T) {
	t.Parallel()

	original := map[string]any{"o": map[string]any{"x": 1}, "l": []any{1}}
	partial := map[string]any{"o": map[string]any{"y": 2}, "l": []any{2}}

	merged := immutable.Merge(original, partial)
	merged["new"] = true
	merged["o"].(map[string]any)["z"] = 3

	assert.Equal(t, map[string]any{"o": map[string]any{"x": 1}, "l": []any{1}}, original)
	assert.Equal(t, map[string]any{"o": map[string]any{"y": 2}, "l": []any{2}}, partial)
}

func TestMerge_FrozenOriginal(t *testing.T) {
	t.Parallel()

	obj := immutable.Freeze(map[string]any{
		"o": map[string]any{"x": 1},
		"l": []any{1},
	}).(*immutable.Object)

	merged := immutable.Merge(obj, map[string]any{"o": map[string]any{"y": 2}})
	assert.Equal(t, map[string]any{"x": 1, "y": 2}, merged["o"])

	l, ok := merged["l"].(*immutable.List)
	require.True(t, ok, "untouched nested values stay frozen")
	assert.Equal(t, []any{1}, l.Slice())
}

func TestInstance_Patch(t *testing.T) {
	t.Parallel()

	acc := accountType(t)
	inst := acc.MustNew(account())
	before := inst.ToObject(immutable.DeepArrays())

	patched, err := inst.Patch(map[string]any{
		"owner": map[string]any{"name": "Jane"},
		"tags":  []any{"silver"},
	})
	require.NoError(t, err)

	assert.Equal(t, before, inst.ToObject(immutable.DeepArrays()), "receiver is unchanged")

	want := immutable.Merge(inst.ToObject(), map[string]any{
		"owner": map[string]any{"name": "Jane"},
		"tags":  []any{"silver"},
	})
	assert.True(t, patched.Equal(want), patched.Diff(want))
	assert.Same(t, acc, patched.Type())
	assert.True(t, immutable.IsImmutable(patched))

	owner, ok := patched.Object("owner")
	require.True(t, ok)
	email, _ := owner.Get("email")
	assert.Equal(t, "john@example.com", email)
}

func TestInstance_Patch_Invalid(t *testing.T) {
	t.Parallel()

	inst := personType(t).MustNew(john())

	patched, err := inst.Patch(map[string]any{"age": 0})
	require.Error(t, err)
	assert.Nil(t, patched)
	assert.True(t, validator.IsValidationError(err))

	age, _ := inst.Get("age")
	assert.Equal(t, 21, age)
}

func TestInstance_Patch_Empty(t *testing.T) {
	t.Parallel()

	inst := personType(t).MustNew(john())

	same, err := inst.Patch(nil)
	require.NoError(t, err)
	assert.NotSame(t, inst, same)
	assert.True(t, same.Equal(inst))
}

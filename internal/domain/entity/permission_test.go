package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAllowedCondominiums(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want []int64
	}{
		{name: "nil", raw: nil, want: []int64{}},
		{name: "bare int scalar", raw: 7, want: []int64{7}},
		{name: "bare string scalar", raw: "7", want: []int64{7}},
		{name: "float from json", raw: float64(3), want: []int64{3}},
		{name: "mixed slice", raw: []any{1, "2", float64(3)}, want: []int64{1, 2, 3}},
		{name: "serialized array", raw: `[1, "2", 3]`, want: []int64{1, 2, 3}},
		{name: "serialized scalar", raw: `"4"`, want: []int64{4}},
		{name: "duplicates collapse", raw: []any{5, "5", float64(5)}, want: []int64{5}},
		{name: "non-coercible elements dropped", raw: []any{1, "abc", nil, true}, want: []int64{1}},
		{name: "fractional numbers dropped", raw: []any{1, 2.5}, want: []int64{1}},
		{name: "garbage string", raw: "not json at all", want: []int64{}},
		{name: "broken json", raw: `[1, 2`, want: []int64{}},
		{name: "empty string", raw: "   ", want: []int64{}},
		{name: "sorted output", raw: []any{9, 1, 4}, want: []int64{1, 4, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeAllowedCondominiums(tt.raw))
		})
	}
}

func TestResolveScope_FullWinsOverMalformedAllowList(t *testing.T) {
	scope := ResolveScope(PermissionDescriptor{
		Scope:        "full",
		Condominiums: "{{{not even close to json",
	})

	assert.True(t, scope.IsFull())
	assert.True(t, scope.Covers(123456))
}

func TestResolveScope_FullIsCaseInsensitive(t *testing.T) {
	scope := ResolveScope(PermissionDescriptor{Scope: " FULL "})

	assert.True(t, scope.IsFull())
}

func TestResolveScope_LimitedUsesNormalizedSet(t *testing.T) {
	scope := ResolveScope(PermissionDescriptor{
		Scope:        "limited",
		Condominiums: `[3, "4"]`,
	})

	assert.False(t, scope.IsFull())
	assert.True(t, scope.Covers(3))
	assert.True(t, scope.Covers(4))
	assert.False(t, scope.Covers(7))
}

func TestResolveScope_MalformedDegradesToEmptyLimited(t *testing.T) {
	scope := ResolveScope(PermissionDescriptor{
		Scope:        "limited",
		Condominiums: "garbage",
	})

	assert.False(t, scope.IsFull())
	assert.False(t, scope.Covers(1))
	assert.Empty(t, scope.AllowedIDs())
}

func TestAccessScope_CoversAny(t *testing.T) {
	scope := LimitedScope([]int64{3, 4})

	assert.True(t, scope.CoversAny([]int64{4, 5}), "any overlap is enough")
	assert.False(t, scope.CoversAny([]int64{5, 6}))
	assert.False(t, scope.CoversAny(nil))
	assert.True(t, FullScope().CoversAny(nil))
}

func TestAccessScope_Intersect(t *testing.T) {
	scope := LimitedScope([]int64{3, 4})

	assert.Equal(t, []int64{4}, scope.Intersect([]int64{4, 5}))
	assert.Empty(t, scope.Intersect([]int64{5}))
	assert.Equal(t, []int64{4, 5}, FullScope().Intersect([]int64{4, 5}))
}

func TestDeniedScope_CoversNothing(t *testing.T) {
	scope := DeniedScope()

	assert.False(t, scope.IsFull())
	assert.False(t, scope.Covers(1))
	assert.False(t, scope.CoversAny([]int64{1, 2, 3}))
}

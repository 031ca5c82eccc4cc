package impl

import (
	"testing"

	"gestcondo/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestOriginCondominiums(t *testing.T) {
	assert.Equal(t, []int64{1, 2},
		originCondominiums(entity.CondominiumOrigin{CondominiumIDs: []int64{1, 2}}, nil))

	assert.Equal(t, []int64{7},
		originCondominiums(entity.ResidentOrigin{ResidentID: 3}, []int64{7}))

	assert.Equal(t, []int64{4, 5},
		originCondominiums(entity.BroadcastOrigin{SenderID: 1, CondominiumIDs: []int64{4, 5}}, nil))

	assert.Nil(t, originCondominiums(entity.SystemOrigin{RelatedID: 9}, nil))
}

func TestResolveAdminTargets_AnyOverlap(t *testing.T) {
	admins := []*entity.Administrator{
		{ID: 1, Scope: entity.ScopeFull},
		{ID: 2, Scope: entity.ScopeLimited, Condominiums: "[10, 20]"},
		{ID: 3, Scope: entity.ScopeLimited, Condominiums: "[30]"},
		{ID: 4, Scope: entity.ScopeLimited, Condominiums: ""},
	}

	origin := entity.CondominiumOrigin{CondominiumIDs: []int64{20, 40}}
	targets := resolveAdminTargets(admins, origin, []int64{20, 40})

	// Full scope always matches; a limited scope matches on any overlap, not
	// all. Admin 3 has no overlap and admin 4 has an empty allow-list.
	assert.Equal(t, []int64{1, 2}, targets)
}

func TestResolveAdminTargets_SystemTargetsEveryone(t *testing.T) {
	admins := []*entity.Administrator{
		{ID: 1, Scope: entity.ScopeFull},
		{ID: 2, Scope: entity.ScopeLimited, Condominiums: "not json at all"},
		{ID: 3, Scope: entity.ScopeLimited, Condominiums: ""},
	}

	targets := resolveAdminTargets(admins, entity.SystemOrigin{RelatedID: 1}, nil)

	assert.Equal(t, []int64{1, 2, 3}, targets)
}

func TestResolveAdminTargets_MalformedScopeDegradesToNothing(t *testing.T) {
	admins := []*entity.Administrator{
		{ID: 1, Scope: "limited", Condominiums: "{\"oops\": true}"},
	}

	targets := resolveAdminTargets(admins, entity.CondominiumOrigin{CondominiumIDs: []int64{1}}, []int64{1})

	assert.Empty(t, targets)
}

func TestResolveAdminTargets_FullWinsOverMalformedAllowList(t *testing.T) {
	admins := []*entity.Administrator{
		{ID: 1, Scope: "FULL", Condominiums: "garbage"},
	}

	targets := resolveAdminTargets(admins, entity.CondominiumOrigin{CondominiumIDs: []int64{99}}, []int64{99})

	assert.Equal(t, []int64{1}, targets)
}

func TestStoredCondominiumID(t *testing.T) {
	assert.Nil(t, storedCondominiumID(nil))
	assert.Nil(t, storedCondominiumID([]int64{1, 2}))

	pinned := storedCondominiumID([]int64{42})
	if assert.NotNil(t, pinned) {
		assert.Equal(t, int64(42), *pinned)
	}
}

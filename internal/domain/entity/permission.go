package entity

import (
	"encoding/json"
	"slices"
	"strconv"
	"strings"
)

// Scope values stored on an administrator account.
const (
	ScopeFull    = "full"
	ScopeLimited = "limited"
)

// PermissionDescriptor is the loosely-typed permission payload as it arrives
// from the HTTP layer or from the administrator row. Condominiums may be a
// single scalar, a slice of scalars, or a JSON-serialized form of either,
// with numeric and string elements mixed freely. Nothing outside this file
// may consume the raw payload.
type PermissionDescriptor struct {
	Scope        string `json:"scope"`
	Condominiums any    `json:"condominiums"`
}

// AccessScope is the canonical form of an administrator's access: either full
// (every condominium) or limited to an explicit allow-list. The zero value is
// a limited scope with an empty allow-list, i.e. access to nothing.
type AccessScope struct {
	full    bool
	allowed map[int64]struct{}
}

// FullScope grants unconditional access. Call sites where an absent
// permission descriptor means "internal/administrative caller" use this as
// their fallback.
func FullScope() AccessScope {
	return AccessScope{full: true}
}

// DeniedScope grants access to nothing. Call sites where an absent
// permission descriptor must fail closed use this as their fallback.
func DeniedScope() AccessScope {
	return AccessScope{}
}

// LimitedScope grants access to exactly the given condominium IDs.
func LimitedScope(condoIDs []int64) AccessScope {
	allowed := make(map[int64]struct{}, len(condoIDs))
	for _, id := range condoIDs {
		allowed[id] = struct{}{}
	}

	return AccessScope{allowed: allowed}
}

// ResolveScope normalizes a raw permission descriptor. A "full" scope wins
// unconditionally, even when a malformed allow-list is also present; anything
// else degrades to a limited scope over whatever IDs survive normalization.
func ResolveScope(descriptor PermissionDescriptor) AccessScope {
	if strings.EqualFold(strings.TrimSpace(descriptor.Scope), ScopeFull) {
		return FullScope()
	}

	return LimitedScope(NormalizeAllowedCondominiums(descriptor.Condominiums))
}

// IsFull reports whether the scope covers every condominium.
func (s AccessScope) IsFull() bool {
	return s.full
}

// Covers reports whether the scope grants access to the given condominium.
func (s AccessScope) Covers(condoID int64) bool {
	if s.full {
		return true
	}
	_, ok := s.allowed[condoID]

	return ok
}

// CoversAny reports whether the scope overlaps any of the given condominiums.
// Membership is "any overlap", never "all must match".
func (s AccessScope) CoversAny(condoIDs []int64) bool {
	if s.full {
		return true
	}
	for _, id := range condoIDs {
		if _, ok := s.allowed[id]; ok {
			return true
		}
	}

	return false
}

// Intersect returns the subset of condoIDs the scope grants access to,
// preserving input order. Used to narrow a limited sender's broadcast target
// list to their own allow-list.
func (s AccessScope) Intersect(condoIDs []int64) []int64 {
	if s.full {
		return slices.Clone(condoIDs)
	}

	kept := make([]int64, 0, len(condoIDs))
	for _, id := range condoIDs {
		if _, ok := s.allowed[id]; ok {
			kept = append(kept, id)
		}
	}

	return kept
}

// AllowedIDs returns the allow-list in ascending order. Empty for full scopes;
// read paths must check IsFull first.
func (s AccessScope) AllowedIDs() []int64 {
	ids := make([]int64, 0, len(s.allowed))
	for id := range s.allowed {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// NormalizeAllowedCondominiums coerces a raw allow-list value into a set of
// condominium IDs. It accepts nil, a bare scalar, a slice of scalars, or a
// JSON-serialized form of either, and drops every element that does not
// coerce to an integer. It never fails: malformed input degrades to an empty
// set, which means "access to nothing" once wrapped in a limited scope.
func NormalizeAllowedCondominiums(raw any) []int64 {
	seen := make(map[int64]struct{})
	collectCondoIDs(raw, seen, true)

	ids := make([]int64, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// collectCondoIDs walks one level of the raw payload. decode guards against
// re-parsing a string that was itself produced by JSON decoding, so a value
// like `"[\"[1]\"]"` cannot recurse indefinitely.
func collectCondoIDs(raw any, into map[int64]struct{}, decode bool) {
	switch v := raw.(type) {
	case nil:
	case []any:
		for _, elem := range v {
			collectCondoIDs(elem, into, false)
		}
	case []int64:
		for _, id := range v {
			into[id] = struct{}{}
		}
	case []int:
		for _, id := range v {
			into[int64(id)] = struct{}{}
		}
	case []string:
		for _, elem := range v {
			collectCondoIDs(elem, into, false)
		}
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return
		}
		if decode && looksSerialized(trimmed) {
			var decoded any
			if err := json.Unmarshal([]byte(trimmed), &decoded); err == nil {
				collectCondoIDs(decoded, into, false)

				return
			}
		}
		if id, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
			into[id] = struct{}{}
		}
	case json.Number:
		if id, err := v.Int64(); err == nil {
			into[id] = struct{}{}
		}
	case float64:
		// JSON numbers decode to float64; reject anything with a fraction.
		if v == float64(int64(v)) {
			into[int64(v)] = struct{}{}
		}
	case float32:
		collectCondoIDs(float64(v), into, false)
	case int:
		into[int64(v)] = struct{}{}
	case int32:
		into[int64(v)] = struct{}{}
	case int64:
		into[v] = struct{}{}
	case uint:
		into[int64(v)] = struct{}{}
	case uint64:
		into[int64(v)] = struct{}{}
	}
}

func looksSerialized(s string) bool {
	return strings.HasPrefix(s, "[") || strings.HasPrefix(s, "{") || strings.HasPrefix(s, "\"")
}

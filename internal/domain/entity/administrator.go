// Package entity contains the core business objects of the project.
package entity

import "time"

// Administrator is a staff account managing one or more condominiums. Its
// access is either full (every condominium) or limited to an explicit
// allow-list stored as a loosely-typed descriptor. Exactly one administrator
// carries the main designation; that account manages other staff accounts and
// can never be deleted.
type Administrator struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Scope        string    `json:"scope"`                 // "full" or "limited".
	Condominiums string    `json:"allowed_condominiums"`  // Raw allow-list as persisted (JSON text, scalar, or empty).
	IsMain       bool      `json:"is_main"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AccessScope resolves the administrator's stored permission fields into the
// canonical scope. The stored allow-list goes through the same normalization
// as a header-supplied descriptor.
func (a *Administrator) AccessScope() AccessScope {
	return ResolveScope(PermissionDescriptor{
		Scope:        a.Scope,
		Condominiums: a.Condominiums,
	})
}

package entity

import "time"

// Resident is an end-user account tied to zero or more condominiums through
// memberships.
type Resident struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Membership links a resident to a condominium. The (resident, condominium)
// pair is unique.
type Membership struct {
	ID            int64     `json:"id"`
	ResidentID    int64     `json:"resident_id"`
	CondominiumID int64     `json:"condominium_id"`
	Apartment     string    `json:"apartment"`
	Role          string    `json:"role"` // e.g. "owner", "tenant".
	CreatedAt     time.Time `json:"created_at"`
}

// DeviceToken is a resident's registered mobile push token.
type DeviceToken struct {
	ID         int64     `json:"id"`
	ResidentID int64     `json:"resident_id"`
	Token      string    `json:"token"`
	Platform   string    `json:"platform"` // "android" or "ios".
	CreatedAt  time.Time `json:"created_at"`
}

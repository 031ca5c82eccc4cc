package model

import "time"

// ResidentModel is the GORM-specific struct for the 'residents' table.
type ResidentModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"type:text;not null"`
	Email        string `gorm:"type:text;not null;uniqueIndex"`
	PasswordHash string `gorm:"type:text;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ResidentModel) TableName() string {
	return "residents"
}

// MembershipModel is the GORM-specific struct for the 'memberships' table.
// The (resident_id, condominium_id) pair is unique.
type MembershipModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	ResidentID    int64  `gorm:"not null;uniqueIndex:idx_memberships_resident_condo;index"`
	CondominiumID int64  `gorm:"not null;uniqueIndex:idx_memberships_resident_condo;index"`
	Apartment     string `gorm:"type:text"`
	Role          string `gorm:"type:text"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (MembershipModel) TableName() string {
	return "memberships"
}

// DeviceTokenModel is the GORM-specific struct for the 'device_tokens' table.
type DeviceTokenModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	ResidentID int64  `gorm:"not null;index"`
	Token      string `gorm:"type:text;not null;uniqueIndex"`
	Platform   string `gorm:"type:text"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceTokenModel) TableName() string {
	return "device_tokens"
}

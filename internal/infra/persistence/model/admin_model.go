// Package model holds the GORM-specific structs mapped to database tables.
package model

import "time"

// AdminModel is the GORM-specific struct for the 'administrators' table.
type AdminModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"type:text;not null;uniqueIndex"`
	Email        string `gorm:"type:text;not null"`
	PasswordHash string `gorm:"type:text;not null"`
	Scope        string `gorm:"type:text;not null;default:'limited'"`
	// Condominiums stores the raw allow-list exactly as supplied (JSON text
	// or a bare scalar); normalization happens in the domain layer.
	Condominiums string `gorm:"type:text"`
	IsMain       bool   `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminModel) TableName() string {
	return "administrators"
}

package model

import "time"

// CondominiumModel is the GORM-specific struct for the 'condominiums' table.
type CondominiumModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:text;not null;uniqueIndex"`
	TaxID     string `gorm:"type:text"`
	Address   string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CondominiumModel) TableName() string {
	return "condominiums"
}

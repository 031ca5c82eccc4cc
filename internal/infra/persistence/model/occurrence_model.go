package model

import "time"

// OccurrenceModel is the GORM-specific struct for the 'occurrences' table.
type OccurrenceModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	CondominiumID int64  `gorm:"not null;index"`
	ReporterID    *int64 `gorm:"index"`
	AssigneeID    *int64
	Title         string `gorm:"type:text;not null"`
	Description   string `gorm:"type:text"`
	Status        string `gorm:"type:text;not null;default:'open'"`
	Report        string `gorm:"type:text"`
	Approved      *bool
	CompletedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (OccurrenceModel) TableName() string {
	return "occurrences"
}

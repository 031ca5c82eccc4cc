package model

import "time"

// AssemblyModel is the GORM-specific struct for the 'assemblies' table.
type AssemblyModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	CondominiumID int64  `gorm:"not null;index"`
	Title         string `gorm:"type:text;not null"`
	Agenda        string `gorm:"type:text"`
	ScheduledFor  time.Time
	Location      string `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Attachments []AssemblyAttachmentModel `gorm:"foreignKey:AssemblyID"`
}

// TableName explicitly sets the table name for GORM.
func (AssemblyModel) TableName() string {
	return "assemblies"
}

// AssemblyAttachmentModel stores document metadata attached to an assembly.
type AssemblyAttachmentModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	AssemblyID  int64  `gorm:"not null;index"`
	FileName    string `gorm:"type:text;not null"`
	ContentType string `gorm:"type:text"`
	SizeBytes   int64
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AssemblyAttachmentModel) TableName() string {
	return "assembly_attachments"
}

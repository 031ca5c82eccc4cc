package model

import "time"

// AdminMessageModel is the GORM-specific struct for the 'admin_messages' table.
type AdminMessageModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	SenderID  int64  `gorm:"not null;index"`
	Title     string `gorm:"type:text;not null"`
	Body      string `gorm:"type:text"`
	CreatedAt time.Time

	Targets []MessageTargetModel `gorm:"foreignKey:MessageID"`
}

// TableName explicitly sets the table name for GORM.
func (AdminMessageModel) TableName() string {
	return "admin_messages"
}

// MessageTargetModel records one condominium a message was addressed to.
type MessageTargetModel struct {
	ID            int64 `gorm:"primaryKey;autoIncrement"`
	MessageID     int64 `gorm:"not null;uniqueIndex:idx_message_target"`
	CondominiumID int64 `gorm:"not null;uniqueIndex:idx_message_target"`
}

// TableName explicitly sets the table name for GORM.
func (MessageTargetModel) TableName() string {
	return "admin_message_targets"
}

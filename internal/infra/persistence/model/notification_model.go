package model

import "time"

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// CondominiumID and UserID are nullable because system-wide notifications
// carry neither.
type NotificationModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Type          string `gorm:"type:text;not null;index"`
	Title         string `gorm:"type:text;not null"`
	Message       string `gorm:"type:text"`
	RelatedID     int64
	CondominiumID *int64 `gorm:"index"`
	UserID        *int64
	UserName      string `gorm:"type:text"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

// AdminNotificationLinkModel joins one administrator to one notification.
// The unique pair index makes link insertion idempotent under
// ON CONFLICT DO NOTHING.
type AdminNotificationLinkModel struct {
	ID             int64 `gorm:"primaryKey;autoIncrement"`
	AdminID        int64 `gorm:"not null;uniqueIndex:idx_admin_notification_link"`
	NotificationID int64 `gorm:"not null;uniqueIndex:idx_admin_notification_link"`
	Read           bool  `gorm:"not null;default:false"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminNotificationLinkModel) TableName() string {
	return "admin_notification_links"
}

// UserNotificationLinkModel joins one resident to one notification.
type UserNotificationLinkModel struct {
	ID             int64 `gorm:"primaryKey;autoIncrement"`
	UserID         int64 `gorm:"not null;uniqueIndex:idx_user_notification_link"`
	NotificationID int64 `gorm:"not null;uniqueIndex:idx_user_notification_link"`
	Read           bool  `gorm:"not null;default:false"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserNotificationLinkModel) TableName() string {
	return "user_notification_links"
}

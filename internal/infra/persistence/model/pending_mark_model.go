package model

import "time"

// PendingMarkModel is the GORM-specific struct for the 'pending_marks' table.
// A row is a store the viewer requested locally that the backend has not reported yet.
type PendingMarkModel struct {
	ViewerID  string    `gorm:"type:varchar(128);primaryKey"`
	StoreID   string    `gorm:"type:varchar(128);primaryKey"`
	State     string    `gorm:"type:varchar(16);not null;index"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PendingMarkModel) TableName() string {
	return "pending_marks"
}

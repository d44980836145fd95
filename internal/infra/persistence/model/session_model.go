package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionModel mirrors the 'sessions' table. The opaque token is the primary key.
type SessionModel struct {
	ID         string    `gorm:"type:varchar(64);primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time `gorm:"not null"`
	ExpiresAt  time.Time `gorm:"not null;index"`
	LastSeenAt time.Time `gorm:"not null"`
	IPAddress  *string   `gorm:"type:varchar(64)"`
	UserAgent  *string   `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}

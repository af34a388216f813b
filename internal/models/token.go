package models

import (
	"time"
)

// RevokedToken records a JWT that was invalidated by logout before its
// natural expiry. Rows whose ExpiresAt is in the past are dead weight only.
type RevokedToken struct {
	ID        uint      `gorm:"primarykey"`
	JTI       string    `gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

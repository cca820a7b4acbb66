package models

import (
	"time"

	"gorm.io/gorm"
)

// Session tracks one login. TokenID is the jti claim of the issued JWT;
// logout sets RevokedAt, which the auth middleware checks on every request.
type Session struct {
	gorm.Model
	UserID    uint       `gorm:"not null;index" json:"userId"`
	TokenID   string     `gorm:"type:varchar(64);uniqueIndex;not null" json:"tokenId"`
	IPAddress string     `json:"ipAddress"`
	Device    string     `json:"device"`
	RevokedAt *time.Time `gorm:"default:NULL" json:"revokedAt"`
}

package model

import "time"

const (
	RoleParent = "parent"
	RoleChild  = "child"
	RoleAdmin  = "admin"
)

type User struct {
	ID            string `gorm:"primaryKey"`
	Email         string `gorm:"unique"`
	Username      string `gorm:"unique;not null"`
	Password      string
	Role          string `gorm:"not null;default:parent"`
	DisplayName   string
	EmailVerified bool
	IsActive      bool `gorm:"not null;default:true"`
	LastLoginAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time `gorm:"index"`
}

package models

import (
	"gorm.io/gorm"
)

// User represents an account that can hold reservations.
type User struct {
	gorm.Model
	Username  string   `gorm:"uniqueIndex;not null" json:"username"`
	Password  string   `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	Document  string   `gorm:"uniqueIndex;not null" json:"document"` // national ID number, globally unique
	Role      UserRole `gorm:"not null;default:'instructor'" json:"role"`
	Active    bool     `gorm:"default:true" json:"active"`
}

// UserRole gates authorization decisions: admins may confirm reservations,
// cancel anyone's reservation and manage rooms/users.
type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleInstructor UserRole = "instructor"
)

// FullName joins first and last name for display purposes.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.Username
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

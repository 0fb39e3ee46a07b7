package models

import (
	"time"

	"gorm.io/datatypes"
)

type UserRole string

const (
	RoleAdmin      UserRole = "ADMIN"
	RoleDocente    UserRole = "DOCENTE"
	RoleEstudiante UserRole = "ESTUDIANTE"
	RoleVisitor    UserRole = "VISITOR"
)

// Valid reports whether the role is one of the four known variants.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleDocente, RoleEstudiante, RoleVisitor:
		return true
	}
	return false
}

// User is an account in the credential store. PasswordHash is a bcrypt
// hash and never leaves the API boundary.
type User struct {
	ID           string   `json:"id" gorm:"primaryKey;size:64"`
	Name         string   `json:"name" gorm:"not null;size:100"`
	Email        string   `json:"email" gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string   `json:"-" gorm:"not null;size:255"`
	Role         UserRole `json:"role" gorm:"not null;size:16"`

	// Profile info
	Specialty *string                     `json:"specialty,omitempty" gorm:"size:100"`
	Bio       *string                     `json:"bio,omitempty" gorm:"size:1000"`
	Interests datatypes.JSONSlice[string] `json:"interests,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// UserSummary is the subject shape returned by login and /auth/me.
type UserSummary struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Role UserRole `json:"role"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Role: u.Role}
}

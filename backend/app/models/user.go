package models

import "time"

type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           uint   `gorm:"column:user_id;primaryKey"`
	FullName     string `gorm:"column:full_name;size:191;not null"`
	Email        string `gorm:"uniqueIndex;size:191;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         Role   `gorm:"size:32;not null;default:student"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserChanges is the set of columns one profile update writes. Nil fields are left alone.
type UserChanges struct {
	FullName     *string
	PasswordHash *string
}

func (c UserChanges) Empty() bool {
	return c.FullName == nil && c.PasswordHash == nil
}

// Columns maps the set fields to their column names.
func (c UserChanges) Columns() map[string]any {
	cols := make(map[string]any, 2)
	if c.FullName != nil {
		cols["full_name"] = *c.FullName
	}
	if c.PasswordHash != nil {
		cols["password_hash"] = *c.PasswordHash
	}
	return cols
}

package models

import "time"

// UserModel is the minimal slice of the users table the catalog needs
// for referential integrity. Credentials live in the auth service.
type UserModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	Email     string `gorm:"uniqueIndex;not null"`
	Role      string `gorm:"not null;default:'CUSTOMER'"`
	CreatedAt time.Time
}

func (UserModel) TableName() string {
	return "users"
}

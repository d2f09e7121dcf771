package models

import (
	"time"
)

// User is an authenticatable identity. PasswordHash is a bcrypt digest and is
// never serialized.
type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`

	// Relations
	Articles []Article `gorm:"foreignKey:AuthorID" json:"-"`
	Comments []Comment `gorm:"foreignKey:CommenterID" json:"-"`
}

package models

import (
	"time"
)

// Comment belongs to exactly one article and one commenter. Comments are never
// edited; they disappear only when their article or commenter is deleted.
type Comment struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	CommenterID uint64    `gorm:"not null;index" json:"commenter_id"`
	ArticleID   uint64    `gorm:"not null;index" json:"article_id"`
	CreatedAt   time.Time `json:"created_at"`

	// Relations
	Commenter User    `gorm:"foreignKey:CommenterID" json:"commenter,omitempty"`
	Article   Article `gorm:"foreignKey:ArticleID" json:"-"`
}
